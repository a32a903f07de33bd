// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"
)

// RestrictionType tags the predicate kinds. Tags are part of the
// consensus wire format, do not reorder.
type RestrictionType byte

const (
	RestrictionEq RestrictionType = iota
	RestrictionNeq
	RestrictionLt
	RestrictionLe
	RestrictionGt
	RestrictionGe
	RestrictionAnyOf
	RestrictionNoneOf
	RestrictionContainsAll
	RestrictionContainsNone
	RestrictionAttributeAssert
)

func (t RestrictionType) String() string {
	switch t {
	case RestrictionEq:
		return "eq"
	case RestrictionNeq:
		return "neq"
	case RestrictionLt:
		return "lt"
	case RestrictionLe:
		return "le"
	case RestrictionGt:
		return "gt"
	case RestrictionGe:
		return "ge"
	case RestrictionAnyOf:
		return "any_of"
	case RestrictionNoneOf:
		return "none_of"
	case RestrictionContainsAll:
		return "contains_all"
	case RestrictionContainsNone:
		return "contains_none"
	case RestrictionAttributeAssert:
		return "attribute_assert"
	default:
		return fmt.Sprintf("restriction_%d", byte(t))
	}
}

// ParseRestrictionType resolves a wire name back to a kind tag.
func ParseRestrictionType(s string) (RestrictionType, error) {
	for t := RestrictionEq; t <= RestrictionAttributeAssert; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("codec: unknown restriction type %q", s)
}

// IsList reports whether the kind carries a value list operand.
func (t RestrictionType) IsList() bool {
	switch t {
	case RestrictionAnyOf, RestrictionNoneOf, RestrictionContainsAll, RestrictionContainsNone:
		return true
	}
	return false
}

// IsOrdered reports whether the kind compares via integer projection.
func (t RestrictionType) IsOrdered() bool {
	switch t {
	case RestrictionLt, RestrictionLe, RestrictionGt, RestrictionGe:
		return true
	}
	return false
}

// Restriction is a single predicate over one named field of an
// operation. Which operand slot is used depends on Type: Value for
// Eq/Neq, Threshold for the ordered kinds, Values for the list kinds and
// Inner for AttributeAssert. AttributeAssert is carried structurally for
// wire compatibility but has no evaluation semantics.
type Restriction struct {
	Type      RestrictionType `json:"type"`
	Field     string          `json:"field"`
	Value     Value           `json:"value,omitempty"`
	Values    []Value         `json:"values,omitempty"`
	Threshold int64           `json:"threshold,omitempty"`
	Inner     []Restriction   `json:"restrictions,omitempty"`
}

func (r Restriction) String() string {
	return fmt.Sprintf("%s(%s)", r.Type, r.Field)
}

// Eq builds an equality restriction.
func Eq(field string, v Value) Restriction {
	return Restriction{Type: RestrictionEq, Field: field, Value: v}
}

// Neq builds an inequality restriction.
func Neq(field string, v Value) Restriction {
	return Restriction{Type: RestrictionNeq, Field: field, Value: v}
}

// Lt, Le, Gt, Ge build ordered restrictions against an integer
// projection of the field.
func Lt(field string, n int64) Restriction {
	return Restriction{Type: RestrictionLt, Field: field, Threshold: n}
}

func Le(field string, n int64) Restriction {
	return Restriction{Type: RestrictionLe, Field: field, Threshold: n}
}

func Gt(field string, n int64) Restriction {
	return Restriction{Type: RestrictionGt, Field: field, Threshold: n}
}

func Ge(field string, n int64) Restriction {
	return Restriction{Type: RestrictionGe, Field: field, Threshold: n}
}

// AnyOf builds a membership restriction over scalar field values.
func AnyOf(field string, vals ...Value) Restriction {
	return Restriction{Type: RestrictionAnyOf, Field: field, Values: vals}
}

// NoneOf builds an exclusion restriction over scalar field values.
func NoneOf(field string, vals ...Value) Restriction {
	return Restriction{Type: RestrictionNoneOf, Field: field, Values: vals}
}

// ContainsAll builds a superset restriction over a set field.
func ContainsAll(field string, vals ...Value) Restriction {
	return Restriction{Type: RestrictionContainsAll, Field: field, Values: vals}
}

// ContainsNone builds a disjointness restriction over a set field.
func ContainsNone(field string, vals ...Value) Restriction {
	return Restriction{Type: RestrictionContainsNone, Field: field, Values: vals}
}

// AttributeAssert builds the structural nesting slot.
func AttributeAssert(field string, inner ...Restriction) Restriction {
	return Restriction{Type: RestrictionAttributeAssert, Field: field, Inner: inner}
}

// Equal compares two restrictions including operands.
func (r Restriction) Equal(o Restriction) bool {
	if r.Type != o.Type || r.Field != o.Field || r.Threshold != o.Threshold {
		return false
	}
	if !Equal(r.Value, o.Value) {
		return false
	}
	if len(r.Values) != len(o.Values) {
		return false
	}
	for i := range r.Values {
		if !Equal(r.Values[i], o.Values[i]) {
			return false
		}
	}
	if len(r.Inner) != len(o.Inner) {
		return false
	}
	for i := range r.Inner {
		if !r.Inner[i].Equal(o.Inner[i]) {
			return false
		}
	}
	return true
}

// EncodeBuffer writes the restriction as kind tag plus payload.
func (r Restriction) EncodeBuffer(buf *bytes.Buffer) error {
	buf.WriteByte(byte(r.Type))
	writeString(buf, r.Field)
	switch {
	case r.Type == RestrictionEq || r.Type == RestrictionNeq:
		return r.Value.EncodeBuffer(buf)
	case r.Type.IsOrdered():
		writeI64(buf, r.Threshold)
	case r.Type.IsList():
		writeUvarint(buf, uint64(len(r.Values)))
		for _, v := range r.Values {
			if err := v.EncodeBuffer(buf); err != nil {
				return err
			}
		}
	case r.Type == RestrictionAttributeAssert:
		writeUvarint(buf, uint64(len(r.Inner)))
		for _, in := range r.Inner {
			if err := in.EncodeBuffer(buf); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("codec: unsupported restriction tag %d", byte(r.Type))
	}
	return nil
}

// DecodeBuffer reads a restriction in kind tag plus payload form.
func (r *Restriction) DecodeBuffer(buf *bytes.Buffer) error {
	tag, err := buf.ReadByte()
	if err != nil {
		return err
	}
	if RestrictionType(tag) > RestrictionAttributeAssert {
		return fmt.Errorf("codec: unsupported restriction tag %d", tag)
	}
	*r = Restriction{Type: RestrictionType(tag)}
	if r.Field, err = readString(buf); err != nil {
		return err
	}
	switch {
	case r.Type == RestrictionEq || r.Type == RestrictionNeq:
		return r.Value.DecodeBuffer(buf)
	case r.Type.IsOrdered():
		r.Threshold, err = readI64(buf)
		return err
	case r.Type.IsList():
		n, err := readUvarint(buf)
		if err != nil {
			return err
		}
		if n > 0 {
			r.Values = make([]Value, n)
			for i := range r.Values {
				if err := r.Values[i].DecodeBuffer(buf); err != nil {
					return err
				}
			}
		}
	case r.Type == RestrictionAttributeAssert:
		n, err := readUvarint(buf)
		if err != nil {
			return err
		}
		if n > 0 {
			r.Inner = make([]Restriction, n)
			for i := range r.Inner {
				if err := r.Inner[i].DecodeBuffer(buf); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r Restriction) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := r.EncodeBuffer(buf)
	return buf.Bytes(), err
}

func (r *Restriction) UnmarshalBinary(data []byte) error {
	return r.DecodeBuffer(bytes.NewBuffer(data))
}
