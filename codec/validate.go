// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"github.com/chainsquad/bitshares-core/bitshares"
)

// ValidateAgainstSchema statically checks that a restriction makes sense
// for the declared field layout of one operation type. It never sees a
// concrete operation instance: operand values of Eq/Neq are not required
// to match the field type here, a mismatched operand never equals the
// field value at evaluation time, so Eq fails and Neq holds.
func ValidateAgainstSchema(r Restriction, s *Schema) error {
	fd, ok := s.Field(r.Field)
	if !ok {
		return bitshares.Errorf(bitshares.ErrUnknownField,
			"operation %s has no field %q", s.Name, r.Field).
			WithField(r.Field).WithOpType(uint32(s.OpType))
	}
	switch {
	case r.Type == RestrictionEq || r.Type == RestrictionNeq:
		if !fd.Type.IsRestrictable() {
			return bitshares.Errorf(bitshares.ErrUnsupportedType,
				"field %q of type %s does not support %s restrictions",
				r.Field, fd.Type, r.Type).WithField(r.Field)
		}
	case r.Type.IsOrdered():
		// any field is legal, incompatible types fail the integer
		// projection at evaluation time
	case r.Type == RestrictionAnyOf || r.Type == RestrictionNoneOf:
		if !fd.Type.IsRestrictable() {
			return bitshares.Errorf(bitshares.ErrUnsupportedType,
				"field %q of type %s does not support %s restrictions",
				r.Field, fd.Type, r.Type).WithField(r.Field)
		}
	case r.Type == RestrictionContainsAll || r.Type == RestrictionContainsNone:
		if !fd.Type.IsSet() {
			return bitshares.Errorf(bitshares.ErrListRestrictionOnNonList,
				"%s restriction requires a set field, %q is %s",
				r.Type, r.Field, fd.Type).WithField(r.Field)
		}
		if !fd.Type.ElemType().IsRestrictable() {
			return bitshares.Errorf(bitshares.ErrUnsupportedType,
				"set field %q has unsupported element type %s",
				r.Field, fd.Type.ElemType()).WithField(r.Field)
		}
	case r.Type == RestrictionAttributeAssert:
		// structurally accepted, carried for wire compatibility only
	}
	return nil
}

// ValidateRestrictions statically checks a whole restriction list
// against the schema registered for an operation type id.
func ValidateRestrictions(rs []Restriction, opType OpType) error {
	s, err := SchemaByType(opType)
	if err != nil {
		return err
	}
	for i, r := range rs {
		if err := ValidateAgainstSchema(r, s); err != nil {
			if e, ok := err.(*bitshares.Error); ok {
				e.WithIndex(i)
			}
			return err
		}
	}
	return nil
}
