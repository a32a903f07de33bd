// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"github.com/chainsquad/bitshares-core/bitshares"
)

// Evaluate checks one restriction against a concrete operation instance.
// An unset optional field satisfies every restriction: a policy author
// cannot tell "field unset" from "field equal to the zero value" with a
// single Eq restriction.
//
// Failed predicates return ErrRestrictionFailed, type level problems
// return their own kinds (ErrTypeNotComparable,
// ErrListRestrictionOnNonList, ErrUnknownField).
func Evaluate(r Restriction, op Operation) error {
	s, err := SchemaOf(op)
	if err != nil {
		return err
	}
	return evaluate(r, s, op)
}

func evaluate(r Restriction, s *Schema, op Operation) error {
	if r.Type == RestrictionAttributeAssert {
		// inert, kept for wire compatibility
		return nil
	}
	v, present, err := s.GetField(op, r.Field)
	if err != nil {
		return err
	}
	if !present {
		return nil
	}
	switch r.Type {
	case RestrictionEq:
		if !Equal(r.Value, v) {
			return failf(r, "value %s is not equal to field %s", r.Value, v)
		}
	case RestrictionNeq:
		if Equal(r.Value, v) {
			return failf(r, "value %s is equal to field %s", r.Value, v)
		}
	case RestrictionLt, RestrictionLe, RestrictionGt, RestrictionGe:
		n, err := ToInt64(v)
		if err != nil {
			return err
		}
		var ok bool
		switch r.Type {
		case RestrictionLt:
			ok = n < r.Threshold
		case RestrictionLe:
			ok = n <= r.Threshold
		case RestrictionGt:
			ok = n > r.Threshold
		case RestrictionGe:
			ok = n >= r.Threshold
		}
		if !ok {
			return failf(r, "field projects to %d, threshold %d", n, r.Threshold)
		}
	case RestrictionAnyOf:
		for _, w := range r.Values {
			if Equal(w, v) {
				return nil
			}
		}
		return failf(r, "field %s not present in value list", v)
	case RestrictionNoneOf:
		for _, w := range r.Values {
			if Equal(w, v) {
				return failf(r, "field %s present in value list", v)
			}
		}
	case RestrictionContainsAll:
		for _, w := range r.Values {
			ok, err := v.Contains(w)
			if err != nil {
				return err
			}
			if !ok {
				return failf(r, "set field does not contain %s", w)
			}
		}
	case RestrictionContainsNone:
		for _, w := range r.Values {
			ok, err := v.Contains(w)
			if err != nil {
				return err
			}
			if ok {
				return failf(r, "set field contains %s", w)
			}
		}
	}
	return nil
}

// EvaluateAll checks a restriction list conjunctively, stopping at the
// first failure. The returned error carries the failing index.
func EvaluateAll(rs []Restriction, op Operation) error {
	s, err := SchemaOf(op)
	if err != nil {
		return err
	}
	for i, r := range rs {
		if err := evaluate(r, s, op); err != nil {
			if e, ok := err.(*bitshares.Error); ok {
				e.WithIndex(i)
			}
			return err
		}
	}
	return nil
}

func failf(r Restriction, format string, args ...any) *bitshares.Error {
	return bitshares.Errorf(bitshares.ErrRestrictionFailed, format, args...).
		WithField(r.Field).
		WithIndex(-1)
}
