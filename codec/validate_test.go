// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsquad/bitshares-core/bitshares"
)

func TestValidateAgainstSchema(t *testing.T) {
	transfer, err := SchemaByType(OpTypeTransfer)
	require.NoError(t, err)
	assert, err := SchemaByType(OpTypeAssert)
	require.NoError(t, err)

	cases := map[string]struct {
		rest   Restriction
		schema *Schema
		kind   bitshares.ErrorKind
	}{
		"eq on asset field": {
			Eq("amount", NewAsset(bitshares.NewAsset(5))), transfer, bitshares.ErrNone,
		},
		"eq operand type not checked statically": {
			Eq("amount", NewAccountId(1)), transfer, bitshares.ErrNone,
		},
		"eq on extensions": {
			Eq("extensions", NewBool(true)), assert, bitshares.ErrUnsupportedType,
		},
		"eq on predicate list": {
			Eq("predicates", NewBool(true)), assert, bitshares.ErrUnsupportedType,
		},
		"eq on unknown field": {
			Eq("bogus", NewBool(true)), transfer, bitshares.ErrUnknownField,
		},
		"ordered passes on any field": {
			Lt("extensions", 3), assert, bitshares.ErrNone,
		},
		"ordered passes on asset field": {
			Ge("fee", 0), transfer, bitshares.ErrNone,
		},
		"any_of on account field": {
			AnyOf("to", NewAccountId(1)), transfer, bitshares.ErrNone,
		},
		"none_of on extensions": {
			NoneOf("extensions", NewBool(true)), assert, bitshares.ErrUnsupportedType,
		},
		"contains_all on set field": {
			ContainsAll("required_auths", NewAccountId(1)), assert, bitshares.ErrNone,
		},
		"contains_all on scalar field": {
			ContainsAll("amount", NewAccountId(1)), transfer, bitshares.ErrListRestrictionOnNonList,
		},
		"contains_none on scalar field": {
			ContainsNone("fee", NewAccountId(1)), transfer, bitshares.ErrListRestrictionOnNonList,
		},
		"attribute_assert accepted": {
			AttributeAssert("amount", Eq("amount", NewBool(true))), transfer, bitshares.ErrNone,
		},
		"attribute_assert unknown field": {
			AttributeAssert("bogus"), transfer, bitshares.ErrUnknownField,
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateAgainstSchema(c.rest, c.schema)
			if c.kind == bitshares.ErrNone {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Equal(t, c.kind, bitshares.Kind(err))
			}
		})
	}
}

func TestValidateRestrictionsIndex(t *testing.T) {
	rs := []Restriction{
		Eq("amount", NewAsset(bitshares.NewAsset(1))),
		ContainsAll("amount", NewAccountId(1)),
	}
	err := ValidateRestrictions(rs, OpTypeTransfer)
	require.Error(t, err)
	var e *bitshares.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, 1, e.Index)
	require.Equal(t, bitshares.ErrListRestrictionOnNonList, e.Kind)
}

func TestValidateRestrictionsUnknownOp(t *testing.T) {
	err := ValidateRestrictions(nil, OpType(999))
	require.Error(t, err)
	require.Equal(t, bitshares.ErrUnknownOperation, bitshares.Kind(err))
}

// every restriction that passes static validation references a declared
// field
func TestValidatedRestrictionsNameRealFields(t *testing.T) {
	s, err := SchemaByType(OpTypeTransfer)
	require.NoError(t, err)
	for _, field := range []string{"fee", "from", "to", "amount", "memo", "extensions", "bogus"} {
		rest := Ge(field, 0)
		if err := ValidateAgainstSchema(rest, s); err == nil {
			require.True(t, s.HasField(field))
		} else {
			require.False(t, s.HasField(field))
		}
	}
}
