// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsquad/bitshares-core/bitshares"
)

func TestRestrictionTags(t *testing.T) {
	// kind tags are consensus visible and must stay stable
	for kind, tag := range map[RestrictionType]byte{
		RestrictionEq:              0,
		RestrictionNeq:             1,
		RestrictionLt:              2,
		RestrictionLe:              3,
		RestrictionGt:              4,
		RestrictionGe:              5,
		RestrictionAnyOf:           6,
		RestrictionNoneOf:          7,
		RestrictionContainsAll:     8,
		RestrictionContainsNone:    9,
		RestrictionAttributeAssert: 10,
	} {
		require.Equal(t, tag, byte(kind), kind.String())
	}
}

func TestValueTags(t *testing.T) {
	// spot check variant tag stability at the category boundaries
	require.EqualValues(t, 0, ValueTypeU8)
	require.EqualValues(t, 4, ValueTypeAssetId)
	require.EqualValues(t, 14, ValueTypePublicKey)
	require.EqualValues(t, 17, ValueTypeBytes)
	require.EqualValues(t, 19, ValueTypeAsset)
	require.EqualValues(t, 29, ValueTypeAccountIdSet)
	require.EqualValues(t, 30, ValueTypePublicKeySet)
}

func TestRestrictionTypeNames(t *testing.T) {
	for kind := RestrictionEq; kind <= RestrictionAttributeAssert; kind++ {
		parsed, err := ParseRestrictionType(kind.String())
		require.NoError(t, err)
		require.Equal(t, kind, parsed)
	}
	_, err := ParseRestrictionType("between")
	require.Error(t, err)
}

func TestRestrictionWireRoundTrip(t *testing.T) {
	rs := []Restriction{
		Eq("amount", NewAsset(bitshares.NewAsset(100))),
		Neq("to", NewAccountId(3)),
		Lt("referrer_percent", 60),
		Ge("fee", -10),
		AnyOf("to", NewAccountId(1), NewAccountId(2)),
		NoneOf("symbol", NewText("SCAM")),
		ContainsAll("required_auths", NewAccountId(1), NewAccountId(2)),
		ContainsNone("required_auths", NewAccountId(9)),
		AttributeAssert("owner",
			Eq("weight_threshold", NewU32(1)),
			AttributeAssert("nested"),
		),
	}
	for _, r := range rs {
		buf := bytes.NewBuffer(nil)
		require.NoError(t, r.EncodeBuffer(buf))
		var got Restriction
		require.NoError(t, got.DecodeBuffer(buf))
		require.Equal(t, 0, buf.Len(), r.String())
		require.True(t, r.Equal(got), r.String())
	}
}

func TestRestrictionDecodeRejectsBadTag(t *testing.T) {
	var r Restriction
	require.Error(t, r.UnmarshalBinary([]byte{0x20, 0x00}))
}

func TestRestrictionUnits(t *testing.T) {
	cases := map[string]struct {
		rest Restriction
		want uint64
	}{
		"scalar eq":       {Eq("amount", NewAsset(bitshares.NewAsset(1))), 1},
		"key eq":          {Eq("memo_key", NewPublicKey(bitshares.PublicKey{})), 4},
		"bytes eq":        {Eq("memo", NewBytes([]byte{1, 2, 3})), 4},
		"short text":      {Eq("name", NewText("hi")), 1},
		"longer text":     {Eq("name", NewText("twelve chars")), 2},
		"ordered":         {Lt("amount", 100), 1},
		"list of scalars": {AnyOf("to", NewAccountId(1), NewAccountId(2), NewAccountId(3)), 3},
		"list of keys":    {ContainsAll("keys", NewPublicKey(bitshares.PublicKey{}), NewPublicKey(bitshares.PublicKey{})), 8},
		"set operand": {
			Eq("required_auths", NewAccountIdSet([]bitshares.AccountID{1, 2, 3})), 3,
		},
		"attribute assert sums inner": {
			AttributeAssert("owner",
				Eq("a", NewAsset(bitshares.NewAsset(1))),
				Eq("k", NewPublicKey(bitshares.PublicKey{})),
			), 5,
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, c.want, RestrictionUnits(c.rest))
		})
	}
}
