// Copyright (c) 2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc, abdul@blockwatch.cc

package authspec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsquad/bitshares-core/bitshares"
	"github.com/chainsquad/bitshares-core/codec"
)

const specYaml = `
authorities:
  - account: 1.2.100
    valid_from: 1970-01-01T00:00:01Z
    valid_to: "2000"
    operation: transfer
    restrictions:
      - type: eq
        field: amount
        value: { type: asset, value: "100" }
      - type: lt
        field: fee
        threshold: 50
  - account: "101"
    enabled: false
    valid_from: "0"
    valid_to: "10"
    operation: assert
    restrictions:
      - type: contains_all
        field: required_auths
        values:
          - { type: account_id, value: 1.2.1 }
          - { type: account_id, value: 1.2.2 }
`

func TestParseSpec(t *testing.T) {
	recs, err := Parse([]byte(specYaml))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	first := recs[0]
	require.Equal(t, bitshares.AccountID(100), first.Account)
	require.True(t, first.Enabled)
	require.Equal(t, bitshares.TimePointSec(1), first.ValidFrom)
	require.Equal(t, bitshares.TimePointSec(2000), first.ValidTo)
	require.Equal(t, codec.OpTypeTransfer, first.OperationType)
	require.Len(t, first.Restrictions, 2)
	require.Equal(t, codec.RestrictionEq, first.Restrictions[0].Type)
	require.Equal(t, codec.RestrictionLt, first.Restrictions[1].Type)
	require.EqualValues(t, 50, first.Restrictions[1].Threshold)

	second := recs[1]
	require.False(t, second.Enabled)
	require.Equal(t, codec.OpTypeAssert, second.OperationType)
	require.Len(t, second.Restrictions, 1)
	require.Len(t, second.Restrictions[0].Values, 2)
}

func TestParseSpecRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown operation": `
authorities:
  - account: "100"
    valid_from: "0"
    valid_to: "10"
    operation: teleport
`,
		"unknown field": `
authorities:
  - account: "100"
    valid_from: "0"
    valid_to: "10"
    operation: transfer
    restrictions:
      - type: eq
        field: bogus
        value: { type: bool, value: "true" }
`,
		"list restriction on scalar": `
authorities:
  - account: "100"
    valid_from: "0"
    valid_to: "10"
    operation: transfer
    restrictions:
      - type: contains_all
        field: amount
        values: [{ type: account_id, value: "1" }]
`,
		"missing value": `
authorities:
  - account: "100"
    valid_from: "0"
    valid_to: "10"
    operation: transfer
    restrictions:
      - type: eq
        field: amount
`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			require.Error(t, err)
		})
	}
}

func TestParseValueKinds(t *testing.T) {
	cases := map[string]struct {
		spec ValueSpec
		want codec.Value
	}{
		"u8":      {ValueSpec{Type: "u8", Value: "7"}, codec.NewU8(7)},
		"u32":     {ValueSpec{Type: "u32", Value: "70000"}, codec.NewU32(70000)},
		"bool":    {ValueSpec{Type: "bool", Value: "true"}, codec.NewBool(true)},
		"text":    {ValueSpec{Type: "text", Value: "dan"}, codec.NewText("dan")},
		"bytes":   {ValueSpec{Type: "bytes", Value: "deadbeef"}, codec.NewBytes([]byte{0xde, 0xad, 0xbe, 0xef})},
		"account": {ValueSpec{Type: "account_id", Value: "1.2.9"}, codec.NewAccountId(9)},
		"asset":   {ValueSpec{Type: "asset", Value: "100 1.3.1"}, codec.NewAsset(bitshares.Asset{Amount: 100, AssetID: 1})},
		"time":    {ValueSpec{Type: "time_point_sec", Value: "42"}, codec.NewTimePointSec(42)},
		"set": {
			ValueSpec{Type: "account_id_set", Values: []string{"2", "1"}},
			codec.NewAccountIdSet([]bitshares.AccountID{1, 2}),
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := ParseValue(c.spec)
			require.NoError(t, err)
			require.True(t, codec.Equal(c.want, v))
		})
	}

	_, err := ParseValue(ValueSpec{Type: "price_feed", Value: "x"})
	require.Error(t, err)

	_, err = ParseValue(ValueSpec{Type: "warp_core", Value: "x"})
	require.Error(t, err)
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation([]byte(`{
		"kind": "transfer",
		"from": 100, "to": 101,
		"amount": {"amount": 5, "asset_id": 0}
	}`))
	require.NoError(t, err)
	require.Equal(t, codec.OpTypeTransfer, op.Kind())
	tx := op.(*codec.Transfer)
	require.Equal(t, bitshares.AccountID(100), tx.From)
	require.Equal(t, bitshares.AccountID(101), tx.To)
	require.Equal(t, bitshares.ShareType(5), tx.Amount.Amount)

	_, err = ParseOperation([]byte(`{"from": 1}`))
	require.Error(t, err)

	_, err = ParseOperation([]byte(`{"kind": "teleport"}`))
	require.Error(t, err)

	_, err = ParseOperation([]byte(`not json`))
	require.Error(t, err)
}
