// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsquad/bitshares-core/bitshares"
	"github.com/chainsquad/bitshares-core/codec"
)

func transferAuthority(rs ...codec.Restriction) *CustomAuthority {
	return &CustomAuthority{
		Account:       10,
		Enabled:       true,
		ValidFrom:     3,
		ValidTo:       5,
		OperationType: codec.OpTypeTransfer,
		Restrictions:  rs,
	}
}

func transfer(amount int64) *codec.Transfer {
	return &codec.Transfer{
		From:   10,
		To:     11,
		Amount: bitshares.NewAsset(amount),
	}
}

func TestAuthorityValidateWindow(t *testing.T) {
	auth := transferAuthority()

	// before and after the window fail
	err := auth.Validate(transfer(1), 1)
	require.Error(t, err)
	require.Equal(t, bitshares.ErrOutOfWindow, bitshares.Kind(err))

	err = auth.Validate(transfer(1), 6)
	require.Error(t, err)
	require.Equal(t, bitshares.ErrOutOfWindow, bitshares.Kind(err))

	// the window is closed on both ends
	require.NoError(t, auth.Validate(transfer(1), 3))
	require.NoError(t, auth.Validate(transfer(1), 4))
	require.NoError(t, auth.Validate(transfer(1), 5))
}

func TestAuthorityValidateOperationType(t *testing.T) {
	auth := transferAuthority()
	err := auth.Validate(&codec.Assert{FeePayingAccount: 10}, 4)
	require.Error(t, err)
	require.Equal(t, bitshares.ErrOperationTypeMismatch, bitshares.Kind(err))
}

func TestAuthorityValidateRestrictions(t *testing.T) {
	eq5 := codec.Eq("amount", codec.NewAsset(bitshares.NewAsset(5)))
	neq6 := codec.Neq("amount", codec.NewAsset(bitshares.NewAsset(6)))
	eq6 := codec.Eq("amount", codec.NewAsset(bitshares.NewAsset(6)))

	// no restrictions
	require.NoError(t, transferAuthority().Validate(transfer(5), 4))

	// one passing restriction
	require.NoError(t, transferAuthority(eq5).Validate(transfer(5), 4))

	// several passing restrictions
	require.NoError(t, transferAuthority(eq5, neq6).Validate(transfer(5), 4))

	// one failing restriction spoils the set, its index is reported
	err := transferAuthority(eq5, eq6).Validate(transfer(5), 4)
	require.Error(t, err)
	var e *bitshares.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, bitshares.ErrRestrictionFailed, e.Kind)
	require.Equal(t, 1, e.Index)
}

func TestAuthorityValidateIgnoresEnabled(t *testing.T) {
	// the enabled flag is a pipeline concern, Validate does not read it
	auth := transferAuthority()
	auth.Enabled = false
	require.NoError(t, auth.Validate(transfer(1), 4))
}

func TestAuthorityWireRoundTrip(t *testing.T) {
	auth := transferAuthority(
		codec.Eq("amount", codec.NewAsset(bitshares.NewAsset(100))),
		codec.ContainsNone("to", codec.NewAccountId(666)),
		codec.AttributeAssert("owner", codec.Lt("weight_threshold", 2)),
	)
	auth.Id = 42
	auth.Enabled = false

	buf, err := auth.MarshalBinary()
	require.NoError(t, err)

	var got CustomAuthority
	require.NoError(t, got.UnmarshalBinary(buf))
	require.True(t, auth.Equal(&got))
	require.Equal(t, auth, &got)
}

func TestAuthorityWireLayout(t *testing.T) {
	// field order id, account, enabled, valid_from, valid_to,
	// operation_type, restrictions is consensus visible
	auth := &CustomAuthority{
		Id:            1,
		Account:       2,
		Enabled:       true,
		ValidFrom:     3,
		ValidTo:       4,
		OperationType: codec.OpTypeTransfer,
	}
	buf, err := auth.MarshalBinary()
	require.NoError(t, err)
	want := []byte{
		0, 0, 0, 0, 0, 0, 0, 1, // id
		0, 0, 0, 0, 0, 0, 0, 2, // account
		1,          // enabled
		0, 0, 0, 3, // valid_from
		0, 0, 0, 4, // valid_to
		0, 0, 0, 0, // operation_type
		0, // restriction count
	}
	require.Equal(t, want, buf)
}
