// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsquad/bitshares-core/bitshares"
)

func validCreate() CustomAuthorityCreate {
	return CustomAuthorityCreate{
		Account:       bitshares.AccountID(100),
		Enabled:       true,
		ValidFrom:     1,
		ValidTo:       2,
		OperationType: OpTypeTransfer,
		Restrictions: []Restriction{
			Eq("amount", NewAsset(bitshares.NewAsset(100))),
		},
		Auth: bitshares.Authority{
			WeightThreshold: 1,
			AccountAuths:    map[bitshares.AccountID]uint16{101: 1},
		},
	}
}

func TestCustomAuthorityCreateValidate(t *testing.T) {
	p := bitshares.DefaultParams

	require.NoError(t, validCreate().Validate(p))

	t.Run("negative fee", func(t *testing.T) {
		op := validCreate()
		op.FeeAsset.Amount = -1
		require.Error(t, op.Validate(p))
	})

	t.Run("reserved accounts", func(t *testing.T) {
		for _, acc := range []bitshares.AccountID{
			bitshares.TempAccount,
			bitshares.CommitteeAccount,
			bitshares.WitnessAccount,
			bitshares.RelaxedCommitteeAccount,
		} {
			op := validCreate()
			op.Account = acc
			err := op.Validate(p)
			require.Error(t, err, acc.String())
			require.Equal(t, bitshares.ErrReservedAccount, bitshares.Kind(err))
		}
		// the null account is protocol owned but not reserved here
		op := validCreate()
		op.Account = bitshares.NullAccount
		require.NoError(t, op.Validate(p))
	})

	t.Run("window", func(t *testing.T) {
		op := validCreate()
		op.ValidFrom, op.ValidTo = 2, 2
		err := op.Validate(p)
		require.Error(t, err)
		require.Equal(t, bitshares.ErrInvalidWindow, bitshares.Kind(err))

		op.ValidFrom, op.ValidTo = 3, 2
		err = op.Validate(p)
		require.Error(t, err)
		require.Equal(t, bitshares.ErrInvalidWindow, bitshares.Kind(err))
	})

	t.Run("address auths unsupported", func(t *testing.T) {
		op := validCreate()
		op.Auth.AddressAuths = map[string]uint16{"addr": 1}
		require.Error(t, op.Validate(p))
	})

	t.Run("restrictions statically validated", func(t *testing.T) {
		op := validCreate()
		op.Restrictions = []Restriction{ContainsAll("amount", NewAccountId(1))}
		err := op.Validate(p)
		require.Error(t, err)
		require.Equal(t, bitshares.ErrListRestrictionOnNonList, bitshares.Kind(err))
	})

	t.Run("unknown operation type", func(t *testing.T) {
		op := validCreate()
		op.OperationType = OpType(999)
		err := op.Validate(p)
		require.Error(t, err)
		require.Equal(t, bitshares.ErrUnknownOperation, bitshares.Kind(err))
	})
}

func TestCustomAuthorityUpdateValidate(t *testing.T) {
	p := bitshares.DefaultParams
	op := CustomAuthorityUpdate{
		Account:           200,
		CustomAuthorityId: 1,
		ValidFrom:         1,
		ValidTo:           10,
		OperationType:     OpTypeTransfer,
		Restrictions:      []Restriction{Neq("to", NewAccountId(3))},
	}
	require.NoError(t, op.Validate(p))

	op.Account = bitshares.CommitteeAccount
	require.Equal(t, bitshares.ErrReservedAccount, bitshares.Kind(op.Validate(p)))

	op.Account = 200
	op.ValidTo = 1
	require.Equal(t, bitshares.ErrInvalidWindow, bitshares.Kind(op.Validate(p)))
}

func TestCustomAuthorityFees(t *testing.T) {
	k := CustomAuthorityFeeParams{BasicFee: 500, PricePerKUnit: 10}

	op := validCreate()
	op.ValidFrom, op.ValidTo = 0, 10000
	// window 10000s x 1 auth x 1 unit x 10 / 1000 = 100
	require.Equal(t, bitshares.ShareType(600), op.CalculateFee(k))

	// disabled authorities pay the basic fee only
	op.Enabled = false
	require.Equal(t, bitshares.ShareType(500), op.CalculateFee(k))

	// more units scale linearly
	op.Enabled = true
	op.Restrictions = append(op.Restrictions, Eq("memo", NewBytes([]byte{1}))) // 4 units
	require.Equal(t, bitshares.ShareType(500+5*100), op.CalculateFee(k))

	up := CustomAuthorityUpdate{DeltaUnits: 2500}
	require.Equal(t, bitshares.ShareType(500+25), up.CalculateFee(k))

	del := CustomAuthorityDelete{}
	require.Equal(t, bitshares.ShareType(500), del.CalculateFee(k))
}

func TestCustomAuthorityOpsWireRoundTrip(t *testing.T) {
	create := validCreate()
	buf, err := create.MarshalBinary()
	require.NoError(t, err)
	var gotCreate CustomAuthorityCreate
	require.NoError(t, gotCreate.UnmarshalBinary(buf))
	require.Equal(t, create, gotCreate)

	update := CustomAuthorityUpdate{
		Account:           7,
		CustomAuthorityId: 3,
		Enabled:           true,
		ValidFrom:         5,
		ValidTo:           6,
		OperationType:     OpTypeAssert,
		Restrictions: []Restriction{
			ContainsAll("required_auths", NewAccountId(1)),
		},
		DeltaUnits: -4,
	}
	buf, err = update.MarshalBinary()
	require.NoError(t, err)
	var gotUpdate CustomAuthorityUpdate
	require.NoError(t, gotUpdate.UnmarshalBinary(buf))
	require.Equal(t, update, gotUpdate)

	del := CustomAuthorityDelete{Account: 7, CustomAuthorityId: 3}
	buf, err = del.MarshalBinary()
	require.NoError(t, err)
	var gotDel CustomAuthorityDelete
	require.NoError(t, gotDel.UnmarshalBinary(buf))
	require.Equal(t, del, gotDel)
}
