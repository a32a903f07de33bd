// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsquad/bitshares-core/bitshares"
	"github.com/chainsquad/bitshares-core/codec"
)

func createOp(account bitshares.AccountID) *codec.CustomAuthorityCreate {
	return &codec.CustomAuthorityCreate{
		Account:       account,
		Enabled:       true,
		ValidFrom:     1,
		ValidTo:       2,
		OperationType: codec.OpTypeTransfer,
		Restrictions: []codec.Restriction{
			codec.Eq("amount", codec.NewAsset(bitshares.NewAsset(100))),
		},
		Auth: bitshares.Authority{
			WeightThreshold: 1,
			AccountAuths:    map[bitshares.AccountID]uint16{101: 1},
		},
	}
}

func newTestEvaluator() (*Store, *Evaluator) {
	s := NewStore()
	return s, NewEvaluator(s, bitshares.TestParams)
}

func TestEvaluatorCreate(t *testing.T) {
	s, e := newTestEvaluator()
	dan := bitshares.AccountID(100)

	op := createOp(dan)
	id, err := e.ApplyCreate(op, 10)
	require.NoError(t, err)

	// querying by account returns exactly one record matching the inputs
	recs := s.ByAccount(dan)
	require.Len(t, recs, 1)
	rec := recs[0]
	require.Equal(t, id, rec.Id)
	require.Equal(t, dan, rec.Account)
	require.True(t, rec.Enabled)
	require.Equal(t, bitshares.TimePointSec(1), rec.ValidFrom)
	require.Equal(t, bitshares.TimePointSec(2), rec.ValidTo)
	require.Equal(t, codec.OpTypeTransfer, rec.OperationType)
	require.Len(t, rec.Restrictions, 1)
	require.True(t, rec.Restrictions[0].Equal(op.Restrictions[0]))
}

func TestEvaluatorCreateReservedAccount(t *testing.T) {
	_, e := newTestEvaluator()
	_, err := e.ApplyCreate(createOp(bitshares.CommitteeAccount), 10)
	require.Error(t, err)
	require.Equal(t, bitshares.ErrReservedAccount, bitshares.Kind(err))
}

func TestEvaluatorHardforkGate(t *testing.T) {
	s := NewStore()
	params := bitshares.NewParams().WithNetwork("test").WithHardforkCore1285(1000)
	e := NewEvaluator(s, params)

	// at and before the activation instant all lifecycle ops reject
	for _, head := range []bitshares.TimePointSec{0, 999, 1000} {
		_, err := e.ApplyCreate(createOp(100), head)
		require.Equal(t, bitshares.ErrHardforkNotYetActive, bitshares.Kind(err), head.String())

		err = e.ApplyUpdate(&codec.CustomAuthorityUpdate{}, head)
		require.Equal(t, bitshares.ErrHardforkNotYetActive, bitshares.Kind(err), head.String())

		err = e.ApplyDelete(&codec.CustomAuthorityDelete{}, head)
		require.Equal(t, bitshares.ErrHardforkNotYetActive, bitshares.Kind(err), head.String())
	}

	// past the instant the gate opens
	_, err := e.ApplyCreate(createOp(100), 1001)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
}

func TestEvaluatorCreateThenDeleteIsNoop(t *testing.T) {
	s, e := newTestEvaluator()

	id, err := e.ApplyCreate(createOp(100), 10)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	err = e.ApplyDelete(&codec.CustomAuthorityDelete{
		Account:           100,
		CustomAuthorityId: id,
	}, 10)
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())
	require.Empty(t, s.ByAccount(100))
	require.Nil(t, s.Get(id))
}

func TestEvaluatorUpdateReplacesAllFields(t *testing.T) {
	s, e := newTestEvaluator()

	id, err := e.ApplyCreate(createOp(100), 10)
	require.NoError(t, err)

	err = e.ApplyUpdate(&codec.CustomAuthorityUpdate{
		Account:           100,
		CustomAuthorityId: id,
		Enabled:           false,
		ValidFrom:         5,
		ValidTo:           50,
		OperationType:     codec.OpTypeAssert,
		Restrictions: []codec.Restriction{
			codec.ContainsAll("required_auths", codec.NewAccountId(1)),
		},
	}, 10)
	require.NoError(t, err)

	rec := s.Get(id)
	require.NotNil(t, rec)
	require.False(t, rec.Enabled)
	require.Equal(t, bitshares.TimePointSec(5), rec.ValidFrom)
	require.Equal(t, bitshares.TimePointSec(50), rec.ValidTo)
	require.Equal(t, codec.OpTypeAssert, rec.OperationType)
	require.Len(t, rec.Restrictions, 1)
}

func TestEvaluatorUpdateValidatesBeforeMutating(t *testing.T) {
	s, e := newTestEvaluator()
	id, err := e.ApplyCreate(createOp(100), 10)
	require.NoError(t, err)
	before := s.Get(id).Clone()

	// invalid restriction list rejects the update atomically
	err = e.ApplyUpdate(&codec.CustomAuthorityUpdate{
		Account:           100,
		CustomAuthorityId: id,
		ValidFrom:         1,
		ValidTo:           2,
		OperationType:     codec.OpTypeTransfer,
		Restrictions: []codec.Restriction{
			codec.ContainsAll("amount", codec.NewAccountId(1)),
		},
	}, 10)
	require.Error(t, err)
	require.True(t, before.Equal(s.Get(id)))

	// unknown target id
	err = e.ApplyUpdate(&codec.CustomAuthorityUpdate{
		Account:           100,
		CustomAuthorityId: 999,
		ValidFrom:         1,
		ValidTo:           2,
		OperationType:     codec.OpTypeTransfer,
	}, 10)
	require.Error(t, err)
}

func TestEvaluatorDeleteUnknown(t *testing.T) {
	_, e := newTestEvaluator()
	err := e.ApplyDelete(&codec.CustomAuthorityDelete{CustomAuthorityId: 7}, 10)
	require.Error(t, err)
}
