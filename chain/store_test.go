// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsquad/bitshares-core/bitshares"
	"github.com/chainsquad/bitshares-core/codec"
)

func TestStoreInsertAndIndex(t *testing.T) {
	s := NewStore()
	dan := bitshares.AccountID(100)

	id := s.Insert(transferAuthority())
	require.Equal(t, 1, s.Len())
	require.NotNil(t, s.Get(id))

	other := transferAuthority()
	other.Account = dan
	otherId := s.Insert(other)
	require.NotEqual(t, id, otherId)

	recs := s.ByAccount(dan)
	require.Len(t, recs, 1)
	require.Equal(t, otherId, recs[0].Id)
	require.Empty(t, s.ByAccount(999))
}

func TestStoreReplaceMovesIndex(t *testing.T) {
	s := NewStore()
	id := s.Insert(transferAuthority()) // account 10

	moved := transferAuthority()
	moved.Account = 20
	require.True(t, s.Replace(id, moved))

	require.Empty(t, s.ByAccount(10))
	require.Len(t, s.ByAccount(20), 1)
	require.False(t, s.Replace(999, moved))
}

func TestStoreInsertIsolation(t *testing.T) {
	// the store keeps its own copy, callers cannot mutate records from
	// the outside
	s := NewStore()
	a := transferAuthority(codec.Eq("amount", codec.NewAsset(bitshares.NewAsset(1))))
	id := s.Insert(a)
	a.Enabled = false
	a.Restrictions[0] = codec.Eq("amount", codec.NewAsset(bitshares.NewAsset(2)))
	require.True(t, s.Get(id).Enabled)
	require.True(t, s.Get(id).Restrictions[0].Equal(
		codec.Eq("amount", codec.NewAsset(bitshares.NewAsset(1)))))
}

func TestStoreFindAuthorizing(t *testing.T) {
	s := NewStore()

	disabled := transferAuthority()
	disabled.Enabled = false
	s.Insert(disabled)

	wrongWindow := transferAuthority()
	wrongWindow.ValidFrom, wrongWindow.ValidTo = 100, 200
	s.Insert(wrongWindow)

	strict := transferAuthority(codec.Eq("amount", codec.NewAsset(bitshares.NewAsset(5))))
	strictId := s.Insert(strict)

	// amount 5 matches the strict authority
	auth, err := s.FindAuthorizing(10, transfer(5), 4)
	require.NoError(t, err)
	require.NotNil(t, auth)
	require.Equal(t, strictId, auth.Id)

	// amount 6 fails every candidate, the last failure is reported
	auth, err = s.FindAuthorizing(10, transfer(6), 4)
	require.Nil(t, auth)
	require.Error(t, err)
	require.Equal(t, bitshares.ErrRestrictionFailed, bitshares.Kind(err))

	// unknown account has no candidates at all
	auth, err = s.FindAuthorizing(999, transfer(5), 4)
	require.Nil(t, auth)
	require.NoError(t, err)
}

func TestStoreDisableAccountAuthorities(t *testing.T) {
	s := NewStore()
	s.Insert(transferAuthority())
	s.Insert(transferAuthority())
	require.Equal(t, 2, s.DisableAccountAuthorities(10))
	require.Equal(t, 0, s.DisableAccountAuthorities(10))
	for _, rec := range s.ByAccount(10) {
		require.False(t, rec.Enabled)
	}
}
