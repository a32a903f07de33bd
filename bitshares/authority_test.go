// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package bitshares

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthorityNumAuths(t *testing.T) {
	var a Authority
	require.Equal(t, 0, a.NumAuths())

	a.AccountAuths = map[AccountID]uint16{1: 1, 2: 1}
	a.KeyAuths = map[PublicKey]uint16{{0x02}: 1}
	require.Equal(t, 3, a.NumAuths())
}

func TestAuthorityEqual(t *testing.T) {
	a := Authority{
		WeightThreshold: 2,
		AccountAuths:    map[AccountID]uint16{1: 1, 2: 1},
	}
	b := Authority{
		WeightThreshold: 2,
		AccountAuths:    map[AccountID]uint16{2: 1, 1: 1},
	}
	require.True(t, a.Equal(b))

	b.AccountAuths[2] = 5
	require.False(t, a.Equal(b))

	c := a
	c.WeightThreshold = 3
	require.False(t, a.Equal(c))
}

func TestAuthoritySortedAuths(t *testing.T) {
	a := Authority{
		AccountAuths: map[AccountID]uint16{5: 1, 1: 1, 3: 1},
	}
	require.Equal(t, []AccountID{1, 3, 5}, a.SortedAccountAuths())
}

func TestExtensionsEqual(t *testing.T) {
	a := Extensions{{Tag: 1, Data: []byte{1}}}
	require.True(t, a.Equal(Extensions{{Tag: 1, Data: []byte{1}}}))
	require.False(t, a.Equal(Extensions{{Tag: 2, Data: []byte{1}}}))
	require.False(t, a.Equal(nil))
}

func TestPredicateListEqual(t *testing.T) {
	a := PredicateList{{Kind: PredicateAccountNameEq, Id: 1, Literal: "dan"}}
	require.True(t, a.Equal(PredicateList{{Kind: PredicateAccountNameEq, Id: 1, Literal: "dan"}}))
	require.False(t, a.Equal(PredicateList{{Kind: PredicateAccountNameEq, Id: 2, Literal: "dan"}}))
}
