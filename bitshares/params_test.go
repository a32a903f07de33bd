// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package bitshares

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	for n, p := range map[string]*Params{
		"main": DefaultParams,
		"test": TestParams,
	} {
		if p.Network == "" {
			t.Errorf("%s params: empty network name", n)
		}
		if len(p.ReservedAccounts) != 4 {
			t.Errorf("%s params: want 4 reserved accounts, have %d", n, len(p.ReservedAccounts))
		}
		if p.MaximumAuthorityDepth == 0 {
			t.Errorf("%s params: zero MaximumAuthorityDepth", n)
		}
	}
	if DefaultParams.HardforkCore1285Time == 0 {
		t.Error("main params: zero custom authority activation")
	}
}

func TestReservedAccounts(t *testing.T) {
	p := DefaultParams
	for _, acc := range []AccountID{TempAccount, CommitteeAccount, WitnessAccount, RelaxedCommitteeAccount} {
		require.True(t, p.IsReservedAccount(acc), acc.String())
	}
	require.False(t, p.IsReservedAccount(NullAccount))
	require.False(t, p.IsReservedAccount(AccountID(100)))
}

func TestObjectIdStrings(t *testing.T) {
	require.Equal(t, "1.2.100", AccountID(100).String())
	require.Equal(t, "1.3.0", AssetID(0).String())
	require.Equal(t, "1.7.9", LimitOrderID(9).String())
	require.Equal(t, "2.17.5", AuthorityID(5).String())
}

func TestParseIds(t *testing.T) {
	id, err := ParseAccountID("1.2.42")
	require.NoError(t, err)
	require.Equal(t, AccountID(42), id)

	id, err = ParseAccountID("42")
	require.NoError(t, err)
	require.Equal(t, AccountID(42), id)

	_, err = ParseAccountID("1.2.x")
	require.Error(t, err)
}

func TestParseTimePointSec(t *testing.T) {
	tp, err := ParseTimePointSec("1970-01-01T00:01:40Z")
	require.NoError(t, err)
	require.Equal(t, TimePointSec(100), tp)

	tp, err = ParseTimePointSec("100")
	require.NoError(t, err)
	require.Equal(t, TimePointSec(100), tp)

	_, err = ParseTimePointSec("yesterday")
	require.Error(t, err)
}
