// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package bitshares

import (
	"time"
)

// Well known protocol account instances. These accounts are owned by the
// protocol itself; all but NullAccount are reserved and cannot own custom
// authorities.
const (
	CommitteeAccount        AccountID = 0
	WitnessAccount          AccountID = 1
	RelaxedCommitteeAccount AccountID = 2
	NullAccount             AccountID = 3
	TempAccount             AccountID = 4
)

// Hardfork identifies a protocol feature activation.
type Hardfork struct {
	Name string
	Time TimePointSec
}

// Params collects chain wide configuration. Initialized once at startup
// and treated as immutable thereafter.
type Params struct {
	Network              string
	CoreAsset            AssetID
	ReservedAccounts     []AccountID
	HardforkCore1285Time TimePointSec // custom authority activation
	MaximumAuthorityDepth int
	Hardforks            []Hardfork
}

var (
	// Mainnet activation of custom authorities.
	mainnetCore1285 = NewTimePointSec(time.Date(2019, 10, 14, 0, 0, 0, 0, time.UTC))

	DefaultParams = &Params{
		Network:   "mainnet",
		CoreAsset: 0,
		ReservedAccounts: []AccountID{
			TempAccount,
			CommitteeAccount,
			WitnessAccount,
			RelaxedCommitteeAccount,
		},
		HardforkCore1285Time:  mainnetCore1285,
		MaximumAuthorityDepth: 2,
		Hardforks: []Hardfork{
			{Name: "CORE-1285", Time: mainnetCore1285},
		},
	}

	TestParams = &Params{
		Network:   "testnet",
		CoreAsset: 0,
		ReservedAccounts: []AccountID{
			TempAccount,
			CommitteeAccount,
			WitnessAccount,
			RelaxedCommitteeAccount,
		},
		HardforkCore1285Time:  0,
		MaximumAuthorityDepth: 2,
		Hardforks: []Hardfork{
			{Name: "CORE-1285", Time: 0},
		},
	}
)

// NewParams returns an empty config for tests and custom networks.
func NewParams() *Params {
	return &Params{
		ReservedAccounts: []AccountID{
			TempAccount,
			CommitteeAccount,
			WitnessAccount,
			RelaxedCommitteeAccount,
		},
	}
}

func (p *Params) WithNetwork(name string) *Params {
	p.Network = name
	return p
}

func (p *Params) WithHardforkCore1285(t TimePointSec) *Params {
	p.HardforkCore1285Time = t
	return p
}

// IsReservedAccount reports whether id is protocol owned.
func (p *Params) IsReservedAccount(id AccountID) bool {
	for _, v := range p.ReservedAccounts {
		if v == id {
			return true
		}
	}
	return false
}
