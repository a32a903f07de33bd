// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package bitshares

import (
	"fmt"
)

// ShareType is the chain's signed 64 bit amount type.
type ShareType int64

// Asset is an amount denominated in a specific asset.
type Asset struct {
	Amount  ShareType `json:"amount"`
	AssetID AssetID   `json:"asset_id"`
}

// NewAsset returns an amount of the core asset.
func NewAsset(amount int64) Asset {
	return Asset{Amount: ShareType(amount)}
}

func (a Asset) String() string {
	return fmt.Sprintf("%d %s", a.Amount, a.AssetID)
}

func (a Asset) Equal(b Asset) bool {
	return a == b
}

// Price is an exchange rate between two assets.
type Price struct {
	Base  Asset `json:"base"`
	Quote Asset `json:"quote"`
}

func (p Price) Equal(q Price) bool {
	return p == q
}

// PriceFeed carries the published market data for a bitasset.
type PriceFeed struct {
	SettlementPrice             Price  `json:"settlement_price"`
	MaintenanceCollateralRatio  uint16 `json:"maintenance_collateral_ratio"`
	MaximumShortSqueezeRatio    uint16 `json:"maximum_short_squeeze_ratio"`
	CoreExchangeRate            Price  `json:"core_exchange_rate"`
}

func (f PriceFeed) Equal(g PriceFeed) bool {
	return f == g
}

// VestingPolicyKind selects the concrete vesting policy variant.
type VestingPolicyKind byte

const (
	VestingPolicyLinear VestingPolicyKind = iota
	VestingPolicyCdd
)

// VestingPolicyInit describes the initial vesting policy of a new
// vesting balance. Fields are used depending on Kind.
type VestingPolicyInit struct {
	Kind                   VestingPolicyKind `json:"kind"`
	BeginTimestamp         TimePointSec      `json:"begin_timestamp,omitempty"`
	VestingCliffSeconds    uint32            `json:"vesting_cliff_seconds,omitempty"`
	VestingDurationSeconds uint32            `json:"vesting_duration_seconds,omitempty"`
	StartClaim             TimePointSec      `json:"start_claim,omitempty"`
	VestingSeconds         uint32            `json:"vesting_seconds,omitempty"`
}

func (v VestingPolicyInit) Equal(w VestingPolicyInit) bool {
	return v == w
}

// WorkerInitKind selects the payout model of a new worker.
type WorkerInitKind byte

const (
	WorkerInitRefund WorkerInitKind = iota
	WorkerInitVesting
	WorkerInitBurn
)

// WorkerInit describes how a new worker's pay is handled.
type WorkerInit struct {
	Kind                 WorkerInitKind `json:"kind"`
	PayVestingPeriodDays uint16         `json:"pay_vesting_period_days,omitempty"`
}

func (w WorkerInit) Equal(x WorkerInit) bool {
	return w == x
}
