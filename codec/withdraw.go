// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// WithdrawPermissionCreate represents the "withdraw_permission_create"
// operation granting another account a periodic withdrawal allowance.
type WithdrawPermissionCreate struct {
	FeeAsset                bitshares.Asset        `json:"fee"`
	WithdrawFromAccount     bitshares.AccountID    `json:"withdraw_from_account"`
	AuthorizedAccount       bitshares.AccountID    `json:"authorized_account"`
	WithdrawalLimit         bitshares.Asset        `json:"withdrawal_limit"`
	WithdrawalPeriodSec     uint32                 `json:"withdrawal_period_sec"`
	PeriodsUntilExpiration  uint32                 `json:"periods_until_expiration"`
	PeriodStartTime         bitshares.TimePointSec `json:"period_start_time"`
}

func (o WithdrawPermissionCreate) Kind() OpType         { return OpTypeWithdrawPermissionCreate }
func (o WithdrawPermissionCreate) Fee() bitshares.Asset { return o.FeeAsset }
func (o WithdrawPermissionCreate) FeePayer() bitshares.AccountID {
	return o.WithdrawFromAccount
}

func (o WithdrawPermissionCreate) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if o.WithdrawFromAccount == o.AuthorizedAccount {
		return fmt.Errorf("codec: cannot authorize self")
	}
	if o.WithdrawalPeriodSec == 0 || o.PeriodsUntilExpiration == 0 {
		return fmt.Errorf("codec: withdrawal period must be positive")
	}
	return nil
}

func (o WithdrawPermissionCreate) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.WithdrawFromAccount))
	writeU64(buf, uint64(o.AuthorizedAccount))
	encodeAsset(buf, o.WithdrawalLimit)
	writeU32(buf, o.WithdrawalPeriodSec)
	writeU32(buf, o.PeriodsUntilExpiration)
	writeU32(buf, uint32(o.PeriodStartTime))
	return nil
}

func (o *WithdrawPermissionCreate) DecodeBuffer(buf *bytes.Buffer) (err error) {
	if err = ensureTag(buf, o.Kind()); err != nil {
		return
	}
	if err = decodeAsset(buf, &o.FeeAsset); err != nil {
		return
	}
	var x uint64
	if x, err = readU64(buf); err != nil {
		return
	}
	o.WithdrawFromAccount = bitshares.AccountID(x)
	if x, err = readU64(buf); err != nil {
		return
	}
	o.AuthorizedAccount = bitshares.AccountID(x)
	if err = decodeAsset(buf, &o.WithdrawalLimit); err != nil {
		return
	}
	if o.WithdrawalPeriodSec, err = readU32(buf); err != nil {
		return
	}
	if o.PeriodsUntilExpiration, err = readU32(buf); err != nil {
		return
	}
	var t uint32
	if t, err = readU32(buf); err != nil {
		return
	}
	o.PeriodStartTime = bitshares.TimePointSec(t)
	return
}

func (o WithdrawPermissionCreate) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *WithdrawPermissionCreate) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeWithdrawPermissionCreate,
		New:    func() Operation { return new(WithdrawPermissionCreate) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "withdraw_from_account", Type: ValueTypeAccountId},
			{Name: "authorized_account", Type: ValueTypeAccountId},
			{Name: "withdrawal_limit", Type: ValueTypeAsset},
			{Name: "withdrawal_period_sec", Type: ValueTypeU32},
			{Name: "periods_until_expiration", Type: ValueTypeU32},
			{Name: "period_start_time", Type: ValueTypeTimePointSec},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*WithdrawPermissionCreate)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "withdraw_from_account":
				return NewAccountId(o.WithdrawFromAccount), true
			case "authorized_account":
				return NewAccountId(o.AuthorizedAccount), true
			case "withdrawal_limit":
				return NewAsset(o.WithdrawalLimit), true
			case "withdrawal_period_sec":
				return NewU32(o.WithdrawalPeriodSec), true
			case "periods_until_expiration":
				return NewU32(o.PeriodsUntilExpiration), true
			case "period_start_time":
				return NewTimePointSec(o.PeriodStartTime), true
			}
			return Value{}, false
		},
	})
}
