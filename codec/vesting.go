// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// VestingBalanceCreate represents the "vesting_balance_create" operation.
type VestingBalanceCreate struct {
	FeeAsset bitshares.Asset             `json:"fee"`
	Creator  bitshares.AccountID         `json:"creator"`
	Owner    bitshares.AccountID         `json:"owner"`
	Amount   bitshares.Asset             `json:"amount"`
	Policy   bitshares.VestingPolicyInit `json:"policy"`
}

func (o VestingBalanceCreate) Kind() OpType                  { return OpTypeVestingBalanceCreate }
func (o VestingBalanceCreate) Fee() bitshares.Asset          { return o.FeeAsset }
func (o VestingBalanceCreate) FeePayer() bitshares.AccountID { return o.Creator }

func (o VestingBalanceCreate) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if o.Amount.Amount <= 0 {
		return fmt.Errorf("codec: vesting amount must be positive")
	}
	return nil
}

func (o VestingBalanceCreate) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Creator))
	writeU64(buf, uint64(o.Owner))
	encodeAsset(buf, o.Amount)
	NewVestingPolicyInit(o.Policy).encodePayload(buf)
	return nil
}

func (o *VestingBalanceCreate) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.Creator = bitshares.AccountID(x)
	if x, err = readU64(buf); err != nil {
		return
	}
	o.Owner = bitshares.AccountID(x)
	if err = decodeAsset(buf, &o.Amount); err != nil {
		return
	}
	kind, err := buf.ReadByte()
	if err != nil {
		return err
	}
	o.Policy.Kind = bitshares.VestingPolicyKind(kind)
	var t uint32
	if t, err = readU32(buf); err != nil {
		return
	}
	o.Policy.BeginTimestamp = bitshares.TimePointSec(t)
	if o.Policy.VestingCliffSeconds, err = readU32(buf); err != nil {
		return
	}
	if o.Policy.VestingDurationSeconds, err = readU32(buf); err != nil {
		return
	}
	if t, err = readU32(buf); err != nil {
		return
	}
	o.Policy.StartClaim = bitshares.TimePointSec(t)
	o.Policy.VestingSeconds, err = readU32(buf)
	return
}

func (o VestingBalanceCreate) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *VestingBalanceCreate) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeVestingBalanceCreate,
		New:    func() Operation { return new(VestingBalanceCreate) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "creator", Type: ValueTypeAccountId},
			{Name: "owner", Type: ValueTypeAccountId},
			{Name: "amount", Type: ValueTypeAsset},
			{Name: "policy", Type: ValueTypeVestingPolicyInit},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*VestingBalanceCreate)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "creator":
				return NewAccountId(o.Creator), true
			case "owner":
				return NewAccountId(o.Owner), true
			case "amount":
				return NewAsset(o.Amount), true
			case "policy":
				return NewVestingPolicyInit(o.Policy), true
			}
			return Value{}, false
		},
	})
}
