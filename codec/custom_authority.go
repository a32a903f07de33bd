// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// CustomAuthorityFeeParams prices the custom authority lifecycle
// operations. Unit charges are price per thousand units times the unit
// count, divided by 1000 with integer division (a partial thousand is
// truncated).
type CustomAuthorityFeeParams struct {
	BasicFee      bitshares.ShareType `json:"basic_fee"`
	PricePerKUnit bitshares.ShareType `json:"price_per_k_unit"`
}

// CustomAuthorityCreate represents the "custom_authority_create"
// operation installing a new custom authority record.
type CustomAuthorityCreate struct {
	FeeAsset      bitshares.Asset        `json:"fee"`
	Account       bitshares.AccountID    `json:"account"`
	Enabled       bool                   `json:"enabled"`
	ValidFrom     bitshares.TimePointSec `json:"valid_from"`
	ValidTo       bitshares.TimePointSec `json:"valid_to"`
	OperationType OpType                 `json:"operation_type"`
	Restrictions  []Restriction          `json:"restrictions"`
	Auth          bitshares.Authority    `json:"auth"`
}

func (o CustomAuthorityCreate) Kind() OpType                  { return OpTypeCustomAuthorityCreate }
func (o CustomAuthorityCreate) Fee() bitshares.Asset          { return o.FeeAsset }
func (o CustomAuthorityCreate) FeePayer() bitshares.AccountID { return o.Account }

// Validate checks the record invariants: non negative fee, a user owned
// account, an ordered validity window, no legacy address auths and a
// statically valid restriction list for the target operation schema.
func (o CustomAuthorityCreate) Validate(p *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if p.IsReservedAccount(o.Account) {
		return bitshares.Errorf(bitshares.ErrReservedAccount,
			"can not create custom authority for special account %s", o.Account)
	}
	if !o.ValidFrom.Before(o.ValidTo) {
		return bitshares.Errorf(bitshares.ErrInvalidWindow,
			"valid_from %s must be earlier than valid_to %s", o.ValidFrom, o.ValidTo)
	}
	if len(o.Auth.AddressAuths) > 0 {
		return fmt.Errorf("codec: address auth is not supported")
	}
	return ValidateRestrictions(o.Restrictions, o.OperationType)
}

// CalculateFee prices the operation. Disabled authorities pay the basic
// fee only.
func (o CustomAuthorityCreate) CalculateFee(k CustomAuthorityFeeParams) bitshares.ShareType {
	fee := k.BasicFee
	if o.Enabled {
		unitFee := int64(k.PricePerKUnit)
		unitFee *= int64(o.ValidTo) - int64(o.ValidFrom)
		unitFee *= int64(o.Auth.NumAuths())
		unitFee *= int64(RestrictionListUnits(o.Restrictions))
		unitFee /= 1000
		fee += bitshares.ShareType(unitFee)
	}
	return fee
}

func (o CustomAuthorityCreate) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Account))
	writeBool(buf, o.Enabled)
	writeU32(buf, uint32(o.ValidFrom))
	writeU32(buf, uint32(o.ValidTo))
	writeU32(buf, uint32(o.OperationType))
	writeUvarint(buf, uint64(len(o.Restrictions)))
	for _, r := range o.Restrictions {
		if err := r.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	encodeAuthority(buf, o.Auth)
	return nil
}

func (o *CustomAuthorityCreate) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.Account = bitshares.AccountID(x)
	if o.Enabled, err = readBool(buf); err != nil {
		return
	}
	var t uint32
	if t, err = readU32(buf); err != nil {
		return
	}
	o.ValidFrom = bitshares.TimePointSec(t)
	if t, err = readU32(buf); err != nil {
		return
	}
	o.ValidTo = bitshares.TimePointSec(t)
	if t, err = readU32(buf); err != nil {
		return
	}
	o.OperationType = OpType(t)
	var n uint64
	if n, err = readUvarint(buf); err != nil {
		return
	}
	if n > 0 {
		o.Restrictions = make([]Restriction, n)
		for i := range o.Restrictions {
			if err = o.Restrictions[i].DecodeBuffer(buf); err != nil {
				return
			}
		}
	}
	err = decodeAuthority(buf, &o.Auth)
	return
}

func (o CustomAuthorityCreate) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *CustomAuthorityCreate) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

// CustomAuthorityUpdate represents the "custom_authority_update"
// operation. Every mutable field of the referenced record is replaced,
// there are no partial updates. DeltaUnits is an opaque cost parameter
// consumed by fee calculation only.
type CustomAuthorityUpdate struct {
	FeeAsset          bitshares.Asset        `json:"fee"`
	Account           bitshares.AccountID    `json:"account"`
	CustomAuthorityId bitshares.AuthorityID  `json:"custom_authority_id"`
	Enabled           bool                   `json:"enabled"`
	ValidFrom         bitshares.TimePointSec `json:"valid_from"`
	ValidTo           bitshares.TimePointSec `json:"valid_to"`
	OperationType     OpType                 `json:"operation_type"`
	Restrictions      []Restriction          `json:"restrictions"`
	DeltaUnits        int64                  `json:"delta_units"`
}

func (o CustomAuthorityUpdate) Kind() OpType                  { return OpTypeCustomAuthorityUpdate }
func (o CustomAuthorityUpdate) Fee() bitshares.Asset          { return o.FeeAsset }
func (o CustomAuthorityUpdate) FeePayer() bitshares.AccountID { return o.Account }

func (o CustomAuthorityUpdate) Validate(p *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if p.IsReservedAccount(o.Account) {
		return bitshares.Errorf(bitshares.ErrReservedAccount,
			"can not update custom authority for special account %s", o.Account)
	}
	if !o.ValidFrom.Before(o.ValidTo) {
		return bitshares.Errorf(bitshares.ErrInvalidWindow,
			"valid_from %s must be earlier than valid_to %s", o.ValidFrom, o.ValidTo)
	}
	return ValidateRestrictions(o.Restrictions, o.OperationType)
}

func (o CustomAuthorityUpdate) CalculateFee(k CustomAuthorityFeeParams) bitshares.ShareType {
	return k.BasicFee + bitshares.ShareType(int64(k.PricePerKUnit)*o.DeltaUnits/1000)
}

func (o CustomAuthorityUpdate) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Account))
	writeU64(buf, uint64(o.CustomAuthorityId))
	writeBool(buf, o.Enabled)
	writeU32(buf, uint32(o.ValidFrom))
	writeU32(buf, uint32(o.ValidTo))
	writeU32(buf, uint32(o.OperationType))
	writeUvarint(buf, uint64(len(o.Restrictions)))
	for _, r := range o.Restrictions {
		if err := r.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	writeI64(buf, o.DeltaUnits)
	return nil
}

func (o *CustomAuthorityUpdate) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.Account = bitshares.AccountID(x)
	if x, err = readU64(buf); err != nil {
		return
	}
	o.CustomAuthorityId = bitshares.AuthorityID(x)
	if o.Enabled, err = readBool(buf); err != nil {
		return
	}
	var t uint32
	if t, err = readU32(buf); err != nil {
		return
	}
	o.ValidFrom = bitshares.TimePointSec(t)
	if t, err = readU32(buf); err != nil {
		return
	}
	o.ValidTo = bitshares.TimePointSec(t)
	if t, err = readU32(buf); err != nil {
		return
	}
	o.OperationType = OpType(t)
	var n uint64
	if n, err = readUvarint(buf); err != nil {
		return
	}
	if n > 0 {
		o.Restrictions = make([]Restriction, n)
		for i := range o.Restrictions {
			if err = o.Restrictions[i].DecodeBuffer(buf); err != nil {
				return
			}
		}
	}
	o.DeltaUnits, err = readI64(buf)
	return
}

func (o CustomAuthorityUpdate) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *CustomAuthorityUpdate) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

// CustomAuthorityDelete represents the "custom_authority_delete"
// operation removing a custom authority record.
type CustomAuthorityDelete struct {
	FeeAsset          bitshares.Asset       `json:"fee"`
	Account           bitshares.AccountID   `json:"account"`
	CustomAuthorityId bitshares.AuthorityID `json:"custom_authority_id"`
}

func (o CustomAuthorityDelete) Kind() OpType                  { return OpTypeCustomAuthorityDelete }
func (o CustomAuthorityDelete) Fee() bitshares.Asset          { return o.FeeAsset }
func (o CustomAuthorityDelete) FeePayer() bitshares.AccountID { return o.Account }

func (o CustomAuthorityDelete) Validate(_ *bitshares.Params) error {
	return nil
}

func (o CustomAuthorityDelete) CalculateFee(k CustomAuthorityFeeParams) bitshares.ShareType {
	return k.BasicFee
}

func (o CustomAuthorityDelete) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Account))
	writeU64(buf, uint64(o.CustomAuthorityId))
	return nil
}

func (o *CustomAuthorityDelete) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.Account = bitshares.AccountID(x)
	if x, err = readU64(buf); err != nil {
		return
	}
	o.CustomAuthorityId = bitshares.AuthorityID(x)
	return
}

func (o CustomAuthorityDelete) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *CustomAuthorityDelete) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeCustomAuthorityCreate,
		New:    func() Operation { return new(CustomAuthorityCreate) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "account", Type: ValueTypeAccountId},
			{Name: "enabled", Type: ValueTypeBool},
			{Name: "valid_from", Type: ValueTypeTimePointSec},
			{Name: "valid_to", Type: ValueTypeTimePointSec},
			{Name: "operation_type", Type: ValueTypeU32},
			{Name: "auth", Type: ValueTypeAuthority},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*CustomAuthorityCreate)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "account":
				return NewAccountId(o.Account), true
			case "enabled":
				return NewBool(o.Enabled), true
			case "valid_from":
				return NewTimePointSec(o.ValidFrom), true
			case "valid_to":
				return NewTimePointSec(o.ValidTo), true
			case "operation_type":
				return NewU32(uint32(o.OperationType)), true
			case "auth":
				return NewAuthority(o.Auth), true
			}
			return Value{}, false
		},
	})
	RegisterSchema(&Schema{
		OpType: OpTypeCustomAuthorityUpdate,
		New:    func() Operation { return new(CustomAuthorityUpdate) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "account", Type: ValueTypeAccountId},
			{Name: "custom_authority_id", Type: ValueTypeU32},
			{Name: "enabled", Type: ValueTypeBool},
			{Name: "valid_from", Type: ValueTypeTimePointSec},
			{Name: "valid_to", Type: ValueTypeTimePointSec},
			{Name: "operation_type", Type: ValueTypeU32},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*CustomAuthorityUpdate)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "account":
				return NewAccountId(o.Account), true
			case "custom_authority_id":
				return NewU32(uint32(o.CustomAuthorityId)), true
			case "enabled":
				return NewBool(o.Enabled), true
			case "valid_from":
				return NewTimePointSec(o.ValidFrom), true
			case "valid_to":
				return NewTimePointSec(o.ValidTo), true
			case "operation_type":
				return NewU32(uint32(o.OperationType)), true
			}
			return Value{}, false
		},
	})
	RegisterSchema(&Schema{
		OpType: OpTypeCustomAuthorityDelete,
		New:    func() Operation { return new(CustomAuthorityDelete) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "account", Type: ValueTypeAccountId},
			{Name: "custom_authority_id", Type: ValueTypeU32},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*CustomAuthorityDelete)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "account":
				return NewAccountId(o.Account), true
			case "custom_authority_id":
				return NewU32(uint32(o.CustomAuthorityId)), true
			}
			return Value{}, false
		},
	})
}
