// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// LimitOrderCreate represents the "limit_order_create" operation, an
// offer to exchange amount_to_sell for at least min_to_receive.
type LimitOrderCreate struct {
	FeeAsset     bitshares.Asset        `json:"fee"`
	Seller       bitshares.AccountID    `json:"seller"`
	AmountToSell bitshares.Asset        `json:"amount_to_sell"`
	MinToReceive bitshares.Asset        `json:"min_to_receive"`
	Expiration   bitshares.TimePointSec `json:"expiration"`
	FillOrKill   bool                   `json:"fill_or_kill"`
	Extensions   bitshares.Extensions   `json:"extensions"`
}

func (o LimitOrderCreate) Kind() OpType                  { return OpTypeLimitOrderCreate }
func (o LimitOrderCreate) Fee() bitshares.Asset          { return o.FeeAsset }
func (o LimitOrderCreate) FeePayer() bitshares.AccountID { return o.Seller }

func (o LimitOrderCreate) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if o.AmountToSell.AssetID == o.MinToReceive.AssetID {
		return fmt.Errorf("codec: sell and receive asset must differ")
	}
	return nil
}

func (o LimitOrderCreate) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Seller))
	encodeAsset(buf, o.AmountToSell)
	encodeAsset(buf, o.MinToReceive)
	writeU32(buf, uint32(o.Expiration))
	writeBool(buf, o.FillOrKill)
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *LimitOrderCreate) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.Seller = bitshares.AccountID(x)
	if err = decodeAsset(buf, &o.AmountToSell); err != nil {
		return
	}
	if err = decodeAsset(buf, &o.MinToReceive); err != nil {
		return
	}
	var t uint32
	if t, err = readU32(buf); err != nil {
		return
	}
	o.Expiration = bitshares.TimePointSec(t)
	if o.FillOrKill, err = readBool(buf); err != nil {
		return
	}
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o LimitOrderCreate) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *LimitOrderCreate) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeLimitOrderCreate,
		New:    func() Operation { return new(LimitOrderCreate) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "seller", Type: ValueTypeAccountId},
			{Name: "amount_to_sell", Type: ValueTypeAsset},
			{Name: "min_to_receive", Type: ValueTypeAsset},
			{Name: "expiration", Type: ValueTypeTimePointSec},
			{Name: "fill_or_kill", Type: ValueTypeBool},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*LimitOrderCreate)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "seller":
				return NewAccountId(o.Seller), true
			case "amount_to_sell":
				return NewAsset(o.AmountToSell), true
			case "min_to_receive":
				return NewAsset(o.MinToReceive), true
			case "expiration":
				return NewTimePointSec(o.Expiration), true
			case "fill_or_kill":
				return NewBool(o.FillOrKill), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}

// LimitOrderCancel represents the "limit_order_cancel" operation.
type LimitOrderCancel struct {
	FeeAsset   bitshares.Asset        `json:"fee"`
	FeePaying  bitshares.AccountID    `json:"fee_paying_account"`
	Order      bitshares.LimitOrderID `json:"order"`
	Extensions bitshares.Extensions   `json:"extensions"`
}

func (o LimitOrderCancel) Kind() OpType                  { return OpTypeLimitOrderCancel }
func (o LimitOrderCancel) Fee() bitshares.Asset          { return o.FeeAsset }
func (o LimitOrderCancel) FeePayer() bitshares.AccountID { return o.FeePaying }

func (o LimitOrderCancel) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	return nil
}

func (o LimitOrderCancel) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.FeePaying))
	writeU64(buf, uint64(o.Order))
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *LimitOrderCancel) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.FeePaying = bitshares.AccountID(x)
	if x, err = readU64(buf); err != nil {
		return
	}
	o.Order = bitshares.LimitOrderID(x)
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o LimitOrderCancel) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *LimitOrderCancel) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeLimitOrderCancel,
		New:    func() Operation { return new(LimitOrderCancel) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "fee_paying_account", Type: ValueTypeAccountId},
			{Name: "order", Type: ValueTypeLimitOrderId},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*LimitOrderCancel)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "fee_paying_account":
				return NewAccountId(o.FeePaying), true
			case "order":
				return NewLimitOrderId(o.Order), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}
