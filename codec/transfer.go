// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// Transfer represents the "transfer" operation, moving an asset amount
// between two accounts. The memo is optional.
type Transfer struct {
	FeeAsset   bitshares.Asset      `json:"fee"`
	From       bitshares.AccountID  `json:"from"`
	To         bitshares.AccountID  `json:"to"`
	Amount     bitshares.Asset      `json:"amount"`
	Memo       []byte               `json:"memo,omitempty"`
	Extensions bitshares.Extensions `json:"extensions"`
}

func (o Transfer) Kind() OpType                  { return OpTypeTransfer }
func (o Transfer) Fee() bitshares.Asset          { return o.FeeAsset }
func (o Transfer) FeePayer() bitshares.AccountID { return o.From }

func (o Transfer) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if o.From == o.To {
		return fmt.Errorf("codec: transfer to self")
	}
	return nil
}

func (o Transfer) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.From))
	writeU64(buf, uint64(o.To))
	encodeAsset(buf, o.Amount)
	if o.Memo != nil {
		buf.WriteByte(0xff)
		writeByteSlice(buf, o.Memo)
	} else {
		buf.WriteByte(0x00)
	}
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *Transfer) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.From = bitshares.AccountID(x)
	if x, err = readU64(buf); err != nil {
		return
	}
	o.To = bitshares.AccountID(x)
	if err = decodeAsset(buf, &o.Amount); err != nil {
		return
	}
	var ok bool
	if ok, err = readBool(buf); err != nil {
		return
	}
	if ok {
		if o.Memo, err = readByteSlice(buf); err != nil {
			return
		}
	}
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o Transfer) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *Transfer) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeTransfer,
		New:    func() Operation { return new(Transfer) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "from", Type: ValueTypeAccountId},
			{Name: "to", Type: ValueTypeAccountId},
			{Name: "amount", Type: ValueTypeAsset},
			{Name: "memo", Type: ValueTypeBytes, Optional: true},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*Transfer)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "from":
				return NewAccountId(o.From), true
			case "to":
				return NewAccountId(o.To), true
			case "amount":
				return NewAsset(o.Amount), true
			case "memo":
				if o.Memo == nil {
					return Value{}, false
				}
				return NewBytes(o.Memo), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}

// OverrideTransfer represents the "override_transfer" operation where an
// asset issuer moves funds between holders of that asset.
type OverrideTransfer struct {
	FeeAsset   bitshares.Asset      `json:"fee"`
	Issuer     bitshares.AccountID  `json:"issuer"`
	From       bitshares.AccountID  `json:"from"`
	To         bitshares.AccountID  `json:"to"`
	Amount     bitshares.Asset      `json:"amount"`
	Extensions bitshares.Extensions `json:"extensions"`
}

func (o OverrideTransfer) Kind() OpType                  { return OpTypeOverrideTransfer }
func (o OverrideTransfer) Fee() bitshares.Asset          { return o.FeeAsset }
func (o OverrideTransfer) FeePayer() bitshares.AccountID { return o.Issuer }

func (o OverrideTransfer) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	return nil
}

func (o OverrideTransfer) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Issuer))
	writeU64(buf, uint64(o.From))
	writeU64(buf, uint64(o.To))
	encodeAsset(buf, o.Amount)
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *OverrideTransfer) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.Issuer = bitshares.AccountID(x)
	if x, err = readU64(buf); err != nil {
		return
	}
	o.From = bitshares.AccountID(x)
	if x, err = readU64(buf); err != nil {
		return
	}
	o.To = bitshares.AccountID(x)
	if err = decodeAsset(buf, &o.Amount); err != nil {
		return
	}
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o OverrideTransfer) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *OverrideTransfer) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeOverrideTransfer,
		New:    func() Operation { return new(OverrideTransfer) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "issuer", Type: ValueTypeAccountId},
			{Name: "from", Type: ValueTypeAccountId},
			{Name: "to", Type: ValueTypeAccountId},
			{Name: "amount", Type: ValueTypeAsset},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*OverrideTransfer)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "issuer":
				return NewAccountId(o.Issuer), true
			case "from":
				return NewAccountId(o.From), true
			case "to":
				return NewAccountId(o.To), true
			case "amount":
				return NewAsset(o.Amount), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}
