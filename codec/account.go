// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// AccountCreate represents the "account_create" operation.
type AccountCreate struct {
	FeeAsset        bitshares.Asset      `json:"fee"`
	Registrar       bitshares.AccountID  `json:"registrar"`
	Referrer        bitshares.AccountID  `json:"referrer"`
	ReferrerPercent uint16               `json:"referrer_percent"`
	Name            string               `json:"name"`
	Owner           bitshares.Authority  `json:"owner"`
	Active          bitshares.Authority  `json:"active"`
	MemoKey         bitshares.PublicKey  `json:"memo_key"`
	Extensions      bitshares.Extensions `json:"extensions"`
}

func (o AccountCreate) Kind() OpType                  { return OpTypeAccountCreate }
func (o AccountCreate) Fee() bitshares.Asset          { return o.FeeAsset }
func (o AccountCreate) FeePayer() bitshares.AccountID { return o.Registrar }

func (o AccountCreate) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if o.Name == "" {
		return fmt.Errorf("codec: account name must not be empty")
	}
	return nil
}

func (o AccountCreate) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Registrar))
	writeU64(buf, uint64(o.Referrer))
	writeU16(buf, o.ReferrerPercent)
	writeString(buf, o.Name)
	encodeAuthority(buf, o.Owner)
	encodeAuthority(buf, o.Active)
	buf.Write(o.MemoKey.Bytes())
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *AccountCreate) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.Registrar = bitshares.AccountID(x)
	if x, err = readU64(buf); err != nil {
		return
	}
	o.Referrer = bitshares.AccountID(x)
	if o.ReferrerPercent, err = readU16(buf); err != nil {
		return
	}
	if o.Name, err = readString(buf); err != nil {
		return
	}
	if err = decodeAuthority(buf, &o.Owner); err != nil {
		return
	}
	if err = decodeAuthority(buf, &o.Active); err != nil {
		return
	}
	b := buf.Next(33)
	if len(b) < 33 {
		return fmt.Errorf("codec: short memo key")
	}
	o.MemoKey = bitshares.NewPublicKey(b)
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o AccountCreate) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *AccountCreate) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeAccountCreate,
		New:    func() Operation { return new(AccountCreate) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "registrar", Type: ValueTypeAccountId},
			{Name: "referrer", Type: ValueTypeAccountId},
			{Name: "referrer_percent", Type: ValueTypeU16},
			{Name: "name", Type: ValueTypeText},
			{Name: "owner", Type: ValueTypeAuthority},
			{Name: "active", Type: ValueTypeAuthority},
			{Name: "memo_key", Type: ValueTypePublicKey},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*AccountCreate)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "registrar":
				return NewAccountId(o.Registrar), true
			case "referrer":
				return NewAccountId(o.Referrer), true
			case "referrer_percent":
				return NewU16(o.ReferrerPercent), true
			case "name":
				return NewText(o.Name), true
			case "owner":
				return NewAuthority(o.Owner), true
			case "active":
				return NewAuthority(o.Active), true
			case "memo_key":
				return NewPublicKey(o.MemoKey), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}

// AccountUpdate represents the "account_update" operation. Owner and
// active authorities are optional, absent means unchanged.
type AccountUpdate struct {
	FeeAsset   bitshares.Asset      `json:"fee"`
	Account    bitshares.AccountID  `json:"account"`
	Owner      *bitshares.Authority `json:"owner,omitempty"`
	Active     *bitshares.Authority `json:"active,omitempty"`
	Extensions bitshares.Extensions `json:"extensions"`
}

func (o AccountUpdate) Kind() OpType                  { return OpTypeAccountUpdate }
func (o AccountUpdate) Fee() bitshares.Asset          { return o.FeeAsset }
func (o AccountUpdate) FeePayer() bitshares.AccountID { return o.Account }

func (o AccountUpdate) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if o.Owner == nil && o.Active == nil {
		return fmt.Errorf("codec: account update changes nothing")
	}
	return nil
}

func (o AccountUpdate) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Account))
	if o.Owner != nil {
		buf.WriteByte(0xff)
		encodeAuthority(buf, *o.Owner)
	} else {
		buf.WriteByte(0x00)
	}
	if o.Active != nil {
		buf.WriteByte(0xff)
		encodeAuthority(buf, *o.Active)
	} else {
		buf.WriteByte(0x00)
	}
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *AccountUpdate) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	var ok bool
	if ok, err = readBool(buf); err != nil {
		return
	}
	if ok {
		auth := &bitshares.Authority{}
		if err = decodeAuthority(buf, auth); err != nil {
			return
		}
		o.Owner = auth
	}
	if ok, err = readBool(buf); err != nil {
		return
	}
	if ok {
		auth := &bitshares.Authority{}
		if err = decodeAuthority(buf, auth); err != nil {
			return
		}
		o.Active = auth
	}
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o AccountUpdate) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *AccountUpdate) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeAccountUpdate,
		New:    func() Operation { return new(AccountUpdate) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "account", Type: ValueTypeAccountId},
			{Name: "owner", Type: ValueTypeAuthority, Optional: true},
			{Name: "active", Type: ValueTypeAuthority, Optional: true},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*AccountUpdate)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "account":
				return NewAccountId(o.Account), true
			case "owner":
				if o.Owner == nil {
					return Value{}, false
				}
				return NewAuthority(*o.Owner), true
			case "active":
				if o.Active == nil {
					return Value{}, false
				}
				return NewAuthority(*o.Active), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}

// AccountWhitelist represents the "account_whitelist" operation. The
// new_listing byte is a bitmask of white and black listing flags.
type AccountWhitelist struct {
	FeeAsset        bitshares.Asset      `json:"fee"`
	AuthorizingAcct bitshares.AccountID  `json:"authorizing_account"`
	AccountToList   bitshares.AccountID  `json:"account_to_list"`
	NewListing      uint8                `json:"new_listing"`
	Extensions      bitshares.Extensions `json:"extensions"`
}

func (o AccountWhitelist) Kind() OpType                  { return OpTypeAccountWhitelist }
func (o AccountWhitelist) Fee() bitshares.Asset          { return o.FeeAsset }
func (o AccountWhitelist) FeePayer() bitshares.AccountID { return o.AuthorizingAcct }

func (o AccountWhitelist) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if o.NewListing > 0x3 {
		return fmt.Errorf("codec: invalid listing flags 0x%x", o.NewListing)
	}
	return nil
}

func (o AccountWhitelist) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.AuthorizingAcct))
	writeU64(buf, uint64(o.AccountToList))
	buf.WriteByte(o.NewListing)
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *AccountWhitelist) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.AuthorizingAcct = bitshares.AccountID(x)
	if x, err = readU64(buf); err != nil {
		return
	}
	o.AccountToList = bitshares.AccountID(x)
	if o.NewListing, err = buf.ReadByte(); err != nil {
		return
	}
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o AccountWhitelist) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *AccountWhitelist) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeAccountWhitelist,
		New:    func() Operation { return new(AccountWhitelist) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "authorizing_account", Type: ValueTypeAccountId},
			{Name: "account_to_list", Type: ValueTypeAccountId},
			{Name: "new_listing", Type: ValueTypeU8},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*AccountWhitelist)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "authorizing_account":
				return NewAccountId(o.AuthorizingAcct), true
			case "account_to_list":
				return NewAccountId(o.AccountToList), true
			case "new_listing":
				return NewU8(o.NewListing), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}

// AccountUpgrade represents the "account_upgrade" operation.
type AccountUpgrade struct {
	FeeAsset                bitshares.Asset      `json:"fee"`
	AccountToUpgrade        bitshares.AccountID  `json:"account_to_upgrade"`
	UpgradeToLifetimeMember bool                 `json:"upgrade_to_lifetime_member"`
	Extensions              bitshares.Extensions `json:"extensions"`
}

func (o AccountUpgrade) Kind() OpType                  { return OpTypeAccountUpgrade }
func (o AccountUpgrade) Fee() bitshares.Asset          { return o.FeeAsset }
func (o AccountUpgrade) FeePayer() bitshares.AccountID { return o.AccountToUpgrade }

func (o AccountUpgrade) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	return nil
}

func (o AccountUpgrade) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.AccountToUpgrade))
	writeBool(buf, o.UpgradeToLifetimeMember)
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *AccountUpgrade) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.AccountToUpgrade = bitshares.AccountID(x)
	if o.UpgradeToLifetimeMember, err = readBool(buf); err != nil {
		return
	}
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o AccountUpgrade) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *AccountUpgrade) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeAccountUpgrade,
		New:    func() Operation { return new(AccountUpgrade) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "account_to_upgrade", Type: ValueTypeAccountId},
			{Name: "upgrade_to_lifetime_member", Type: ValueTypeBool},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*AccountUpgrade)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "account_to_upgrade":
				return NewAccountId(o.AccountToUpgrade), true
			case "upgrade_to_lifetime_member":
				return NewBool(o.UpgradeToLifetimeMember), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}
