// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// AssetCreate represents the "asset_create" operation.
type AssetCreate struct {
	FeeAsset      bitshares.Asset      `json:"fee"`
	Issuer        bitshares.AccountID  `json:"issuer"`
	Symbol        string               `json:"symbol"`
	Precision     uint8                `json:"precision"`
	MaxSupply     bitshares.ShareType  `json:"max_supply"`
	MarketFeeRate uint16               `json:"market_fee_percent"`
	Extensions    bitshares.Extensions `json:"extensions"`
}

func (o AssetCreate) Kind() OpType                  { return OpTypeAssetCreate }
func (o AssetCreate) Fee() bitshares.Asset          { return o.FeeAsset }
func (o AssetCreate) FeePayer() bitshares.AccountID { return o.Issuer }

func (o AssetCreate) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if o.Symbol == "" {
		return fmt.Errorf("codec: asset symbol must not be empty")
	}
	return nil
}

func (o AssetCreate) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Issuer))
	writeString(buf, o.Symbol)
	buf.WriteByte(o.Precision)
	writeI64(buf, int64(o.MaxSupply))
	writeU16(buf, o.MarketFeeRate)
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *AssetCreate) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	if o.Symbol, err = readString(buf); err != nil {
		return
	}
	if o.Precision, err = buf.ReadByte(); err != nil {
		return
	}
	var n int64
	if n, err = readI64(buf); err != nil {
		return
	}
	o.MaxSupply = bitshares.ShareType(n)
	if o.MarketFeeRate, err = readU16(buf); err != nil {
		return
	}
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o AssetCreate) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *AssetCreate) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeAssetCreate,
		New:    func() Operation { return new(AssetCreate) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "issuer", Type: ValueTypeAccountId},
			{Name: "symbol", Type: ValueTypeText},
			{Name: "precision", Type: ValueTypeU8},
			{Name: "max_supply", Type: ValueTypeShareType},
			{Name: "market_fee_percent", Type: ValueTypeU16},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*AssetCreate)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "issuer":
				return NewAccountId(o.Issuer), true
			case "symbol":
				return NewText(o.Symbol), true
			case "precision":
				return NewU8(o.Precision), true
			case "max_supply":
				return NewShareType(o.MaxSupply), true
			case "market_fee_percent":
				return NewU16(o.MarketFeeRate), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}

// AssetIssue represents the "asset_issue" operation.
type AssetIssue struct {
	FeeAsset       bitshares.Asset      `json:"fee"`
	Issuer         bitshares.AccountID  `json:"issuer"`
	AssetToIssue   bitshares.Asset      `json:"asset_to_issue"`
	IssueToAccount bitshares.AccountID  `json:"issue_to_account"`
	Extensions     bitshares.Extensions `json:"extensions"`
}

func (o AssetIssue) Kind() OpType                  { return OpTypeAssetIssue }
func (o AssetIssue) Fee() bitshares.Asset          { return o.FeeAsset }
func (o AssetIssue) FeePayer() bitshares.AccountID { return o.Issuer }

func (o AssetIssue) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if o.AssetToIssue.Amount <= 0 {
		return fmt.Errorf("codec: issue amount must be positive")
	}
	return nil
}

func (o AssetIssue) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Issuer))
	encodeAsset(buf, o.AssetToIssue)
	writeU64(buf, uint64(o.IssueToAccount))
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *AssetIssue) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	if err = decodeAsset(buf, &o.AssetToIssue); err != nil {
		return
	}
	if x, err = readU64(buf); err != nil {
		return
	}
	o.IssueToAccount = bitshares.AccountID(x)
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o AssetIssue) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *AssetIssue) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeAssetIssue,
		New:    func() Operation { return new(AssetIssue) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "issuer", Type: ValueTypeAccountId},
			{Name: "asset_to_issue", Type: ValueTypeAsset},
			{Name: "issue_to_account", Type: ValueTypeAccountId},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*AssetIssue)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "issuer":
				return NewAccountId(o.Issuer), true
			case "asset_to_issue":
				return NewAsset(o.AssetToIssue), true
			case "issue_to_account":
				return NewAccountId(o.IssueToAccount), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}

// AssetPublishFeed represents the "asset_publish_feed" operation.
type AssetPublishFeed struct {
	FeeAsset   bitshares.Asset      `json:"fee"`
	Publisher  bitshares.AccountID  `json:"publisher"`
	AssetId    bitshares.AssetID    `json:"asset_id"`
	Feed       bitshares.PriceFeed  `json:"feed"`
	Extensions bitshares.Extensions `json:"extensions"`
}

func (o AssetPublishFeed) Kind() OpType                  { return OpTypeAssetPublishFeed }
func (o AssetPublishFeed) Fee() bitshares.Asset          { return o.FeeAsset }
func (o AssetPublishFeed) FeePayer() bitshares.AccountID { return o.Publisher }

func (o AssetPublishFeed) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	return nil
}

func (o AssetPublishFeed) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Publisher))
	writeU64(buf, uint64(o.AssetId))
	NewPriceFeed(o.Feed).encodePayload(buf)
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *AssetPublishFeed) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.Publisher = bitshares.AccountID(x)
	if x, err = readU64(buf); err != nil {
		return
	}
	o.AssetId = bitshares.AssetID(x)
	if err = decodePrice(buf, &o.Feed.SettlementPrice); err != nil {
		return
	}
	if o.Feed.MaintenanceCollateralRatio, err = readU16(buf); err != nil {
		return
	}
	if o.Feed.MaximumShortSqueezeRatio, err = readU16(buf); err != nil {
		return
	}
	if err = decodePrice(buf, &o.Feed.CoreExchangeRate); err != nil {
		return
	}
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o AssetPublishFeed) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *AssetPublishFeed) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeAssetPublishFeed,
		New:    func() Operation { return new(AssetPublishFeed) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "publisher", Type: ValueTypeAccountId},
			{Name: "asset_id", Type: ValueTypeAssetId},
			{Name: "feed", Type: ValueTypePriceFeed},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*AssetPublishFeed)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "publisher":
				return NewAccountId(o.Publisher), true
			case "asset_id":
				return NewAssetId(o.AssetId), true
			case "feed":
				return NewPriceFeed(o.Feed), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}
