// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// ValueType tags the variants of the Value union. Tags are part of the
// consensus wire format, do not reorder.
type ValueType byte

const (
	ValueTypeU8 ValueType = iota
	ValueTypeU16
	ValueTypeU32
	ValueTypeUnsignedVarInt
	ValueTypeAssetId
	ValueTypeAccountId
	ValueTypeBalanceId
	ValueTypeProposalId
	ValueTypeFbaAccumulatorId
	ValueTypeLimitOrderId
	ValueTypeWithdrawPermissionId
	ValueTypeWitnessId
	ValueTypeForceSettlementId
	ValueTypeCommitteeMemberId
	ValueTypePublicKey
	ValueTypeTimePointSec
	ValueTypeBool
	ValueTypeBytes
	ValueTypeText
	ValueTypeAsset
	ValueTypePrice
	ValueTypePriceFeed
	ValueTypeShareType
	ValueTypeVestingPolicyInit
	ValueTypeWorkerInit
	ValueTypeExtensions
	ValueTypeFutureExtensions
	ValueTypeAuthority
	ValueTypePredicateList
	ValueTypeAccountIdSet
	ValueTypePublicKeySet
	ValueTypeInvalid ValueType = 255
)

var valueTypeNames = map[ValueType]string{
	ValueTypeU8:                   "u8",
	ValueTypeU16:                  "u16",
	ValueTypeU32:                  "u32",
	ValueTypeUnsignedVarInt:       "unsigned_varint",
	ValueTypeAssetId:              "asset_id",
	ValueTypeAccountId:            "account_id",
	ValueTypeBalanceId:            "balance_id",
	ValueTypeProposalId:           "proposal_id",
	ValueTypeFbaAccumulatorId:     "fba_accumulator_id",
	ValueTypeLimitOrderId:         "limit_order_id",
	ValueTypeWithdrawPermissionId: "withdraw_permission_id",
	ValueTypeWitnessId:            "witness_id",
	ValueTypeForceSettlementId:    "force_settlement_id",
	ValueTypeCommitteeMemberId:    "committee_member_id",
	ValueTypePublicKey:            "public_key",
	ValueTypeTimePointSec:         "time_point_sec",
	ValueTypeBool:                 "bool",
	ValueTypeBytes:                "bytes",
	ValueTypeText:                 "text",
	ValueTypeAsset:                "asset",
	ValueTypePrice:                "price",
	ValueTypePriceFeed:            "price_feed",
	ValueTypeShareType:            "share_type",
	ValueTypeVestingPolicyInit:    "vesting_policy_init",
	ValueTypeWorkerInit:           "worker_init",
	ValueTypeExtensions:           "extensions",
	ValueTypeFutureExtensions:     "future_extensions",
	ValueTypeAuthority:            "authority",
	ValueTypePredicateList:        "predicate_list",
	ValueTypeAccountIdSet:         "account_id_set",
	ValueTypePublicKeySet:         "public_key_set",
}

func (t ValueType) String() string {
	if n, ok := valueTypeNames[t]; ok {
		return n
	}
	return "invalid"
}

// ParseValueType resolves a wire name back to a type tag.
func ParseValueType(s string) (ValueType, error) {
	for t, n := range valueTypeNames {
		if n == s {
			return t, nil
		}
	}
	return ValueTypeInvalid, fmt.Errorf("codec: unknown value type %q", s)
}

// IsSet reports whether the type is a set container.
func (t ValueType) IsSet() bool {
	switch t {
	case ValueTypeAccountIdSet, ValueTypePublicKeySet:
		return true
	}
	return false
}

// ElemType returns the element type of a set container.
func (t ValueType) ElemType() ValueType {
	switch t {
	case ValueTypeAccountIdSet:
		return ValueTypeAccountId
	case ValueTypePublicKeySet:
		return ValueTypePublicKey
	default:
		return ValueTypeInvalid
	}
}

// IsRestrictable reports whether the type participates in equality based
// restrictions. Extension slots and predicate lists are opaque to the
// restriction engine.
func (t ValueType) IsRestrictable() bool {
	switch t {
	case ValueTypeExtensions, ValueTypeFutureExtensions, ValueTypePredicateList, ValueTypeInvalid:
		return false
	}
	return true
}

// Value is the closed union of scalar and composite values a restriction
// may carry as operand or read from an operation field.
type Value struct {
	typ ValueType

	// variant storage, only one group is active depending on typ
	num      uint64
	str      string
	blob     []byte
	key      bitshares.PublicKey
	asset    bitshares.Asset
	price    bitshares.Price
	feed     bitshares.PriceFeed
	vesting  bitshares.VestingPolicyInit
	worker   bitshares.WorkerInit
	ext      bitshares.Extensions
	futExt   bitshares.FutureExtension
	auth     bitshares.Authority
	preds    bitshares.PredicateList
	accounts []bitshares.AccountID
	keys     []bitshares.PublicKey
}

func (v Value) Type() ValueType { return v.typ }

// Scalar constructors.
func NewU8(x uint8) Value            { return Value{typ: ValueTypeU8, num: uint64(x)} }
func NewU16(x uint16) Value          { return Value{typ: ValueTypeU16, num: uint64(x)} }
func NewU32(x uint32) Value          { return Value{typ: ValueTypeU32, num: uint64(x)} }
func NewUnsignedVarInt(x uint64) Value { return Value{typ: ValueTypeUnsignedVarInt, num: x} }
func NewBool(x bool) Value {
	var n uint64
	if x {
		n = 1
	}
	return Value{typ: ValueTypeBool, num: n}
}
func NewTimePointSec(t bitshares.TimePointSec) Value {
	return Value{typ: ValueTypeTimePointSec, num: uint64(t)}
}
func NewShareType(x bitshares.ShareType) Value {
	return Value{typ: ValueTypeShareType, num: uint64(x)}
}

// Typed id constructors.
func NewAssetId(id bitshares.AssetID) Value { return Value{typ: ValueTypeAssetId, num: uint64(id)} }
func NewAccountId(id bitshares.AccountID) Value {
	return Value{typ: ValueTypeAccountId, num: uint64(id)}
}
func NewBalanceId(id bitshares.BalanceID) Value {
	return Value{typ: ValueTypeBalanceId, num: uint64(id)}
}
func NewProposalId(id bitshares.ProposalID) Value {
	return Value{typ: ValueTypeProposalId, num: uint64(id)}
}
func NewFbaAccumulatorId(id bitshares.FbaAccumulatorID) Value {
	return Value{typ: ValueTypeFbaAccumulatorId, num: uint64(id)}
}
func NewLimitOrderId(id bitshares.LimitOrderID) Value {
	return Value{typ: ValueTypeLimitOrderId, num: uint64(id)}
}
func NewWithdrawPermissionId(id bitshares.WithdrawPermissionID) Value {
	return Value{typ: ValueTypeWithdrawPermissionId, num: uint64(id)}
}
func NewWitnessId(id bitshares.WitnessID) Value {
	return Value{typ: ValueTypeWitnessId, num: uint64(id)}
}
func NewForceSettlementId(id bitshares.ForceSettlementID) Value {
	return Value{typ: ValueTypeForceSettlementId, num: uint64(id)}
}
func NewCommitteeMemberId(id bitshares.CommitteeMemberID) Value {
	return Value{typ: ValueTypeCommitteeMemberId, num: uint64(id)}
}

// Composite constructors.
func NewPublicKey(k bitshares.PublicKey) Value  { return Value{typ: ValueTypePublicKey, key: k} }
func NewBytes(b []byte) Value                   { return Value{typ: ValueTypeBytes, blob: b} }
func NewText(s string) Value                    { return Value{typ: ValueTypeText, str: s} }
func NewAsset(a bitshares.Asset) Value          { return Value{typ: ValueTypeAsset, asset: a} }
func NewPrice(p bitshares.Price) Value          { return Value{typ: ValueTypePrice, price: p} }
func NewPriceFeed(f bitshares.PriceFeed) Value  { return Value{typ: ValueTypePriceFeed, feed: f} }
func NewVestingPolicyInit(p bitshares.VestingPolicyInit) Value {
	return Value{typ: ValueTypeVestingPolicyInit, vesting: p}
}
func NewWorkerInit(w bitshares.WorkerInit) Value { return Value{typ: ValueTypeWorkerInit, worker: w} }
func NewExtensions(e bitshares.Extensions) Value { return Value{typ: ValueTypeExtensions, ext: e} }
func NewFutureExtensions(e bitshares.FutureExtension) Value {
	return Value{typ: ValueTypeFutureExtensions, futExt: e}
}
func NewAuthority(a bitshares.Authority) Value { return Value{typ: ValueTypeAuthority, auth: a} }
func NewPredicateList(l bitshares.PredicateList) Value {
	return Value{typ: ValueTypePredicateList, preds: l}
}

// Set constructors keep elements sorted so equality and serialization are
// canonical regardless of input order.
func NewAccountIdSet(ids []bitshares.AccountID) Value {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return Value{typ: ValueTypeAccountIdSet, accounts: slices.Compact(sorted)}
}

func NewPublicKeySet(keys []bitshares.PublicKey) Value {
	sorted := slices.Clone(keys)
	slices.SortFunc(sorted, func(x, y bitshares.PublicKey) int {
		return bytes.Compare(x.Bytes(), y.Bytes())
	})
	return Value{typ: ValueTypePublicKeySet, keys: slices.Compact(sorted)}
}

// Accessors. Callers are expected to check Type first; a mismatched
// accessor returns the zero value.
func (v Value) Uint64() uint64                       { return v.num }
func (v Value) Bool() bool                           { return v.num != 0 }
func (v Value) Text() string                         { return v.str }
func (v Value) Bytes() []byte                        { return v.blob }
func (v Value) Key() bitshares.PublicKey             { return v.key }
func (v Value) Asset() bitshares.Asset               { return v.asset }
func (v Value) Price() bitshares.Price               { return v.price }
func (v Value) Feed() bitshares.PriceFeed            { return v.feed }
func (v Value) Time() bitshares.TimePointSec         { return bitshares.TimePointSec(v.num) }
func (v Value) Share() bitshares.ShareType           { return bitshares.ShareType(v.num) }
func (v Value) Vesting() bitshares.VestingPolicyInit { return v.vesting }
func (v Value) Worker() bitshares.WorkerInit         { return v.worker }
func (v Value) Extensions() bitshares.Extensions     { return v.ext }
func (v Value) FutureExt() bitshares.FutureExtension { return v.futExt }
func (v Value) Authority() bitshares.Authority       { return v.auth }
func (v Value) Predicates() bitshares.PredicateList  { return v.preds }
func (v Value) AccountSet() []bitshares.AccountID    { return v.accounts }
func (v Value) KeySet() []bitshares.PublicKey        { return v.keys }

func (v Value) String() string {
	switch v.typ {
	case ValueTypeText:
		return fmt.Sprintf("%s(%q)", v.typ, v.str)
	case ValueTypeBytes:
		return fmt.Sprintf("%s(%x)", v.typ, v.blob)
	case ValueTypeBool:
		return fmt.Sprintf("%s(%t)", v.typ, v.Bool())
	case ValueTypeAsset:
		return fmt.Sprintf("%s(%s)", v.typ, v.asset)
	case ValueTypePublicKey:
		return fmt.Sprintf("%s(%s)", v.typ, v.key)
	case ValueTypeTimePointSec:
		return fmt.Sprintf("%s(%s)", v.typ, v.Time())
	case ValueTypeAccountIdSet:
		return fmt.Sprintf("%s(%v)", v.typ, v.accounts)
	default:
		return fmt.Sprintf("%s(%d)", v.typ, v.num)
	}
}

// Equal implements the value model equality: same variant and variant
// equality. Cross-variant comparison is always false, never an error.
func Equal(a, b Value) bool {
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case ValueTypeText:
		return a.str == b.str
	case ValueTypeBytes:
		return bytes.Equal(a.blob, b.blob)
	case ValueTypePublicKey:
		return a.key == b.key
	case ValueTypeAsset:
		return a.asset.Equal(b.asset)
	case ValueTypePrice:
		return a.price.Equal(b.price)
	case ValueTypePriceFeed:
		return a.feed.Equal(b.feed)
	case ValueTypeVestingPolicyInit:
		return a.vesting.Equal(b.vesting)
	case ValueTypeWorkerInit:
		return a.worker.Equal(b.worker)
	case ValueTypeExtensions:
		return a.ext.Equal(b.ext)
	case ValueTypeFutureExtensions:
		return a.futExt.Equal(b.futExt)
	case ValueTypeAuthority:
		return a.auth.Equal(b.auth)
	case ValueTypePredicateList:
		return a.preds.Equal(b.preds)
	case ValueTypeAccountIdSet:
		return slices.Equal(a.accounts, b.accounts)
	case ValueTypePublicKeySet:
		return slices.Equal(a.keys, b.keys)
	default:
		return a.num == b.num
	}
}

// ToInt64 projects a value onto a single comparable dimension for ordered
// restrictions: numbers cast directly, text, bytes and containers report
// their length in elements, reflected structs report their serialized
// byte size. Bool, keys, ids and time do not project. The struct rule is
// odd but observable on chain, keep it.
func ToInt64(v Value) (int64, error) {
	switch v.typ {
	case ValueTypeU8, ValueTypeU16, ValueTypeU32, ValueTypeUnsignedVarInt:
		return int64(v.num), nil
	case ValueTypeShareType:
		return int64(bitshares.ShareType(v.num)), nil
	case ValueTypeText:
		return int64(len(v.str)), nil
	case ValueTypeBytes:
		return int64(len(v.blob)), nil
	case ValueTypeExtensions:
		return int64(len(v.ext)), nil
	case ValueTypePredicateList:
		return int64(len(v.preds)), nil
	case ValueTypeAccountIdSet:
		return int64(len(v.accounts)), nil
	case ValueTypePublicKeySet:
		return int64(len(v.keys)), nil
	case ValueTypeAsset, ValueTypePrice, ValueTypePriceFeed,
		ValueTypeVestingPolicyInit, ValueTypeWorkerInit,
		ValueTypeFutureExtensions, ValueTypeAuthority:
		buf := bytes.NewBuffer(nil)
		v.encodePayload(buf)
		return int64(buf.Len()), nil
	default:
		return 0, bitshares.Errorf(bitshares.ErrTypeNotComparable,
			"type %s does not project to an integer", v.typ)
	}
}

// Contains reports whether a set-typed value contains w as a member.
// A non-set receiver is an error, a cross-typed member is simply absent.
func (v Value) Contains(w Value) (bool, error) {
	switch v.typ {
	case ValueTypeAccountIdSet:
		if w.typ != ValueTypeAccountId {
			return false, nil
		}
		_, ok := slices.BinarySearch(v.accounts, bitshares.AccountID(w.num))
		return ok, nil
	case ValueTypePublicKeySet:
		if w.typ != ValueTypePublicKey {
			return false, nil
		}
		return slices.Contains(v.keys, w.key), nil
	default:
		return false, bitshares.Errorf(bitshares.ErrListRestrictionOnNonList,
			"type %s is not a set", v.typ)
	}
}
