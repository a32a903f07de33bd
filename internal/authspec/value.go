// Copyright (c) 2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc, abdul@blockwatch.cc

package authspec

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/chainsquad/bitshares-core/bitshares"
	"github.com/chainsquad/bitshares-core/codec"
)

// ParseValue turns a typed value spec into a value union member.
func ParseValue(spec ValueSpec) (codec.Value, error) {
	typ, err := codec.ParseValueType(spec.Type)
	if err != nil {
		return codec.Value{}, err
	}
	switch typ {
	case codec.ValueTypeU8:
		v, err := strconv.ParseUint(spec.Value, 10, 8)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewU8(uint8(v)), nil
	case codec.ValueTypeU16:
		v, err := strconv.ParseUint(spec.Value, 10, 16)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewU16(uint16(v)), nil
	case codec.ValueTypeU32:
		v, err := strconv.ParseUint(spec.Value, 10, 32)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewU32(uint32(v)), nil
	case codec.ValueTypeUnsignedVarInt:
		v, err := strconv.ParseUint(spec.Value, 10, 64)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewUnsignedVarInt(v), nil
	case codec.ValueTypeShareType:
		v, err := strconv.ParseInt(spec.Value, 10, 64)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewShareType(bitshares.ShareType(v)), nil
	case codec.ValueTypeAccountId:
		id, err := bitshares.ParseAccountID(spec.Value)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewAccountId(id), nil
	case codec.ValueTypeAssetId:
		id, err := bitshares.ParseAssetID(spec.Value)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewAssetId(id), nil
	case codec.ValueTypeBalanceId, codec.ValueTypeProposalId,
		codec.ValueTypeFbaAccumulatorId, codec.ValueTypeLimitOrderId,
		codec.ValueTypeWithdrawPermissionId, codec.ValueTypeWitnessId,
		codec.ValueTypeForceSettlementId, codec.ValueTypeCommitteeMemberId:
		return parseInstanceId(typ, spec.Value)
	case codec.ValueTypePublicKey:
		key, err := bitshares.ParsePublicKey(spec.Value)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewPublicKey(key), nil
	case codec.ValueTypeTimePointSec:
		t, err := bitshares.ParseTimePointSec(spec.Value)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewTimePointSec(t), nil
	case codec.ValueTypeBool:
		b, err := strconv.ParseBool(spec.Value)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewBool(b), nil
	case codec.ValueTypeBytes:
		buf, err := hex.DecodeString(spec.Value)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewBytes(buf), nil
	case codec.ValueTypeText:
		return codec.NewText(spec.Value), nil
	case codec.ValueTypeAsset:
		a, err := parseAsset(spec.Value)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.NewAsset(a), nil
	case codec.ValueTypeAccountIdSet:
		ids := make([]bitshares.AccountID, 0, len(spec.Values))
		for _, s := range spec.Values {
			id, err := bitshares.ParseAccountID(s)
			if err != nil {
				return codec.Value{}, err
			}
			ids = append(ids, id)
		}
		return codec.NewAccountIdSet(ids), nil
	case codec.ValueTypePublicKeySet:
		keys := make([]bitshares.PublicKey, 0, len(spec.Values))
		for _, s := range spec.Values {
			key, err := bitshares.ParsePublicKey(s)
			if err != nil {
				return codec.Value{}, err
			}
			keys = append(keys, key)
		}
		return codec.NewPublicKeySet(keys), nil
	default:
		return codec.Value{}, errors.Errorf("value type %s is not supported in spec files", typ)
	}
}

func parseInstanceId(typ codec.ValueType, s string) (codec.Value, error) {
	v, err := bitshares.ParseInstance(s)
	if err != nil {
		return codec.Value{}, err
	}
	switch typ {
	case codec.ValueTypeBalanceId:
		return codec.NewBalanceId(bitshares.BalanceID(v)), nil
	case codec.ValueTypeProposalId:
		return codec.NewProposalId(bitshares.ProposalID(v)), nil
	case codec.ValueTypeFbaAccumulatorId:
		return codec.NewFbaAccumulatorId(bitshares.FbaAccumulatorID(v)), nil
	case codec.ValueTypeLimitOrderId:
		return codec.NewLimitOrderId(bitshares.LimitOrderID(v)), nil
	case codec.ValueTypeWithdrawPermissionId:
		return codec.NewWithdrawPermissionId(bitshares.WithdrawPermissionID(v)), nil
	case codec.ValueTypeWitnessId:
		return codec.NewWitnessId(bitshares.WitnessID(v)), nil
	case codec.ValueTypeForceSettlementId:
		return codec.NewForceSettlementId(bitshares.ForceSettlementID(v)), nil
	default:
		return codec.NewCommitteeMemberId(bitshares.CommitteeMemberID(v)), nil
	}
}

// parseAsset accepts "100" for the core asset or "100 1.3.5".
func parseAsset(s string) (a bitshares.Asset, err error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return a, errors.New("empty asset value")
	}
	amount, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return
	}
	a.Amount = bitshares.ShareType(amount)
	if len(fields) > 1 {
		if a.AssetID, err = bitshares.ParseAssetID(fields[1]); err != nil {
			return
		}
	}
	return
}
