// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// EncodeBuffer writes the value as variant tag plus payload.
func (v Value) EncodeBuffer(buf *bytes.Buffer) error {
	buf.WriteByte(byte(v.typ))
	v.encodePayload(buf)
	return nil
}

func (v Value) encodePayload(buf *bytes.Buffer) {
	switch v.typ {
	case ValueTypeU8:
		buf.WriteByte(byte(v.num))
	case ValueTypeU16:
		writeU16(buf, uint16(v.num))
	case ValueTypeU32, ValueTypeTimePointSec:
		writeU32(buf, uint32(v.num))
	case ValueTypeUnsignedVarInt:
		writeUvarint(buf, v.num)
	case ValueTypeAssetId, ValueTypeAccountId, ValueTypeBalanceId,
		ValueTypeProposalId, ValueTypeFbaAccumulatorId, ValueTypeLimitOrderId,
		ValueTypeWithdrawPermissionId, ValueTypeWitnessId,
		ValueTypeForceSettlementId, ValueTypeCommitteeMemberId:
		writeU64(buf, v.num)
	case ValueTypePublicKey:
		buf.Write(v.key.Bytes())
	case ValueTypeBool:
		writeBool(buf, v.num != 0)
	case ValueTypeBytes:
		writeByteSlice(buf, v.blob)
	case ValueTypeText:
		writeString(buf, v.str)
	case ValueTypeAsset:
		encodeAsset(buf, v.asset)
	case ValueTypePrice:
		encodePrice(buf, v.price)
	case ValueTypePriceFeed:
		encodePrice(buf, v.feed.SettlementPrice)
		writeU16(buf, v.feed.MaintenanceCollateralRatio)
		writeU16(buf, v.feed.MaximumShortSqueezeRatio)
		encodePrice(buf, v.feed.CoreExchangeRate)
	case ValueTypeShareType:
		writeI64(buf, int64(bitshares.ShareType(v.num)))
	case ValueTypeVestingPolicyInit:
		buf.WriteByte(byte(v.vesting.Kind))
		writeU32(buf, uint32(v.vesting.BeginTimestamp))
		writeU32(buf, v.vesting.VestingCliffSeconds)
		writeU32(buf, v.vesting.VestingDurationSeconds)
		writeU32(buf, uint32(v.vesting.StartClaim))
		writeU32(buf, v.vesting.VestingSeconds)
	case ValueTypeWorkerInit:
		buf.WriteByte(byte(v.worker.Kind))
		writeU16(buf, v.worker.PayVestingPeriodDays)
	case ValueTypeExtensions:
		encodeExtensions(buf, v.ext)
	case ValueTypeFutureExtensions:
		buf.WriteByte(v.futExt.Tag)
		writeByteSlice(buf, v.futExt.Data)
	case ValueTypeAuthority:
		encodeAuthority(buf, v.auth)
	case ValueTypePredicateList:
		encodePredicates(buf, v.preds)
	case ValueTypeAccountIdSet:
		writeUvarint(buf, uint64(len(v.accounts)))
		for _, id := range v.accounts {
			writeU64(buf, uint64(id))
		}
	case ValueTypePublicKeySet:
		writeUvarint(buf, uint64(len(v.keys)))
		for _, k := range v.keys {
			buf.Write(k.Bytes())
		}
	}
}

// DecodeBuffer reads a value in tag plus payload form.
func (v *Value) DecodeBuffer(buf *bytes.Buffer) error {
	tag, err := buf.ReadByte()
	if err != nil {
		return err
	}
	typ := ValueType(tag)
	if _, ok := valueTypeNames[typ]; !ok {
		return fmt.Errorf("codec: unsupported value tag %d", tag)
	}
	*v = Value{typ: typ}
	switch typ {
	case ValueTypeU8:
		b, err := buf.ReadByte()
		if err != nil {
			return err
		}
		v.num = uint64(b)
	case ValueTypeU16:
		x, err := readU16(buf)
		if err != nil {
			return err
		}
		v.num = uint64(x)
	case ValueTypeU32, ValueTypeTimePointSec:
		x, err := readU32(buf)
		if err != nil {
			return err
		}
		v.num = uint64(x)
	case ValueTypeUnsignedVarInt:
		x, err := readUvarint(buf)
		if err != nil {
			return err
		}
		v.num = x
	case ValueTypeAssetId, ValueTypeAccountId, ValueTypeBalanceId,
		ValueTypeProposalId, ValueTypeFbaAccumulatorId, ValueTypeLimitOrderId,
		ValueTypeWithdrawPermissionId, ValueTypeWitnessId,
		ValueTypeForceSettlementId, ValueTypeCommitteeMemberId:
		x, err := readU64(buf)
		if err != nil {
			return err
		}
		v.num = x
	case ValueTypePublicKey:
		b := buf.Next(33)
		if len(b) < 33 {
			return io.ErrShortBuffer
		}
		v.key = bitshares.NewPublicKey(b)
	case ValueTypeBool:
		ok, err := readBool(buf)
		if err != nil {
			return err
		}
		if ok {
			v.num = 1
		}
	case ValueTypeBytes:
		b, err := readByteSlice(buf)
		if err != nil {
			return err
		}
		v.blob = b
	case ValueTypeText:
		s, err := readString(buf)
		if err != nil {
			return err
		}
		v.str = s
	case ValueTypeAsset:
		if err := decodeAsset(buf, &v.asset); err != nil {
			return err
		}
	case ValueTypePrice:
		if err := decodePrice(buf, &v.price); err != nil {
			return err
		}
	case ValueTypePriceFeed:
		if err := decodePrice(buf, &v.feed.SettlementPrice); err != nil {
			return err
		}
		if v.feed.MaintenanceCollateralRatio, err = readU16(buf); err != nil {
			return err
		}
		if v.feed.MaximumShortSqueezeRatio, err = readU16(buf); err != nil {
			return err
		}
		if err := decodePrice(buf, &v.feed.CoreExchangeRate); err != nil {
			return err
		}
	case ValueTypeShareType:
		x, err := readI64(buf)
		if err != nil {
			return err
		}
		v.num = uint64(x)
	case ValueTypeVestingPolicyInit:
		kind, err := buf.ReadByte()
		if err != nil {
			return err
		}
		v.vesting.Kind = bitshares.VestingPolicyKind(kind)
		var x uint32
		if x, err = readU32(buf); err != nil {
			return err
		}
		v.vesting.BeginTimestamp = bitshares.TimePointSec(x)
		if v.vesting.VestingCliffSeconds, err = readU32(buf); err != nil {
			return err
		}
		if v.vesting.VestingDurationSeconds, err = readU32(buf); err != nil {
			return err
		}
		if x, err = readU32(buf); err != nil {
			return err
		}
		v.vesting.StartClaim = bitshares.TimePointSec(x)
		if v.vesting.VestingSeconds, err = readU32(buf); err != nil {
			return err
		}
	case ValueTypeWorkerInit:
		kind, err := buf.ReadByte()
		if err != nil {
			return err
		}
		v.worker.Kind = bitshares.WorkerInitKind(kind)
		if v.worker.PayVestingPeriodDays, err = readU16(buf); err != nil {
			return err
		}
	case ValueTypeExtensions:
		ext, err := decodeExtensions(buf)
		if err != nil {
			return err
		}
		v.ext = ext
	case ValueTypeFutureExtensions:
		tag, err := buf.ReadByte()
		if err != nil {
			return err
		}
		v.futExt.Tag = tag
		if v.futExt.Data, err = readByteSlice(buf); err != nil {
			return err
		}
	case ValueTypeAuthority:
		if err := decodeAuthority(buf, &v.auth); err != nil {
			return err
		}
	case ValueTypePredicateList:
		preds, err := decodePredicates(buf)
		if err != nil {
			return err
		}
		v.preds = preds
	case ValueTypeAccountIdSet:
		n, err := readUvarint(buf)
		if err != nil {
			return err
		}
		ids := make([]bitshares.AccountID, 0, n)
		for i := uint64(0); i < n; i++ {
			x, err := readU64(buf)
			if err != nil {
				return err
			}
			ids = append(ids, bitshares.AccountID(x))
		}
		v.accounts = ids
	case ValueTypePublicKeySet:
		n, err := readUvarint(buf)
		if err != nil {
			return err
		}
		keys := make([]bitshares.PublicKey, 0, n)
		for i := uint64(0); i < n; i++ {
			b := buf.Next(33)
			if len(b) < 33 {
				return io.ErrShortBuffer
			}
			keys = append(keys, bitshares.NewPublicKey(b))
		}
		v.keys = keys
	}
	return nil
}

func encodeAsset(buf *bytes.Buffer, a bitshares.Asset) {
	writeI64(buf, int64(a.Amount))
	writeU64(buf, uint64(a.AssetID))
}

func decodeAsset(buf *bytes.Buffer, a *bitshares.Asset) error {
	amount, err := readI64(buf)
	if err != nil {
		return err
	}
	id, err := readU64(buf)
	if err != nil {
		return err
	}
	a.Amount = bitshares.ShareType(amount)
	a.AssetID = bitshares.AssetID(id)
	return nil
}

func encodePrice(buf *bytes.Buffer, p bitshares.Price) {
	encodeAsset(buf, p.Base)
	encodeAsset(buf, p.Quote)
}

func decodePrice(buf *bytes.Buffer, p *bitshares.Price) error {
	if err := decodeAsset(buf, &p.Base); err != nil {
		return err
	}
	return decodeAsset(buf, &p.Quote)
}

func encodeExtensions(buf *bytes.Buffer, ext bitshares.Extensions) {
	writeUvarint(buf, uint64(len(ext)))
	for _, e := range ext {
		buf.WriteByte(e.Tag)
		writeByteSlice(buf, e.Data)
	}
}

func decodeExtensions(buf *bytes.Buffer) (bitshares.Extensions, error) {
	n, err := readUvarint(buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	ext := make(bitshares.Extensions, 0, n)
	for i := uint64(0); i < n; i++ {
		tag, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		data, err := readByteSlice(buf)
		if err != nil {
			return nil, err
		}
		ext = append(ext, bitshares.FutureExtension{Tag: tag, Data: data})
	}
	return ext, nil
}

func encodeAuthority(buf *bytes.Buffer, a bitshares.Authority) {
	writeU32(buf, a.WeightThreshold)
	accounts := a.SortedAccountAuths()
	writeUvarint(buf, uint64(len(accounts)))
	for _, id := range accounts {
		writeU64(buf, uint64(id))
		writeU16(buf, a.AccountAuths[id])
	}
	keys := a.SortedKeyAuths()
	writeUvarint(buf, uint64(len(keys)))
	for _, k := range keys {
		buf.Write(k.Bytes())
		writeU16(buf, a.KeyAuths[k])
	}
	addrs := a.SortedAddressAuths()
	writeUvarint(buf, uint64(len(addrs)))
	for _, addr := range addrs {
		writeString(buf, addr)
		writeU16(buf, a.AddressAuths[addr])
	}
}

func decodeAuthority(buf *bytes.Buffer, a *bitshares.Authority) (err error) {
	if a.WeightThreshold, err = readU32(buf); err != nil {
		return
	}
	n, err := readUvarint(buf)
	if err != nil {
		return err
	}
	if n > 0 {
		a.AccountAuths = make(map[bitshares.AccountID]uint16, n)
		for i := uint64(0); i < n; i++ {
			id, err := readU64(buf)
			if err != nil {
				return err
			}
			w, err := readU16(buf)
			if err != nil {
				return err
			}
			a.AccountAuths[bitshares.AccountID(id)] = w
		}
	}
	if n, err = readUvarint(buf); err != nil {
		return err
	}
	if n > 0 {
		a.KeyAuths = make(map[bitshares.PublicKey]uint16, n)
		for i := uint64(0); i < n; i++ {
			b := buf.Next(33)
			if len(b) < 33 {
				return io.ErrShortBuffer
			}
			w, err := readU16(buf)
			if err != nil {
				return err
			}
			a.KeyAuths[bitshares.NewPublicKey(b)] = w
		}
	}
	if n, err = readUvarint(buf); err != nil {
		return err
	}
	if n > 0 {
		a.AddressAuths = make(map[string]uint16, n)
		for i := uint64(0); i < n; i++ {
			addr, err := readString(buf)
			if err != nil {
				return err
			}
			w, err := readU16(buf)
			if err != nil {
				return err
			}
			a.AddressAuths[addr] = w
		}
	}
	return nil
}

func encodePredicates(buf *bytes.Buffer, preds bitshares.PredicateList) {
	writeUvarint(buf, uint64(len(preds)))
	for _, p := range preds {
		buf.WriteByte(byte(p.Kind))
		writeU64(buf, p.Id)
		writeString(buf, p.Literal)
	}
}

func decodePredicates(buf *bytes.Buffer) (bitshares.PredicateList, error) {
	n, err := readUvarint(buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	preds := make(bitshares.PredicateList, 0, n)
	for i := uint64(0); i < n; i++ {
		kind, err := buf.ReadByte()
		if err != nil {
			return nil, err
		}
		id, err := readU64(buf)
		if err != nil {
			return nil, err
		}
		lit, err := readString(buf)
		if err != nil {
			return nil, err
		}
		preds = append(preds, bitshares.Predicate{
			Kind:    bitshares.PredicateKind(kind),
			Id:      id,
			Literal: lit,
		})
	}
	return preds, nil
}
