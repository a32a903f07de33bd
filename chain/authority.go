// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package chain

import (
	"bytes"

	"github.com/chainsquad/bitshares-core/bitshares"
	"github.com/chainsquad/bitshares-core/codec"
)

// CustomAuthority is the stored custom authority record. It binds an
// account to one operation type, a validity window and a conjunctive
// restriction list. The serialized field order is consensus visible, do
// not reorder.
type CustomAuthority struct {
	Id            bitshares.AuthorityID  `json:"id"`
	Account       bitshares.AccountID    `json:"account"`
	Enabled       bool                   `json:"enabled"`
	ValidFrom     bitshares.TimePointSec `json:"valid_from"`
	ValidTo       bitshares.TimePointSec `json:"valid_to"`
	OperationType codec.OpType           `json:"operation_type"`
	Restrictions  []codec.Restriction    `json:"restrictions"`
}

// Validate checks whether this authority applies to a concrete operation
// at time now: the window must be current, the operation type must match
// and all restrictions must hold. The first failing restriction wins and
// its error carries the restriction index.
//
// The enabled flag is deliberately not checked here, the transaction
// pipeline filters on it before calling in.
func (a *CustomAuthority) Validate(op codec.Operation, now bitshares.TimePointSec) error {
	if now < a.ValidFrom || a.ValidTo < now {
		return bitshares.Errorf(bitshares.ErrOutOfWindow,
			"now %s outside window [%s, %s]", now, a.ValidFrom, a.ValidTo)
	}
	if op.Kind() != a.OperationType {
		return bitshares.Errorf(bitshares.ErrOperationTypeMismatch,
			"authority is for %s, operation is %s", a.OperationType, op.Kind()).
			WithOpType(uint32(op.Kind()))
	}
	return codec.EvaluateAll(a.Restrictions, op)
}

// Equal compares two records field by field.
func (a *CustomAuthority) Equal(b *CustomAuthority) bool {
	if a.Id != b.Id || a.Account != b.Account || a.Enabled != b.Enabled ||
		a.ValidFrom != b.ValidFrom || a.ValidTo != b.ValidTo ||
		a.OperationType != b.OperationType ||
		len(a.Restrictions) != len(b.Restrictions) {
		return false
	}
	for i := range a.Restrictions {
		if !a.Restrictions[i].Equal(b.Restrictions[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep enough copy for store isolation.
func (a *CustomAuthority) Clone() *CustomAuthority {
	clone := *a
	clone.Restrictions = make([]codec.Restriction, len(a.Restrictions))
	copy(clone.Restrictions, a.Restrictions)
	return &clone
}

// MarshalBinary serializes the record deterministically in the order
// id, account, enabled, valid_from, valid_to, operation_type,
// restrictions.
func (a *CustomAuthority) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	writeU64(buf, uint64(a.Id))
	writeU64(buf, uint64(a.Account))
	if a.Enabled {
		buf.WriteByte(0x01)
	} else {
		buf.WriteByte(0x00)
	}
	writeU32(buf, uint32(a.ValidFrom))
	writeU32(buf, uint32(a.ValidTo))
	writeU32(buf, uint32(a.OperationType))
	writeUvarint(buf, uint64(len(a.Restrictions)))
	for _, r := range a.Restrictions {
		if err := r.EncodeBuffer(buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary reverses MarshalBinary.
func (a *CustomAuthority) UnmarshalBinary(data []byte) error {
	buf := bytes.NewBuffer(data)
	id, err := readU64(buf)
	if err != nil {
		return err
	}
	a.Id = bitshares.AuthorityID(id)
	acc, err := readU64(buf)
	if err != nil {
		return err
	}
	a.Account = bitshares.AccountID(acc)
	flag, err := buf.ReadByte()
	if err != nil {
		return err
	}
	a.Enabled = flag != 0
	t, err := readU32(buf)
	if err != nil {
		return err
	}
	a.ValidFrom = bitshares.TimePointSec(t)
	if t, err = readU32(buf); err != nil {
		return err
	}
	a.ValidTo = bitshares.TimePointSec(t)
	if t, err = readU32(buf); err != nil {
		return err
	}
	a.OperationType = codec.OpType(t)
	n, err := readUvarint(buf)
	if err != nil {
		return err
	}
	a.Restrictions = nil
	if n > 0 {
		a.Restrictions = make([]codec.Restriction, n)
		for i := range a.Restrictions {
			if err := a.Restrictions[i].DecodeBuffer(buf); err != nil {
				return err
			}
		}
	}
	return nil
}
