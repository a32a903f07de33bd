// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// Assert represents the "assert" operation which makes a transaction
// fail unless all predicates hold and all required auths approve.
type Assert struct {
	FeeAsset         bitshares.Asset         `json:"fee"`
	FeePayingAccount bitshares.AccountID     `json:"fee_paying_account"`
	Predicates       bitshares.PredicateList `json:"predicates"`
	RequiredAuths    []bitshares.AccountID   `json:"required_auths"`
	Extensions       bitshares.Extensions    `json:"extensions"`
}

func (o Assert) Kind() OpType                  { return OpTypeAssert }
func (o Assert) Fee() bitshares.Asset          { return o.FeeAsset }
func (o Assert) FeePayer() bitshares.AccountID { return o.FeePayingAccount }

func (o Assert) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	return nil
}

func (o Assert) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.FeePayingAccount))
	encodePredicates(buf, o.Predicates)
	sorted := slices.Clone(o.RequiredAuths)
	slices.Sort(sorted)
	writeUvarint(buf, uint64(len(sorted)))
	for _, id := range sorted {
		writeU64(buf, uint64(id))
	}
	encodeExtensions(buf, o.Extensions)
	return nil
}

func (o *Assert) DecodeBuffer(buf *bytes.Buffer) (err error) {
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
	o.FeePayingAccount = bitshares.AccountID(x)
	if o.Predicates, err = decodePredicates(buf); err != nil {
		return
	}
	var n uint64
	if n, err = readUvarint(buf); err != nil {
		return
	}
	if n > 0 {
		o.RequiredAuths = make([]bitshares.AccountID, 0, n)
		for i := uint64(0); i < n; i++ {
			if x, err = readU64(buf); err != nil {
				return
			}
			o.RequiredAuths = append(o.RequiredAuths, bitshares.AccountID(x))
		}
	}
	o.Extensions, err = decodeExtensions(buf)
	return
}

func (o Assert) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *Assert) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeAssert,
		New:    func() Operation { return new(Assert) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "fee_paying_account", Type: ValueTypeAccountId},
			{Name: "predicates", Type: ValueTypePredicateList},
			{Name: "required_auths", Type: ValueTypeAccountIdSet},
			{Name: "extensions", Type: ValueTypeExtensions},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*Assert)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "fee_paying_account":
				return NewAccountId(o.FeePayingAccount), true
			case "predicates":
				return NewPredicateList(o.Predicates), true
			case "required_auths":
				return NewAccountIdSet(o.RequiredAuths), true
			case "extensions":
				return NewExtensions(o.Extensions), true
			}
			return Value{}, false
		},
	})
}
