// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package bitshares

import (
	"bytes"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Authority is a weighted signing requirement. A combined weight of at
// least WeightThreshold across satisfied entries approves an action.
// Address auths are a legacy slot that must stay empty in new records.
type Authority struct {
	WeightThreshold uint32                `json:"weight_threshold"`
	AccountAuths    map[AccountID]uint16  `json:"account_auths,omitempty"`
	KeyAuths        map[PublicKey]uint16  `json:"key_auths,omitempty"`
	AddressAuths    map[string]uint16     `json:"address_auths,omitempty"`
}

// NumAuths counts all entries across auth classes.
func (a Authority) NumAuths() int {
	return len(a.AccountAuths) + len(a.KeyAuths) + len(a.AddressAuths)
}

func (a Authority) Equal(b Authority) bool {
	return a.WeightThreshold == b.WeightThreshold &&
		maps.Equal(a.AccountAuths, b.AccountAuths) &&
		maps.Equal(a.KeyAuths, b.KeyAuths) &&
		maps.Equal(a.AddressAuths, b.AddressAuths)
}

// SortedAccountAuths returns account auth keys in ascending order for
// deterministic serialization.
func (a Authority) SortedAccountAuths() []AccountID {
	ids := maps.Keys(a.AccountAuths)
	slices.Sort(ids)
	return ids
}

// SortedKeyAuths returns key auth keys in ascending byte order for
// deterministic serialization.
func (a Authority) SortedKeyAuths() []PublicKey {
	keys := maps.Keys(a.KeyAuths)
	slices.SortFunc(keys, func(x, y PublicKey) int {
		return bytes.Compare(x[:], y[:])
	})
	return keys
}

// SortedAddressAuths returns address auth keys in ascending order.
func (a Authority) SortedAddressAuths() []string {
	addrs := maps.Keys(a.AddressAuths)
	slices.Sort(addrs)
	return addrs
}

// PredicateKind selects an assert predicate variant.
type PredicateKind byte

const (
	PredicateAccountNameEq PredicateKind = iota
	PredicateAssetSymbolEq
	PredicateBlockID
)

// Predicate is a single assert-operation condition. Id and Literal are
// used depending on Kind.
type Predicate struct {
	Kind    PredicateKind `json:"kind"`
	Id      uint64        `json:"id,omitempty"`
	Literal string        `json:"literal,omitempty"`
}

// PredicateList is the predicate set carried by an assert operation.
type PredicateList []Predicate

func (l PredicateList) Equal(m PredicateList) bool {
	return slices.Equal(l, m)
}

// FutureExtension is a forward compatible extension slot identified by a
// variant tag.
type FutureExtension struct {
	Tag  byte   `json:"tag"`
	Data []byte `json:"data,omitempty"`
}

func (e FutureExtension) Equal(f FutureExtension) bool {
	return e.Tag == f.Tag && slices.Equal(e.Data, f.Data)
}

// Extensions is the ordered extension set attached to most operations.
type Extensions []FutureExtension

func (e Extensions) Equal(f Extensions) bool {
	return slices.EqualFunc(e, f, FutureExtension.Equal)
}
