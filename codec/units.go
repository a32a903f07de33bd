// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

// Fee unit weights per operand value. Scalars count one, keys and byte
// blobs count four, text counts one per started 8 byte chunk and
// containers count the sum of their elements.
func valueUnits(v Value) uint64 {
	switch v.Type() {
	case ValueTypePublicKey:
		return 4
	case ValueTypeBytes:
		return 4
	case ValueTypeText:
		return uint64((len(v.Text()) + 7) / 8)
	case ValueTypeAccountIdSet:
		return uint64(len(v.AccountSet()))
	case ValueTypePublicKeySet:
		return uint64(len(v.KeySet())) * 4
	default:
		return 1
	}
}

// RestrictionUnits computes the fee unit count of one restriction.
func RestrictionUnits(r Restriction) uint64 {
	switch {
	case r.Type == RestrictionEq || r.Type == RestrictionNeq:
		return valueUnits(r.Value)
	case r.Type.IsOrdered():
		return 1
	case r.Type.IsList():
		var n uint64
		for _, v := range r.Values {
			n += valueUnits(v)
		}
		return n
	case r.Type == RestrictionAttributeAssert:
		return RestrictionListUnits(r.Inner)
	default:
		return 0
	}
}

// RestrictionListUnits sums units across a restriction list.
func RestrictionListUnits(rs []Restriction) uint64 {
	var n uint64
	for _, r := range rs {
		n += RestrictionUnits(r)
	}
	return n
}
