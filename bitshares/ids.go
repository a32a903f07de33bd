// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package bitshares

import (
	"fmt"
	"strconv"
	"strings"
)

// Object ids follow the space.type.instance convention. Protocol objects
// live in space 1, implementation objects in space 2. The instance part
// is the only component carried on the wire, the space/type prefix is
// implied by the field that holds the id.
type AccountID uint64
type AssetID uint64
type BalanceID uint64
type ProposalID uint64
type FbaAccumulatorID uint64
type LimitOrderID uint64
type WithdrawPermissionID uint64
type WitnessID uint64
type ForceSettlementID uint64
type CommitteeMemberID uint64

// AuthorityID identifies a stored custom authority record.
type AuthorityID uint64

func (i AccountID) String() string            { return formatId(1, 2, uint64(i)) }
func (i AssetID) String() string              { return formatId(1, 3, uint64(i)) }
func (i ForceSettlementID) String() string    { return formatId(1, 4, uint64(i)) }
func (i CommitteeMemberID) String() string    { return formatId(1, 5, uint64(i)) }
func (i WitnessID) String() string            { return formatId(1, 6, uint64(i)) }
func (i LimitOrderID) String() string         { return formatId(1, 7, uint64(i)) }
func (i ProposalID) String() string           { return formatId(1, 10, uint64(i)) }
func (i WithdrawPermissionID) String() string { return formatId(1, 12, uint64(i)) }
func (i BalanceID) String() string            { return formatId(1, 15, uint64(i)) }
func (i FbaAccumulatorID) String() string     { return formatId(2, 16, uint64(i)) }
func (i AuthorityID) String() string          { return formatId(2, 17, uint64(i)) }

func formatId(space, typ byte, instance uint64) string {
	return fmt.Sprintf("%d.%d.%d", space, typ, instance)
}

// ParseInstance extracts the instance part of a space.type.instance id
// string. A bare decimal number is accepted as well.
func ParseInstance(s string) (uint64, error) {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bitshares: invalid object id %q", s)
	}
	return v, nil
}

// ParseAccountID parses an account id of the form 1.2.N or a bare instance.
func ParseAccountID(s string) (AccountID, error) {
	v, err := ParseInstance(s)
	return AccountID(v), err
}

// ParseAssetID parses an asset id of the form 1.3.N or a bare instance.
func ParseAssetID(s string) (AssetID, error) {
	v, err := ParseInstance(s)
	return AssetID(v), err
}

// ParseAuthorityID parses a custom authority id of the form 2.17.N or a
// bare instance.
func ParseAuthorityID(s string) (AuthorityID, error) {
	v, err := ParseInstance(s)
	return AuthorityID(v), err
}
