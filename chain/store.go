// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package chain

import (
	"github.com/echa/log"
	"golang.org/x/exp/slices"

	"github.com/chainsquad/bitshares-core/bitshares"
	"github.com/chainsquad/bitshares-core/codec"
)

// Store holds custom authority records with a secondary index by owning
// account. The host guarantees a single writer at a time, the store does
// no locking of its own.
type Store struct {
	byId      map[bitshares.AuthorityID]*CustomAuthority
	byAccount map[bitshares.AccountID][]bitshares.AuthorityID
	nextId    bitshares.AuthorityID
	log       log.Logger
}

func NewStore() *Store {
	return &Store{
		byId:      make(map[bitshares.AuthorityID]*CustomAuthority),
		byAccount: make(map[bitshares.AccountID][]bitshares.AuthorityID),
		log:       log.Log,
	}
}

func (s *Store) WithLogger(l log.Logger) *Store {
	s.log = l
	return s
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.byId)
}

// Get returns the record with the given id, or nil.
func (s *Store) Get(id bitshares.AuthorityID) *CustomAuthority {
	return s.byId[id]
}

// ByAccount returns all records owned by an account in id order.
func (s *Store) ByAccount(acc bitshares.AccountID) []*CustomAuthority {
	ids := s.byAccount[acc]
	out := make([]*CustomAuthority, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.byId[id])
	}
	return out
}

// Insert stores a copy of a and assigns a fresh id.
func (s *Store) Insert(a *CustomAuthority) bitshares.AuthorityID {
	rec := a.Clone()
	rec.Id = s.nextId
	s.nextId++
	s.byId[rec.Id] = rec
	s.byAccount[rec.Account] = append(s.byAccount[rec.Account], rec.Id)
	s.log.Debugf("custom authority %s created for account %s op=%s",
		rec.Id, rec.Account, rec.OperationType)
	return rec.Id
}

// Replace swaps the full contents of an existing record, keeping its id.
// Returns false when the id is unknown.
func (s *Store) Replace(id bitshares.AuthorityID, a *CustomAuthority) bool {
	old, ok := s.byId[id]
	if !ok {
		return false
	}
	rec := a.Clone()
	rec.Id = id
	if old.Account != rec.Account {
		s.unindex(old)
		s.byAccount[rec.Account] = append(s.byAccount[rec.Account], id)
		slices.Sort(s.byAccount[rec.Account])
	}
	s.byId[id] = rec
	s.log.Debugf("custom authority %s updated", id)
	return true
}

// Remove deletes a record. Returns false when the id is unknown.
func (s *Store) Remove(id bitshares.AuthorityID) bool {
	rec, ok := s.byId[id]
	if !ok {
		return false
	}
	s.unindex(rec)
	delete(s.byId, id)
	s.log.Debugf("custom authority %s removed", id)
	return true
}

func (s *Store) unindex(rec *CustomAuthority) {
	ids := s.byAccount[rec.Account]
	if i := slices.Index(ids, rec.Id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	}
	if len(ids) == 0 {
		delete(s.byAccount, rec.Account)
	} else {
		s.byAccount[rec.Account] = ids
	}
}

// FindAuthorizing scans an account's enabled, in-window authorities of
// the matching operation type and returns the first one whose
// restrictions all hold. Returns nil and the last failure when none
// applies, or nil, nil when the account has no candidate authority.
func (s *Store) FindAuthorizing(acc bitshares.AccountID, op codec.Operation, now bitshares.TimePointSec) (*CustomAuthority, error) {
	var lastErr error
	for _, rec := range s.ByAccount(acc) {
		if !rec.Enabled {
			continue
		}
		if err := rec.Validate(op, now); err != nil {
			lastErr = err
			continue
		}
		return rec, nil
	}
	return nil, lastErr
}

// DisableAccountAuthorities flips the enabled flag off on every record
// owned by an account. Nothing inside this module calls it: hosts that
// want the legacy behavior of disabling custom authorities on an account
// update can opt in from their pipeline.
func (s *Store) DisableAccountAuthorities(acc bitshares.AccountID) int {
	var n int
	for _, rec := range s.ByAccount(acc) {
		if rec.Enabled {
			rec.Enabled = false
			n++
		}
	}
	if n > 0 {
		s.log.Debugf("disabled %d custom authorities of account %s", n, acc)
	}
	return n
}
