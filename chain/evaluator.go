// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package chain

import (
	"github.com/echa/log"
	"github.com/pkg/errors"

	"github.com/chainsquad/bitshares-core/bitshares"
	"github.com/chainsquad/bitshares-core/codec"
)

// Evaluator applies custom authority lifecycle operations to a store.
// Each apply is atomic: any validation failure leaves the store
// untouched. The host drives one operation at a time, there is no
// concurrent mutation during application.
type Evaluator struct {
	store  *Store
	params *bitshares.Params
	log    log.Logger
}

func NewEvaluator(store *Store, params *bitshares.Params) *Evaluator {
	return &Evaluator{
		store:  store,
		params: params,
		log:    log.Log,
	}
}

func (e *Evaluator) WithLogger(l log.Logger) *Evaluator {
	e.log = l
	return e
}

// gate rejects lifecycle operations submitted before the custom
// authority hardfork activates. The head block timestamp must be
// strictly greater than the activation instant.
func (e *Evaluator) gate(headTime bitshares.TimePointSec, what string) error {
	if headTime <= e.params.HardforkCore1285Time {
		return bitshares.Errorf(bitshares.ErrHardforkNotYetActive,
			"%s should not be executed before the custom authority hardfork", what)
	}
	return nil
}

// ApplyCreate validates and applies a create operation, returning the
// new record id.
func (e *Evaluator) ApplyCreate(op *codec.CustomAuthorityCreate, headTime bitshares.TimePointSec) (bitshares.AuthorityID, error) {
	if err := e.gate(headTime, "custom_authority_create"); err != nil {
		return 0, err
	}
	if err := op.Validate(e.params); err != nil {
		return 0, errors.Wrap(err, "create custom authority")
	}
	id := e.store.Insert(&CustomAuthority{
		Account:       op.Account,
		Enabled:       op.Enabled,
		ValidFrom:     op.ValidFrom,
		ValidTo:       op.ValidTo,
		OperationType: op.OperationType,
		Restrictions:  op.Restrictions,
	})
	e.log.Debugf("applied custom_authority_create for %s as %s", op.Account, id)
	return id, nil
}

// ApplyUpdate validates and applies an update operation. Every mutable
// field of the referenced record is replaced.
func (e *Evaluator) ApplyUpdate(op *codec.CustomAuthorityUpdate, headTime bitshares.TimePointSec) error {
	if err := e.gate(headTime, "custom_authority_update"); err != nil {
		return err
	}
	if err := op.Validate(e.params); err != nil {
		return errors.Wrap(err, "update custom authority")
	}
	if e.store.Get(op.CustomAuthorityId) == nil {
		return errors.Errorf("custom authority %s does not exist", op.CustomAuthorityId)
	}
	e.store.Replace(op.CustomAuthorityId, &CustomAuthority{
		Account:       op.Account,
		Enabled:       op.Enabled,
		ValidFrom:     op.ValidFrom,
		ValidTo:       op.ValidTo,
		OperationType: op.OperationType,
		Restrictions:  op.Restrictions,
	})
	return nil
}

// ApplyDelete validates and applies a delete operation.
func (e *Evaluator) ApplyDelete(op *codec.CustomAuthorityDelete, headTime bitshares.TimePointSec) error {
	if err := e.gate(headTime, "custom_authority_delete"); err != nil {
		return err
	}
	if err := op.Validate(e.params); err != nil {
		return errors.Wrap(err, "delete custom authority")
	}
	if !e.store.Remove(op.CustomAuthorityId) {
		return errors.Errorf("custom authority %s does not exist", op.CustomAuthorityId)
	}
	return nil
}
