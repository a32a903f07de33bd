// Copyright (c) 2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc, abdul@blockwatch.cc

package authspec

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/chainsquad/bitshares-core/codec"
)

// ParseOperation decodes a JSON encoded operation. The variant is chosen
// by the "kind" member which holds the operation's wire name, the
// remaining members map onto the concrete operation struct.
func ParseOperation(data []byte) (codec.Operation, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid operation json")
	}
	kind := gjson.GetBytes(data, "kind")
	if !kind.Exists() {
		return nil, errors.New("operation json lacks a kind member")
	}
	schema, err := codec.SchemaByName(kind.String())
	if err != nil {
		return nil, err
	}
	op := schema.New()
	if err := json.Unmarshal(data, op); err != nil {
		return nil, errors.Wrapf(err, "decode %s", schema.Name)
	}
	return op, nil
}
