// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"encoding"
	"fmt"
	"io"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// OpType is the stable integer index of an operation variant. The values
// mirror the canonical operation list and are consensus visible.
type OpType uint32

const (
	OpTypeTransfer                 OpType = 0
	OpTypeLimitOrderCreate         OpType = 1
	OpTypeLimitOrderCancel         OpType = 2
	OpTypeAccountCreate            OpType = 5
	OpTypeAccountUpdate            OpType = 6
	OpTypeAccountWhitelist         OpType = 7
	OpTypeAccountUpgrade           OpType = 8
	OpTypeAssetCreate              OpType = 10
	OpTypeAssetIssue               OpType = 14
	OpTypeAssetPublishFeed         OpType = 19
	OpTypeWithdrawPermissionCreate OpType = 25
	OpTypeVestingBalanceCreate     OpType = 32
	OpTypeWorkerCreate             OpType = 34
	OpTypeAssert                   OpType = 36
	OpTypeOverrideTransfer         OpType = 38
	OpTypeCustomAuthorityCreate    OpType = 54
	OpTypeCustomAuthorityUpdate    OpType = 55
	OpTypeCustomAuthorityDelete    OpType = 56
	OpTypeInvalid                  OpType = 0xffffffff
)

func (t OpType) String() string {
	if s, ok := registry[t]; ok {
		return s.Name
	}
	return fmt.Sprintf("op_%d", uint32(t))
}

// Operation is the generic type implemented by all protocol operation
// variants.
type Operation interface {
	Kind() OpType
	Fee() bitshares.Asset
	FeePayer() bitshares.AccountID
	Validate(p *bitshares.Params) error
	EncodeBuffer(buf *bytes.Buffer) error
	DecodeBuffer(buf *bytes.Buffer) error
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// DecodeOperation decodes a single operation from its binary form, tag
// first.
func DecodeOperation(data []byte) (Operation, error) {
	buf := bytes.NewBuffer(data)
	op, err := decodeOperation(buf)
	if err != nil {
		return nil, err
	}
	if buf.Len() > 0 {
		return nil, fmt.Errorf("codec: %d trailing bytes after operation", buf.Len())
	}
	return op, nil
}

func decodeOperation(buf *bytes.Buffer) (Operation, error) {
	tag, err := readU32(buf)
	if err != nil {
		return nil, io.ErrShortBuffer
	}
	s, ok := registry[OpType(tag)]
	if !ok {
		return nil, bitshares.Errorf(bitshares.ErrUnknownOperation,
			"unsupported operation tag %d", tag).WithOpType(tag)
	}
	op := s.New()
	if err := op.DecodeBuffer(buf); err != nil {
		return nil, err
	}
	return op, nil
}

// marshalOperation is the shared BinaryMarshaler body for all variants.
func marshalOperation(op Operation) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := op.EncodeBuffer(buf)
	return buf.Bytes(), err
}

// ensureTag consumes and checks the leading op tag during decode.
func ensureTag(buf *bytes.Buffer, kind OpType) error {
	tag, err := readU32(buf)
	if err != nil {
		return io.ErrShortBuffer
	}
	if OpType(tag) != kind {
		return fmt.Errorf("codec: invalid tag %d for %s", tag, kind)
	}
	return nil
}
