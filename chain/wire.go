// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package chain

import (
	"bytes"
	"encoding/binary"
	"io"
)

var enc = binary.BigEndian

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	enc.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	enc.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], v)
	buf.Write(b[:n])
}

func readU32(buf *bytes.Buffer) (uint32, error) {
	b := buf.Next(4)
	if len(b) < 4 {
		return 0, io.ErrShortBuffer
	}
	return enc.Uint32(b), nil
}

func readU64(buf *bytes.Buffer) (uint64, error) {
	b := buf.Next(8)
	if len(b) < 8 {
		return 0, io.ErrShortBuffer
	}
	return enc.Uint64(b), nil
}

func readUvarint(buf *bytes.Buffer) (uint64, error) {
	return binary.ReadUvarint(buf)
}
