// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

var (
	// enc defines the default wire encoding used for protocol messages
	enc = binary.BigEndian
)

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	enc.PutUint16(b[:], v)
	buf.Write(b[:])
}

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

func writeI64(buf *bytes.Buffer, v int64) {
	writeU64(buf, uint64(v))
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], v)
	buf.Write(b[:n])
}

func writeString(buf *bytes.Buffer, s string) {
	writeUvarint(buf, uint64(len(s)))
	buf.WriteString(s)
}

func writeByteSlice(buf *bytes.Buffer, b []byte) {
	writeUvarint(buf, uint64(len(b)))
	buf.Write(b)
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(0x01)
	} else {
		buf.WriteByte(0x00)
	}
}

func readU16(buf *bytes.Buffer) (uint16, error) {
	b := buf.Next(2)
	if len(b) < 2 {
		return 0, io.ErrShortBuffer
	}
	return enc.Uint16(b), nil
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

func readI64(buf *bytes.Buffer) (int64, error) {
	v, err := readU64(buf)
	return int64(v), err
}

func readUvarint(buf *bytes.Buffer) (uint64, error) {
	return binary.ReadUvarint(buf)
}

func readString(buf *bytes.Buffer) (string, error) {
	n, err := readUvarint(buf)
	if err != nil {
		return "", err
	}
	b := buf.Next(int(n))
	if uint64(len(b)) < n {
		return "", io.ErrShortBuffer
	}
	return string(b), nil
}

func readByteSlice(buf *bytes.Buffer) ([]byte, error) {
	n, err := readUvarint(buf)
	if err != nil {
		return nil, err
	}
	b := buf.Next(int(n))
	if uint64(len(b)) < n {
		return nil, io.ErrShortBuffer
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func readBool(buf *bytes.Buffer) (bool, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, fmt.Errorf("codec: invalid bool byte 0x%02x", b)
	}
}
