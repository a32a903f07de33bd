// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package bitshares

import (
	"fmt"
	"math/big"
)

const b58digits = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var b58values [256]int8

func init() {
	for i := range b58values {
		b58values[i] = -1
	}
	for i, c := range b58digits {
		b58values[c] = int8(i)
	}
}

var bigRadix = big.NewInt(58)

// EncodeBase58 encodes buf using the Bitcoin base58 alphabet.
func EncodeBase58(buf []byte) string {
	x := new(big.Int).SetBytes(buf)
	out := make([]byte, 0, len(buf)*137/100+1)
	mod := new(big.Int)
	for x.Sign() > 0 {
		x.DivMod(x, bigRadix, mod)
		out = append(out, b58digits[mod.Int64()])
	}
	for _, c := range buf {
		if c != 0 {
			break
		}
		out = append(out, b58digits[0])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// DecodeBase58 decodes a base58 string into bytes.
func DecodeBase58(s string) ([]byte, error) {
	x := new(big.Int)
	for _, c := range []byte(s) {
		v := b58values[c]
		if v < 0 {
			return nil, fmt.Errorf("bitshares: invalid base58 digit %q", c)
		}
		x.Mul(x, bigRadix)
		x.Add(x, big.NewInt(int64(v)))
	}
	out := x.Bytes()
	var pad int
	for pad < len(s) && s[pad] == b58digits[0] {
		pad++
	}
	buf := make([]byte, pad+len(out))
	copy(buf[pad:], out)
	return buf, nil
}
