// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package bitshares

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160"
)

// KeyPrefix is prepended to the base58 form of public keys.
const KeyPrefix = "BTS"

// PublicKey is a compressed secp256k1 point. The zero value is the null
// key which compares valid against nothing and formats as the well known
// null key string.
type PublicKey [33]byte

func (k PublicKey) IsValid() bool {
	return k != PublicKey{}
}

func (k PublicKey) Bytes() []byte {
	return k[:]
}

// String renders the key as prefix + base58(data || checksum) where the
// checksum is the first 4 bytes of ripemd160 over the raw key.
func (k PublicKey) String() string {
	sum := keyChecksum(k[:])
	buf := make([]byte, 0, 37)
	buf = append(buf, k[:]...)
	buf = append(buf, sum...)
	return KeyPrefix + EncodeBase58(buf)
}

func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PublicKey) UnmarshalText(data []byte) error {
	key, err := ParsePublicKey(string(data))
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// ParsePublicKey decodes a prefixed base58 public key, verifies its
// checksum and checks the point is on the curve.
func ParsePublicKey(s string) (k PublicKey, err error) {
	if !strings.HasPrefix(s, KeyPrefix) {
		return k, fmt.Errorf("bitshares: missing key prefix in %q", s)
	}
	buf, err := DecodeBase58(strings.TrimPrefix(s, KeyPrefix))
	if err != nil {
		return
	}
	if len(buf) != 37 {
		return k, fmt.Errorf("bitshares: invalid key length %d", len(buf))
	}
	if !bytes.Equal(keyChecksum(buf[:33]), buf[33:]) {
		return k, fmt.Errorf("bitshares: key checksum mismatch")
	}
	if _, err = secp256k1.ParsePubKey(buf[:33]); err != nil {
		return k, fmt.Errorf("bitshares: invalid key: %v", err)
	}
	copy(k[:], buf[:33])
	return
}

// MustParsePublicKey panics on parse errors. Use for static keys only.
func MustParsePublicKey(s string) PublicKey {
	k, err := ParsePublicKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// NewPublicKey wraps a compressed 33 byte point without curve checks.
func NewPublicKey(buf []byte) (k PublicKey) {
	copy(k[:], buf)
	return
}

func keyChecksum(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data)
	return h.Sum(nil)[:4]
}
