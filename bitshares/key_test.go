// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package bitshares

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// compressed secp256k1 generator point, a valid public key
const genPointHex = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func TestBase58RoundTrip(t *testing.T) {
	for _, buf := range [][]byte{
		{},
		{0},
		{0, 0, 1},
		{0xff},
		{1, 2, 3, 4, 5, 6, 7, 8},
		{0, 0, 0, 0xde, 0xad, 0xbe, 0xef},
	} {
		s := EncodeBase58(buf)
		got, err := DecodeBase58(s)
		require.NoError(t, err)
		require.Equal(t, buf, got, "%x", buf)
	}
	_, err := DecodeBase58("0OIl")
	require.Error(t, err)
}

func TestPublicKeyRoundTrip(t *testing.T) {
	raw, err := hex.DecodeString(genPointHex)
	require.NoError(t, err)
	key := NewPublicKey(raw)
	require.True(t, key.IsValid())

	s := key.String()
	require.Contains(t, s, KeyPrefix)

	parsed, err := ParsePublicKey(s)
	require.NoError(t, err)
	require.Equal(t, key, parsed)
}

func TestParsePublicKeyRejectsGarbage(t *testing.T) {
	_, err := ParsePublicKey("XYZnope")
	require.Error(t, err)

	_, err = ParsePublicKey(KeyPrefix + "abc")
	require.Error(t, err)

	// flipping a digit breaks the checksum
	raw, _ := hex.DecodeString(genPointHex)
	s := NewPublicKey(raw).String()
	tampered := []byte(s)
	last := tampered[len(tampered)-1]
	if last == '1' {
		tampered[len(tampered)-1] = '2'
	} else {
		tampered[len(tampered)-1] = '1'
	}
	_, err = ParsePublicKey(string(tampered))
	require.Error(t, err)
}

func TestPublicKeyText(t *testing.T) {
	raw, _ := hex.DecodeString(genPointHex)
	key := NewPublicKey(raw)

	buf, err := key.MarshalText()
	require.NoError(t, err)

	var got PublicKey
	require.NoError(t, got.UnmarshalText(buf))
	require.Equal(t, key, got)
}
