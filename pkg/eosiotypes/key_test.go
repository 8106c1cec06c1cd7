// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eosiotypes

import (
	"context"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyK1PublicKeyRoundTrip(t *testing.T) {
	// Known-good EOS key from the public abieos test vectors (S6).
	s := "EOS6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV"
	pk, err := ParsePublicKey(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, KeyKindK1, pk.Kind)
	assert.Len(t, pk.Data, 33)
	assert.Equal(t, s, pk.String())
}

func TestK1KeyPairRoundTripGenerated(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	pub := priv.PubKey()

	pubKey := PublicKey{Kind: KeyKindK1, Data: pub.SerializeCompressed()}
	s := pubKey.String()
	parsed, err := ParsePublicKey(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, pubKey.Data, parsed.Data)

	bin := pubKey.ToBin()
	decoded, n, err := PublicKeyFromBin(context.Background(), bin)
	require.NoError(t, err)
	assert.Equal(t, len(bin), n)
	assert.Equal(t, pubKey.Data, decoded.Data)

	privKey := PrivateKey{Kind: KeyKindK1, Data: priv.Serialize()}
	wif := privKey.String()
	parsedPriv, err := ParsePrivateKey(context.Background(), wif)
	require.NoError(t, err)
	assert.Equal(t, privKey.Data, parsedPriv.Data)
}

func TestLegacyWIFBadChecksumRejected(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	s := (PrivateKey{Kind: KeyKindK1, Data: priv.Serialize()}).String()
	// Corrupt the last character to break the checksum.
	corrupted := s[:len(s)-1] + string(rune(s[len(s)-1]+1))
	_, err = ParsePrivateKey(context.Background(), corrupted)
	require.Error(t, err)
}

func TestInvalidPublicKeyPrefix(t *testing.T) {
	_, err := ParsePublicKey(context.Background(), "notakey")
	require.Error(t, err)
}

func TestVersionedR1PublicKeyRoundTrip(t *testing.T) {
	data := make([]byte, 33)
	for i := range data {
		data[i] = byte(i)
	}
	pk := PublicKey{Kind: KeyKindR1, Data: data}
	s := pk.String()
	assert.Regexp(t, `^PUB_R1_`, s)
	parsed, err := ParsePublicKey(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, pk.Data, parsed.Data)
}

func TestSignatureRoundTrip(t *testing.T) {
	data := make([]byte, 65)
	for i := range data {
		data[i] = byte(i * 3)
	}
	sig := Signature{Kind: KeyKindK1, Data: data}
	s := sig.String()
	parsed, err := ParseSignature(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, sig.Data, parsed.Data)
}
