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

// Package eosiotypes implements the EOSIO primitive wire/JSON codecs: name,
// asset/symbol, time points, fixed-byte checksums, and base58 keys and
// signatures with secp256k1 curve validation for the K1 key kind.
package eosiotypes

import (
	"context"
	"crypto/sha256"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
	"github.com/kaleido-io/eosio-abi/pkg/base58"
)

// KeyKind is the 1-byte tag prefixing every key/signature on the wire.
type KeyKind uint8

const (
	KeyKindK1 KeyKind = 0
	KeyKindR1 KeyKind = 1
	KeyKindWA KeyKind = 2
)

func (k KeyKind) suffix() string {
	switch k {
	case KeyKindK1:
		return "K1"
	case KeyKindR1:
		return "R1"
	case KeyKindWA:
		return "WA"
	default:
		return ""
	}
}

const (
	pubKeyDataSize = 33
	privKeyDataSize = 32
	sigDataSize     = 65
)

// PublicKey is a tagged, fixed-size (for K1/R1) or variable-size (WA) curve
// point. Binary form is KeyKind ‖ raw bytes.
type PublicKey struct {
	Kind KeyKind
	Data []byte
}

func (p PublicKey) ToBin() []byte {
	return append([]byte{byte(p.Kind)}, p.Data...)
}

func PublicKeyFromBin(ctx context.Context, b []byte) (PublicKey, int, error) {
	if len(b) < 1 {
		return PublicKey{}, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	kind := KeyKind(b[0])
	size, err := fixedKeySize(ctx, kind, pubKeyDataSize)
	if err != nil {
		return PublicKey{}, 0, err
	}
	if len(b) < 1+size {
		return PublicKey{}, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	data := make([]byte, size)
	copy(data, b[1:1+size])
	if kind == KeyKindK1 {
		if _, err := btcec.ParsePubKey(data); err != nil {
			return PublicKey{}, 0, i18n.WrapError(ctx, err, abimsgs.MsgInvalidCurvePoint)
		}
	}
	return PublicKey{Kind: kind, Data: data}, 1 + size, nil
}

// String renders the legacy "EOS..." form for K1 keys (the historical
// default with no key-kind prefix), and the versioned "PUB_<kind>_..." form
// for R1/WA.
func (p PublicKey) String() string {
	if p.Kind == KeyKindK1 {
		return "EOS" + base58.EncodeCheck(p.Data, "")
	}
	return "PUB_" + p.Kind.suffix() + "_" + base58.EncodeCheck(p.Data, p.Kind.suffix())
}

func ParsePublicKey(ctx context.Context, s string) (PublicKey, error) {
	switch {
	case strings.HasPrefix(s, "PUB_K1_"):
		return parseVersionedPublicKey(ctx, s, "PUB_K1_", KeyKindK1)
	case strings.HasPrefix(s, "PUB_R1_"):
		return parseVersionedPublicKey(ctx, s, "PUB_R1_", KeyKindR1)
	case strings.HasPrefix(s, "PUB_WA_"):
		return parseVersionedPublicKey(ctx, s, "PUB_WA_", KeyKindWA)
	case strings.HasPrefix(s, "EOS"):
		data, err := base58.DecodeCheck(ctx, s[3:], "")
		if err != nil {
			return PublicKey{}, err
		}
		if len(data) != pubKeyDataSize {
			return PublicKey{}, i18n.NewError(ctx, abimsgs.MsgInvalidKeyLength, len(data), pubKeyDataSize, "public_key")
		}
		if _, err := btcec.ParsePubKey(data); err != nil {
			return PublicKey{}, i18n.WrapError(ctx, err, abimsgs.MsgInvalidCurvePoint)
		}
		return PublicKey{Kind: KeyKindK1, Data: data}, nil
	default:
		return PublicKey{}, i18n.NewError(ctx, abimsgs.MsgInvalidKeyPrefix, s)
	}
}

func parseVersionedPublicKey(ctx context.Context, s, prefix string, kind KeyKind) (PublicKey, error) {
	data, err := base58.DecodeCheck(ctx, strings.TrimPrefix(s, prefix), kind.suffix())
	if err != nil {
		return PublicKey{}, err
	}
	if kind == KeyKindK1 {
		if len(data) != pubKeyDataSize {
			return PublicKey{}, i18n.NewError(ctx, abimsgs.MsgInvalidKeyLength, len(data), pubKeyDataSize, "public_key")
		}
		if _, err := btcec.ParsePubKey(data); err != nil {
			return PublicKey{}, i18n.WrapError(ctx, err, abimsgs.MsgInvalidCurvePoint)
		}
	}
	return PublicKey{Kind: kind, Data: data}, nil
}

// PrivateKey is a tagged 32-byte (K1/R1) scalar. Binary form is
// KeyKind ‖ raw bytes.
type PrivateKey struct {
	Kind KeyKind
	Data []byte
}

func (p PrivateKey) ToBin() []byte {
	return append([]byte{byte(p.Kind)}, p.Data...)
}

func PrivateKeyFromBin(ctx context.Context, b []byte) (PrivateKey, int, error) {
	if len(b) < 1 {
		return PrivateKey{}, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	kind := KeyKind(b[0])
	size, err := fixedKeySize(ctx, kind, privKeyDataSize)
	if err != nil {
		return PrivateKey{}, 0, err
	}
	if len(b) < 1+size {
		return PrivateKey{}, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	data := make([]byte, size)
	copy(data, b[1:1+size])
	return PrivateKey{Kind: kind, Data: data}, 1 + size, nil
}

// String renders the legacy WIF form for K1 keys, and the versioned
// "PVT_R1_..." form for R1.
func (p PrivateKey) String() string {
	if p.Kind == KeyKindK1 {
		return encodeLegacyWIF(p.Data)
	}
	return "PVT_" + p.Kind.suffix() + "_" + base58.EncodeCheck(p.Data, p.Kind.suffix())
}

func ParsePrivateKey(ctx context.Context, s string) (PrivateKey, error) {
	if strings.HasPrefix(s, "PVT_R1_") {
		data, err := base58.DecodeCheck(ctx, strings.TrimPrefix(s, "PVT_R1_"), "R1")
		if err != nil {
			return PrivateKey{}, err
		}
		if len(data) != privKeyDataSize {
			return PrivateKey{}, i18n.NewError(ctx, abimsgs.MsgInvalidKeyLength, len(data), privKeyDataSize, "private_key")
		}
		return PrivateKey{Kind: KeyKindR1, Data: data}, nil
	}
	data, err := decodeLegacyWIF(ctx, s)
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKey{Kind: KeyKindK1, Data: data}, nil
}

const wifVersion = 0x80

// encodeLegacyWIF follows the Bitcoin WIF convention EOSIO reuses for
// legacy (K1) private keys: a 1-byte version, the 32-byte key, and a 4-byte
// double-SHA256 checksum (distinct from the RIPEMD-160 checksum used by
// every other EOSIO key/signature textual form).
func encodeLegacyWIF(data []byte) string {
	payload := make([]byte, 1+len(data))
	payload[0] = wifVersion
	copy(payload[1:], data)
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	buf := make([]byte, len(payload)+4)
	copy(buf, payload)
	copy(buf[len(payload):], second[:4])
	return base58.Encode(buf)
}

// decodeLegacyWIF reverses encodeLegacyWIF, verifying the checksum. Per
// SPEC_FULL.md §7(a), this is a deliberate fix of the original abieos
// behaviour, which skipped this verification.
func decodeLegacyWIF(ctx context.Context, s string) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, abimsgs.MsgInvalidKeyPrefix, s)
	}
	if len(raw) != 1+privKeyDataSize+4 {
		return nil, i18n.NewError(ctx, abimsgs.MsgInvalidKeyLength, len(raw), 1+privKeyDataSize+4, "private_key")
	}
	if raw[0] != wifVersion {
		return nil, i18n.NewError(ctx, abimsgs.MsgInvalidKeyPrefix, s)
	}
	payload := raw[:1+privKeyDataSize]
	checksum := raw[1+privKeyDataSize:]
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	for i := 0; i < 4; i++ {
		if checksum[i] != second[i] {
			return nil, i18n.NewError(ctx, abimsgs.MsgInvalidKeyChecksum, s)
		}
	}
	data := make([]byte, privKeyDataSize)
	copy(data, payload[1:])
	return data, nil
}

// Signature is a tagged, fixed-size (K1/R1) or variable-size (WA) signature.
// Binary form is KeyKind ‖ raw bytes.
type Signature struct {
	Kind KeyKind
	Data []byte
}

func (s Signature) ToBin() []byte {
	return append([]byte{byte(s.Kind)}, s.Data...)
}

func SignatureFromBin(ctx context.Context, b []byte) (Signature, int, error) {
	if len(b) < 1 {
		return Signature{}, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	kind := KeyKind(b[0])
	size, err := fixedKeySize(ctx, kind, sigDataSize)
	if err != nil {
		return Signature{}, 0, err
	}
	if len(b) < 1+size {
		return Signature{}, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	data := make([]byte, size)
	copy(data, b[1:1+size])
	return Signature{Kind: kind, Data: data}, 1 + size, nil
}

func (s Signature) String() string {
	return "SIG_" + s.Kind.suffix() + "_" + base58.EncodeCheck(s.Data, s.Kind.suffix())
}

func ParseSignature(ctx context.Context, s string) (Signature, error) {
	for _, kind := range []KeyKind{KeyKindK1, KeyKindR1, KeyKindWA} {
		prefix := "SIG_" + kind.suffix() + "_"
		if strings.HasPrefix(s, prefix) {
			data, err := base58.DecodeCheck(ctx, strings.TrimPrefix(s, prefix), kind.suffix())
			if err != nil {
				return Signature{}, err
			}
			if (kind == KeyKindK1 || kind == KeyKindR1) && len(data) != sigDataSize {
				return Signature{}, i18n.NewError(ctx, abimsgs.MsgInvalidKeyLength, len(data), sigDataSize, "signature")
			}
			return Signature{Kind: kind, Data: data}, nil
		}
	}
	return Signature{}, i18n.NewError(ctx, abimsgs.MsgInvalidKeyPrefix, s)
}

// fixedKeySize returns the wire size for a key kind. K1/R1 are fixed size;
// WA (WebAuthn) is variable-length and not modelled structurally here (see
// SPEC_FULL.md §4 - no WebAuthn-capable library exists anywhere in the
// retrieval pack), so WA is rejected rather than silently truncated.
func fixedKeySize(ctx context.Context, kind KeyKind, defaultSize int) (int, error) {
	switch kind {
	case KeyKindK1, KeyKindR1:
		return defaultSize, nil
	default:
		return 0, i18n.NewError(ctx, abimsgs.MsgInvalidKeyKind, int(kind))
	}
}
