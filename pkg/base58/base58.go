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

// Package base58 provides the EOSIO conventions for textual key and
// signature encoding: a base58 alphabet encode/decode engine (delegated to
// mr-tron/base58, the same engine relied on elsewhere in the retrieval
// pack's wallet code), wrapped with the 4-byte truncated RIPEMD-160
// checksum EOSIO appends to the raw key/signature bytes before encoding.
package base58

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // EOSIO's checksum is specifically RIPEMD-160
)

// Checksum computes the 4-byte EOSIO checksum over data‖suffix, where suffix
// is the key-kind string ("K1", "R1", "WA") for versioned forms, or empty
// for the legacy "EOS" prefixed form.
func Checksum(data []byte, suffix string) [4]byte {
	h := ripemd160.New()
	h.Write(data)
	if suffix != "" {
		h.Write([]byte(suffix))
	}
	sum := h.Sum(nil)
	var out [4]byte
	copy(out[:], sum[:4])
	return out
}

// EncodeCheck appends Checksum(data, suffix) to data and base58-encodes the
// result. This is the textual form used for legacy "EOS..." keys (suffix
// "") and for all of the versioned PUB_/PVT_/SIG_ prefixes (suffix is the
// key-kind tag embedded in the prefix).
func EncodeCheck(data []byte, suffix string) string {
	checksum := Checksum(data, suffix)
	buf := make([]byte, len(data)+4)
	copy(buf, data)
	copy(buf[len(data):], checksum[:])
	return base58.Encode(buf)
}

// DecodeCheck reverses EncodeCheck, verifying the trailing 4-byte checksum
// matches Checksum(data, suffix) before returning the raw data. The
// checksum is always verified - a mismatch is a hard error, not silently
// accepted.
func DecodeCheck(ctx context.Context, s string, suffix string) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, abimsgs.MsgInvalidKeyPrefix, s)
	}
	if len(raw) < 4 {
		return nil, i18n.NewError(ctx, abimsgs.MsgInvalidKeyLength, len(raw), 4, "checksum")
	}
	data := raw[:len(raw)-4]
	var gotChecksum [4]byte
	copy(gotChecksum[:], raw[len(raw)-4:])
	if Checksum(data, suffix) != gotChecksum {
		return nil, i18n.NewError(ctx, abimsgs.MsgInvalidKeyChecksum, s)
	}
	return data, nil
}

// Encode is the plain base58 alphabet encoder (no checksum), exposed for
// completeness and testing against the alphabet directly.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode is the plain base58 alphabet decoder (no checksum).
func Decode(s string) ([]byte, error) {
	return base58.Decode(s)
}
