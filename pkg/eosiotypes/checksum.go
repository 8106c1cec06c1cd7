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
	"encoding/hex"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
)

// FixedBytes is the common shape of checksum160/256/512 and float128: a
// fixed-length raw byte string, rendered as uppercase hex with no prefix.
type FixedBytes []byte

func ParseFixedBytesHex(ctx context.Context, s string, size int) (FixedBytes, error) {
	if len(s) != size*2 {
		return nil, i18n.NewError(ctx, abimsgs.MsgHexStringIncorrectLen, len(s), size*2)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, abimsgs.MsgInvalidJSON, s)
	}
	return FixedBytes(b), nil
}

func (f FixedBytes) String() string {
	return strings.ToUpper(hex.EncodeToString(f))
}

// VarBytes is the EOSIO "bytes" type: a var-uint32 length prefix followed
// by raw bytes on the wire, and a (non-prefixed, even-length) hex string in
// JSON.
type VarBytes []byte

func (v VarBytes) ToBin() []byte {
	buf := PutVarUint32(nil, uint32(len(v)))
	return append(buf, v...)
}

func VarBytesFromBin(ctx context.Context, b []byte) (VarBytes, int, error) {
	length, n, err := GetVarUint32(ctx, b)
	if err != nil {
		return nil, 0, err
	}
	end := n + int(length)
	if end > len(b) {
		return nil, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	out := make([]byte, length)
	copy(out, b[n:end])
	return out, end, nil
}

func ParseVarBytesHex(ctx context.Context, s string) (VarBytes, error) {
	if len(s)%2 != 0 {
		return nil, i18n.NewError(ctx, abimsgs.MsgHexStringIncorrectLen, len(s), len(s)+1)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, abimsgs.MsgInvalidJSON, s)
	}
	return VarBytes(b), nil
}

func (v VarBytes) String() string {
	return hex.EncodeToString(v)
}
