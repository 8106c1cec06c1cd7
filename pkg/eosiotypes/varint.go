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

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
)

// PutVarUint32 appends the base-128 LEB-style encoding of v to buf.
func PutVarUint32(buf []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			buf = append(buf, b|0x80)
		} else {
			buf = append(buf, b)
			return buf
		}
	}
}

// GetVarUint32 decodes a var-uint32 from b, returning the value, bytes
// consumed, and an error if the buffer underruns or the encoding overflows
// beyond the 35 bits that 5 continuation bytes can carry (of which only the
// low 32 may be set).
func GetVarUint32(ctx context.Context, b []byte) (uint32, int, error) {
	var value uint32
	var shift uint
	for i := 0; i < len(b); i++ {
		if shift >= 35 {
			return 0, 0, i18n.NewError(ctx, abimsgs.MsgInvalidVarUintEncoding)
		}
		byteVal := b[i]
		data := uint32(byteVal & 0x7f)
		if shift == 28 && data&0xf0 != 0 {
			// The 5th byte may only contribute the remaining 4 bits (28+4=32)
			return 0, 0, i18n.NewError(ctx, abimsgs.MsgInvalidVarUintEncoding)
		}
		value |= data << shift
		if byteVal&0x80 == 0 {
			return value, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
}

// PutVarUint64 is the 64-bit analog of PutVarUint32.
func PutVarUint64(buf []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			buf = append(buf, b|0x80)
		} else {
			buf = append(buf, b)
			return buf
		}
	}
}

// GetVarUint64 decodes a var-uint64, with overflow checked against 70 bits
// (10 continuation bytes, of which only the low 64 bits may be set).
func GetVarUint64(ctx context.Context, b []byte) (uint64, int, error) {
	var value uint64
	var shift uint
	for i := 0; i < len(b); i++ {
		if shift >= 70 {
			return 0, 0, i18n.NewError(ctx, abimsgs.MsgInvalidVarUintEncoding)
		}
		byteVal := b[i]
		data := uint64(byteVal & 0x7f)
		if shift == 63 && data&0xfe != 0 {
			// The 10th byte may only contribute the remaining 1 bit (63+1=64)
			return 0, 0, i18n.NewError(ctx, abimsgs.MsgInvalidVarUintEncoding)
		}
		value |= data << shift
		if byteVal&0x80 == 0 {
			return value, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
}

// PutVarInt32 zig-zag encodes a signed 32-bit value over var-uint32.
func PutVarInt32(buf []byte, v int32) []byte {
	var zigzag uint32
	if v < 0 {
		zigzag = (uint32(-v) << 1) - 1
	} else {
		zigzag = uint32(v) << 1
	}
	return PutVarUint32(buf, zigzag)
}

// GetVarInt32 decodes a zig-zag encoded signed 32-bit value.
func GetVarInt32(ctx context.Context, b []byte) (int32, int, error) {
	zigzag, n, err := GetVarUint32(ctx, b)
	if err != nil {
		return 0, 0, err
	}
	if zigzag&1 != 0 {
		return int32(^(zigzag >> 1)), n, nil
	}
	return int32(zigzag >> 1), n, nil
}
