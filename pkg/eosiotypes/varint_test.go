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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarUint32Encode(t *testing.T) {
	cases := []struct {
		v        uint32
		expected []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{0xFFFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
	}
	for _, c := range cases {
		got := PutVarUint32(nil, c.v)
		assert.Equal(t, c.expected, got)

		decoded, n, err := GetVarUint32(context.Background(), got)
		require.NoError(t, err)
		assert.Equal(t, c.v, decoded)
		assert.Equal(t, len(got), n)
	}
}

func TestVarUint32OverflowEncoding(t *testing.T) {
	_, _, err := GetVarUint32(context.Background(), []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x1F})
	require.Error(t, err)
}

func TestVarUint32Underrun(t *testing.T) {
	_, _, err := GetVarUint32(context.Background(), []byte{0x80})
	require.Error(t, err)
}

func TestVarInt32ZigZagRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, 1 << 30, -(1 << 30)} {
		b := PutVarInt32(nil, v)
		got, _, err := GetVarInt32(context.Background(), b)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestVarUint64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 1 << 35, 1<<64 - 1} {
		b := PutVarUint64(nil, v)
		got, _, err := GetVarUint64(context.Background(), b)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
