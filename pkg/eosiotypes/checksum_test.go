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

func TestFixedBytesHexRoundTrip(t *testing.T) {
	s := "DEADBEEF00112233445566778899AABBCCDDEEFF"
	fb, err := ParseFixedBytesHex(context.Background(), s, 20)
	require.NoError(t, err)
	assert.Equal(t, s, fb.String())
}

func TestFixedBytesWrongLength(t *testing.T) {
	_, err := ParseFixedBytesHex(context.Background(), "AABB", 20)
	require.Error(t, err)
}

func TestVarBytesRoundTrip(t *testing.T) {
	v, err := ParseVarBytesHex(context.Background(), "0102030405")
	require.NoError(t, err)
	bin := v.ToBin()
	decoded, n, err := VarBytesFromBin(context.Background(), bin)
	require.NoError(t, err)
	assert.Equal(t, len(bin), n)
	assert.Equal(t, v, decoded)
}

func TestVarBytesOddLength(t *testing.T) {
	_, err := ParseVarBytesHex(context.Background(), "010")
	require.Error(t, err)
}
