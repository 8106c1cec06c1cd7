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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetEncodeDecode(t *testing.T) {
	a, err := ParseAsset(context.Background(), "1.2345 EOS")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), a.Amount)
	assert.Equal(t, uint8(4), a.Sym.Precision)
	assert.Equal(t, "EOS", a.Sym.Code.String())

	bin := a.ToBin()
	// layout: amount LE int64 (8b: 12345 = 0x3039) ++ precision(1b=4) ++ code "EOS" (7b zero padded)
	expected, err := hex.DecodeString("393000000000000004454f5300000000")
	require.NoError(t, err)
	assert.Equal(t, expected, bin)

	decoded, n, err := AssetFromBin(context.Background(), bin)
	require.NoError(t, err)
	assert.Equal(t, len(bin), n)
	assert.Equal(t, a, decoded)
	assert.Equal(t, "1.2345 EOS", decoded.String())
}

func TestAssetZeroPrecision(t *testing.T) {
	a, err := ParseAsset(context.Background(), "100 TOK")
	require.NoError(t, err)
	assert.Equal(t, int64(100), a.Amount)
	assert.Equal(t, uint8(0), a.Sym.Precision)
	assert.Equal(t, "100 TOK", a.String())
}

func TestAssetNegative(t *testing.T) {
	a, err := ParseAsset(context.Background(), "-1.50 USD")
	require.NoError(t, err)
	assert.Equal(t, int64(-150), a.Amount)
	assert.Equal(t, "-1.50 USD", a.String())
}

func TestSymbolCodeInvalidChar(t *testing.T) {
	_, err := StringToSymbolCode(context.Background(), "eos")
	require.Error(t, err)
}
