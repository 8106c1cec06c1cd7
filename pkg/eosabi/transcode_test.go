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

package eosabi

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, def *Def) (*Context, string) {
	t.Helper()
	c := NewContext()
	require.NoError(t, c.SetABI(context.Background(), "eosio.token", def))
	return c, "eosio.token"
}

func TestJSONToBinAndBackTransfer(t *testing.T) {
	c, contract := newTestContext(t, transferDef())
	ctx := context.Background()

	in := []byte(`{"from":"alice","to":"bob","quantity":"1.2345 EOS","memo":"hi"}`)
	bin, err := c.JSONToBin(ctx, contract, "transfer", in)
	require.NoError(t, err)

	out, err := c.BinToJSON(ctx, contract, "transfer", bin)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}

func TestJSONToBinRejectsOutOfOrderFieldsStrict(t *testing.T) {
	c, contract := newTestContext(t, transferDef())
	ctx := context.Background()

	in := []byte(`{"to":"bob","from":"alice","quantity":"1.2345 EOS","memo":"hi"}`)
	_, err := c.JSONToBin(ctx, contract, "transfer", in)
	require.Error(t, err)
}

func TestJSONToBinReorderableToleratesFieldOrder(t *testing.T) {
	c, contract := newTestContext(t, transferDef())
	ctx := context.Background()

	in := []byte(`{"to":"bob","from":"alice","quantity":"1.2345 EOS","memo":"hi"}`)
	bin, err := c.JSONToBinReorderable(ctx, contract, "transfer", in)
	require.NoError(t, err)

	out, err := c.BinToJSON(ctx, contract, "transfer", bin)
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"alice","to":"bob","quantity":"1.2345 EOS","memo":"hi"}`, string(out))
}

// TestAssetWireFormat exercises scenario S3 from spec.md through the full
// ABI pipeline (not just the eosiotypes.Asset codec in isolation).
func TestAssetWireFormat(t *testing.T) {
	def := &Def{Structs: []StructDef{{Name: "s", Fields: []FieldDef{{Name: "q", Type: "asset"}}}}}
	c, contract := newTestContext(t, def)
	ctx := context.Background()

	bin, err := c.JSONToBin(ctx, contract, "s", []byte(`{"q":"1.2345 EOS"}`))
	require.NoError(t, err)
	assert.Equal(t, "393000000000000004454f5300000000", hex.EncodeToString(bin))
}

// TestVariantWireFormat exercises scenario S4.
func TestVariantWireFormat(t *testing.T) {
	def := &Def{
		Variants: []VariantDef{{Name: "v", Types: []string{"int32", "string"}}},
		Structs:  []StructDef{{Name: "holder", Fields: []FieldDef{{Name: "val", Type: "v"}}}},
	}
	c, contract := newTestContext(t, def)
	ctx := context.Background()

	bin, err := c.JSONToBin(ctx, contract, "holder", []byte(`{"val":["string","hi"]}`))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 'h', 'i'}, bin)

	_, err = c.JSONToBin(ctx, contract, "holder", []byte(`{"val":["float","x"]}`))
	require.Error(t, err)

	_, err = c.BinToJSON(ctx, contract, "holder", []byte{0x02, 0, 0, 0, 0})
	require.Error(t, err)
}

// TestExtensionTail exercises scenario S5.
func TestExtensionTail(t *testing.T) {
	def := &Def{
		Structs: []StructDef{{Name: "s", Fields: []FieldDef{
			{Name: "a", Type: "int32"},
			{Name: "b", Type: "int32$"},
		}}},
	}
	c, contract := newTestContext(t, def)
	ctx := context.Background()

	out, err := c.BinToJSON(ctx, contract, "s", []byte{0x01, 0, 0, 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(out))

	out, err = c.BinToJSON(ctx, contract, "s", []byte{0x01, 0, 0, 0, 0x02, 0, 0, 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":2}`, string(out))

	bin, err := c.JSONToBin(ctx, contract, "s", []byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0, 0, 0, 0x02, 0, 0, 0}, bin)

	bin, err = c.JSONToBin(ctx, contract, "s", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0, 0, 0}, bin)
}

// TestExtensionTailMultiField extends TestExtensionTail to a struct with a
// two-field extension tail (b and c).
func TestExtensionTailMultiField(t *testing.T) {
	def := &Def{
		Structs: []StructDef{{Name: "s", Fields: []FieldDef{
			{Name: "a", Type: "int32"},
			{Name: "b", Type: "int32$"},
			{Name: "c", Type: "int32$"},
		}}},
	}
	c, contract := newTestContext(t, def)
	ctx := context.Background()

	// All extension fields omitted.
	out, err := c.BinToJSON(ctx, contract, "s", []byte{0x01, 0, 0, 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(out))

	// Only the first extension field present.
	out, err = c.BinToJSON(ctx, contract, "s", []byte{0x01, 0, 0, 0, 0x02, 0, 0, 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":2}`, string(out))

	// Both extension fields present.
	out, err = c.BinToJSON(ctx, contract, "s", []byte{0x01, 0, 0, 0, 0x02, 0, 0, 0, 0x03, 0, 0, 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":2,"c":3}`, string(out))

	bin, err := c.JSONToBin(ctx, contract, "s", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0, 0, 0}, bin)

	bin, err = c.JSONToBin(ctx, contract, "s", []byte(`{"a":1,"b":2,"c":3}`))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0, 0, 0, 0x02, 0, 0, 0, 0x03, 0, 0, 0}, bin)

	// Reorderable mode must honor the same contiguous-omission rule.
	bin, err = c.JSONToBinReorderable(ctx, contract, "s", []byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0, 0, 0, 0x02, 0, 0, 0}, bin)
}

func TestFloatNonFiniteJSON(t *testing.T) {
	def := &Def{Structs: []StructDef{{Name: "s", Fields: []FieldDef{{Name: "x", Type: "float64"}}}}}
	c, contract := newTestContext(t, def)
	ctx := context.Background()

	for _, tc := range []string{"NaN", "Infinity", "-Infinity"} {
		in := []byte(`{"x":"` + tc + `"}`)
		bin, err := c.JSONToBin(ctx, contract, "s", in)
		require.NoError(t, err)
		out, err := c.BinToJSON(ctx, contract, "s", bin)
		require.NoError(t, err)
		assert.JSONEq(t, string(in), string(out))
	}
}

func TestArrayRoundTrip(t *testing.T) {
	def := &Def{Structs: []StructDef{{Name: "s", Fields: []FieldDef{{Name: "xs", Type: "int32[]"}}}}}
	c, contract := newTestContext(t, def)
	ctx := context.Background()

	bin, err := c.JSONToBin(ctx, contract, "s", []byte(`{"xs":[1,2,3]}`))
	require.NoError(t, err)
	out, err := c.BinToJSON(ctx, contract, "s", bin)
	require.NoError(t, err)
	assert.JSONEq(t, `{"xs":[1,2,3]}`, string(out))
}

func TestOptionalRoundTrip(t *testing.T) {
	def := &Def{Structs: []StructDef{{Name: "s", Fields: []FieldDef{{Name: "x", Type: "int32?"}}}}}
	c, contract := newTestContext(t, def)
	ctx := context.Background()

	bin, err := c.JSONToBin(ctx, contract, "s", []byte(`{"x":null}`))
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, bin)

	out, err := c.BinToJSON(ctx, contract, "s", bin)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":null}`, string(out))

	bin, err = c.JSONToBin(ctx, contract, "s", []byte(`{"x":5}`))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 5, 0, 0, 0}, bin)
}

func TestGetTypeForActionAndTable(t *testing.T) {
	c, contract := newTestContext(t, transferDef())
	ctx := context.Background()

	typeName, err := c.GetTypeForAction(ctx, contract, "transfer")
	require.NoError(t, err)
	assert.Equal(t, "transfer", typeName)

	_, err = c.GetTypeForAction(ctx, contract, "notanaction")
	require.Error(t, err)

	typeName, err = c.GetTypeForTable(ctx, contract, "accounts")
	require.NoError(t, err)
	assert.Equal(t, "transfer", typeName)
}

func TestDefinitionRoundTripOmitsSyntheticType(t *testing.T) {
	c, contract := newTestContext(t, transferDef())
	ctx := context.Background()

	_, err := c.JSONToBin(ctx, contract, "extended_asset", []byte(`{"quantity":"1.0000 EOS","contract":"eosio.token"}`))
	require.NoError(t, err)

	abi, err := c.lookupABI(ctx, contract)
	require.NoError(t, err)
	assert.Equal(t, transferDef(), abi.Definition())
	for _, sd := range abi.Definition().Structs {
		assert.NotEqual(t, "extended_asset", sd.Name)
	}
}
