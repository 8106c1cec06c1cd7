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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transferDef() *Def {
	return &Def{
		Version: "eosio::abi/1.1",
		Structs: []StructDef{
			{
				Name: "transfer",
				Fields: []FieldDef{
					{Name: "from", Type: "name"},
					{Name: "to", Type: "name"},
					{Name: "quantity", Type: "asset"},
					{Name: "memo", Type: "string"},
				},
			},
		},
		Actions: []ActionDef{
			{Name: "transfer", Type: "transfer"},
		},
		Tables: []TableDef{
			{Name: "accounts", Type: "transfer"},
		},
	}
}

func TestResolveSeedsBuiltinsAndSyntheticExtendedAsset(t *testing.T) {
	abi, err := Resolve(context.Background(), transferDef())
	require.NoError(t, err)

	nameType, ok := abi.Types["name"]
	require.True(t, ok)
	assert.Equal(t, KindBuiltin, nameType.Kind)

	ea, ok := abi.Types["extended_asset"]
	require.True(t, ok)
	assert.Equal(t, KindStruct, ea.Kind)
	require.Len(t, ea.Fields, 2)
	assert.Equal(t, "quantity", ea.Fields[0].Name)
	assert.Equal(t, "contract", ea.Fields[1].Name)
}

func TestResolveActionAndTableTypes(t *testing.T) {
	abi, err := Resolve(context.Background(), transferDef())
	require.NoError(t, err)
	assert.Equal(t, "transfer", abi.ActionTypes["transfer"])
	assert.Equal(t, "transfer", abi.TableTypes["accounts"])
}

func TestResolveRejectsRedefinedSyntheticExtendedAsset(t *testing.T) {
	def := transferDef()
	def.Structs = append(def.Structs, StructDef{Name: "extended_asset", Fields: []FieldDef{{Name: "x", Type: "int32"}}})
	_, err := Resolve(context.Background(), def)
	require.Error(t, err)
}

func TestResolveStructBaseInheritance(t *testing.T) {
	def := &Def{
		Structs: []StructDef{
			{Name: "base_row", Fields: []FieldDef{{Name: "id", Type: "uint64"}}},
			{Name: "derived_row", Base: "base_row", Fields: []FieldDef{{Name: "value", Type: "int64"}}},
		},
	}
	abi, err := Resolve(context.Background(), def)
	require.NoError(t, err)
	derived := abi.Types["derived_row"]
	require.Len(t, derived.Fields, 2)
	assert.Equal(t, "id", derived.Fields[0].Name)
	assert.Equal(t, "value", derived.Fields[1].Name)
}

func TestResolveRejectsExtensionFieldNotLast(t *testing.T) {
	def := &Def{
		Structs: []StructDef{
			{Name: "bad", Fields: []FieldDef{
				{Name: "a", Type: "int32$"},
				{Name: "b", Type: "int32"},
			}},
		},
	}
	_, err := Resolve(context.Background(), def)
	require.Error(t, err)
}

func TestResolveAllowsContiguousExtensionTail(t *testing.T) {
	def := &Def{
		Structs: []StructDef{
			{Name: "ok", Fields: []FieldDef{
				{Name: "a", Type: "int32"},
				{Name: "b", Type: "int32$"},
				{Name: "c", Type: "int32$"},
			}},
		},
	}
	abi, err := Resolve(context.Background(), def)
	require.NoError(t, err)
	s := abi.Types["ok"]
	require.Len(t, s.Fields, 3)
	assert.Equal(t, KindExtension, s.Fields[1].Type.Kind)
	assert.Equal(t, KindExtension, s.Fields[2].Type.Kind)
}

func TestResolveRejectsNonExtensionAfterExtension(t *testing.T) {
	def := &Def{
		Structs: []StructDef{
			{Name: "bad", Fields: []FieldDef{
				{Name: "a", Type: "int32$"},
				{Name: "b", Type: "int32$"},
				{Name: "c", Type: "int32"},
			}},
		},
	}
	_, err := Resolve(context.Background(), def)
	require.Error(t, err)
}

func TestResolveRejectsOptionalOfArrayOrExtension(t *testing.T) {
	def := &Def{
		Structs: []StructDef{
			{Name: "bad", Fields: []FieldDef{{Name: "a", Type: "int32[]?"}}},
		},
	}
	_, err := Resolve(context.Background(), def)
	require.Error(t, err)

	def2 := &Def{
		Structs: []StructDef{
			{Name: "bad", Fields: []FieldDef{{Name: "a", Type: "int32$?"}}},
		},
	}
	_, err = Resolve(context.Background(), def2)
	require.Error(t, err)
}

func TestResolveAliasFlattens(t *testing.T) {
	def := &Def{
		Types: []TypeDef{{NewTypeName: "account_name", Type: "name"}},
		Structs: []StructDef{
			{Name: "s", Fields: []FieldDef{{Name: "a", Type: "account_name"}}},
		},
	}
	abi, err := Resolve(context.Background(), def)
	require.NoError(t, err)
	s := abi.Types["s"]
	assert.Equal(t, KindBuiltin, s.Fields[0].Type.Kind)
	assert.Equal(t, "name", s.Fields[0].Type.Builtin)
}

func TestResolveUnknownTypeFails(t *testing.T) {
	def := &Def{
		Structs: []StructDef{{Name: "s", Fields: []FieldDef{{Name: "a", Type: "does_not_exist"}}}},
	}
	_, err := Resolve(context.Background(), def)
	require.Error(t, err)
}
