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
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
)

// maxResolveDepth bounds alias/struct-base recursion while resolving a type
// name, separate from maxTranscodeDepth which bounds the deeper recursive
// walk done while actually reading or writing a value (spec.md §6 depth
// rules).
const maxResolveDepth = 32

// extendedAssetTypeName is injected into every ABI at resolve time, and a
// document that defines or aliases it is rejected: EOSIO contracts reference it pervasively
// (e.g. currency balances held by another contract) but it is not part of
// the base builtin set, so no abi.json actually declares it (spec.md §6
// Open Question (b) - resolved by synthesizing it rather than requiring
// every ABI author to redeclare it).
const extendedAssetTypeName = "extended_asset"

// resolver turns an unresolved Def into a fully resolved ABI, flattening
// aliases, stitching struct bases, and validating the extension-field
// contiguity and nesting rules from spec.md §6.
type resolver struct {
	def           *Def
	types         map[string]*Type
	inFlight      map[string]bool
	aliases       map[string]string
	structsByName map[string]*StructDef
	variantsByName map[string]*VariantDef
}

// Resolve builds an ABI from def (spec.md §5/§6 C5/C6).
func Resolve(ctx context.Context, def *Def) (*ABI, error) {
	r := &resolver{
		def:      def,
		types:    map[string]*Type{},
		inFlight: map[string]bool{},
	}

	for name := range builtinCodecs {
		r.types[name] = &Type{Name: name, Kind: KindBuiltin, Builtin: name}
	}

	aliases := map[string]string{}
	for _, td := range def.Types {
		if td.NewTypeName == "" {
			return nil, i18n.NewError(ctx, abimsgs.MsgMissingName)
		}
		if _, exists := aliases[td.NewTypeName]; exists {
			return nil, i18n.NewError(ctx, abimsgs.MsgRedefinedType, td.NewTypeName)
		}
		aliases[td.NewTypeName] = td.Type
	}

	structsByName := map[string]*StructDef{}
	for i := range def.Structs {
		sd := &def.Structs[i]
		if _, exists := structsByName[sd.Name]; exists {
			return nil, i18n.NewError(ctx, abimsgs.MsgRedefinedType, sd.Name)
		}
		structsByName[sd.Name] = sd
	}
	variantsByName := map[string]*VariantDef{}
	for i := range def.Variants {
		vd := &def.Variants[i]
		if _, exists := variantsByName[vd.Name]; exists {
			return nil, i18n.NewError(ctx, abimsgs.MsgRedefinedType, vd.Name)
		}
		variantsByName[vd.Name] = vd
	}
	_, defined := structsByName[extendedAssetTypeName]
	_, aliased := aliases[extendedAssetTypeName]
	if defined || aliased {
		return nil, i18n.NewError(ctx, abimsgs.MsgRedefinesSyntheticExt, extendedAssetTypeName)
	}
	structsByName[extendedAssetTypeName] = &StructDef{
		Name: extendedAssetTypeName,
		Fields: []FieldDef{
			{Name: "quantity", Type: "asset"},
			{Name: "contract", Type: "name"},
		},
	}

	r.aliases = aliases
	r.structsByName = structsByName
	r.variantsByName = variantsByName

	for name := range aliases {
		if _, err := r.getType(ctx, name, 0); err != nil {
			return nil, err
		}
	}
	for name := range structsByName {
		if _, err := r.getType(ctx, name, 0); err != nil {
			return nil, err
		}
	}
	for name := range variantsByName {
		if _, err := r.getType(ctx, name, 0); err != nil {
			return nil, err
		}
	}

	actionTypes := map[string]string{}
	for _, a := range def.Actions {
		if _, err := r.getType(ctx, a.Type, 0); err != nil {
			return nil, err
		}
		actionTypes[a.Name] = a.Type
	}
	tableTypes := map[string]string{}
	for _, t := range def.Tables {
		if _, err := r.getType(ctx, t.Type, 0); err != nil {
			return nil, err
		}
		tableTypes[t.Name] = t.Type
	}

	return &ABI{
		Def:         def,
		Types:       r.types,
		ActionTypes: actionTypes,
		TableTypes:  tableTypes,
	}, nil
}

// getType resolves name (which may carry `?`, `$`, or `[]` suffixes) into a
// Type node, memoizing in r.types. depth bounds alias/base recursion
// (spec.md §6 recursion-depth rule).
func (r *resolver) getType(ctx context.Context, name string, depth int) (*Type, error) {
	if depth > maxResolveDepth {
		return nil, i18n.NewError(ctx, abimsgs.MsgRecursionLimitReached, name)
	}
	if t, ok := r.types[name]; ok {
		return t, nil
	}

	switch {
	case strings.HasSuffix(name, "?"):
		inner := strings.TrimSuffix(name, "?")
		elem, err := r.getType(ctx, inner, depth+1)
		if err != nil {
			return nil, err
		}
		if elem.Kind == KindOptional || elem.Kind == KindArray || elem.Kind == KindExtension {
			return nil, i18n.NewError(ctx, abimsgs.MsgInvalidNesting, name)
		}
		t := &Type{Name: name, Kind: KindOptional, Elem: elem}
		r.types[name] = t
		return t, nil

	case strings.HasSuffix(name, "$"):
		inner := strings.TrimSuffix(name, "$")
		elem, err := r.getType(ctx, inner, depth+1)
		if err != nil {
			return nil, err
		}
		if elem.Kind == KindOptional || elem.Kind == KindExtension {
			return nil, i18n.NewError(ctx, abimsgs.MsgInvalidNesting, name)
		}
		t := &Type{Name: name, Kind: KindExtension, Elem: elem}
		r.types[name] = t
		return t, nil

	case strings.HasSuffix(name, "[]"):
		inner := strings.TrimSuffix(name, "[]")
		elem, err := r.getType(ctx, inner, depth+1)
		if err != nil {
			return nil, err
		}
		if elem.Kind == KindOptional || elem.Kind == KindExtension {
			return nil, i18n.NewError(ctx, abimsgs.MsgInvalidNesting, name)
		}
		t := &Type{Name: name, Kind: KindArray, Elem: elem}
		r.types[name] = t
		return t, nil
	}

	if aliased, ok := r.aliases[name]; ok {
		if r.inFlight[name] {
			return nil, i18n.NewError(ctx, abimsgs.MsgRecursionLimitReached, name)
		}
		r.inFlight[name] = true
		elem, err := r.getType(ctx, aliased, depth+1)
		delete(r.inFlight, name)
		if err != nil {
			return nil, err
		}
		// Aliases flatten completely: the alias name maps to exactly the
		// same resolved Type node as its target (spec.md §6 alias rule).
		r.types[name] = elem
		return elem, nil
	}

	if sd, ok := r.structsByName[name]; ok {
		placeholder := &Type{Name: name, Kind: KindStruct}
		r.types[name] = placeholder
		fields, err := r.resolveStructFields(ctx, sd, depth)
		if err != nil {
			delete(r.types, name)
			return nil, err
		}
		placeholder.Fields = fields
		return placeholder, nil
	}

	if vd, ok := r.variantsByName[name]; ok {
		placeholder := &Type{Name: name, Kind: KindVariant}
		r.types[name] = placeholder
		cases := make([]VariantCase, len(vd.Types))
		for i, tn := range vd.Types {
			elem, err := r.getType(ctx, tn, depth+1)
			if err != nil {
				delete(r.types, name)
				return nil, err
			}
			if elem.Kind == KindExtension {
				delete(r.types, name)
				return nil, i18n.NewError(ctx, abimsgs.MsgInvalidNesting, tn)
			}
			cases[i] = VariantCase{Index: i, Name: tn, Type: elem}
		}
		placeholder.Cases = cases
		return placeholder, nil
	}

	return nil, i18n.NewError(ctx, abimsgs.MsgUnknownType, name)
}

// resolveStructFields walks Base chains (outermost-base-first) and checks
// that extension fields, if any, form a contiguous suffix of the outermost
// struct's flattened field list (spec.md §6 base-inheritance and
// extension-contiguity rules).
func (r *resolver) resolveStructFields(ctx context.Context, sd *StructDef, depth int) ([]Field, error) {
	var baseFields []Field
	if sd.Base != "" {
		baseType, err := r.getType(ctx, sd.Base, depth+1)
		if err != nil {
			return nil, err
		}
		if baseType.Kind != KindStruct {
			return nil, i18n.NewError(ctx, abimsgs.MsgBaseNotAStruct, sd.Base, sd.Name)
		}
		baseFields = baseType.Fields
	}

	ownFields := make([]Field, len(sd.Fields))
	for i, fd := range sd.Fields {
		ft, err := r.getType(ctx, fd.Type, depth+1)
		if err != nil {
			return nil, err
		}
		ownFields[i] = Field{Name: fd.Name, Type: ft}
	}

	all := append(append([]Field{}, baseFields...), ownFields...)

	// Extension fields, if any, must form a contiguous suffix of the
	// outermost struct's flattened field list: once one is seen, every
	// field after it must also be extension-typed.
	sawExtension := false
	for _, f := range all {
		if f.Type.Kind == KindExtension {
			sawExtension = true
			continue
		}
		if sawExtension {
			return nil, i18n.NewError(ctx, abimsgs.MsgExtensionFieldNotLast, f.Name)
		}
	}

	return all, nil
}
