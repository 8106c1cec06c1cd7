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
	"bytes"
	"context"
	"encoding/json"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
	"github.com/kaleido-io/eosio-abi/pkg/eosiotypes"
)

// parseJSONTree decodes the whole document into a generic tree (object
// fields keyed by name rather than position) so that encodeReorderable can
// tolerate struct fields presented in any order - the slower alternative
// to encodeStrict's single streaming pass (spec.md §7(c)).
func parseJSONTree(ctx context.Context, data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, i18n.WrapError(ctx, err, abimsgs.MsgInvalidJSON, err.Error())
	}
	return v, nil
}

// encodeReorderable mirrors encodeStrict's wire semantics but reads struct
// fields out of a map by name, so they may appear in the JSON document in
// any order.
func encodeReorderable(ctx context.Context, t *Type, v interface{}, w *binWriter, depth int) error {
	if depth > maxTranscodeDepth {
		return i18n.NewError(ctx, abimsgs.MsgRecursionLimitReached, t.Name)
	}

	switch t.Kind {
	case KindBuiltin:
		codec, ok := builtinCodecs[t.Builtin]
		if !ok {
			return i18n.NewError(ctx, abimsgs.MsgUnknownType, t.Builtin)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return i18n.WrapError(ctx, err, abimsgs.MsgInvalidJSON, err.Error())
		}
		return codec.JSONToBin(ctx, newTokenStream(raw), w)

	case KindOptional:
		if v == nil {
			w.WriteByte(0)
			return nil
		}
		w.WriteByte(1)
		return encodeReorderable(ctx, t.Elem, v, w, depth+1)

	case KindExtension:
		return encodeReorderable(ctx, t.Elem, v, w, depth+1)

	case KindArray:
		arr, ok := v.([]interface{})
		if !ok {
			return i18n.NewError(ctx, abimsgs.MsgInvalidJSON, "expected array for "+t.Name)
		}
		child := newBinWriter()
		for _, elem := range arr {
			if err := encodeReorderable(ctx, t.Elem, elem, child, depth+1); err != nil {
				return err
			}
		}
		w.Write(eosiotypes.PutVarUint32(nil, uint32(len(arr))))
		w.Write(child.Bytes())
		return nil

	case KindStruct:
		obj, ok := v.(map[string]interface{})
		if !ok {
			return i18n.NewError(ctx, abimsgs.MsgInvalidJSON, "expected object for "+t.Name)
		}
		skipped := false
		for _, f := range t.Fields {
			val, present := obj[f.Name]
			fieldType := f.Type
			if fieldType.Kind == KindExtension {
				if !present {
					// The remaining fields are all extension-typed (the
					// resolver enforces a contiguous trailing run); once one
					// is absent, any later one that is present is rejected.
					skipped = true
					continue
				}
				if skipped {
					return i18n.NewError(ctx, abimsgs.MsgUnexpectedField, f.Name)
				}
				fieldType = fieldType.Elem
			}
			if !present {
				return i18n.NewError(ctx, abimsgs.MsgExpectedField, f.Name, "<missing>")
			}
			if err := encodeReorderable(ctx, fieldType, val, w, depth+1); err != nil {
				return err
			}
		}
		return nil

	case KindVariant:
		arr, ok := v.([]interface{})
		if !ok || len(arr) != 2 {
			return i18n.NewError(ctx, abimsgs.MsgInvalidTypeForVariant, "<malformed>", t.Name)
		}
		name, ok := arr[0].(string)
		if !ok {
			return i18n.NewError(ctx, abimsgs.MsgInvalidTypeForVariant, "<non-string>", t.Name)
		}
		var matched *VariantCase
		for i := range t.Cases {
			if t.Cases[i].Name == name {
				matched = &t.Cases[i]
				break
			}
		}
		if matched == nil {
			return i18n.NewError(ctx, abimsgs.MsgInvalidTypeForVariant, name, t.Name)
		}
		w.Write(eosiotypes.PutVarUint32(nil, uint32(matched.Index)))
		return encodeReorderable(ctx, matched.Type, arr[1], w, depth+1)
	}

	return i18n.NewError(ctx, abimsgs.MsgUnknownType, t.Name)
}
