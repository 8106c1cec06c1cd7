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

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
)

// decodeToJSON walks a binary payload against a resolved Type and emits the
// equivalent canonical JSON text (spec.md §7 binary-to-JSON direction). The
// wire shape is unambiguous regardless of strict/reorderable mode, so there
// is only one binary decode path.
func decodeToJSON(ctx context.Context, t *Type, r *binReader, w *jsonWriter, depth int) error {
	if depth > maxTranscodeDepth {
		return i18n.NewError(ctx, abimsgs.MsgRecursionLimitReached, t.Name)
	}

	switch t.Kind {
	case KindBuiltin:
		codec, ok := builtinCodecs[t.Builtin]
		if !ok {
			return i18n.NewError(ctx, abimsgs.MsgUnknownType, t.Builtin)
		}
		return codec.BinToJSON(ctx, r, w)

	case KindOptional:
		present, err := r.ReadByte(ctx)
		if err != nil {
			return err
		}
		if present == 0 {
			w.RawValue("null")
			return nil
		}
		return decodeToJSON(ctx, t.Elem, r, w, depth+1)

	case KindExtension:
		return decodeToJSON(ctx, t.Elem, r, w, depth+1)

	case KindArray:
		count, err := r.GetVarUint32(ctx)
		if err != nil {
			return err
		}
		w.StartArray()
		for i := uint32(0); i < count; i++ {
			if err := decodeToJSON(ctx, t.Elem, r, w, depth+1); err != nil {
				return err
			}
		}
		w.EndArray()
		return nil

	case KindStruct:
		w.StartObject()
		for _, f := range t.Fields {
			fieldType := f.Type
			if fieldType.Kind == KindExtension {
				if r.Remaining() == 0 {
					// The rest of the fields are all extension-typed (a
					// contiguous trailing run, enforced by the resolver),
					// so data running out here means all of them are
					// absent from the wire (spec.md §6 extension-
					// contiguity rule).
					break
				}
				fieldType = fieldType.Elem
			}
			w.Key(f.Name)
			if err := decodeToJSON(ctx, fieldType, r, w, depth+1); err != nil {
				return err
			}
		}
		w.EndObject()
		return nil

	case KindVariant:
		idx, err := r.GetVarUint32(ctx)
		if err != nil {
			return err
		}
		if int(idx) >= len(t.Cases) {
			return i18n.NewError(ctx, abimsgs.MsgBadVariantIndex, idx, len(t.Cases))
		}
		c := t.Cases[idx]
		w.StartArray()
		w.StringValue(c.Name)
		if err := decodeToJSON(ctx, c.Type, r, w, depth+1); err != nil {
			return err
		}
		w.EndArray()
		return nil
	}

	return i18n.NewError(ctx, abimsgs.MsgUnknownType, t.Name)
}
