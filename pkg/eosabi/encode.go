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
	"github.com/kaleido-io/eosio-abi/pkg/eosiotypes"
)

// maxTranscodeDepth bounds the recursive value walk done while encoding or
// decoding, separate from maxResolveDepth used while resolving type names
// (spec.md §6 depth rules).
const maxTranscodeDepth = 128

// encodeStrict performs the "strict" streaming transcode (spec.md §7(c)):
// the JSON document's object keys must appear in exactly the struct's
// declared field order, with no reordering tolerated. This is the fast
// single-pass path; JSONToBinReorderable trades speed for field-order
// tolerance by parsing into a tree first.
func encodeStrict(ctx context.Context, t *Type, ts *tokenStream, w *binWriter, depth int) error {
	if depth > maxTranscodeDepth {
		return i18n.NewError(ctx, abimsgs.MsgRecursionLimitReached, t.Name)
	}

	switch t.Kind {
	case KindBuiltin:
		codec, ok := builtinCodecs[t.Builtin]
		if !ok {
			return i18n.NewError(ctx, abimsgs.MsgUnknownType, t.Builtin)
		}
		return codec.JSONToBin(ctx, ts, w)

	case KindOptional:
		tok, err := ts.Peek(ctx)
		if err != nil {
			return err
		}
		if tok.kind == tokNull {
			_, _ = ts.Next(ctx)
			w.WriteByte(0)
			return nil
		}
		w.WriteByte(1)
		return encodeStrict(ctx, t.Elem, ts, w, depth+1)

	case KindExtension:
		// Reached only when an extension type is itself the top-level type
		// being transcoded: struct fields unwrap their extension type before
		// recursing, and the resolver rejects extension-typed array
		// elements, optional elements and variant cases.
		return encodeStrict(ctx, t.Elem, ts, w, depth+1)

	case KindArray:
		if _, err := expectTokenKind(ctx, ts, tokStartArray); err != nil {
			return err
		}
		child := newBinWriter()
		count := uint32(0)
		for {
			tok, err := ts.Peek(ctx)
			if err != nil {
				return err
			}
			if tok.kind == tokEndArray {
				_, _ = ts.Next(ctx)
				break
			}
			if err := encodeStrict(ctx, t.Elem, ts, child, depth+1); err != nil {
				return err
			}
			count++
		}
		w.Write(eosiotypes.PutVarUint32(nil, count))
		w.Write(child.Bytes())
		return nil

	case KindStruct:
		if _, err := expectTokenKind(ctx, ts, tokStartObject); err != nil {
			return err
		}
		for _, f := range t.Fields {
			if f.Type.Kind == KindExtension {
				tok, err := ts.Peek(ctx)
				if err != nil {
					return err
				}
				if tok.kind == tokEndObject {
					// The remaining fields are all extension-typed (the
					// resolver enforces a contiguous trailing run), so
					// data running out here means all of them are absent.
					break
				}
			}
			keyTok, err := ts.Next(ctx)
			if err != nil {
				return err
			}
			if keyTok.kind != tokKey {
				return i18n.NewError(ctx, abimsgs.MsgExpectedField, f.Name, tokenKindName(keyTok.kind))
			}
			if keyTok.s != f.Name {
				return i18n.NewError(ctx, abimsgs.MsgExpectedField, f.Name, keyTok.s)
			}
			fieldType := f.Type
			if fieldType.Kind == KindExtension {
				fieldType = fieldType.Elem
			}
			if err := encodeStrict(ctx, fieldType, ts, w, depth+1); err != nil {
				return err
			}
		}
		if _, err := expectTokenKind(ctx, ts, tokEndObject); err != nil {
			return err
		}
		return nil

	case KindVariant:
		if _, err := expectTokenKind(ctx, ts, tokStartArray); err != nil {
			return err
		}
		nameTok, err := ts.Next(ctx)
		if err != nil {
			return err
		}
		if nameTok.kind != tokString {
			return i18n.NewError(ctx, abimsgs.MsgInvalidTypeForVariant, tokenKindName(nameTok.kind), t.Name)
		}
		var matched *VariantCase
		for i := range t.Cases {
			if t.Cases[i].Name == nameTok.s {
				matched = &t.Cases[i]
				break
			}
		}
		if matched == nil {
			return i18n.NewError(ctx, abimsgs.MsgInvalidTypeForVariant, nameTok.s, t.Name)
		}
		w.Write(eosiotypes.PutVarUint32(nil, uint32(matched.Index)))
		if err := encodeStrict(ctx, matched.Type, ts, w, depth+1); err != nil {
			return err
		}
		if _, err := expectTokenKind(ctx, ts, tokEndArray); err != nil {
			return err
		}
		return nil
	}

	return i18n.NewError(ctx, abimsgs.MsgUnknownType, t.Name)
}

func expectTokenKind(ctx context.Context, ts *tokenStream, kind tokenKind) (token, error) {
	tok, err := ts.Next(ctx)
	if err != nil {
		return token{}, err
	}
	if tok.kind != kind {
		return token{}, i18n.NewError(ctx, abimsgs.MsgExpectedToken, tokenKindName(kind), tokenKindName(tok.kind))
	}
	return tok, nil
}
