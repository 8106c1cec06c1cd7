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
	"io"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
)

type tokenKind int

const (
	tokNull tokenKind = iota
	tokBool
	tokString
	tokNumber
	tokStartObject
	tokKey
	tokEndObject
	tokStartArray
	tokEndArray
)

// token mirrors spec.md §4.4: null/bool/string/number-as-string/{/}/[/]/key.
// Numbers are carried as their literal text (json.Number), so §4.2's
// integer codecs can enforce exact textual ranges rather than trusting a
// float64 round trip.
type token struct {
	kind tokenKind
	b    bool
	s    string
}

// tokenStream is a pull parser over a JSON document, built on
// encoding/json.Decoder (streaming token mode) with a peek/eat interface
// layered on top to match the ABI engine's walk. Every example repo in the
// retrieval pack that touches JSON uses encoding/json exclusively; there is
// no hand-rolled tokenizer anywhere in the pack to ground a bespoke one
// against, so the idiomatic choice is the standard library's own streaming
// decoder (see DESIGN.md).
type tokenStream struct {
	dec     *json.Decoder
	stack   []*frame
	pending *token
	havePending bool
}

type frame struct {
	isObject  bool
	expectKey bool
}

func newTokenStream(data []byte) *tokenStream {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return &tokenStream{dec: dec}
}

func (ts *tokenStream) Peek(ctx context.Context) (token, error) {
	if ts.havePending {
		return *ts.pending, nil
	}
	t, err := ts.readRaw(ctx)
	if err != nil {
		return token{}, err
	}
	ts.pending = &t
	ts.havePending = true
	return t, nil
}

func (ts *tokenStream) Next(ctx context.Context) (token, error) {
	if ts.havePending {
		ts.havePending = false
		t := *ts.pending
		ts.pending = nil
		return t, nil
	}
	return ts.readRaw(ctx)
}

func (ts *tokenStream) top() *frame {
	if len(ts.stack) == 0 {
		return nil
	}
	return ts.stack[len(ts.stack)-1]
}

func (ts *tokenStream) readRaw(ctx context.Context) (token, error) {
	top := ts.top()
	if top != nil && top.isObject && top.expectKey {
		raw, err := ts.dec.Token()
		if err != nil {
			return token{}, wrapJSONErr(ctx, err)
		}
		switch v := raw.(type) {
		case json.Delim:
			if v == '}' {
				ts.stack = ts.stack[:len(ts.stack)-1]
				ts.afterContainerClose()
				return token{kind: tokEndObject}, nil
			}
			return token{}, i18n.NewError(ctx, abimsgs.MsgInvalidJSON, "unexpected delimiter")
		case string:
			top.expectKey = false
			return token{kind: tokKey, s: v}, nil
		default:
			return token{}, i18n.NewError(ctx, abimsgs.MsgInvalidJSON, "expected object key")
		}
	}

	raw, err := ts.dec.Token()
	if err != nil {
		return token{}, wrapJSONErr(ctx, err)
	}
	switch v := raw.(type) {
	case json.Delim:
		switch v {
		case '{':
			ts.stack = append(ts.stack, &frame{isObject: true, expectKey: true})
			return token{kind: tokStartObject}, nil
		case '[':
			ts.stack = append(ts.stack, &frame{isObject: false})
			ts.markValueConsumed()
			return token{kind: tokStartArray}, nil
		case ']':
			ts.stack = ts.stack[:len(ts.stack)-1]
			ts.afterContainerClose()
			return token{kind: tokEndArray}, nil
		default:
			return token{}, i18n.NewError(ctx, abimsgs.MsgInvalidJSON, "unexpected delimiter")
		}
	case nil:
		ts.markValueConsumed()
		return token{kind: tokNull}, nil
	case bool:
		ts.markValueConsumed()
		return token{kind: tokBool, b: v}, nil
	case json.Number:
		ts.markValueConsumed()
		return token{kind: tokNumber, s: v.String()}, nil
	case string:
		ts.markValueConsumed()
		return token{kind: tokString, s: v}, nil
	default:
		return token{}, i18n.NewError(ctx, abimsgs.MsgInvalidJSON, "unrecognized token")
	}
}

// markValueConsumed flips the parent object frame back to expecting a key,
// for the case where the value just produced is itself a leaf (not a
// container whose own closing token will do this via afterContainerClose).
func (ts *tokenStream) markValueConsumed() {
	if top := ts.top(); top != nil && top.isObject {
		top.expectKey = true
	}
}

func (ts *tokenStream) afterContainerClose() {
	ts.markValueConsumed()
}

func tokenKindName(k tokenKind) string {
	switch k {
	case tokNull:
		return "null"
	case tokBool:
		return "bool"
	case tokString:
		return "string"
	case tokNumber:
		return "number"
	case tokStartObject:
		return "{"
	case tokKey:
		return "key"
	case tokEndObject:
		return "}"
	case tokStartArray:
		return "["
	case tokEndArray:
		return "]"
	default:
		return "unknown"
	}
}

func wrapJSONErr(ctx context.Context, err error) error {
	if err == io.EOF {
		return i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	return i18n.WrapError(ctx, err, abimsgs.MsgInvalidJSON, err.Error())
}
