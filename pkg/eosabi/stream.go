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
	"encoding/json"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
	"github.com/kaleido-io/eosio-abi/pkg/eosiotypes"
)

// binWriter is a growable byte sink. Unlike the vector/fixed/counter split
// in the original abieos stream primitives, a single growable buffer covers
// every case here - Go slice growth already amortizes the allocation cost
// that motivated the fixed-capacity and counter-only variants in a
// non-GC'd language (see DESIGN.md).
type binWriter struct {
	buf []byte
}

func newBinWriter() *binWriter {
	return &binWriter{}
}

func (w *binWriter) WriteByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *binWriter) Write(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *binWriter) Bytes() []byte {
	return w.buf
}

// binReader is a bounded view over a binary payload.
type binReader struct {
	buf []byte
	pos int
}

func newBinReader(b []byte) *binReader {
	return &binReader{buf: b}
}

func (r *binReader) Remaining() int {
	return len(r.buf) - r.pos
}

func (r *binReader) checkAvailable(ctx context.Context, n int) error {
	if r.Remaining() < n {
		return i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	return nil
}

// ReadByte consumes and returns a single byte.
func (r *binReader) ReadByte(ctx context.Context) (byte, error) {
	if err := r.checkAvailable(ctx, 1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// Read consumes and returns a borrowed slice of n bytes (read_reuse_storage
// in spec.md §4.1 - no copy is made; callers that retain the slice beyond
// the reader's lifetime must copy it themselves).
func (r *binReader) Read(ctx context.Context, n int) ([]byte, error) {
	if err := r.checkAvailable(ctx, n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *binReader) Skip(ctx context.Context, n int) error {
	if err := r.checkAvailable(ctx, n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// GetVarUint32 reads a var-uint32 from the current position, advancing it.
func (r *binReader) GetVarUint32(ctx context.Context) (uint32, error) {
	v, n, err := eosiotypes.GetVarUint32(ctx, r.buf[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// jsonWriter is a compact (no insignificant whitespace), canonical-order
// JSON text sink, matching the "pretty printing" sink in spec.md §4.1
// minus the indentation stack - canonical output here is always compact,
// since §8 property 2 requires byte-for-byte canonical round trips with no
// whitespace outside of strings.
type jsonWriter struct {
	buf        []byte
	needsComma []bool
}

func newJSONWriter() *jsonWriter {
	return &jsonWriter{}
}

func (w *jsonWriter) pushContainer() {
	w.needsComma = append(w.needsComma, false)
}

func (w *jsonWriter) popContainer() {
	w.needsComma = w.needsComma[:len(w.needsComma)-1]
}

func (w *jsonWriter) maybeComma() {
	n := len(w.needsComma)
	if n == 0 {
		return
	}
	if w.needsComma[n-1] {
		w.buf = append(w.buf, ',')
	}
	w.needsComma[n-1] = true
}

func (w *jsonWriter) StartObject() {
	w.maybeComma()
	w.buf = append(w.buf, '{')
	w.pushContainer()
}

func (w *jsonWriter) EndObject() {
	w.popContainer()
	w.buf = append(w.buf, '}')
}

func (w *jsonWriter) StartArray() {
	w.maybeComma()
	w.buf = append(w.buf, '[')
	w.pushContainer()
}

func (w *jsonWriter) EndArray() {
	w.popContainer()
	w.buf = append(w.buf, ']')
}

func (w *jsonWriter) Key(name string) {
	w.maybeComma()
	w.needsComma[len(w.needsComma)-1] = false
	w.buf = append(w.buf, jsonQuote(name)...)
	w.buf = append(w.buf, ':')
}

func (w *jsonWriter) RawValue(v string) {
	w.maybeComma()
	w.buf = append(w.buf, v...)
}

func (w *jsonWriter) StringValue(v string) {
	w.RawValue(jsonQuote(v))
}

func (w *jsonWriter) Bytes() []byte {
	return w.buf
}

// jsonQuote renders s as a canonical quoted JSON string, delegating escape
// handling to encoding/json rather than hand-rolling it.
func jsonQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
