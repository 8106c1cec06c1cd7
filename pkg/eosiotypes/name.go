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
	"encoding/json"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
)

const nameCharset = ".12345abcdefghijklmnopqrstuvwxyz"

// Name is a 64-bit value encoding up to 13 base-32 characters from
// ".12345a-z". The 13th character is restricted to the first 16 values of
// the alphabet, since it only contributes 4 bits rather than 5.
type Name uint64

// StringToName parses s leniently: characters beyond the 13th, or an empty
// string, are accepted the way abieos's non-strict constructor is. JSON
// decoding (Name.UnmarshalJSON and the ABI "name" codec) uses strict parsing.
func StringToName(s string) Name {
	n, _ := StringToNameCtx(context.Background(), s, false)
	return n
}

// StringToNameStrict parses s, rejecting any violation of the name grammar.
func StringToNameStrict(ctx context.Context, s string) (Name, error) {
	return StringToNameCtx(ctx, s, true)
}

func StringToNameCtx(ctx context.Context, s string, strict bool) (Name, error) {
	if len(s) > 13 {
		if strict {
			return 0, i18n.NewError(ctx, abimsgs.MsgNameTooLong, s)
		}
		s = s[:13]
	}
	var value uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		var charValue uint64
		idx := strings.IndexByte(nameCharset, c)
		if idx < 0 {
			if strict {
				return 0, i18n.NewError(ctx, abimsgs.MsgInvalidNameChar, rune(c), s)
			}
			continue
		}
		charValue = uint64(idx)
		if i == 12 {
			// The 13th character only contributes 4 bits, so it must fit in 0..15
			if charValue > 15 {
				if strict {
					return 0, i18n.NewError(ctx, abimsgs.MsgInvalidNameChar13, rune(c), s)
				}
				charValue = 15
			}
			value |= charValue
		} else {
			shift := uint(64 - 5*(i+1))
			value |= charValue << shift
		}
	}
	return Name(value), nil
}

// String renders n in the canonical abieos textual form: decode each of the
// 13 possible characters, then trim trailing '.'.
func (n Name) String() string {
	value := uint64(n)
	var buf [13]byte
	// Reconstruct leading 12 characters, 5 bits apiece, then the 13th with 4 bits.
	tmp := value
	for i := 0; i < 12; i++ {
		idx := (tmp >> 59) & 0x1f
		buf[i] = nameCharset[idx]
		tmp <<= 5
	}
	buf[12] = nameCharset[tmp>>60]
	s := string(buf[:])
	return strings.TrimRight(s, ".")
}

func (n Name) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *Name) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := StringToNameCtx(context.Background(), s, true)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
