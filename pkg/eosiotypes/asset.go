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
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
)

// SymbolCode is the 7-ASCII-uppercase-letter currency code, packed into the
// low bytes of a little-endian uint64 (first character in the lowest byte,
// remaining high bytes zero).
type SymbolCode uint64

func StringToSymbolCode(ctx context.Context, s string) (SymbolCode, error) {
	if len(s) > 7 {
		return 0, i18n.NewError(ctx, abimsgs.MsgNameTooLong, s)
	}
	var value uint64
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return 0, i18n.NewError(ctx, abimsgs.MsgInvalidNameChar, rune(c), s)
		}
		value = (value << 8) | uint64(c)
	}
	return SymbolCode(value), nil
}

func (sc SymbolCode) String() string {
	var buf []byte
	v := uint64(sc)
	for v != 0 {
		buf = append(buf, byte(v&0xff))
		v >>= 8
	}
	return string(buf)
}

// Symbol is a currency code with a decimal precision: wire form is a
// little-endian uint64 with the precision in the lowest byte and the
// symbol code's bytes shifted up by one byte.
type Symbol struct {
	Precision uint8
	Code      SymbolCode
}

func (s Symbol) toUint64() uint64 {
	return uint64(s.Precision) | (uint64(s.Code) << 8)
}

func symbolFromUint64(v uint64) Symbol {
	return Symbol{
		Precision: uint8(v & 0xff),
		Code:      SymbolCode(v >> 8),
	}
}

func (s Symbol) ToBin() []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, s.toUint64())
	return buf
}

func SymbolFromBin(ctx context.Context, b []byte) (Symbol, int, error) {
	if len(b) < 8 {
		return Symbol{}, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	return symbolFromUint64(binary.LittleEndian.Uint64(b[:8])), 8, nil
}

// ParseSymbol parses the JSON textual form "4,EOS" (precision,code).
func ParseSymbol(ctx context.Context, s string) (Symbol, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Symbol{}, i18n.NewError(ctx, abimsgs.MsgInvalidJSON, s)
	}
	precision, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Symbol{}, i18n.WrapError(ctx, err, abimsgs.MsgInvalidJSON, s)
	}
	code, err := StringToSymbolCode(ctx, parts[1])
	if err != nil {
		return Symbol{}, err
	}
	return Symbol{Precision: uint8(precision), Code: code}, nil
}

func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code.String())
}

// Asset is a signed fixed-point quantity tagged with its Symbol: wire form
// is int64 amount followed by the 8-byte Symbol.
type Asset struct {
	Amount int64
	Sym    Symbol
}

func (a Asset) ToBin() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(a.Amount))
	copy(buf[8:16], a.Sym.ToBin())
	return buf
}

func AssetFromBin(ctx context.Context, b []byte) (Asset, int, error) {
	if len(b) < 16 {
		return Asset{}, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	amount := int64(binary.LittleEndian.Uint64(b[0:8]))
	sym, _, err := SymbolFromBin(ctx, b[8:16])
	if err != nil {
		return Asset{}, 0, err
	}
	return Asset{Amount: amount, Sym: sym}, 16, nil
}

// ParseAsset parses the canonical "1.2345 EOS" textual form, where the
// number of digits after the decimal point defines the symbol's precision.
func ParseAsset(ctx context.Context, s string) (Asset, error) {
	s = strings.TrimSpace(s)
	sp := strings.IndexByte(s, ' ')
	if sp < 0 {
		return Asset{}, i18n.NewError(ctx, abimsgs.MsgInvalidJSON, s)
	}
	numPart := s[:sp]
	codePart := strings.TrimSpace(s[sp+1:])
	code, err := StringToSymbolCode(ctx, codePart)
	if err != nil {
		return Asset{}, err
	}

	neg := false
	if strings.HasPrefix(numPart, "-") {
		neg = true
		numPart = numPart[1:]
	}
	dot := strings.IndexByte(numPart, '.')
	var precision int
	var digits string
	if dot < 0 {
		digits = numPart
		precision = 0
	} else {
		digits = numPart[:dot] + numPart[dot+1:]
		precision = len(numPart) - dot - 1
	}
	amountU, err := strconv.ParseUint(digits, 10, 63)
	if err != nil {
		return Asset{}, i18n.WrapError(ctx, err, abimsgs.MsgInvalidJSON, s)
	}
	amount := int64(amountU)
	if neg {
		amount = -amount
	}
	return Asset{
		Amount: amount,
		Sym:    Symbol{Precision: uint8(precision), Code: code},
	}, nil
}

func (a Asset) String() string {
	neg := a.Amount < 0
	amount := a.Amount
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	precision := int(a.Sym.Precision)
	for len(digits) <= precision {
		digits = "0" + digits
	}
	var intPart, fracPart string
	if precision == 0 {
		intPart = digits
	} else {
		intPart = digits[:len(digits)-precision]
		fracPart = digits[len(digits)-precision:]
	}
	sign := ""
	if neg {
		sign = "-"
	}
	if precision == 0 {
		return fmt.Sprintf("%s%s %s", sign, intPart, a.Sym.Code.String())
	}
	return fmt.Sprintf("%s%s.%s %s", sign, intPart, fracPart, a.Sym.Code.String())
}
