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
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
	"github.com/kaleido-io/eosio-abi/pkg/eosiotypes"
)

// builtinCodec binds a builtin type name to its binary and JSON transcoding
// functions (spec.md §4.2/§5 C2). JSONToBin consumes exactly one JSON value
// from ts; BinToJSON consumes exactly the builtin's wire representation
// from r and appends one JSON value to w.
type builtinCodec struct {
	JSONToBin func(ctx context.Context, ts *tokenStream, w *binWriter) error
	BinToJSON func(ctx context.Context, r *binReader, w *jsonWriter) error
}

func expectNumber(ctx context.Context, ts *tokenStream) (string, error) {
	tok, err := ts.Next(ctx)
	if err != nil {
		return "", err
	}
	switch tok.kind {
	case tokNumber:
		return tok.s, nil
	case tokString:
		return tok.s, nil
	default:
		return "", i18n.NewError(ctx, abimsgs.MsgExpectedToken, "number", tokenKindName(tok.kind))
	}
}

func expectString(ctx context.Context, ts *tokenStream) (string, error) {
	tok, err := ts.Next(ctx)
	if err != nil {
		return "", err
	}
	if tok.kind != tokString {
		return "", i18n.NewError(ctx, abimsgs.MsgExpectedToken, "string", tokenKindName(tok.kind))
	}
	return tok.s, nil
}

func expectBool(ctx context.Context, ts *tokenStream) (bool, error) {
	tok, err := ts.Next(ctx)
	if err != nil {
		return false, err
	}
	if tok.kind != tokBool {
		return false, i18n.NewError(ctx, abimsgs.MsgExpectedToken, "bool", tokenKindName(tok.kind))
	}
	return tok.b, nil
}

// writeFloatJSON emits v as a JSON number, except for the three non-finite
// values, which EOSIO's JSON convention spells as quoted strings rather than
// the bare (and JSON-illegal) tokens Go's strconv would otherwise produce.
func writeFloatJSON(w *jsonWriter, v float64, bitSize int) {
	switch {
	case math.IsNaN(v):
		w.StringValue("NaN")
	case math.IsInf(v, 1):
		w.StringValue("Infinity")
	case math.IsInf(v, -1):
		w.StringValue("-Infinity")
	default:
		w.RawValue(strconv.FormatFloat(v, 'g', -1, bitSize))
	}
}

func intCodec(bitSize int, signed bool) builtinCodec {
	byteLen := bitSize / 8
	return builtinCodec{
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectNumber(ctx, ts)
			if err != nil {
				return err
			}
			buf := make([]byte, byteLen)
			if signed {
				v, err := strconv.ParseInt(s, 10, bitSize)
				if err != nil {
					return i18n.NewError(ctx, abimsgs.MsgNumberOutOfRange, s, "int"+strconv.Itoa(bitSize))
				}
				putIntLE(buf, uint64(v))
			} else {
				v, err := strconv.ParseUint(s, 10, bitSize)
				if err != nil {
					return i18n.NewError(ctx, abimsgs.MsgNumberOutOfRange, s, "uint"+strconv.Itoa(bitSize))
				}
				putIntLE(buf, v)
			}
			w.Write(buf)
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			buf, err := r.Read(ctx, byteLen)
			if err != nil {
				return err
			}
			u := getIntLE(buf)
			if signed {
				v := signExtend(u, bitSize)
				w.RawValue(strconv.FormatInt(v, 10))
			} else {
				w.RawValue(strconv.FormatUint(u, 10))
			}
			return nil
		},
	}
}

func putIntLE(buf []byte, v uint64) {
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
}

func getIntLE(buf []byte) uint64 {
	var v uint64
	for i, b := range buf {
		v |= uint64(b) << (8 * i)
	}
	return v
}

func signExtend(u uint64, bitSize int) int64 {
	if bitSize == 64 {
		return int64(u)
	}
	shift := 64 - bitSize
	return int64(u<<shift) >> shift
}

func fixedHexCodec(size int) builtinCodec {
	return builtinCodec{
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			fb, err := eosiotypes.ParseFixedBytesHex(ctx, s, size)
			if err != nil {
				return err
			}
			w.Write(fb)
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			buf, err := r.Read(ctx, size)
			if err != nil {
				return err
			}
			w.StringValue(strings.ToUpper(hex.EncodeToString(buf)))
			return nil
		},
	}
}

var builtinCodecs = map[string]builtinCodec{
	"bool": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			b, err := expectBool(ctx, ts)
			if err != nil {
				return err
			}
			if b {
				w.WriteByte(1)
			} else {
				w.WriteByte(0)
			}
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			b, err := r.ReadByte(ctx)
			if err != nil {
				return err
			}
			w.RawValue(strconv.FormatBool(b != 0))
			return nil
		},
	},
	"int8":   intCodec(8, true),
	"uint8":  intCodec(8, false),
	"int16":  intCodec(16, true),
	"uint16": intCodec(16, false),
	"int32":  intCodec(32, true),
	"uint32": intCodec(32, false),
	"int64":  intCodec(64, true),
	"uint64": intCodec(64, false),

	"int128":  fixedHexCodec(16),
	"uint128": fixedHexCodec(16),

	"varint32": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectNumber(ctx, ts)
			if err != nil {
				return err
			}
			v, err := strconv.ParseInt(s, 10, 32)
			if err != nil {
				return i18n.NewError(ctx, abimsgs.MsgNumberOutOfRange, s, "varint32")
			}
			w.Write(eosiotypes.PutVarInt32(nil, int32(v)))
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			v, n, err := eosiotypes.GetVarInt32(ctx, r.buf[r.pos:])
			if err != nil {
				return err
			}
			r.pos += n
			w.RawValue(strconv.FormatInt(int64(v), 10))
			return nil
		},
	},
	"varuint32": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectNumber(ctx, ts)
			if err != nil {
				return err
			}
			v, err := strconv.ParseUint(s, 10, 32)
			if err != nil {
				return i18n.NewError(ctx, abimsgs.MsgNumberOutOfRange, s, "varuint32")
			}
			w.Write(eosiotypes.PutVarUint32(nil, uint32(v)))
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			v, err := r.GetVarUint32(ctx)
			if err != nil {
				return err
			}
			w.RawValue(strconv.FormatUint(uint64(v), 10))
			return nil
		},
	},

	"float32": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectNumber(ctx, ts)
			if err != nil {
				return err
			}
			v, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return i18n.NewError(ctx, abimsgs.MsgNumberOutOfRange, s, "float32")
			}
			buf := make([]byte, 4)
			binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
			w.Write(buf)
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			buf, err := r.Read(ctx, 4)
			if err != nil {
				return err
			}
			v := math.Float32frombits(binary.LittleEndian.Uint32(buf))
			writeFloatJSON(w, float64(v), 32)
			return nil
		},
	},
	"float64": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectNumber(ctx, ts)
			if err != nil {
				return err
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return i18n.NewError(ctx, abimsgs.MsgNumberOutOfRange, s, "float64")
			}
			buf := make([]byte, 8)
			binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
			w.Write(buf)
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			buf, err := r.Read(ctx, 8)
			if err != nil {
				return err
			}
			v := math.Float64frombits(binary.LittleEndian.Uint64(buf))
			writeFloatJSON(w, v, 64)
			return nil
		},
	},
	"float128": fixedHexCodec(16),

	"time_point": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			tp, err := eosiotypes.ParseTimePoint(ctx, s)
			if err != nil {
				return err
			}
			w.Write(tp.ToBin())
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			buf, err := r.Read(ctx, 8)
			if err != nil {
				return err
			}
			tp, _, err := eosiotypes.TimePointFromBin(ctx, buf)
			if err != nil {
				return err
			}
			w.StringValue(tp.String())
			return nil
		},
	},
	"time_point_sec": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			tp, err := eosiotypes.ParseTimePointSec(ctx, s)
			if err != nil {
				return err
			}
			w.Write(tp.ToBin())
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			buf, err := r.Read(ctx, 4)
			if err != nil {
				return err
			}
			tp, _, err := eosiotypes.TimePointSecFromBin(ctx, buf)
			if err != nil {
				return err
			}
			w.StringValue(tp.String())
			return nil
		},
	},
	"block_timestamp_type": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			bt, err := eosiotypes.ParseBlockTimestamp(ctx, s)
			if err != nil {
				return err
			}
			w.Write(bt.ToBin())
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			buf, err := r.Read(ctx, 4)
			if err != nil {
				return err
			}
			bt, _, err := eosiotypes.BlockTimestampFromBin(ctx, buf)
			if err != nil {
				return err
			}
			w.StringValue(bt.String())
			return nil
		},
	},

	"name": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			n, err := eosiotypes.StringToNameStrict(ctx, s)
			if err != nil {
				return err
			}
			buf := make([]byte, 8)
			binary.LittleEndian.PutUint64(buf, uint64(n))
			w.Write(buf)
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			buf, err := r.Read(ctx, 8)
			if err != nil {
				return err
			}
			n := eosiotypes.Name(binary.LittleEndian.Uint64(buf))
			w.StringValue(n.String())
			return nil
		},
	},

	"bytes": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			vb, err := eosiotypes.ParseVarBytesHex(ctx, s)
			if err != nil {
				return err
			}
			w.Write(vb.ToBin())
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			n, err := r.GetVarUint32(ctx)
			if err != nil {
				return err
			}
			buf, err := r.Read(ctx, int(n))
			if err != nil {
				return err
			}
			w.StringValue(eosiotypes.VarBytes(buf).String())
			return nil
		},
	},

	"string": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			w.Write(eosiotypes.PutVarUint32(nil, uint32(len(s))))
			w.Write([]byte(s))
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			n, err := r.GetVarUint32(ctx)
			if err != nil {
				return err
			}
			buf, err := r.Read(ctx, int(n))
			if err != nil {
				return err
			}
			w.StringValue(string(buf))
			return nil
		},
	},

	"checksum160": fixedHexCodec(20),
	"checksum256": fixedHexCodec(32),
	"checksum512": fixedHexCodec(64),

	"public_key": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			pk, err := eosiotypes.ParsePublicKey(ctx, s)
			if err != nil {
				return err
			}
			w.Write(pk.ToBin())
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			kind, err := r.ReadByte(ctx)
			if err != nil {
				return err
			}
			pk, n, err := eosiotypes.PublicKeyFromBin(ctx, append([]byte{kind}, r.buf[r.pos:]...))
			if err != nil {
				return err
			}
			if err := r.Skip(ctx, n-1); err != nil {
				return err
			}
			w.StringValue(pk.String())
			return nil
		},
	},
	"private_key": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			pk, err := eosiotypes.ParsePrivateKey(ctx, s)
			if err != nil {
				return err
			}
			w.Write(pk.ToBin())
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			kind, err := r.ReadByte(ctx)
			if err != nil {
				return err
			}
			pk, n, err := eosiotypes.PrivateKeyFromBin(ctx, append([]byte{kind}, r.buf[r.pos:]...))
			if err != nil {
				return err
			}
			if err := r.Skip(ctx, n-1); err != nil {
				return err
			}
			w.StringValue(pk.String())
			return nil
		},
	},
	"signature": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			sig, err := eosiotypes.ParseSignature(ctx, s)
			if err != nil {
				return err
			}
			w.Write(sig.ToBin())
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			kind, err := r.ReadByte(ctx)
			if err != nil {
				return err
			}
			sig, n, err := eosiotypes.SignatureFromBin(ctx, append([]byte{kind}, r.buf[r.pos:]...))
			if err != nil {
				return err
			}
			if err := r.Skip(ctx, n-1); err != nil {
				return err
			}
			w.StringValue(sig.String())
			return nil
		},
	},

	"symbol_code": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			sc, err := eosiotypes.StringToSymbolCode(ctx, s)
			if err != nil {
				return err
			}
			buf := make([]byte, 8)
			binary.LittleEndian.PutUint64(buf, uint64(sc))
			w.Write(buf)
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			buf, err := r.Read(ctx, 8)
			if err != nil {
				return err
			}
			sc := eosiotypes.SymbolCode(binary.LittleEndian.Uint64(buf))
			w.StringValue(sc.String())
			return nil
		},
	},
	"symbol": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			sym, err := eosiotypes.ParseSymbol(ctx, s)
			if err != nil {
				return err
			}
			w.Write(sym.ToBin())
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			buf, err := r.Read(ctx, 8)
			if err != nil {
				return err
			}
			sym, _, err := eosiotypes.SymbolFromBin(ctx, buf)
			if err != nil {
				return err
			}
			w.StringValue(sym.String())
			return nil
		},
	},
	"asset": {
		JSONToBin: func(ctx context.Context, ts *tokenStream, w *binWriter) error {
			s, err := expectString(ctx, ts)
			if err != nil {
				return err
			}
			a, err := eosiotypes.ParseAsset(ctx, s)
			if err != nil {
				return err
			}
			w.Write(a.ToBin())
			return nil
		},
		BinToJSON: func(ctx context.Context, r *binReader, w *jsonWriter) error {
			buf, err := r.Read(ctx, 16)
			if err != nil {
				return err
			}
			a, _, err := eosiotypes.AssetFromBin(ctx, buf)
			if err != nil {
				return err
			}
			w.StringValue(a.String())
			return nil
		},
	},
}
