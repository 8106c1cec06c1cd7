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
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
)

// blockTimestampEpoch is 2000-01-01T00:00:00Z, the epoch block_timestamp
// slots are counted from (in 500ms units), as opposed to the 1970-01-01
// epoch used by time_point / time_point_sec.
var blockTimestampEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// TimePoint is microseconds since 1970-01-01T00:00:00Z.
type TimePoint int64

func (t TimePoint) Time() time.Time {
	return time.UnixMicro(int64(t)).UTC()
}

func (t TimePoint) String() string {
	return t.Time().Format("2006-01-02T15:04:05.000")
}

func (t TimePoint) ToBin() []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(t))
	return buf
}

func TimePointFromBin(ctx context.Context, b []byte) (TimePoint, int, error) {
	if len(b) < 8 {
		return 0, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	return TimePoint(binary.LittleEndian.Uint64(b[:8])), 8, nil
}

func ParseTimePoint(ctx context.Context, s string) (TimePoint, error) {
	t, err := parseISO8601(ctx, s)
	if err != nil {
		return 0, err
	}
	return TimePoint(t.UnixMicro()), nil
}

// TimePointSec is seconds since 1970-01-01T00:00:00Z.
type TimePointSec uint32

func (t TimePointSec) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

func (t TimePointSec) String() string {
	return t.Time().Format("2006-01-02T15:04:05")
}

func (t TimePointSec) ToBin() []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(t))
	return buf
}

func TimePointSecFromBin(ctx context.Context, b []byte) (TimePointSec, int, error) {
	if len(b) < 4 {
		return 0, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	return TimePointSec(binary.LittleEndian.Uint32(b[:4])), 4, nil
}

func ParseTimePointSec(ctx context.Context, s string) (TimePointSec, error) {
	t, err := parseISO8601(ctx, s)
	if err != nil {
		return 0, err
	}
	return TimePointSec(t.Unix()), nil
}

// BlockTimestamp counts 500ms slots since 2000-01-01T00:00:00Z.
type BlockTimestamp uint32

func (t BlockTimestamp) Time() time.Time {
	return blockTimestampEpoch.Add(time.Duration(t) * 500 * time.Millisecond)
}

func (t BlockTimestamp) String() string {
	return t.Time().Format("2006-01-02T15:04:05.000")
}

func (t BlockTimestamp) ToBin() []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(t))
	return buf
}

func BlockTimestampFromBin(ctx context.Context, b []byte) (BlockTimestamp, int, error) {
	if len(b) < 4 {
		return 0, 0, i18n.NewError(ctx, abimsgs.MsgOverrun)
	}
	return BlockTimestamp(binary.LittleEndian.Uint32(b[:4])), 4, nil
}

func ParseBlockTimestamp(ctx context.Context, s string) (BlockTimestamp, error) {
	t, err := parseISO8601(ctx, s)
	if err != nil {
		return 0, err
	}
	slots := t.Sub(blockTimestampEpoch) / (500 * time.Millisecond)
	return BlockTimestamp(slots), nil
}

// parseISO8601 accepts the timezone-free ISO-8601 forms used by EOSIO JSON:
// second and millisecond resolution.
func parseISO8601(ctx context.Context, s string) (time.Time, error) {
	for _, layout := range []string{
		"2006-01-02T15:04:05.000",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, i18n.NewError(ctx, abimsgs.MsgInvalidJSON, fmt.Sprintf("time_point %s", s))
}
