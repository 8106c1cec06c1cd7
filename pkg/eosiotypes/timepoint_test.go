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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimePointRoundTrip(t *testing.T) {
	tp, err := ParseTimePoint(context.Background(), "2020-01-01T00:00:00.500")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01T00:00:00.500", tp.String())
}

func TestTimePointSecRoundTrip(t *testing.T) {
	tp, err := ParseTimePointSec(context.Background(), "2020-01-01T00:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01T00:00:00", tp.String())
}

func TestBlockTimestampEpoch(t *testing.T) {
	bt, err := ParseBlockTimestamp(context.Background(), "2000-01-01T00:00:00.000")
	require.NoError(t, err)
	assert.Equal(t, BlockTimestamp(0), bt)
}

func TestBlockTimestampOneSlot(t *testing.T) {
	bt, err := ParseBlockTimestamp(context.Background(), "2000-01-01T00:00:00.500")
	require.NoError(t, err)
	assert.Equal(t, BlockTimestamp(1), bt)
}
