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

func TestStringToName(t *testing.T) {
	assert.Equal(t, Name(6138663591592764928), StringToName("eosio.token"))
	assert.Equal(t, "", Name(0).String())
	assert.Equal(t, "eosio.token", Name(6138663591592764928).String())
}

func TestStringToNameStrictRejects13thChar(t *testing.T) {
	_, err := StringToNameStrict(context.Background(), "eosio.tokenxx")
	require.Error(t, err)
}

func TestNameRoundTrip(t *testing.T) {
	for _, s := range []string{"a", "eosio", "eosio.token", "abcdefghijklj"} {
		n, err := StringToNameStrict(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, s, n.String())
	}
}
