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

package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/kaleido-io/eosio-abi/internal/abiconfig"
	"github.com/kaleido-io/eosio-abi/pkg/eosabi"
)

// loadContext reads abiconfig.ABIFile and registers it under
// abiconfig.ContractName, returning a ready-to-use eosabi.Context along
// with the contract name the caller should pass to its transcode calls.
func loadContext(ctx context.Context) (*eosabi.Context, string, error) {
	abiFile := config.GetString(abiconfig.ABIFile)
	contract := config.GetString(abiconfig.ContractName)

	raw, err := os.ReadFile(abiFile)
	if err != nil {
		return nil, "", err
	}
	var def eosabi.Def
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, "", err
	}

	abiCtx := eosabi.NewContext()
	if err := abiCtx.SetABI(ctx, contract, &def); err != nil {
		return nil, "", err
	}
	return abiCtx, contract, nil
}
