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

// Package abiconfig declares the viper-backed configuration keys for the
// eosio-abi CLI, following the same config.RootSection/config.AddRootKey
// layering the teacher uses for ffsigner (internal/signerconfig).
package abiconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// ContractName is the EOSIO account name the loaded ABI is registered
	// against, used to resolve actions/tables/types for the transcode
	// subcommands.
	ContractName = ffc("contract.name")
	// ABIFile is the path to the abi.json document to load at startup.
	ABIFile = ffc("contract.abiFile")
	// Reorderable selects the reorderable (field-order-tolerant) JSON to
	// binary transcode path over the default strict streaming path.
	Reorderable = ffc("transcode.reorderable")
)

var LogConfig config.Section

func setDefaults() {
	viper.SetDefault(string(Reorderable), false)
}

// Reset (re)initializes all config sections to their defaults - exported
// for tests that need a clean config between cases, matching
// signerconfig.Reset's role in the teacher.
func Reset() {
	config.RootConfigReset(setDefaults)

	LogConfig = config.RootSection("log")
}
