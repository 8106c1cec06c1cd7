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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/kaleido-io/eosio-abi/internal/abiconfig"
	"github.com/spf13/cobra"
)

var jsonToBinType string
var jsonToBinInput string

func jsonToBinCommand() *cobra.Command {
	jsonToBinCmd := &cobra.Command{
		Use:   "json-to-bin",
		Short: "Encode a JSON document as ABI binary, printed as hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdContext()
			if err != nil {
				return err
			}
			abiCtx, contract, err := loadContext(ctx)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(jsonToBinInput)
			if err != nil {
				return err
			}
			var bin []byte
			if config.GetBool(abiconfig.Reorderable) {
				bin, err = abiCtx.JSONToBinReorderable(ctx, contract, jsonToBinType, data)
			} else {
				bin, err = abiCtx.JSONToBin(ctx, contract, jsonToBinType, data)
			}
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(bin))
			return nil
		},
	}
	jsonToBinCmd.Flags().StringVarP(&jsonToBinType, "type", "t", "", "ABI type name")
	jsonToBinCmd.Flags().StringVarP(&jsonToBinInput, "input", "i", "", "input JSON file")
	_ = jsonToBinCmd.MarkFlagRequired("type")
	_ = jsonToBinCmd.MarkFlagRequired("input")
	return jsonToBinCmd
}
