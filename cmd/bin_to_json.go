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

	"github.com/spf13/cobra"
)

var binToJSONType string
var binToJSONHex string

func binToJSONCommand() *cobra.Command {
	binToJSONCmd := &cobra.Command{
		Use:   "bin-to-json",
		Short: "Decode ABI binary (given as hex) into canonical JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdContext()
			if err != nil {
				return err
			}
			abiCtx, contract, err := loadContext(ctx)
			if err != nil {
				return err
			}
			bin, err := hex.DecodeString(binToJSONHex)
			if err != nil {
				return err
			}
			out, err := abiCtx.BinToJSON(ctx, contract, binToJSONType, bin)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	binToJSONCmd.Flags().StringVarP(&binToJSONType, "type", "t", "", "ABI type name")
	binToJSONCmd.Flags().StringVarP(&binToJSONHex, "hex", "x", "", "hex-encoded binary payload")
	_ = binToJSONCmd.MarkFlagRequired("type")
	_ = binToJSONCmd.MarkFlagRequired("hex")
	return binToJSONCmd
}

func hexToJSONCommand() *cobra.Command {
	hexToJSONCmd := &cobra.Command{
		Use:   "hex-to-json",
		Short: "Alias of bin-to-json, for callers that think in hex rather than binary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdContext()
			if err != nil {
				return err
			}
			abiCtx, contract, err := loadContext(ctx)
			if err != nil {
				return err
			}
			out, err := abiCtx.HexToJSON(ctx, contract, binToJSONType, binToJSONHex)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	hexToJSONCmd.Flags().StringVarP(&binToJSONType, "type", "t", "", "ABI type name")
	hexToJSONCmd.Flags().StringVarP(&binToJSONHex, "hex", "x", "", "hex-encoded binary payload")
	_ = hexToJSONCmd.MarkFlagRequired("type")
	_ = hexToJSONCmd.MarkFlagRequired("hex")
	return hexToJSONCmd
}
