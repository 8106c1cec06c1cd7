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
	"fmt"
	"strconv"

	"github.com/kaleido-io/eosio-abi/pkg/eosabi"
	"github.com/kaleido-io/eosio-abi/pkg/eosiotypes"
	"github.com/spf13/cobra"
)

func stringToNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "string-to-name <name>",
		Short: "Convert an EOSIO name string to its packed uint64 form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdContext()
			if err != nil {
				return err
			}
			n, err := eosabi.StringToName(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println(uint64(n))
			return nil
		},
	}
}

func nameToStringCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "name-to-string <uint64>",
		Short: "Convert a packed uint64 EOSIO name back to its string form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cmdContext(); err != nil {
				return err
			}
			v, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			fmt.Println(eosabi.NameToString(eosiotypes.Name(v)))
			return nil
		},
	}
}
