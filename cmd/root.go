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
	"fmt"
	"os"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kaleido-io/eosio-abi/internal/abiconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eosioabi",
	Short: "EOSIO ABI binary/JSON transcoder",
	Long:  ``,
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(configCommand())
	rootCmd.AddCommand(jsonToBinCommand())
	rootCmd.AddCommand(binToJSONCommand())
	rootCmd.AddCommand(hexToJSONCommand())
	rootCmd.AddCommand(stringToNameCommand())
	rootCmd.AddCommand(nameToStringCommand())
}

// Execute runs the root cobra command - the single entry point called from
// main.go.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	abiconfig.Reset()
}

// cmdContext reads configuration, wires up logging, and returns a
// context.Context carrying the configured logger - the same sequencing the
// teacher's ffsigner.run uses before constructing its server.
func cmdContext() (context.Context, error) {
	initConfig()
	err := config.ReadConfig("eosioabi", cfgFile)

	ctx := log.WithLogger(context.Background(), logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	ctx = log.WithLogger(ctx, logrus.WithField("prefix", "eosioabi"))
	config.SetupLogging(ctx)

	if err != nil {
		return nil, err
	}
	return ctx, nil
}
