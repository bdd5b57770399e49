// Copyright 2025 walteh LLC
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

package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/localizerc/cmd/localizerc/commands"
	"github.com/walteh/localizerc/cmd/localizerc/opts"
)

func main() {
	// Load .env before anything reads the environment
	_ = godotenv.Load()

	ropts := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "localizerc",
		Short: "Inline translations into built JavaScript artifacts",
		Long: `localizerc takes the artifacts a bundler emitted into a staging
directory and produces one fully localized copy per configured locale,
replacing translation markers with strings from locale catalogs.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Flags are parsed by now, logging can honor --debug
			setupLogging(ropts.Debug)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd, ropts)

	// Add commands
	rootCmd.AddCommand(
		commands.NewInlineCmd(ropts),
		commands.NewFetchCmd(ropts),
		commands.NewLocalesCmd(ropts),
		newVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
