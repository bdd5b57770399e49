package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/localizerc/cmd/localizerc/opts"
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, ropts *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&ropts.ConfigFile, "config", "c", ".localizerc.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&ropts.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
