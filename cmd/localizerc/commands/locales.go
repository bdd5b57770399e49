package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/localizerc/cmd/localizerc/opts"
	"gitlab.com/tozd/go/errors"
)

// NewLocalesCmd creates a new locales command
func NewLocalesCmd(ropts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List the locales the current configuration resolves to",
		Long: `Locales shows which locale targets the configuration produces.
It will:
1. Load the configuration
2. Resolve explicit locales or discover catalogs on disk
3. Print each locale with its output directory and message count`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "locales").Logger().WithContext(ctx)

			cfg, err := ropts.LoadConfig(ctx)
			if err != nil {
				return err
			}

			targets, err := cfg.ResolveTargets(ctx)
			if err != nil {
				return errors.Errorf("resolving locale targets: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, target := range targets {
				fmt.Fprintf(out, "%s  dir=%s  messages=%d\n",
					color.CyanString("%-8s", target.Code),
					target.Dir,
					len(target.Catalog.Translations))
			}

			return nil
		},
	}

	return cmd
}
