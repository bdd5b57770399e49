package commands

import (
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/localizerc/cmd/localizerc/opts"
	"github.com/walteh/localizerc/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

// NewFetchCmd creates a new fetch command
func NewFetchCmd(ropts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch translation catalogs from the configured repository",
		Long: `Fetch downloads translation catalogs from a GitHub repository.
It will:
1. List the configured catalog directory at the configured ref
2. Download every .json catalog in it
3. Write the catalogs into the local destination directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "fetch").Logger().WithContext(ctx)

			cfg, err := ropts.LoadConfig(ctx)
			if err != nil {
				return err
			}
			if cfg.Fetch == nil {
				return errors.New("no fetch block configured")
			}

			client := remote.New(ctx)
			written, err := client.FetchCatalogs(ctx, *cfg.Fetch)
			if err != nil {
				return errors.Errorf("fetching catalogs: %w", err)
			}

			printer := pterm.Success.WithWriter(cmd.OutOrStdout())
			for _, path := range written {
				printer.Println(path)
			}
			printer.Printfln("Fetched %d catalogs from %s", len(written), cfg.Fetch.Repo)

			return nil
		},
	}

	return cmd
}
