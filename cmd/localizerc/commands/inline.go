package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/localizerc/cmd/localizerc/opts"
	"github.com/walteh/localizerc/pkg/operation"
	"github.com/walteh/localizerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewInlineCmd creates a new inline command
func NewInlineCmd(ropts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inline",
		Short: "Inline locale translations into staged build artifacts",
		Long: `Inline consumes the staged build artifacts and writes one localized
tree per configured locale. It will:
1. Load the build manifest from the staging directory
2. Read and delete each eligible script from staging
3. Rewrite translation markers for every locale in parallel
4. Copy everything else into each locale's output tree`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "inline").Logger().WithContext(ctx)

			cfg, err := ropts.LoadConfig(ctx)
			if err != nil {
				return err
			}

			targets, err := cfg.ResolveTargets(ctx)
			if err != nil {
				return errors.Errorf("resolving locale targets: %w", err)
			}

			reporter := status.New(status.Options{Writer: cmd.OutOrStdout()})

			op, err := operation.New(operation.Options{
				Config:   cfg,
				Reporter: reporter,
				Targets:  targets,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			ok, err := op.Inline(ctx)
			if err != nil {
				return errors.Errorf("inlining locales: %w", err)
			}
			if !ok {
				return errors.New("inlining finished with errors")
			}

			return nil
		},
	}

	return cmd
}
