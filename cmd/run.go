package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"calcctl/internal/app"
)

type providerFlags struct {
	extras  []string
	primary string
}

func (f *providerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.extras, "extra", nil, "User-defined calculator to layer on the decorated built-in (repeatable; overrides providers.extras)")
	cmd.Flags().StringVar(&f.primary, "primary", "", "Calculator to flag as default before selection runs")
}

// appConfig builds the application config from the persistent and local flags.
func (f *providerFlags) appConfig(cmd *cobra.Command) *app.Config {
	cfg := app.NewConfig(debug, configPath)
	cfg.Output = cmd.ErrOrStderr()
	cfg.Extras = f.extras
	cfg.ExtrasSet = cmd.Flags().Changed("extra")
	cfg.Primary = f.primary
	return cfg
}

func newRunCmd() *cobra.Command {
	flags := &providerFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Resolve the default calculator and run it once",
		Long: `Registers the built-in calculators and any configured extras, selects
the default calculator and performs one calculation with it.

Fails with a configuration error when no default could be selected, which
happens whenever more than one extra calculator is registered and none was
named with --primary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.NewApplication(flags.appConfig(cmd))
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return application.Run(ctx)
		},
	}

	flags.register(cmd)
	return cmd
}
