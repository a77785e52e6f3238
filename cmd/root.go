package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// configPath points at a single configuration directory, bypassing the
// layered user/project lookup.
var configPath string

// debug enables verbose logging across the application.
var debug bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calcctl",
		Short: "Run the default calculator from a registry of providers",
		Long: `calcctl registers a chain of calculator providers, picks the default
one and runs it. With only the built-in providers the decorating calculator
is the default; a single user-defined calculator layered on top takes over.
Any other number of providers is reported as a configuration error.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. no default calculator)
		SilenceUsage: true,
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newProvidersCmd())

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration directory (default: layered ~/.config/calcctl and ./.calcctl)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "calcctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
