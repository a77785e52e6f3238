package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"calcctl/internal/app"
	"calcctl/internal/color"
	"calcctl/internal/primary"
)

func newProvidersCmd() *cobra.Command {
	flags := &providerFlags{}

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List registered calculators and the selected default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.NewApplication(flags.appConfig(cmd))
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer application.Close()

			printProviders(cmd.OutOrStdout(), application.Providers())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printProviders(w io.Writer, p *app.Providers) {
	fmt.Fprintln(w, color.HeaderStyle.Render("CALCULATORS"))

	for _, entry := range p.Registry.Entries() {
		kind := "extra"
		if app.BuiltIns.Contains(entry.ID) {
			kind = "built-in"
		}

		marker := "  "
		name := entry.ID
		if entry.Default {
			marker = color.DefaultStyle.Render("* ")
			name = color.DefaultStyle.Render(entry.ID)
		}
		fmt.Fprintf(w, "%s%s %s\n", marker, name, color.MutedStyle.Render("("+kind+")"))
	}

	sel := p.Selection
	switch sel.Outcome {
	case primary.OutcomeSkipped:
		if id, ok := p.Registry.DefaultID(); ok {
			fmt.Fprintf(w, "\nselection: %s, default %s was configured\n", sel.Outcome, id)
			return
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, color.ErrorStyle.Render(fmt.Sprintf("selection: %s, no default for %d calculators", sel.Outcome, sel.Total)))
	default:
		fmt.Fprintf(w, "\nselection: %s, default %s\n", sel.Outcome, sel.ID)
	}
}
