package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marion-inge/bdnavigator/internal/importer"
)

func newOpportunityImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import opportunities from a portfolio JSON file",
		Long: `Import opportunities from a portfolio JSON file.

The file must contain an "opportunities" array. Each entry needs at least a
title; stage, scoring, detailed scoring, business case, analysis and gate
history are optional. The whole file is validated before anything is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadPortfolio(args[0])
			if err != nil {
				return err
			}

			if errs := importer.ValidatePortfolio(schema); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %v\n", e)
				}
				return fmt.Errorf("portfolio file invalid: %d error(s)", len(errs))
			}

			ctx := context.Background()
			opps := importer.Convert(schema)
			for _, o := range opps {
				if err := app.Opportunities.Create(ctx, o); err != nil {
					return fmt.Errorf("saving %q: %w", o.Title, err)
				}
			}

			fmt.Printf("Imported %d opportunit%s from %s\n", len(opps), plural(len(opps), "y", "ies"), args[0])
			return nil
		},
	}
}

func newOpportunityExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Export all opportunities to a portfolio JSON file",
		Long: `Export all opportunities to a portfolio JSON file.

The file can be imported again with "bdnav opportunity import". Gate decision
dates are written at day granularity (YYYY-MM-DD); the time of day is not
carried through an export/import round trip.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opps, err := app.Opportunities.List(context.Background())
			if err != nil {
				return err
			}

			schema := importer.Export(opps)
			if err := importer.SavePortfolio(args[0], schema); err != nil {
				return err
			}

			fmt.Printf("Exported %d opportunit%s to %s\n", len(opps), plural(len(opps), "y", "ies"), args[0])
			return nil
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
