package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marion-inge/bdnavigator/internal/cli/formatter"
)

func newStageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Move opportunities through the pipeline",
	}

	cmd.AddCommand(
		newStageAdvanceCmd(app),
		newStageRevertCmd(app),
	)

	return cmd
}

func newStageAdvanceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "advance ID",
		Short: "Advance an opportunity to the next stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveOpportunityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			o, err := app.Pipeline.Advance(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s is now at %s\n", o.Title, formatter.StagePill(o.Stage))
			if o.Stage.IsGate() {
				fmt.Printf("%s\n", formatter.Dim("Use `bdnav gate decide` to record the gate decision."))
			}
			return nil
		},
	}
}

func newStageRevertCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revert ID",
		Short: "Move an opportunity back one stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveOpportunityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			o, err := app.Pipeline.Revert(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s is now at %s\n", o.Title, formatter.StagePill(o.Stage))
			return nil
		},
	}
}
