package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marion-inge/bdnavigator/internal/cli/formatter"
	"github.com/marion-inge/bdnavigator/internal/domain"
	"github.com/marion-inge/bdnavigator/internal/stagegate"
)

func newGateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Record and manage gate decisions",
	}

	cmd.AddCommand(
		newGateDecideCmd(app),
		newGateEditCmd(app),
		newGateRemoveCmd(app),
	)

	return cmd
}

func newGateDecideCmd(app *App) *cobra.Command {
	var decision, decider, comment string

	cmd := &cobra.Command{
		Use:   "decide ID",
		Short: "Record a decision at the opportunity's current gate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveOpportunityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			o, err := app.Opportunities.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if !o.Stage.IsGate() {
				return fmt.Errorf("%s is at %s, not at a gate", o.Title, o.Stage)
			}
			gate := domain.GateID(o.Stage)

			// No flags: fall back to the interactive form.
			if decision == "" {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--decision is required in non-interactive mode")
				}
				if err := gateDecisionForm(&decision, &decider, &comment).Run(); err != nil {
					return err
				}
			}

			o, record, err := app.Pipeline.Decide(ctx, id, stagegate.DecisionInput{
				Gate:     gate,
				Decision: domain.Decision(decision),
				Decider:  decider,
				Comment:  comment,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatGateRecord(record, o.Stage))
			return nil
		},
	}

	cmd.Flags().StringVar(&decision, "decision", "", "Decision (go|hold|no-go)")
	cmd.Flags().StringVar(&decider, "decider", "", "Decider name")
	cmd.Flags().StringVar(&comment, "comment", "", "Decision comment")

	return cmd
}

func newGateEditCmd(app *App) *cobra.Command {
	var decision, decider, comment string

	cmd := &cobra.Command{
		Use:   "edit ID GATE_RECORD_ID",
		Short: "Correct a recorded gate decision",
		Long: `Correct a recorded gate decision in place. The opportunity's stage is
not recomputed; use stage revert if the pipeline position must change too.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveOpportunityID(ctx, app, args[0])
			if err != nil {
				return err
			}

			o, err := app.Pipeline.EditGate(ctx, id, args[1], domain.Decision(decision), decider, comment)
			if err != nil {
				return err
			}

			fmt.Printf("Updated gate record on %s\n%s\n", o.Title, formatter.FormatGateHistory(o.Gates))
			return nil
		},
	}

	cmd.Flags().StringVar(&decision, "decision", "", "Decision (go|hold|no-go)")
	cmd.Flags().StringVar(&decider, "decider", "", "Decider name")
	cmd.Flags().StringVar(&comment, "comment", "", "Decision comment")
	_ = cmd.MarkFlagRequired("decision")
	_ = cmd.MarkFlagRequired("decider")

	return cmd
}

func newGateRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID GATE_RECORD_ID",
		Short: "Remove a gate decision record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveOpportunityID(ctx, app, args[0])
			if err != nil {
				return err
			}

			o, err := app.Pipeline.DeleteGate(ctx, id, args[1])
			if err != nil {
				return err
			}

			fmt.Printf("Removed gate record from %s (%d remaining)\n", o.Title, len(o.Gates))
			return nil
		},
	}
}
