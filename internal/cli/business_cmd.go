package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marion-inge/bdnavigator/internal/cli/formatter"
	"github.com/marion-inge/bdnavigator/internal/domain"
)

func newBusinessCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "business",
		Short: "Manage the business case",
	}

	cmd.AddCommand(
		newBusinessSetCmd(app),
		newBusinessShowCmd(app),
	)

	return cmd
}

func newBusinessSetCmd(app *App) *cobra.Command {
	var investment float64
	var revenues, costs []float64
	var assumptions string

	cmd := &cobra.Command{
		Use:   "set ID",
		Short: "Set business case figures",
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

			bc := *domain.DefaultBusinessCase()
			if o.BusinessCase != nil {
				bc = *o.BusinessCase
			}

			flags := cmd.Flags()
			if flags.Changed("investment") {
				bc.Investment = investment
			}
			if flags.Changed("revenue") {
				if len(revenues) != domain.PlanHorizonYears {
					return fmt.Errorf("--revenue needs exactly %d values", domain.PlanHorizonYears)
				}
				for i := range bc.Years {
					bc.Years[i].Revenue = revenues[i]
				}
			}
			if flags.Changed("cost") {
				if len(costs) != domain.PlanHorizonYears {
					return fmt.Errorf("--cost needs exactly %d values", domain.PlanHorizonYears)
				}
				for i := range bc.Years {
					bc.Years[i].Cost = costs[i]
				}
			}
			if flags.Changed("assumptions") {
				bc.Assumptions = assumptions
			}

			o, err = app.Opportunities.SaveBusinessCase(ctx, id, &bc)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatBusinessCase(o.BusinessCase))
			return nil
		},
	}

	cmd.Flags().Float64Var(&investment, "investment", 0, "Upfront investment")
	cmd.Flags().Float64SliceVar(&revenues, "revenue", nil, "Revenue per plan year (3 values)")
	cmd.Flags().Float64SliceVar(&costs, "cost", nil, "Cost per plan year (3 values)")
	cmd.Flags().StringVar(&assumptions, "assumptions", "", "Plan assumptions")

	return cmd
}

func newBusinessShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the business case",
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
			if o.BusinessCase == nil {
				fmt.Println("No business case yet. It is created when the opportunity reaches the business case stage, or with `bdnav business set`.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatBusinessCase(o.BusinessCase))
			return nil
		},
	}
}
