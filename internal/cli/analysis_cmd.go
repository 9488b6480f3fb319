package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marion-inge/bdnavigator/internal/cli/formatter"
	"github.com/marion-inge/bdnavigator/internal/domain"
)

func newAnalysisCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Manage strategic analysis artifacts",
	}

	cmd.AddCommand(
		newAnalysisSetCmd(app),
		newAnalysisShowCmd(app),
	)

	return cmd
}

func newAnalysisSetCmd(app *App) *cobra.Command {
	var strengths, weaknesses, opportunities, threats []string
	var bcg, ansoff string

	cmd := &cobra.Command{
		Use:   "set ID",
		Short: "Set SWOT lists and portfolio quadrants",
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

			analysis := o.Analysis
			flags := cmd.Flags()
			if flags.Changed("strength") {
				analysis.SWOT.Strengths = strengths
			}
			if flags.Changed("weakness") {
				analysis.SWOT.Weaknesses = weaknesses
			}
			if flags.Changed("opportunity") {
				analysis.SWOT.Opportunities = opportunities
			}
			if flags.Changed("threat") {
				analysis.SWOT.Threats = threats
			}
			if flags.Changed("bcg") {
				q := domain.BCGQuadrant(bcg)
				switch q {
				case domain.BCGStar, domain.BCGCashCow, domain.BCGQuestionMark, domain.BCGDog:
					analysis.BCG = q
				default:
					return fmt.Errorf("unknown BCG quadrant %q", bcg)
				}
			}
			if flags.Changed("ansoff") {
				q := domain.AnsoffQuadrant(ansoff)
				switch q {
				case domain.AnsoffMarketPenetration, domain.AnsoffMarketDevelopment,
					domain.AnsoffProductDevelopment, domain.AnsoffDiversification:
					analysis.Ansoff = q
				default:
					return fmt.Errorf("unknown Ansoff quadrant %q", ansoff)
				}
			}

			o, err = app.Opportunities.SaveAnalysis(ctx, id, analysis)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatAnalysis(o.Analysis))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&strengths, "strength", nil, "SWOT strength (repeatable)")
	cmd.Flags().StringArrayVar(&weaknesses, "weakness", nil, "SWOT weakness (repeatable)")
	cmd.Flags().StringArrayVar(&opportunities, "opportunity", nil, "SWOT opportunity (repeatable)")
	cmd.Flags().StringArrayVar(&threats, "threat", nil, "SWOT threat (repeatable)")
	cmd.Flags().StringVar(&bcg, "bcg", "", "BCG quadrant (star|cash_cow|question_mark|dog)")
	cmd.Flags().StringVar(&ansoff, "ansoff", "", "Ansoff quadrant (market_penetration|market_development|product_development|diversification)")

	return cmd
}

func newAnalysisShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the strategic analysis",
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
			if o.Analysis.Empty() {
				fmt.Println("No analysis recorded yet. Use `bdnav analysis set` to add one.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatAnalysis(o.Analysis))
			return nil
		},
	}
}
