package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marion-inge/bdnavigator/internal/cli/formatter"
	"github.com/marion-inge/bdnavigator/internal/domain"
)

func newScoreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score opportunities",
	}

	cmd.AddCommand(
		newScoreSetCmd(app),
		newScoreWizardCmd(app),
		newScoreShowCmd(app),
		newScoreDetailedCmd(app),
	)

	return cmd
}

func newScoreSetCmd(app *App) *cobra.Command {
	var market, fit, feasibility, viability, risk int
	var marketNote, fitNote, feasibilityNote, viabilityNote, riskNote string

	cmd := &cobra.Command{
		Use:   "set ID",
		Short: "Set the rough scoring directly",
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

			scoring := o.Scoring
			apply := func(c *domain.Criterion, name string, score int, note string, changedScore, changedNote bool) error {
				if changedScore {
					if err := validateScoreFlag(name, score); err != nil {
						return err
					}
					c.Score = score
				}
				if changedNote {
					c.Comment = note
				}
				return nil
			}

			flags := cmd.Flags()
			if err := apply(&scoring.MarketAttractiveness, "market", market, marketNote,
				flags.Changed("market"), flags.Changed("market-note")); err != nil {
				return err
			}
			if err := apply(&scoring.StrategicFit, "fit", fit, fitNote,
				flags.Changed("fit"), flags.Changed("fit-note")); err != nil {
				return err
			}
			if err := apply(&scoring.Feasibility, "feasibility", feasibility, feasibilityNote,
				flags.Changed("feasibility"), flags.Changed("feasibility-note")); err != nil {
				return err
			}
			if err := apply(&scoring.CommercialViability, "viability", viability, viabilityNote,
				flags.Changed("viability"), flags.Changed("viability-note")); err != nil {
				return err
			}
			if err := apply(&scoring.Risk, "risk", risk, riskNote,
				flags.Changed("risk"), flags.Changed("risk-note")); err != nil {
				return err
			}

			o, err = app.Opportunities.SaveScoring(ctx, id, scoring)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatScoring(o.Scoring))
			return nil
		},
	}

	cmd.Flags().IntVar(&market, "market", 0, "Market attractiveness score (1-5)")
	cmd.Flags().IntVar(&fit, "fit", 0, "Strategic fit score (1-5)")
	cmd.Flags().IntVar(&feasibility, "feasibility", 0, "Feasibility score (1-5)")
	cmd.Flags().IntVar(&viability, "viability", 0, "Commercial viability score (1-5)")
	cmd.Flags().IntVar(&risk, "risk", 0, "Risk score (1-5, 5 = highest risk)")
	cmd.Flags().StringVar(&marketNote, "market-note", "", "Market attractiveness comment")
	cmd.Flags().StringVar(&fitNote, "fit-note", "", "Strategic fit comment")
	cmd.Flags().StringVar(&feasibilityNote, "feasibility-note", "", "Feasibility comment")
	cmd.Flags().StringVar(&viabilityNote, "viability-note", "", "Commercial viability comment")
	cmd.Flags().StringVar(&riskNote, "risk-note", "", "Risk comment")

	return cmd
}

func newScoreWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard ID",
		Short: "Score an opportunity through the guided questionnaire",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the scoring wizard needs an interactive terminal")
			}

			ctx := context.Background()
			id, err := resolveOpportunityID(ctx, app, args[0])
			if err != nil {
				return err
			}

			answers, err := runScoringWizard()
			if err != nil {
				return err
			}
			if len(answers) == 0 {
				fmt.Println("No questions answered, scoring unchanged.")
				return nil
			}

			o, err := app.Opportunities.SaveScoringFromAnswers(ctx, id, answers)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatScoring(o.Scoring))
			return nil
		},
	}
}

func newScoreShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the current scoring",
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

			fmt.Printf("%s\n", formatter.FormatScoring(o.Scoring))
			if o.Detailed != nil {
				fmt.Printf("%s\n", formatter.FormatDetailedScoring(o.Detailed))
			}
			return nil
		},
	}
}

func newScoreDetailedCmd(app *App) *cobra.Command {
	var market, fit, feasibility, viability, risk int
	var justification string
	var sources []string
	var criterion string

	cmd := &cobra.Command{
		Use:   "detailed ID",
		Short: "Set detailed scoring values",
		Long: `Set detailed scoring values. Score flags update the named criteria;
--criterion selects which criterion --justification and --source apply to.`,
		Args: cobra.ExactArgs(1),
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

			detailed := *domain.DefaultDetailedScoring()
			if o.Detailed != nil {
				detailed = *o.Detailed
			}

			flags := cmd.Flags()
			setScore := func(c *domain.DetailedCriterion, name string, v int) error {
				if !flags.Changed(name) {
					return nil
				}
				if err := validateScoreFlag(name, v); err != nil {
					return err
				}
				c.Score = v
				return nil
			}
			if err := setScore(&detailed.MarketAttractiveness, "market", market); err != nil {
				return err
			}
			if err := setScore(&detailed.StrategicFit, "fit", fit); err != nil {
				return err
			}
			if err := setScore(&detailed.Feasibility, "feasibility", feasibility); err != nil {
				return err
			}
			if err := setScore(&detailed.CommercialViability, "viability", viability); err != nil {
				return err
			}
			if err := setScore(&detailed.Risk, "risk", risk); err != nil {
				return err
			}

			if flags.Changed("justification") || flags.Changed("source") {
				key := domain.CriterionKey(criterion)
				target := detailed.ByKey(key)
				if target == nil {
					return fmt.Errorf("unknown criterion %q", criterion)
				}
				if flags.Changed("justification") {
					target.Justification = justification
				}
				if flags.Changed("source") {
					target.DataSources = sources
				}
			}

			o, err = app.Opportunities.SaveDetailedScoring(ctx, id, &detailed)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatDetailedScoring(o.Detailed))
			return nil
		},
	}

	cmd.Flags().IntVar(&market, "market", 0, "Market attractiveness score (1-5)")
	cmd.Flags().IntVar(&fit, "fit", 0, "Strategic fit score (1-5)")
	cmd.Flags().IntVar(&feasibility, "feasibility", 0, "Feasibility score (1-5)")
	cmd.Flags().IntVar(&viability, "viability", 0, "Commercial viability score (1-5)")
	cmd.Flags().IntVar(&risk, "risk", 0, "Risk score (1-5)")
	cmd.Flags().StringVar(&criterion, "criterion", string(domain.MarketAttractiveness), "Criterion for --justification/--source")
	cmd.Flags().StringVar(&justification, "justification", "", "Justification text")
	cmd.Flags().StringArrayVar(&sources, "source", nil, "Data source (repeatable)")

	return cmd
}
