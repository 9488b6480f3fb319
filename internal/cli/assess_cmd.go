package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marion-inge/bdnavigator/internal/assessment"
	"github.com/marion-inge/bdnavigator/internal/cli/formatter"
)

func newAssessCmd(app *App) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "assess ID",
		Short: "Generate a narrative assessment of an opportunity",
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

			lang := assessment.Language(language)
			if !lang.Valid() {
				return fmt.Errorf("unsupported language %q (use en or de)", language)
			}

			stop := formatter.StartSpinner("Assessing " + o.Title)
			result, err := app.Assessor.Assess(ctx, assessment.Request{
				Title:       o.Title,
				Description: o.Description,
				Scoring:     o.Scoring,
				Language:    lang,
			})
			stop()
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatAssessment(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "lang", string(assessment.LanguageEnglish), "Assessment language (en|de)")

	return cmd
}
