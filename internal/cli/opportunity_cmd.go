package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marion-inge/bdnavigator/internal/cli/formatter"
	"github.com/marion-inge/bdnavigator/internal/domain"
	"github.com/marion-inge/bdnavigator/internal/service"
)

func newOpportunityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "opportunity",
		Aliases: []string{"opp"},
		Short:   "Manage opportunities",
	}

	cmd.AddCommand(
		newOpportunityAddCmd(app),
		newOpportunityListCmd(app),
		newOpportunityInspectCmd(app),
		newOpportunityUpdateCmd(app),
		newOpportunityRemoveCmd(app),
		newOpportunityImportCmd(app),
		newOpportunityExportCmd(app),
	)

	return cmd
}

func newOpportunityAddCmd(app *App) *cobra.Command {
	var title, description, industry, geography, technology, owner string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new opportunity",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := &domain.Opportunity{
				Title:       title,
				Description: description,
				Industry:    industry,
				Geography:   geography,
				Technology:  technology,
				Owner:       owner,
			}
			if err := app.Opportunities.Create(context.Background(), o); err != nil {
				return err
			}

			fmt.Printf("Created opportunity %s [%s]\n", o.Title, o.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Opportunity title")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringVar(&industry, "industry", "", "Industry segment")
	cmd.Flags().StringVar(&geography, "geography", "", "Target geography")
	cmd.Flags().StringVar(&technology, "technology", "", "Technology involved")
	cmd.Flags().StringVar(&owner, "owner", "", "Responsible owner")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newOpportunityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List opportunities",
		RunE: func(cmd *cobra.Command, args []string) error {
			opps, err := app.Opportunities.List(context.Background())
			if err != nil {
				return err
			}

			if len(opps) == 0 {
				fmt.Println("No opportunities found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatOpportunityList(opps))
			return nil
		},
	}
}

func newOpportunityInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show opportunity details",
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

			fmt.Printf("%s\n", formatter.FormatOpportunityInspect(o))
			return nil
		},
	}
}

func newOpportunityUpdateCmd(app *App) *cobra.Command {
	var title, description, industry, geography, technology, owner string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update opportunity details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveOpportunityID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var upd service.DetailsUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("description") {
				upd.Description = &description
			}
			if cmd.Flags().Changed("industry") {
				upd.Industry = &industry
			}
			if cmd.Flags().Changed("geography") {
				upd.Geography = &geography
			}
			if cmd.Flags().Changed("technology") {
				upd.Technology = &technology
			}
			if cmd.Flags().Changed("owner") {
				upd.Owner = &owner
			}

			o, err := app.Opportunities.UpdateDetails(ctx, id, upd)
			if err != nil {
				return err
			}

			fmt.Printf("Updated opportunity %s [%s]\n", o.Title, o.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Opportunity title")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringVar(&industry, "industry", "", "Industry segment")
	cmd.Flags().StringVar(&geography, "geography", "", "Target geography")
	cmd.Flags().StringVar(&technology, "technology", "", "Technology involved")
	cmd.Flags().StringVar(&owner, "owner", "", "Responsible owner")

	return cmd
}

func newOpportunityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an opportunity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveOpportunityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Opportunities.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed opportunity %s\n", id)
			return nil
		},
	}
}
