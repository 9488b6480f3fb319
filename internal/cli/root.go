package cli

import (
	"github.com/spf13/cobra"

	"github.com/marion-inge/bdnavigator/internal/assessment"
	"github.com/marion-inge/bdnavigator/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Opportunities service.OpportunityService
	Pipeline      service.PipelineService
	Assessor      assessment.Service

	// IsInteractive reports whether stdin is a terminal; wizard commands
	// refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "bdnav" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "bdnav",
		Short: "Business development opportunity tracker",
	}

	root.AddCommand(
		newOpportunityCmd(app),
		newScoreCmd(app),
		newStageCmd(app),
		newGateCmd(app),
		newBusinessCmd(app),
		newAnalysisCmd(app),
		newAssessCmd(app),
		newServeCmd(app),
	)

	return root
}
