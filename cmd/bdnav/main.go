package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/marion-inge/bdnavigator/internal/assessment"
	"github.com/marion-inge/bdnavigator/internal/cli"
	"github.com/marion-inge/bdnavigator/internal/db"
	"github.com/marion-inge/bdnavigator/internal/llm"
	"github.com/marion-inge/bdnavigator/internal/repository"
	"github.com/marion-inge/bdnavigator/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.bdnav/bdnav.db
	dbPath := os.Getenv("BDNAV_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".bdnav", "bdnav.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	repo := repository.NewSQLiteOpportunityRepo(database)

	// Wire the LLM-backed assessor only when the subsystem is enabled;
	// otherwise the deterministic fallback serves all assessments.
	llmCfg := llm.LoadConfig()
	var client llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewOllamaClient(llmCfg, observer)
	}

	app := &cli.App{
		Opportunities: service.NewOpportunityService(repo),
		Pipeline:      service.NewPipelineService(repo),
		Assessor:      assessment.NewService(client, llmCfg.Enabled),
	}

	// Detect interactive terminal for wizard commands.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
