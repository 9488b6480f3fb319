package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marion-inge/bdnavigator/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the opportunity pipeline as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = os.Getenv("BDNAV_ADDR")
			}
			if addr == "" {
				addr = ":8384"
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := log.New(os.Stderr, "bdnav ", log.LstdFlags)
			srv := server.NewServer(app.Opportunities, app.Pipeline, app.Assessor, logger)

			fmt.Printf("Serving on %s\n", addr)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $BDNAV_ADDR or :8384)")

	return cmd
}
