package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"briefgen/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			router := server.SetupRoutes(server.NewHandlers(app.Service, app.Store))
			fmt.Fprintf(cmd.ErrOrStderr(), "listening on %s (model %s)\n", addr, app.Config.Model)
			return router.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8787", "Listen address")
	return cmd
}
