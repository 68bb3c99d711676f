// Package cli wires the briefgen commands.
package cli

import (
	"github.com/spf13/cobra"

	"briefgen/internal/gemini"
	"briefgen/internal/history"
	"briefgen/internal/report"
)

// App holds references to the services used by CLI commands.
type App struct {
	Service *report.Service
	Store   *history.Store
	Config  gemini.Config

	// IsInteractive reports whether stdin is a terminal; the root
	// command opens the TUI only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "briefgen" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "briefgen",
		Short: "Daily reports, weekly summaries, and meeting minutes for project managers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTUICmd(app),
		newGenerateCmd(app),
		newOCRCmd(app),
		newHistoryCmd(app),
		newServeCmd(app),
	)

	return root
}
