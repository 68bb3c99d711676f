package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved reports",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := app.Store.List(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Println("No saved reports yet.")
				return nil
			}
			for _, r := range reports {
				fmt.Printf("%s  %-7s  %s  %s\n",
					r.ID, r.Mode, r.ReportDate, firstLine(r.Content))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of reports to list (0 for all)")
	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Store.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Mode: %s\nDate: %s\nModel: %s\nSaved: %s\n\n%s\n",
				r.Mode, r.ReportDate, r.Model, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Content)
			return nil
		},
	}
	return cmd
}

func firstLine(s string) string {
	for i, c := range s {
		if c == '\n' {
			s = s[:i]
			break
		}
	}
	const max = 60
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}
