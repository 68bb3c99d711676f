package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"briefgen/internal/report"
)

func newOCRCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ocr <image>...",
		Short: "Extract text from screenshots of past reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make([]report.OCRFile, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				files = append(files, report.OCRFile{
					Name:     filepath.Base(path),
					Data:     data,
					MIMEType: imageMIMEFromPath(path),
				})
			}

			text, err := app.Service.BatchOCR(context.Background(), files, func(i, total int) {
				fmt.Fprintf(cmd.ErrOrStderr(), "processing image %d/%d\n", i, total)
			})
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
	return cmd
}

func imageMIMEFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
