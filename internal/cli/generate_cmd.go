package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"briefgen/internal/domain"
	"briefgen/internal/store"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		mode      string
		date      string
		taskFlags []string
		internals []string
		notes     string
		input     string
		inputFile string
		audioPath string
		audioMIME string
		meetingCx string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a report and print it to stdout",
		Example: `  briefgen generate --mode daily --task "Suining Middle School/Contract & Finance/Contract signed=done"
  briefgen generate --mode weekly --input-file dailies.txt
  briefgen generate --mode meeting --audio recording.wav --context "marketing weekly"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			params, err := buildParams(mode, date, taskFlags, internals, notes, input, inputFile, audioPath, audioMIME, meetingCx, app)
			if err != nil {
				return err
			}

			text, err := app.Service.Generate(ctx, params)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "daily", "Report mode: daily, weekly, or meeting")
	cmd.Flags().StringVar(&date, "date", "", "Report date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringArrayVar(&taskFlags, "task", nil, `Project task as "Client/Group/Task=doing|done" (repeatable)`)
	cmd.Flags().StringArrayVar(&internals, "internal", nil, `Internal task as "Task=doing|done" (repeatable)`)
	cmd.Flags().StringVar(&notes, "notes", "", "High-priority manual notes for the daily report")
	cmd.Flags().StringVar(&input, "input", "", "Raw notes for the weekly summary")
	cmd.Flags().StringVar(&inputFile, "input-file", "", "File with raw notes for the weekly summary")
	cmd.Flags().StringVar(&audioPath, "audio", "", "Audio file for meeting minutes")
	cmd.Flags().StringVar(&audioMIME, "audio-mime", "", "MIME type of the audio file (inferred from the extension when unset)")
	cmd.Flags().StringVar(&meetingCx, "context", "", "Meeting background: topic, attendees, expected decisions")

	return cmd
}

func buildParams(mode, date string, taskFlags, internals []string, notes, input, inputFile, audioPath, audioMIME, meetingCx string, app *App) (domain.GenerationParams, error) {
	if !domain.ValidModes[mode] {
		return domain.GenerationParams{}, fmt.Errorf("unknown mode %q: use daily, weekly, or meeting", mode)
	}

	params := domain.GenerationParams{
		Mode: domain.ReportMode(mode),
		Date: date,
	}

	switch params.Mode {
	case domain.ModeDaily:
		sel := store.New()
		for _, f := range taskFlags {
			client, group, task, status, err := parseProjectTaskFlag(f)
			if err != nil {
				return domain.GenerationParams{}, err
			}
			sel.SetProjectStatus(client, group, task, status)
		}
		for _, f := range internals {
			task, status, err := parseStatusAssignment(f)
			if err != nil {
				return domain.GenerationParams{}, err
			}
			sel.SetInternalStatus(task, status)
		}
		params.ProjectSelections, params.InternalSelections = sel.Snapshot()
		params.ManualInput = notes

	case domain.ModeWeekly:
		text := input
		if text == "" && inputFile != "" {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return domain.GenerationParams{}, fmt.Errorf("reading input file: %w", err)
			}
			text = string(data)
		}
		if strings.TrimSpace(text) == "" && app.IsInteractive != nil && app.IsInteractive() {
			var err error
			if text, err = promptWeeklyInput(); err != nil {
				return domain.GenerationParams{}, err
			}
		}
		params.WeeklyInput = text

	case domain.ModeMeeting:
		if audioPath == "" {
			return domain.GenerationParams{}, fmt.Errorf("meeting mode requires --audio")
		}
		data, err := os.ReadFile(audioPath)
		if err != nil {
			return domain.GenerationParams{}, fmt.Errorf("reading audio file: %w", err)
		}
		params.MeetingAudio = data
		params.MeetingAudioMIME = audioMIME
		if params.MeetingAudioMIME == "" {
			params.MeetingAudioMIME = audioMIMEFromPath(audioPath)
		}
		params.MeetingContext = meetingCx
	}

	return params, nil
}

// promptWeeklyInput opens a textarea form to paste the week's raw notes.
func promptWeeklyInput() (string, error) {
	var text string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Weekly raw notes").
				Description("Paste the week's daily reports or fragmented notes.").
				Value(&text),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return text, nil
}

// parseProjectTaskFlag parses "Client/Group/Task=status".
func parseProjectTaskFlag(s string) (client, group, task string, status domain.TaskStatus, err error) {
	path, st, err := parsePathAssignment(s)
	if err != nil {
		return "", "", "", "", err
	}
	parts := strings.SplitN(path, "/", 3)
	if len(parts) != 3 {
		return "", "", "", "", fmt.Errorf("task %q: want \"Client/Group/Task=status\"", s)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), st, nil
}

// parseStatusAssignment parses "Task=status".
func parseStatusAssignment(s string) (string, domain.TaskStatus, error) {
	path, st, err := parsePathAssignment(s)
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(path), st, nil
}

func parsePathAssignment(s string) (string, domain.TaskStatus, error) {
	path := s
	status := domain.StatusDone
	if i := strings.LastIndex(s, "="); i >= 0 {
		path = s[:i]
		raw := strings.TrimSpace(s[i+1:])
		if !domain.ValidStatuses[raw] {
			return "", "", fmt.Errorf("unknown status %q: use pending, doing, or done", raw)
		}
		status = domain.TaskStatus(raw)
	}
	if strings.TrimSpace(path) == "" {
		return "", "", fmt.Errorf("empty task in %q", s)
	}
	return path, status, nil
}

func audioMIMEFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mpeg"
	case ".m4a":
		return "audio/mp4"
	case ".ogg":
		return "audio/ogg"
	case ".webm":
		return "audio/webm"
	case ".flac":
		return "audio/flac"
	default:
		return "audio/wav"
	}
}
