// Package tui is the interactive report workspace: toggle tasks, enter
// notes, and generate reports without leaving the terminal.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"briefgen/internal/catalog"
	"briefgen/internal/domain"
	"briefgen/internal/report"
	"briefgen/internal/store"
)

// focusArea identifies which part of the workspace receives key input.
type focusArea int

const (
	focusTasks focusArea = iota
	focusText
	focusResult
)

// row is one selectable or decorative line in the daily task list.
type row struct {
	client   string
	group    string
	task     string
	internal bool // internal-affairs task; client and group are empty
	header   bool // section or client header, not selectable
	label    string
}

type generateResultMsg struct{ text string }
type generateErrMsg struct{ err error }

// Model is the top-level bubbletea model for the workspace.
type Model struct {
	service *report.Service
	store   *store.SelectionStore

	mode   domain.ReportMode
	focus  focusArea
	rows   []row
	cursor int

	text      textarea.Model
	audioPath textinput.Model

	spin       spinner.Model
	generating bool

	result   viewport.Model
	resultOK bool
	errMsg   string

	width  int
	height int
}

// New creates the workspace model.
func New(service *report.Service) Model {
	ta := textarea.New()
	ta.Placeholder = "High-priority notes for today's report"
	ta.CharLimit = 0

	ap := textinput.New()
	ap.Placeholder = "path/to/recording.wav"

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		service:   service,
		store:     store.New(),
		mode:      domain.ModeDaily,
		text:      ta,
		audioPath: ap,
		spin:      sp,
		result:    viewport.New(0, 0),
	}
	m.rows = buildRows()
	for i, r := range m.rows {
		if !r.header {
			m.cursor = i
			break
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// buildRows flattens the catalog into the navigable daily task list.
func buildRows() []row {
	var rows []row
	for _, client := range catalog.Clients {
		rows = append(rows, row{header: true, label: client})
		for _, group := range catalog.GroupTemplate {
			for _, task := range group.Tasks {
				rows = append(rows, row{
					client: client,
					group:  group.Name,
					task:   task,
					label:  fmt.Sprintf("[%s] %s", group.Name, task),
				})
			}
		}
	}
	rows = append(rows, row{header: true, label: "Internal affairs"})
	for _, task := range catalog.InternalTasks {
		rows = append(rows, row{internal: true, task: task, label: task})
	}
	return rows
}

// rowStatus returns the stored status for a selectable row.
func (m Model) rowStatus(r row) domain.TaskStatus {
	if r.internal {
		return m.store.InternalStatus(r.task)
	}
	return m.store.ProjectStatus(r.client, r.group, r.task)
}

// toggleRow advances the status of the row under the cursor.
func (m *Model) toggleRow() {
	r := m.rows[m.cursor]
	if r.header {
		return
	}
	next := m.rowStatus(r).Next()
	if r.internal {
		m.store.SetInternalStatus(r.task, next)
	} else {
		m.store.SetProjectStatus(r.client, r.group, r.task, next)
	}
}

// snapshotParams builds the immutable request for the current mode.
func (m Model) snapshotParams() (domain.GenerationParams, error) {
	params := domain.GenerationParams{Mode: m.mode}

	switch m.mode {
	case domain.ModeDaily:
		params.ProjectSelections, params.InternalSelections = m.store.Snapshot()
		params.ManualInput = m.store.ManualText()
	case domain.ModeWeekly:
		params.WeeklyInput = m.store.WeeklyText()
	case domain.ModeMeeting:
		path := strings.TrimSpace(m.audioPath.Value())
		if path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return params, fmt.Errorf("reading audio file: %w", err)
			}
			params.MeetingAudio = data
			params.MeetingAudioMIME = meetingMIME(path)
		}
		params.MeetingContext = m.store.MeetingContext()
	}
	return params, nil
}

// generateCmd runs one generation request off the update loop.
func (m Model) generateCmd(params domain.GenerationParams) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		text, err := service.Generate(context.Background(), params)
		if err != nil {
			return generateErrMsg{err: err}
		}
		return generateResultMsg{text: text}
	}
}

func meetingMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mpeg"
	case ".m4a":
		return "audio/mp4"
	case ".ogg":
		return "audio/ogg"
	case ".webm":
		return "audio/webm"
	default:
		return "audio/wav"
	}
}
