package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"briefgen/internal/domain"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.text.SetWidth(msg.Width - 4)
		m.result.Width = msg.Width - 4
		m.result.Height = msg.Height - 8
		return m, nil

	case generateResultMsg:
		m.generating = false
		m.resultOK = true
		m.errMsg = ""
		m.result.SetContent(msg.text)
		m.result.GotoTop()
		m.focus = focusResult
		return m, nil

	case generateErrMsg:
		m.generating = false
		m.resultOK = false
		m.errMsg = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text entry swallows everything except escape.
	if m.focus == focusText {
		if msg.Type == tea.KeyEsc {
			m.syncText()
			m.focus = focusTasks
			m.text.Blur()
			m.audioPath.Blur()
			return m, nil
		}
		return m.updateFocused(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.nextMode()
		return m, nil

	case "up", "k":
		if m.focus == focusResult {
			var cmd tea.Cmd
			m.result, cmd = m.result.Update(msg)
			return m, cmd
		}
		m.moveCursor(-1)
		return m, nil

	case "down", "j":
		if m.focus == focusResult {
			var cmd tea.Cmd
			m.result, cmd = m.result.Update(msg)
			return m, cmd
		}
		m.moveCursor(1)
		return m, nil

	case " ", "enter":
		if m.mode == domain.ModeDaily && m.focus == focusTasks {
			m.toggleRow()
		}
		return m, nil

	case "e":
		m.enterTextFocus()
		return m, m.text.Focus()

	case "a":
		if m.mode == domain.ModeMeeting {
			m.focus = focusText
			return m, m.audioPath.Focus()
		}
		return m, nil

	case "r":
		m.store.Reset()
		m.text.SetValue("")
		m.audioPath.SetValue("")
		m.errMsg = ""
		return m, nil

	case "g":
		if m.generating {
			return m, nil
		}
		params, err := m.snapshotParams()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.generating = true
		m.errMsg = ""
		return m, tea.Batch(m.spin.Tick, m.generateCmd(params))

	case "esc":
		if m.focus == focusResult {
			m.focus = focusTasks
		}
		return m, nil
	}

	return m, nil
}

// nextMode cycles daily → weekly → meeting and reseeds the text widget
// with the mode's stored field.
func (m *Model) nextMode() {
	switch m.mode {
	case domain.ModeDaily:
		m.mode = domain.ModeWeekly
		m.text.Placeholder = "Paste the week's daily reports or fragmented notes"
		m.text.SetValue(m.store.WeeklyText())
	case domain.ModeWeekly:
		m.mode = domain.ModeMeeting
		m.text.Placeholder = "Meeting background: topic, attendees, expected decisions"
		m.text.SetValue(m.store.MeetingContext())
	default:
		m.mode = domain.ModeDaily
		m.text.Placeholder = "High-priority notes for today's report"
		m.text.SetValue(m.store.ManualText())
	}
	m.focus = focusTasks
	m.errMsg = ""
}

func (m *Model) enterTextFocus() {
	m.focus = focusText
	switch m.mode {
	case domain.ModeWeekly:
		m.text.SetValue(m.store.WeeklyText())
	case domain.ModeMeeting:
		m.text.SetValue(m.store.MeetingContext())
	default:
		m.text.SetValue(m.store.ManualText())
	}
}

// syncText writes the text widget back into the store field for the
// current mode.
func (m *Model) syncText() {
	value := m.text.Value()
	switch m.mode {
	case domain.ModeWeekly:
		m.store.SetWeeklyText(value)
	case domain.ModeMeeting:
		m.store.SetMeetingContext(value)
	default:
		m.store.SetManualText(value)
	}
}

func (m *Model) moveCursor(delta int) {
	if m.mode != domain.ModeDaily {
		return
	}
	next := m.cursor
	for {
		next += delta
		if next < 0 || next >= len(m.rows) {
			return
		}
		if !m.rows[next].header {
			m.cursor = next
			return
		}
	}
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.text.Focused() {
		m.text, cmd = m.text.Update(msg)
		cmds = append(cmds, cmd)
		m.syncText()
	}
	if m.audioPath.Focused() {
		m.audioPath, cmd = m.audioPath.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}
