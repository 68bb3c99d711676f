package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"briefgen/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("241"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).
			Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	doingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("briefgen") + "  " + m.renderTabs() + "\n\n")

	switch {
	case m.focus == focusResult && m.resultOK:
		b.WriteString(m.result.View() + "\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll · esc back · q quit"))
		return b.String()
	case m.mode == domain.ModeDaily:
		b.WriteString(m.renderTaskList())
	case m.mode == domain.ModeWeekly:
		b.WriteString("Raw notes for the week:\n\n" + m.text.View() + "\n")
	case m.mode == domain.ModeMeeting:
		b.WriteString("Audio file: " + m.audioPath.View() + "\n\n")
		b.WriteString("Background:\n" + m.text.View() + "\n")
	}

	b.WriteString("\n")
	if m.generating {
		b.WriteString(m.spin.View() + " generating...\n")
	}
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 3)
	for _, mode := range []domain.ReportMode{domain.ModeDaily, domain.ModeWeekly, domain.ModeMeeting} {
		label := tabLabel(mode)
		if mode == m.mode {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func tabLabel(mode domain.ReportMode) string {
	switch mode {
	case domain.ModeWeekly:
		return "Weekly Summary"
	case domain.ModeMeeting:
		return "Meeting Minutes"
	default:
		return "Daily Report"
	}
}

func (m Model) renderTaskList() string {
	var b strings.Builder
	for i, r := range m.rows {
		if r.header {
			b.WriteString(headerStyle.Render(r.label) + "\n")
			continue
		}

		glyph := "[ ]"
		line := r.label
		switch m.rowStatus(r) {
		case domain.StatusDoing:
			glyph = doingStyle.Render("[~]")
			line = doingStyle.Render(r.label)
		case domain.StatusDone:
			glyph = doneStyle.Render("[x]")
			line = doneStyle.Render(r.label)
		}

		marker := "  "
		if i == m.cursor && m.focus == focusTasks {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString("  " + marker + glyph + " " + line + "\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	switch m.mode {
	case domain.ModeDaily:
		return "↑/↓ move · space toggle · e notes · g generate · r reset · tab mode · q quit"
	case domain.ModeWeekly:
		return "e edit notes · esc done · g generate · r reset · tab mode · q quit"
	default:
		return "a audio path · e background · esc done · g generate · r reset · tab mode · q quit"
	}
}
