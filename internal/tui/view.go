package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daybook/internal/autosave"
	"github.com/julianstephens/daybook/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateJournal:
		content = docStyle.Render(m.viewJournal())
	case constants.StateStats:
		content = docStyle.Render(m.statsModel.View())
	case constants.StateHeatmap:
		content = docStyle.Render(m.heatmapModel.View())
	case constants.StateSettingsForm:
		content = docStyle.Render(m.form.View())
	case constants.StateConfirmQuit:
		content = m.viewConfirmQuit()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatusLine(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	titles := []string{"Journal", "Stats", "Heatmap"}
	states := []constants.SessionState{
		constants.StateJournal,
		constants.StateStats,
		constants.StateHeatmap,
	}

	var tabs []string
	for i, title := range titles {
		if m.state == states[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewJournal() string {
	header := dateStyle.Render(m.coord.Date())
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.journalModel.View())
}

// viewStatusLine shows the autosave state for the open day.
func (m Model) viewStatusLine() string {
	var status string
	switch m.coord.Status() {
	case autosave.StatusClean:
		if m.coord.Persisted() {
			status = statusCleanStyle.Render("● saved")
		} else {
			status = statusCleanStyle.Render("○ draft")
		}
	case autosave.StatusDirty:
		status = statusDirtyStyle.Render("● unsaved changes")
	case autosave.StatusSaving:
		status = statusSavingStyle.Render("● saving…")
	}

	if err := m.coord.LastError(); err != nil {
		status += dangerStyle.Render(fmt.Sprintf("  save failed: %v", err))
	}

	return inactiveTabStyle.Render(status)
}

func (m Model) viewConfirmQuit() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Saving failed: %v", m.quitError)),
			"Quit anyway and lose unsaved changes?",
			"",
			"[y] Quit",
			"[n] Stay",
		),
	)
}
