package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/autosave"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/stats"
	"github.com/julianstephens/daybook/internal/tui/components/journal"
	"github.com/julianstephens/daybook/internal/utils"
)

type statsUpdateMsg stats.RangeUpdate

type statusTickMsg struct{}

type yearLoadedMsg struct {
	year    int
	entries map[string]models.DayEntry
	err     error
}

// waitForStats blocks on the watcher's update channel and resubscribes
// itself after each delivery.
func waitForStats(w *stats.Watcher) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-w.Updates()
		if !ok {
			return nil
		}
		return statsUpdateMsg(update)
	}
}

// statusTick drives the autosave status line and adopts persisted IDs
// back into the journal view between renders.
func statusTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

func loadYear(agg *stats.Aggregator, year int) tea.Cmd {
	return func() tea.Msg {
		entries, err := agg.YearLookup(year)
		return yearLoadedMsg{year: year, entries: entries, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.journalModel.SetSize(msg.Width-4, msg.Height-6)
		m.statsModel.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case statsUpdateMsg:
		m.statsModel.SetResult(msg.Result, msg.Err)
		return m, waitForStats(m.watcher)

	case statusTickMsg:
		// Pick up store-assigned identity after a save settles. Text and
		// controls are left alone: an in-flight keystroke's patch may not
		// have reached the coordinator yet, and a full SetEntry here would
		// revert the input. Full refreshes happen on manual save and day
		// switch.
		if m.state == constants.StateJournal {
			m.journalModel.AdoptIdentity(m.coord.Entry())
		}
		return m, statusTick()

	case yearLoadedMsg:
		m.heatmapModel.SetYear(msg.year, msg.entries, msg.err)
		return m, nil

	case journal.PatchMsg:
		m.coord.OnEdit(msg.Patch)
		return m, nil
	}

	// Settings form owns the input while open.
	if m.state == constants.StateSettingsForm {
		return m.updateSettingsForm(msg)
	}

	if m.state == constants.StateConfirmQuit {
		return m.updateConfirmQuit(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			// Esc inside the journal text fields should not kill the app.
			if m.state == constants.StateJournal && msg.String() == "esc" {
				break
			}
			return m.requestQuit()

		case key.Matches(msg, m.keys.Tab):
			return m.nextView(1)

		case key.Matches(msg, m.keys.ShiftTab):
			return m.nextView(-1)

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Save):
			if err := m.coord.Flush(); err != nil {
				logger.Error("Manual save failed", "error", err)
			}
			m.journalModel.SetEntry(m.coord.Entry())
			return m, nil

		case key.Matches(msg, m.keys.Settings):
			return m.openSettingsForm()

		case key.Matches(msg, m.keys.PrevDay):
			if m.state == constants.StateJournal {
				if d, err := utils.AddDays(m.coord.Date(), -1); err == nil {
					return m.switchDay(d)
				}
			}

		case key.Matches(msg, m.keys.NextDay):
			if m.state == constants.StateJournal {
				if d, err := utils.AddDays(m.coord.Date(), 1); err == nil {
					return m.switchDay(d)
				}
			}

		case key.Matches(msg, m.keys.Today):
			if m.state == constants.StateJournal {
				return m.switchDay(utils.Today())
			}

		case key.Matches(msg, m.keys.PrevYear):
			if m.state == constants.StateHeatmap {
				return m, loadYear(m.agg, m.heatmapModel.Year()-1)
			}

		case key.Matches(msg, m.keys.NextYear):
			if m.state == constants.StateHeatmap {
				return m, loadYear(m.agg, m.heatmapModel.Year()+1)
			}
		}
	}

	switch m.state {
	case constants.StateJournal:
		var cmd tea.Cmd
		m.journalModel, cmd = m.journalModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateStats:
		var cmd tea.Cmd
		m.statsModel, cmd = m.statsModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateHeatmap:
		var cmd tea.Cmd
		m.heatmapModel, cmd = m.heatmapModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

var viewOrder = []constants.SessionState{
	constants.StateJournal,
	constants.StateStats,
	constants.StateHeatmap,
}

func (m Model) nextView(dir int) (tea.Model, tea.Cmd) {
	idx := 0
	for i, s := range viewOrder {
		if s == m.state {
			idx = i
			break
		}
	}
	next := viewOrder[(idx+dir+len(viewOrder))%len(viewOrder)]
	m.state = next

	if next == constants.StateHeatmap {
		return m, loadYear(m.agg, m.heatmapModel.Year())
	}
	return m, nil
}

// switchDay flushes the current day and rebuilds the coordinator for the
// target date. A flush failure keeps the user on the current day so the
// unsaved edits are not dropped.
func (m Model) switchDay(date string) (tea.Model, tea.Cmd) {
	if err := m.coord.Flush(); err != nil {
		logger.Error("Autosave flush failed on day switch", "date", m.coord.Date(), "error", err)
		return m, nil
	}

	coord, err := autosave.New(m.store, date)
	if err != nil {
		logger.Error("Failed to open day", "date", date, "error", err)
		return m, nil
	}
	m.coord = coord
	m.journalModel.SetEntry(coord.Entry())
	return m, nil
}

func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	if err := m.coord.Flush(); err != nil {
		m.quitError = err
		m.previousState = m.state
		m.state = constants.StateConfirmQuit
		return m, nil
	}
	return m.shutdown()
}

func (m Model) shutdown() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.watcher.Close()
	return m, tea.Quit
}

func (m Model) updateConfirmQuit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			// Discard unsaved changes.
			return m.shutdown()
		case "n", "esc":
			m.state = m.previousState
			m.quitError = nil
			return m, nil
		}
	}
	return m, nil
}

func (m Model) openSettingsForm() (tea.Model, tea.Cmd) {
	settings, err := m.store.GetSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	m.settingsForm = &SettingsFormModel{
		Theme:                settings.Theme,
		DefaultView:          settings.DefaultView,
		NotificationsEnabled: settings.NotificationsEnabled,
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Light", models.ThemeLight),
					huh.NewOption("Dark", models.ThemeDark),
				).
				Value(&m.settingsForm.Theme),
			huh.NewSelect[string]().
				Title("Default view").
				Options(
					huh.NewOption("Journal", models.ViewJournal),
					huh.NewOption("Calendar", models.ViewCalendar),
				).
				Value(&m.settingsForm.DefaultView),
			huh.NewConfirm().
				Title("Reminders").
				Value(&m.settingsForm.NotificationsEnabled),
		),
	)

	m.previousState = m.state
	m.state = constants.StateSettingsForm
	return m, m.form.Init()
}

func (m Model) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		settings := models.Settings{
			Theme:                m.settingsForm.Theme,
			DefaultView:          m.settingsForm.DefaultView,
			NotificationsEnabled: m.settingsForm.NotificationsEnabled,
		}
		if err := m.store.SaveSettings(settings); err != nil {
			logger.Error("Failed to save settings", "error", err)
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}

	return m, cmd
}
