package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/autosave"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/stats"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/tui/components/heatmap"
	"github.com/julianstephens/daybook/internal/tui/components/journal"
	"github.com/julianstephens/daybook/internal/tui/components/statsview"
	"github.com/julianstephens/daybook/internal/utils"
)

type SettingsFormModel struct {
	Theme                string
	DefaultView          string
	NotificationsEnabled bool
}

type Model struct {
	store         storage.Provider
	coord         *autosave.Coordinator
	agg           *stats.Aggregator
	watcher       *stats.Watcher
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	journalModel  journal.Model
	statsModel    statsview.Model
	heatmapModel  heatmap.Model
	form          *huh.Form
	settingsForm  *SettingsFormModel
	quitting      bool
	quitError     error
	width         int
	height        int
}

func NewModel(store storage.Provider) (Model, error) {
	today := utils.Today()

	coord, err := autosave.New(store, today)
	if err != nil {
		return Model{}, err
	}

	watcher := stats.NewWatcher(store)
	start, end := currentStatsPeriod(time.Now())
	watcher.SetRange(start, end)

	m := Model{
		store:        store,
		coord:        coord,
		agg:          stats.NewAggregator(store),
		watcher:      watcher,
		state:        constants.StateJournal,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		journalModel: journal.New(coord.Entry(), 0, 0),
		statsModel:   statsview.New(0, 0),
		heatmapModel: heatmap.New(time.Now().Year()),
	}

	return m, nil
}

// currentStatsPeriod is the default stats window: first of the current
// month through today.
func currentStatsPeriod(now time.Time) (string, string) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start.Format(constants.DateFormat), now.Format(constants.DateFormat)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Save}
	switch m.state {
	case constants.StateJournal:
		keys = append(keys, m.keys.PrevDay, m.keys.NextDay, m.keys.Today)
	case constants.StateHeatmap:
		keys = append(keys, m.keys.PrevYear, m.keys.NextYear)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Save, m.keys.Settings}
	journal := []key.Binding{m.keys.PrevDay, m.keys.NextDay, m.keys.Today}
	heatmap := []key.Binding{m.keys.PrevYear, m.keys.NextYear}
	return [][]key.Binding{global, journal, heatmap}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.journalModel.Init(),
		waitForStats(m.watcher),
		statusTick(),
	)
}
