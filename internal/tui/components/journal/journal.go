package journal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
)

// PatchMsg carries a partial edit up to the root model, which feeds it
// to the autosave coordinator.
type PatchMsg struct {
	Patch models.EntryPatch
}

func patchCmd(p models.EntryPatch) tea.Cmd {
	return func() tea.Msg { return PatchMsg{Patch: p} }
}

type focusArea int

const (
	focusHighlight focusArea = iota
	focusJournal
	focusControls
)

type KeyMap struct {
	NextField key.Binding
	Mood      key.Binding
	ClearMood key.Binding
	Habit     key.Binding
	SleepUp   key.Binding
	SleepDown key.Binding
	ScreenUp  key.Binding
	ScreenDn  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("enter", "down"),
			key.WithHelp("enter", "next field"),
		),
		Mood: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "rate mood"),
		),
		ClearMood: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "clear mood"),
		),
		Habit: key.NewBinding(
			key.WithKeys("w", "d", "s", "r", "l"),
			key.WithHelp("w/d/s/r/l", "toggle habit"),
		),
		SleepUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more sleep"),
		),
		SleepDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "less sleep"),
		),
		ScreenUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "+15m screen"),
		),
		ScreenDn: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "-15m screen"),
		),
	}
}

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	notDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	keys      KeyMap
	entry     models.DayEntry
	highlight textinput.Model
	journal   textarea.Model
	focus     focusArea
	width     int
	height    int
}

func New(entry models.DayEntry, width, height int) Model {
	hi := textinput.New()
	hi.Placeholder = "One good thing about today"
	hi.CharLimit = constants.HighlightMaxLen
	hi.SetValue(entry.Highlight)
	hi.Focus()

	ta := textarea.New()
	ta.Placeholder = "Write about your day..."
	ta.CharLimit = constants.JournalMaxLen
	ta.SetValue(entry.JournalText)

	m := Model{
		keys:      DefaultKeyMap(),
		entry:     entry,
		highlight: hi,
		journal:   ta,
		focus:     focusHighlight,
	}
	m.SetSize(width, height)
	return m
}

// SetEntry replaces the working copy, keeping cursor positions where the
// text has not changed. Called when the coordinator adopts a saved row or
// the selected day changes.
func (m *Model) SetEntry(entry models.DayEntry) {
	m.entry = entry
	if m.highlight.Value() != entry.Highlight {
		m.highlight.SetValue(entry.Highlight)
	}
	if m.journal.Value() != entry.JournalText {
		m.journal.SetValue(entry.JournalText)
	}
}

// AdoptIdentity copies store-assigned fields from a saved row without
// touching the editable fields. Tick-driven refreshes use this: a full
// SetEntry could land between a keystroke and its patch reaching the
// coordinator and revert the input mid-word.
func (m *Model) AdoptIdentity(entry models.DayEntry) {
	m.entry.ID = entry.ID
	m.entry.CreatedAt = entry.CreatedAt
	m.entry.UpdatedAt = entry.UpdatedAt
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 4 {
		m.highlight.Width = width - 4
		m.journal.SetWidth(width - 4)
	}
	if height > 14 {
		m.journal.SetHeight(height - 14)
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.focus {
		case focusHighlight:
			if msg.Type == tea.KeyEnter || msg.Type == tea.KeyTab {
				m.focus = focusJournal
				m.highlight.Blur()
				cmds = append(cmds, m.journal.Focus())
				return m, tea.Batch(cmds...)
			}
			var cmd tea.Cmd
			m.highlight, cmd = m.highlight.Update(msg)
			cmds = append(cmds, cmd)
			if v := m.highlight.Value(); v != m.entry.Highlight {
				m.entry.Highlight = v
				cmds = append(cmds, patchCmd(models.EntryPatch{Highlight: &v}))
			}
			return m, tea.Batch(cmds...)

		case focusJournal:
			if msg.Type == tea.KeyTab {
				m.focus = focusControls
				m.journal.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.journal, cmd = m.journal.Update(msg)
			cmds = append(cmds, cmd)
			if v := m.journal.Value(); v != m.entry.JournalText {
				m.entry.JournalText = v
				cmds = append(cmds, patchCmd(models.EntryPatch{JournalText: &v}))
			}
			return m, tea.Batch(cmds...)

		case focusControls:
			if msg.Type == tea.KeyTab {
				m.focus = focusHighlight
				cmds = append(cmds, m.highlight.Focus())
				return m, tea.Batch(cmds...)
			}
			return m.updateControls(msg)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusHighlight:
		m.highlight, cmd = m.highlight.Update(msg)
	case focusJournal:
		m.journal, cmd = m.journal.Update(msg)
	}
	return m, cmd
}

func (m Model) updateControls(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Mood):
		mood := int(msg.String()[0] - '0')
		m.entry.Mood = &mood
		return m, patchCmd(models.EntryPatch{Mood: &mood})

	case key.Matches(msg, m.keys.ClearMood):
		m.entry.Mood = nil
		return m, patchCmd(models.EntryPatch{ClearMood: true})

	case key.Matches(msg, m.keys.Habit):
		var habit models.HabitKey
		switch msg.String() {
		case "w":
			habit = models.HabitWorkout
		case "d":
			habit = models.HabitDrink
		case "s":
			habit = models.HabitSmoke
		case "r":
			habit = models.HabitRead
		case "l":
			habit = models.HabitLSAT
		}
		done := !m.entry.HabitDone(habit)
		m.entry.SetHabit(habit, done)
		return m, patchCmd(models.HabitPatch(habit, done))

	case key.Matches(msg, m.keys.SleepUp):
		hours := m.entry.Sleep.Hours + 0.5
		if hours > constants.SleepHoursMax {
			hours = constants.SleepHoursMax
		}
		m.entry.Sleep.Hours = hours
		return m, patchCmd(models.EntryPatch{SleepHours: &hours})

	case key.Matches(msg, m.keys.SleepDown):
		hours := m.entry.Sleep.Hours - 0.5
		if hours < 0 {
			hours = 0
		}
		m.entry.Sleep.Hours = hours
		return m, patchCmd(models.EntryPatch{SleepHours: &hours})

	case key.Matches(msg, m.keys.ScreenUp):
		mins := m.entry.Habits.ScreenTime + 15
		if mins > constants.ScreenTimeMax {
			mins = constants.ScreenTimeMax
		}
		m.entry.Habits.ScreenTime = mins
		return m, patchCmd(models.EntryPatch{ScreenTime: &mins})

	case key.Matches(msg, m.keys.ScreenDn):
		mins := m.entry.Habits.ScreenTime - 15
		if mins < 0 {
			mins = 0
		}
		m.entry.Habits.ScreenTime = mins
		return m, patchCmd(models.EntryPatch{ScreenTime: &mins})
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.sectionLabel("Highlight", focusHighlight))
	b.WriteString("\n")
	b.WriteString(m.highlight.View())
	b.WriteString("\n\n")

	b.WriteString(m.sectionLabel("Journal", focusJournal))
	b.WriteString("\n")
	b.WriteString(m.journal.View())
	b.WriteString("\n\n")

	b.WriteString(m.sectionLabel("Day", focusControls))
	b.WriteString("\n")
	b.WriteString(m.viewMood())
	b.WriteString("\n")
	b.WriteString(m.viewHabits())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Sleep %.1fh (quality %d)   Screen %dm",
		m.entry.Sleep.Hours, m.entry.Sleep.Quality, m.entry.Habits.ScreenTime))
	b.WriteString("\n")

	return b.String()
}

func (m Model) sectionLabel(title string, area focusArea) string {
	if m.focus == area {
		return focusedStyle.Render("• " + title)
	}
	return labelStyle.Render("  " + title)
}

func (m Model) viewMood() string {
	if m.entry.Mood == nil {
		return "Mood: not rated (press 1-5)"
	}
	filled := strings.Repeat("●", *m.entry.Mood)
	empty := strings.Repeat("○", constants.MoodMax-*m.entry.Mood)
	return fmt.Sprintf("Mood: %s%s (%d/5)", filled, empty, *m.entry.Mood)
}

func (m Model) viewHabits() string {
	parts := make([]string, 0, len(models.HabitKeys))
	for _, k := range models.HabitKeys {
		info := models.HabitConfig[k]
		if m.entry.HabitDone(k) {
			parts = append(parts, doneStyle.Render("✓ "+info.Label))
		} else {
			parts = append(parts, notDoneStyle.Render("○ "+info.Label))
		}
	}
	return strings.Join(parts, "  ")
}
