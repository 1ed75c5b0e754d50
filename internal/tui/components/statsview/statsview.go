package statsview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
)

type Model struct {
	result  *stats.StatsResult
	err     error
	loading bool
	width   int
	height  int
}

func New(width, height int) Model {
	return Model{loading: true, width: width, height: height}
}

// SetResult installs the latest aggregation. A nil result with a nil
// error means the range is still being computed.
func (m *Model) SetResult(result *stats.StatsResult, err error) {
	m.result = result
	m.err = err
	m.loading = false
}

func (m *Model) SetLoading() {
	m.loading = true
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return dimStyle.Render("Crunching numbers...")
	}
	if m.err != nil {
		if m.err == stats.ErrNoData {
			return dimStyle.Render("No entries in this period yet.")
		}
		return fmt.Sprintf("Failed to compute statistics: %v", m.err)
	}
	if m.result == nil {
		return ""
	}

	r := m.result
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s — %s", r.PeriodStart, r.PeriodEnd)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Entries: %d of %d days\n", r.EntriesCount, r.TotalDays))
	if r.MoodRatedCount > 0 {
		b.WriteString(fmt.Sprintf("Average mood: %.1f (%d rated)\n", r.AverageMood, r.MoodRatedCount))
	} else {
		b.WriteString("Average mood: no ratings\n")
	}
	if r.AverageSleep > 0 {
		b.WriteString(fmt.Sprintf("Average sleep: %.1fh\n", r.AverageSleep))
	}
	if r.TotalScreenTime > 0 {
		b.WriteString(fmt.Sprintf("Screen time: %dm total, %.0fm/day\n", r.TotalScreenTime, r.AverageScreenTime))
	}

	b.WriteString("\n")
	b.WriteString(m.viewMoodDistribution())
	b.WriteString("\n")
	b.WriteString(m.viewHabits())

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Journal streak: %d current / %d longest\n",
		r.JournalStreak.Current, r.JournalStreak.Longest))

	return b.String()
}

func (m Model) viewMoodDistribution() string {
	r := m.result
	if r.MoodRatedCount == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Mood distribution\n")
	for mood := constants.MoodMax; mood >= constants.MoodMin; mood-- {
		count := r.MoodDistribution[mood]
		bar := barStyle.Render(strings.Repeat("█", count))
		b.WriteString(fmt.Sprintf("  %d %s %d\n", mood, bar, count))
	}
	return b.String()
}

func (m Model) viewHabits() string {
	r := m.result
	var b strings.Builder
	b.WriteString("Habits\n")
	for _, k := range models.HabitKeys {
		hs, ok := r.HabitStats[k]
		if !ok {
			continue
		}
		info := models.HabitConfig[k]
		line := fmt.Sprintf("  %-10s %3d%%  %d/%d days  streak %d (best %d)",
			info.Label, hs.Percentage, hs.CompletedDays, r.TotalDays,
			hs.Streak.Current, hs.Streak.Longest)
		if info.GoalType == models.GoalMinimize {
			line += dimStyle.Render("  (tracking to reduce)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
