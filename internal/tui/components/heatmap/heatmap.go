package heatmap

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	monthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	unratedSty = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// One style per mood value, cold to warm.
	moodStyles = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9800")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEB3B")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		5: lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
	}
)

type Model struct {
	year    int
	entries map[string]models.DayEntry
	err     error
}

func New(year int) Model {
	return Model{year: year}
}

func (m *Model) SetYear(year int, entries map[string]models.DayEntry, err error) {
	m.year = year
	m.entries = entries
	m.err = err
}

func (m Model) Year() int {
	return m.year
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders one row per month, one cell per day. A digit is the
// mood, "·" an unrated entry, space a missing day.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Mood heatmap %d", m.year)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("No data for %d yet.\n", m.year))
		return b.String()
	}

	for month := time.January; month <= time.December; month++ {
		b.WriteString(monthStyle.Render(fmt.Sprintf("%s ", month.String()[:3])))
		daysIn := time.Date(m.year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		for day := 1; day <= daysIn; day++ {
			date := time.Date(m.year, month, day, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)
			entry, ok := m.entries[date]
			switch {
			case !ok:
				b.WriteString(" ")
			case entry.Mood == nil:
				b.WriteString(unratedSty.Render("·"))
			default:
				b.WriteString(moodStyles[*entry.Mood].Render(fmt.Sprintf("%d", *entry.Mood)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(monthStyle.Render("1-5 mood · unrated  [ and ] change year"))
	b.WriteString("\n")
	return b.String()
}
