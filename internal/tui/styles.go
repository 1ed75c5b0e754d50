package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	statusCleanStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	statusDirtyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	statusSavingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
