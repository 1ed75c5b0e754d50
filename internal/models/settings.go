package models

// Settings is the single-row application configuration record.
type Settings struct {
	Theme                string `json:"theme"`
	DefaultView          string `json:"default_view"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	ViewJournal  = "journal"
	ViewCalendar = "calendar"
)

// DefaultSettings returns the settings written on first init.
func DefaultSettings() Settings {
	return Settings{
		Theme:       ThemeLight,
		DefaultView: ViewJournal,
	}
}
