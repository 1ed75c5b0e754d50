package constants

// SessionState represents the current view of the TUI application
type SessionState int

const (
	StateJournal SessionState = iota
	StateStats
	StateHeatmap
	StateSettingsForm
	StateConfirmQuit
)

const (
	AppName           = "daybook"
	DefaultConfigPath = "~/.config/daybook/daybook.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the month key format used by monthly goals (YYYY-MM)
	MonthFormat = "2006-01"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daybook-"
	BackupFileSuffix = ".db"
)

// Field bounds enforced by validation before anything reaches the store.
const (
	HighlightMaxLen = 200
	JournalMaxLen   = 10000
	ScreenTimeMax   = 1440
	SleepHoursMax   = 24
	MoodMin         = 1
	MoodMax         = 5
	QualityMin      = 1
	QualityMax      = 5
)
