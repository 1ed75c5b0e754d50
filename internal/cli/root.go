package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/daybook/internal/backup"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveDate normalizes a --date flag value: empty means today,
// anything else must be a valid YYYY-MM-DD key.
func ResolveDate(date string) (string, error) {
	if date == "" {
		return utils.Today(), nil
	}
	if err := utils.ValidateDate(date); err != nil {
		return "", err
	}
	return date, nil
}

// ResolveMonth normalizes a --month flag value: empty means the current month.
func ResolveMonth(month string) (string, error) {
	if month == "" {
		return utils.MonthKey(time.Now()), nil
	}
	if _, err := time.Parse(constants.MonthFormat, month); err != nil {
		return "", fmt.Errorf("invalid month %q (expected YYYY-MM)", month)
	}
	return month, nil
}

// FormatMood renders a mood value for display.
func FormatMood(mood *int) string {
	if mood == nil {
		return "not rated"
	}
	labels := map[int]string{1: "Terrible", 2: "Bad", 3: "Okay", 4: "Good", 5: "Great"}
	return fmt.Sprintf("%d (%s)", *mood, labels[*mood])
}

// FormatHabits renders an entry's habit flags on one line.
func FormatHabits(e models.DayEntry) string {
	out := ""
	for _, key := range models.HabitKeys {
		mark := "○"
		if e.HabitDone(key) {
			mark = "✓"
		}
		if out != "" {
			out += "  "
		}
		out += fmt.Sprintf("%s %s", mark, models.HabitConfig[key].Label)
	}
	return out
}
