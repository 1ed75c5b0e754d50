package validation

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/utils"
)

// IssueType classifies a validation failure on an entry field.
type IssueType string

const (
	IssueInvalidDate       IssueType = "invalid_date"
	IssueMoodOutOfRange    IssueType = "mood_out_of_range"
	IssueSleepOutOfRange   IssueType = "sleep_out_of_range"
	IssueQualityOutOfRange IssueType = "quality_out_of_range"
	IssueTextTooLong       IssueType = "text_too_long"
	IssueScreenTimeRange   IssueType = "screen_time_out_of_range"
)

// Issue describes a single rejected field.
type Issue struct {
	Type        IssueType
	Description string
}

// Result collects all issues found on one entry.
type Result struct {
	Issues []Issue
}

// OK returns true if no issues were found.
func (r Result) OK() bool {
	return len(r.Issues) == 0
}

// Err returns the result as a single error, or nil when valid.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("invalid entry: %s", r.Issues[0].Description)
}

func (r *Result) add(t IssueType, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{Type: t, Description: fmt.Sprintf(format, args...)})
}

// ValidateEntry checks a DayEntry's fields against the documented bounds.
// Aggregation never sees malformed input: everything is rejected here,
// eagerly, before a write or a query.
func ValidateEntry(e models.DayEntry) Result {
	var res Result

	if err := utils.ValidateDate(e.Date); err != nil {
		res.add(IssueInvalidDate, "date %q is not a valid YYYY-MM-DD key", e.Date)
	}
	if e.Mood != nil && (*e.Mood < constants.MoodMin || *e.Mood > constants.MoodMax) {
		res.add(IssueMoodOutOfRange, "mood %d outside [%d,%d]", *e.Mood, constants.MoodMin, constants.MoodMax)
	}
	if e.Sleep.Hours < 0 || e.Sleep.Hours > constants.SleepHoursMax {
		res.add(IssueSleepOutOfRange, "sleep hours %.1f outside [0,%d]", e.Sleep.Hours, constants.SleepHoursMax)
	}
	if e.Sleep.Quality < constants.QualityMin || e.Sleep.Quality > constants.QualityMax {
		res.add(IssueQualityOutOfRange, "sleep quality %d outside [%d,%d]", e.Sleep.Quality, constants.QualityMin, constants.QualityMax)
	}
	if len(e.Highlight) > constants.HighlightMaxLen {
		res.add(IssueTextTooLong, "highlight exceeds %d characters", constants.HighlightMaxLen)
	}
	if len(e.JournalText) > constants.JournalMaxLen {
		res.add(IssueTextTooLong, "journal text exceeds %d characters", constants.JournalMaxLen)
	}
	if e.Habits.ScreenTime < 0 || e.Habits.ScreenTime > constants.ScreenTimeMax {
		res.add(IssueScreenTimeRange, "screen time %d outside [0,%d]", e.Habits.ScreenTime, constants.ScreenTimeMax)
	}

	return res
}
