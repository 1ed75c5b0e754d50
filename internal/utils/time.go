package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/daybook/internal/constants"
)

// ErrInvalidDate is returned when a date key is not a valid YYYY-MM-DD string.
var ErrInvalidDate = errors.New("invalid date key")

// Today returns today's date string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD date key. Malformed keys are rejected
// here, before they reach the store.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}
	return t, nil
}

// ValidateDate reports whether the string is a well-formed date key.
func ValidateDate(dateStr string) error {
	_, err := ParseDate(dateStr)
	return err
}

// FormatDate formats a time as a YYYY-MM-DD date key.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// AddDays returns the date key n calendar days after the given one.
func AddDays(dateStr string, n int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// DaysBetween returns the number of calendar days from a to b (positive
// when b is later). Both arguments must be valid date keys.
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// IntervalDays returns the number of calendar days in the closed
// interval [start, end], including days with no entry.
func IntervalDays(start, end string) (int, error) {
	diff, err := DaysBetween(start, end)
	if err != nil {
		return 0, err
	}
	if diff < 0 {
		return 0, fmt.Errorf("interval end %q precedes start %q", end, start)
	}
	return diff + 1, nil
}

// MonthKey returns the YYYY-MM month key for a date.
func MonthKey(t time.Time) string {
	return t.Format(constants.MonthFormat)
}

// YearBounds returns the first and last date keys of a calendar year.
func YearBounds(year int) (string, string) {
	return fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year)
}

// WeekBounds returns the Monday and Sunday date keys of the week
// containing the given date.
func WeekBounds(t time.Time) (string, string) {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	monday := t.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return FormatDate(monday), FormatDate(sunday)
}
