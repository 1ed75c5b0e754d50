package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2026-03-10", false},
		{"leap day", "2024-02-29", false},
		{"invalid leap day", "2026-02-29", true},
		{"wrong separator", "2026/03/10", true},
		{"missing zero padding", "2026-3-1", true},
		{"empty", "", true},
		{"garbage", "not a date", true},
		{"time suffix", "2026-03-10T12:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", tt.input, err)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2026-03-10", 1, "2026-03-11"},
		{"2026-03-10", -1, "2026-03-09"},
		{"2026-03-01", -1, "2026-02-28"},
		{"2026-12-31", 1, "2027-01-01"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2026-03-10", 0, "2026-03-10"},
	}

	for _, tt := range tests {
		got, err := AddDays(tt.date, tt.n)
		if err != nil {
			t.Errorf("AddDays(%q, %d) returned unexpected error: %v", tt.date, tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AddDays(%q, %d) = %q, want %q", tt.date, tt.n, got, tt.want)
		}
	}

	if _, err := AddDays("bogus", 1); err == nil {
		t.Error("AddDays() with malformed date should fail")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2026-03-10", "2026-03-10", 0},
		{"2026-03-10", "2026-03-11", 1},
		{"2026-03-11", "2026-03-10", -1},
		{"2026-02-28", "2026-03-01", 1},
		{"2026-01-01", "2026-12-31", 364},
	}

	for _, tt := range tests {
		got, err := DaysBetween(tt.a, tt.b)
		if err != nil {
			t.Errorf("DaysBetween(%q, %q) returned unexpected error: %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIntervalDays(t *testing.T) {
	got, err := IntervalDays("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("IntervalDays() returned unexpected error: %v", err)
	}
	if got != 31 {
		t.Errorf("IntervalDays() = %d, want 31 (closed interval)", got)
	}

	got, err = IntervalDays("2026-03-10", "2026-03-10")
	if err != nil {
		t.Fatalf("IntervalDays() returned unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("IntervalDays() = %d, want 1 for a single day", got)
	}

	if _, err := IntervalDays("2026-03-31", "2026-03-01"); err == nil {
		t.Error("IntervalDays() with end before start should fail")
	}
}

func TestYearBounds(t *testing.T) {
	start, end := YearBounds(2026)
	if start != "2026-01-01" || end != "2026-12-31" {
		t.Errorf("YearBounds(2026) = %s, %s", start, end)
	}
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		wantMonday string
		wantSunday string
	}{
		{
			name:       "wednesday",
			date:       time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			wantMonday: "2026-03-09",
			wantSunday: "2026-03-15",
		},
		{
			name:       "monday maps to itself",
			date:       time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			wantMonday: "2026-03-09",
			wantSunday: "2026-03-15",
		},
		{
			name:       "sunday belongs to the preceding monday",
			date:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			wantMonday: "2026-03-09",
			wantSunday: "2026-03-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekBounds(tt.date)
			if monday != tt.wantMonday || sunday != tt.wantSunday {
				t.Errorf("WeekBounds() = %s, %s; want %s, %s", monday, sunday, tt.wantMonday, tt.wantSunday)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	got := MonthKey(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	if got != "2026-03" {
		t.Errorf("MonthKey() = %q, want 2026-03", got)
	}
}
