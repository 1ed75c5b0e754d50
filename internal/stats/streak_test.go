package stats

import (
	"testing"

	"github.com/julianstephens/daybook/internal/models"
)

func entryOn(date string, workout bool) models.DayEntry {
	e := models.NewDayEntry(date)
	e.Habits.Workout = workout
	return e
}

func journalOn(date, text string) models.DayEntry {
	e := models.NewDayEntry(date)
	e.JournalText = text
	return e
}

func TestComputeStreak(t *testing.T) {
	pred := HabitPredicate(models.HabitWorkout)

	tests := []struct {
		name        string
		entries     []models.DayEntry
		today       string
		wantCurrent int
		wantLongest int
	}{
		{
			name:    "empty entries",
			entries: nil,
			today:   "2026-03-10",
		},
		{
			name: "single day today",
			entries: []models.DayEntry{
				entryOn("2026-03-10", true),
			},
			today:       "2026-03-10",
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name: "run then gap then single day",
			entries: []models.DayEntry{
				entryOn("2026-03-01", true),
				entryOn("2026-03-02", true),
				entryOn("2026-03-03", true),
				entryOn("2026-03-05", true),
			},
			today:       "2026-03-05",
			wantCurrent: 1,
			wantLongest: 3,
		},
		{
			name: "missing day breaks run even when predicate holds around it",
			entries: []models.DayEntry{
				entryOn("2026-03-01", true),
				entryOn("2026-03-03", true),
				entryOn("2026-03-04", true),
			},
			today:       "2026-03-04",
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name: "predicate false resets the run without a calendar gap",
			entries: []models.DayEntry{
				entryOn("2026-03-01", true),
				entryOn("2026-03-02", true),
				entryOn("2026-03-03", false),
				entryOn("2026-03-04", true),
			},
			today:       "2026-03-04",
			wantCurrent: 1,
			wantLongest: 2,
		},
		{
			name: "today entry with predicate false means no current streak",
			entries: []models.DayEntry{
				entryOn("2026-03-08", true),
				entryOn("2026-03-09", true),
				entryOn("2026-03-10", false),
			},
			today:       "2026-03-10",
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name: "no entry for today falls back to yesterday",
			entries: []models.DayEntry{
				entryOn("2026-03-08", true),
				entryOn("2026-03-09", true),
			},
			today:       "2026-03-10",
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name: "streak broken two days ago",
			entries: []models.DayEntry{
				entryOn("2026-03-07", true),
				entryOn("2026-03-08", true),
			},
			today:       "2026-03-10",
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name: "entries arrive unsorted",
			entries: []models.DayEntry{
				entryOn("2026-03-10", true),
				entryOn("2026-03-08", true),
				entryOn("2026-03-09", true),
			},
			today:       "2026-03-10",
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name: "run crosses a month boundary",
			entries: []models.DayEntry{
				entryOn("2026-02-27", true),
				entryOn("2026-02-28", true),
				entryOn("2026-03-01", true),
			},
			today:       "2026-03-01",
			wantCurrent: 3,
			wantLongest: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeStreak(tt.entries, pred, tt.today)
			if err != nil {
				t.Fatalf("ComputeStreak() returned unexpected error: %v", err)
			}
			if got.Current != tt.wantCurrent {
				t.Errorf("Current = %d, want %d", got.Current, tt.wantCurrent)
			}
			if got.Longest != tt.wantLongest {
				t.Errorf("Longest = %d, want %d", got.Longest, tt.wantLongest)
			}
		})
	}
}

func TestComputeStreakInvalidToday(t *testing.T) {
	entries := []models.DayEntry{entryOn("2026-03-01", true)}
	if _, err := ComputeStreak(entries, HabitPredicate(models.HabitWorkout), "not-a-date"); err == nil {
		t.Error("ComputeStreak() with malformed today should fail")
	}
}

func TestJournalPredicate(t *testing.T) {
	pred := JournalPredicate()

	if pred(journalOn("2026-03-01", "   \n\t")) {
		t.Error("whitespace-only journal text should not count")
	}
	if !pred(journalOn("2026-03-01", "wrote something")) {
		t.Error("non-empty journal text should count")
	}

	entries := []models.DayEntry{
		journalOn("2026-03-08", "day one"),
		journalOn("2026-03-09", "day two"),
		journalOn("2026-03-10", ""),
	}
	got, err := ComputeStreak(entries, pred, "2026-03-10")
	if err != nil {
		t.Fatalf("ComputeStreak() returned unexpected error: %v", err)
	}
	// Today's entry exists but has no journal text, so the streak is over.
	if got.Current != 0 {
		t.Errorf("Current = %d, want 0", got.Current)
	}
	if got.Longest != 2 {
		t.Errorf("Longest = %d, want 2", got.Longest)
	}
}
