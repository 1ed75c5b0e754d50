package sqlite

import (
	"errors"
	"testing"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
)

func TestWeeklyReflectionRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	r := models.WeeklyReflection{
		WeekStart:  "2026-03-09",
		WeekEnd:    "2026-03-15",
		Summary:    "productive week",
		Highlights: []string{"finished the report", "long run on Saturday"},
		Habits: models.HabitSummary{
			Workout:       3,
			Read:          5,
			AvgScreenTime: 84.5,
		},
	}

	saved, err := store.SaveWeeklyReflection(r)
	if err != nil {
		t.Fatalf("SaveWeeklyReflection() returned unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Error("saved reflection has no ID")
	}

	got, err := store.GetWeeklyReflection("2026-03-09")
	if err != nil {
		t.Fatalf("GetWeeklyReflection() returned unexpected error: %v", err)
	}
	if got.Summary != r.Summary || got.WeekEnd != r.WeekEnd {
		t.Errorf("reflection = %+v, want round-tripped values", got)
	}
	if len(got.Highlights) != 2 {
		t.Errorf("len(Highlights) = %d, want 2", len(got.Highlights))
	}
	if got.Habits != r.Habits {
		t.Errorf("Habits = %+v, want %+v", got.Habits, r.Habits)
	}
}

func TestWeeklyReflectionNilHighlights(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.SaveWeeklyReflection(models.WeeklyReflection{
		WeekStart: "2026-03-09",
		WeekEnd:   "2026-03-15",
	}); err != nil {
		t.Fatalf("SaveWeeklyReflection() returned unexpected error: %v", err)
	}

	got, err := store.GetWeeklyReflection("2026-03-09")
	if err != nil {
		t.Fatalf("GetWeeklyReflection() returned unexpected error: %v", err)
	}
	if got.Highlights == nil {
		t.Error("Highlights = nil, want an empty slice")
	}
	if len(got.Highlights) != 0 {
		t.Errorf("len(Highlights) = %d, want 0", len(got.Highlights))
	}
}

func TestWeeklyReflectionUpsertOnWeekStart(t *testing.T) {
	store := setupTestStore(t)

	first, err := store.SaveWeeklyReflection(models.WeeklyReflection{
		WeekStart: "2026-03-09",
		WeekEnd:   "2026-03-15",
		Summary:   "draft",
	})
	if err != nil {
		t.Fatalf("SaveWeeklyReflection() returned unexpected error: %v", err)
	}

	second, err := store.SaveWeeklyReflection(models.WeeklyReflection{
		WeekStart: "2026-03-09",
		WeekEnd:   "2026-03-15",
		Summary:   "final",
	})
	if err != nil {
		t.Fatalf("SaveWeeklyReflection() returned unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("ID = %q, want original %q to survive the re-save", second.ID, first.ID)
	}

	all, err := store.GetAllWeeklyReflections()
	if err != nil {
		t.Fatalf("GetAllWeeklyReflections() returned unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len(all) = %d, want 1", len(all))
	}
	if all[0].Summary != "final" {
		t.Errorf("Summary = %q, want the latest write", all[0].Summary)
	}
}

func TestGetWeeklyReflectionNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetWeeklyReflection("2026-03-09")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetWeeklyReflection() error = %v, want ErrNotFound", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	// Init seeds defaults.
	s, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() returned unexpected error: %v", err)
	}
	if s != models.DefaultSettings() {
		t.Errorf("initial settings = %+v, want defaults", s)
	}

	s.Theme = models.ThemeDark
	s.NotificationsEnabled = false
	if err := store.SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings() returned unexpected error: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() returned unexpected error: %v", err)
	}
	if got != s {
		t.Errorf("settings = %+v, want %+v", got, s)
	}
}
