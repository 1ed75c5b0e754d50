package stats

import (
	"errors"
	"testing"

	"github.com/julianstephens/daybook/internal/models"
)

func ratedEntry(date string, mood int) models.DayEntry {
	e := models.NewDayEntry(date)
	e.Mood = &mood
	return e
}

func TestComputeRangeNoData(t *testing.T) {
	_, err := ComputeRange(nil, "2026-03-01", "2026-03-31", "2026-03-31")
	if !errors.Is(err, ErrNoData) {
		t.Errorf("ComputeRange() error = %v, want ErrNoData", err)
	}
}

func TestComputeRangeInvalidInterval(t *testing.T) {
	entries := []models.DayEntry{models.NewDayEntry("2026-03-01")}
	if _, err := ComputeRange(entries, "2026-03-31", "2026-03-01", "2026-03-31"); err == nil {
		t.Error("ComputeRange() with end before start should fail")
	}
	if _, err := ComputeRange(entries, "bogus", "2026-03-01", "2026-03-31"); err == nil {
		t.Error("ComputeRange() with malformed start should fail")
	}
}

func TestComputeRangeAverageMoodExcludesUnrated(t *testing.T) {
	entries := []models.DayEntry{
		ratedEntry("2026-03-01", 3),
		models.NewDayEntry("2026-03-02"), // unrated
		ratedEntry("2026-03-03", 5),
	}

	res, err := ComputeRange(entries, "2026-03-01", "2026-03-03", "2026-03-03")
	if err != nil {
		t.Fatalf("ComputeRange() returned unexpected error: %v", err)
	}

	// {3, unrated, 5} averages to 4.0, not 2.67: the unrated day is
	// excluded from both sides of the division.
	if res.AverageMood != 4.0 {
		t.Errorf("AverageMood = %v, want 4.0", res.AverageMood)
	}
	if res.MoodRatedCount != 2 {
		t.Errorf("MoodRatedCount = %d, want 2", res.MoodRatedCount)
	}
	if res.EntriesCount != 3 {
		t.Errorf("EntriesCount = %d, want 3", res.EntriesCount)
	}
	if len(res.MoodTrend) != 2 {
		t.Errorf("len(MoodTrend) = %d, want 2", len(res.MoodTrend))
	}
}

func TestComputeRangeAllUnrated(t *testing.T) {
	entries := []models.DayEntry{
		models.NewDayEntry("2026-03-01"),
		models.NewDayEntry("2026-03-02"),
	}

	res, err := ComputeRange(entries, "2026-03-01", "2026-03-02", "2026-03-02")
	if err != nil {
		t.Fatalf("ComputeRange() returned unexpected error: %v", err)
	}
	if res.AverageMood != 0 {
		t.Errorf("AverageMood = %v, want 0 when nothing is rated", res.AverageMood)
	}
	if res.MoodRatedCount != 0 {
		t.Errorf("MoodRatedCount = %d, want 0", res.MoodRatedCount)
	}
}

func TestComputeRangeMoodDistribution(t *testing.T) {
	entries := []models.DayEntry{
		ratedEntry("2026-03-01", 4),
		ratedEntry("2026-03-02", 4),
		ratedEntry("2026-03-03", 1),
	}

	res, err := ComputeRange(entries, "2026-03-01", "2026-03-03", "2026-03-03")
	if err != nil {
		t.Fatalf("ComputeRange() returned unexpected error: %v", err)
	}

	want := map[int]int{1: 1, 2: 0, 3: 0, 4: 2, 5: 0}
	for mood, count := range want {
		if res.MoodDistribution[mood] != count {
			t.Errorf("MoodDistribution[%d] = %d, want %d", mood, res.MoodDistribution[mood], count)
		}
	}
}

func TestComputeRangeHabitStats(t *testing.T) {
	e1 := models.NewDayEntry("2026-03-01")
	e1.Habits.Workout = true
	e2 := models.NewDayEntry("2026-03-02")
	e2.Habits.Workout = true
	e3 := models.NewDayEntry("2026-03-03")

	res, err := ComputeRange([]models.DayEntry{e1, e2, e3}, "2026-03-01", "2026-03-03", "2026-03-03")
	if err != nil {
		t.Fatalf("ComputeRange() returned unexpected error: %v", err)
	}

	workout := res.HabitStats[models.HabitWorkout]
	if workout.CompletedDays != 2 {
		t.Errorf("Workout CompletedDays = %d, want 2", workout.CompletedDays)
	}
	if workout.Percentage != 67 {
		t.Errorf("Workout Percentage = %d, want 67", workout.Percentage)
	}
	// Today's entry exists with workout unset, so the current run is 0.
	if workout.Streak.Current != 0 {
		t.Errorf("Workout Streak.Current = %d, want 0", workout.Streak.Current)
	}
	if workout.Streak.Longest != 2 {
		t.Errorf("Workout Streak.Longest = %d, want 2", workout.Streak.Longest)
	}

	read := res.HabitStats[models.HabitRead]
	if read.CompletedDays != 0 || read.Percentage != 0 {
		t.Errorf("Read = %+v, want zeroes", read)
	}
}

func TestComputeRangeSleepAndScreenTime(t *testing.T) {
	e1 := models.NewDayEntry("2026-03-01")
	e1.Sleep.Hours = 8
	e1.Habits.ScreenTime = 120
	e2 := models.NewDayEntry("2026-03-02")
	e2.Sleep.Hours = 6
	e2.Habits.ScreenTime = 60

	res, err := ComputeRange([]models.DayEntry{e1, e2}, "2026-03-01", "2026-03-07", "2026-03-07")
	if err != nil {
		t.Fatalf("ComputeRange() returned unexpected error: %v", err)
	}

	if res.TotalDays != 7 {
		t.Errorf("TotalDays = %d, want 7", res.TotalDays)
	}
	if res.AverageSleep != 7 {
		t.Errorf("AverageSleep = %v, want 7", res.AverageSleep)
	}
	if res.TotalScreenTime != 180 {
		t.Errorf("TotalScreenTime = %d, want 180", res.TotalScreenTime)
	}
	if res.AverageScreenTime != 90 {
		t.Errorf("AverageScreenTime = %v, want 90", res.AverageScreenTime)
	}
	if len(res.SleepTrend) != 2 {
		t.Errorf("len(SleepTrend) = %d, want 2", len(res.SleepTrend))
	}
}

func TestPercentageRounding(t *testing.T) {
	tests := []struct {
		part, whole, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{3, 3, 100},
	}
	for _, tt := range tests {
		if got := percentage(tt.part, tt.whole); got != tt.want {
			t.Errorf("percentage(%d, %d) = %d, want %d", tt.part, tt.whole, got, tt.want)
		}
	}
}
