package stats

import (
	"errors"
	"math"
	"sort"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/utils"
)

// ErrNoData signals that a range holds no persisted entries. It is not a
// failure: callers render an empty state instead of misleading zeros.
var ErrNoData = errors.New("no entries in range")

// TrendPoint is one (date, value) sample of a date-ascending series.
type TrendPoint struct {
	Date  string
	Value float64
}

// HabitStat summarizes one habit over a range.
type HabitStat struct {
	CompletedDays int
	Percentage    int
	Streak        Streak
}

// StatsResult aggregates all statistics over a closed date interval.
type StatsResult struct {
	PeriodStart  string
	PeriodEnd    string
	TotalDays    int
	EntriesCount int

	AverageMood      float64
	MoodRatedCount   int
	MoodDistribution map[int]int
	MoodTrend        []TrendPoint

	HabitStats map[models.HabitKey]HabitStat

	AverageSleep float64
	SleepTrend   []TrendPoint

	AverageScreenTime float64
	TotalScreenTime   int

	JournalStreak Streak
}

// ComputeRange computes statistics over the given entries, which must
// all fall within [start, end]. It is a pure function over the snapshot:
// the Aggregator fetches and delegates here, and tests exercise it
// directly. Returns ErrNoData when the snapshot is empty.
func ComputeRange(entries []models.DayEntry, start, end, today string) (*StatsResult, error) {
	totalDays, err := utils.IntervalDays(start, end)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, ErrNoData
	}

	sorted := make([]models.DayEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	res := &StatsResult{
		PeriodStart:      start,
		PeriodEnd:        end,
		TotalDays:        totalDays,
		EntriesCount:     len(sorted),
		MoodDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		HabitStats:       make(map[models.HabitKey]HabitStat, len(models.HabitKeys)),
	}

	// Unset moods are excluded from both the numerator and the
	// denominator; "not yet rated" is not a zero.
	moodSum := 0
	for _, e := range sorted {
		if e.Mood != nil {
			moodSum += *e.Mood
			res.MoodRatedCount++
			res.MoodDistribution[*e.Mood]++
			res.MoodTrend = append(res.MoodTrend, TrendPoint{Date: e.Date, Value: float64(*e.Mood)})
		}
	}
	if res.MoodRatedCount > 0 {
		res.AverageMood = float64(moodSum) / float64(res.MoodRatedCount)
	}

	sleepSum := 0.0
	for _, e := range sorted {
		sleepSum += e.Sleep.Hours
		res.SleepTrend = append(res.SleepTrend, TrendPoint{Date: e.Date, Value: e.Sleep.Hours})
	}
	res.AverageSleep = sleepSum / float64(len(sorted))

	for _, e := range sorted {
		res.TotalScreenTime += e.Habits.ScreenTime
	}
	res.AverageScreenTime = float64(res.TotalScreenTime) / float64(len(sorted))

	for _, key := range models.HabitKeys {
		completed := 0
		for _, e := range sorted {
			if e.HabitDone(key) {
				completed++
			}
		}

		streak, err := ComputeStreak(sorted, HabitPredicate(key), today)
		if err != nil {
			return nil, err
		}

		res.HabitStats[key] = HabitStat{
			CompletedDays: completed,
			Percentage:    percentage(completed, len(sorted)),
			Streak:        streak,
		}
	}

	res.JournalStreak, err = ComputeStreak(sorted, JournalPredicate(), today)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func percentage(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// Aggregator computes statistics over snapshots read from the store.
type Aggregator struct {
	store storage.Provider
}

// NewAggregator creates an aggregator backed by the given store.
func NewAggregator(store storage.Provider) *Aggregator {
	return &Aggregator{store: store}
}

// Compute fetches all entries in [start, end] and aggregates them.
// Returns ErrNoData when the interval holds no persisted entries.
func (a *Aggregator) Compute(start, end string) (*StatsResult, error) {
	entries, err := a.store.GetEntriesInRange(start, end)
	if err != nil {
		return nil, err
	}
	return ComputeRange(entries, start, end, utils.Today())
}
