package stats

import (
	"sort"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/utils"
)

// Predicate decides whether an entry counts toward a streak.
type Predicate func(models.DayEntry) bool

// HabitPredicate counts days on which the given habit flag is set.
func HabitPredicate(key models.HabitKey) Predicate {
	return func(e models.DayEntry) bool {
		return e.HabitDone(key)
	}
}

// JournalPredicate counts days with non-empty (trimmed) journal text.
func JournalPredicate() Predicate {
	return func(e models.DayEntry) bool {
		return e.HasJournal()
	}
}

// Streak is a pair of consecutive-day run lengths over a predicate.
type Streak struct {
	Current int
	Longest int
}

// ComputeStreak calculates the current and longest consecutive-day runs
// satisfying the predicate over a possibly gappy set of entries. A
// missing calendar date (no entry) always breaks a run; an entry on
// which the predicate fails resets it. The two numbers are computed in
// two independent passes: an ascending scan for the longest run, and a
// backward walk from today for the current one.
//
// The current streak starts at today's entry, or at yesterday's when no
// entry exists for today yet. An entry for today on which the predicate
// fails means the current streak is 0.
func ComputeStreak(entries []models.DayEntry, pred Predicate, today string) (Streak, error) {
	if len(entries) == 0 {
		return Streak{}, nil
	}

	sorted := make([]models.DayEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	longest, err := longestRun(sorted, pred)
	if err != nil {
		return Streak{}, err
	}

	current, err := currentRun(sorted, pred, today)
	if err != nil {
		return Streak{}, err
	}

	return Streak{Current: current, Longest: longest}, nil
}

func longestRun(sorted []models.DayEntry, pred Predicate) (int, error) {
	run, longest := 0, 0
	prevDate := ""

	for _, e := range sorted {
		if !pred(e) {
			run = 0
			prevDate = e.Date
			continue
		}

		if prevDate != "" && run > 0 {
			gap, err := utils.DaysBetween(prevDate, e.Date)
			if err != nil {
				return 0, err
			}
			if gap == 1 {
				run++
			} else {
				run = 1
			}
		} else {
			run = 1
		}

		if run > longest {
			longest = run
		}
		prevDate = e.Date
	}

	return longest, nil
}

func currentRun(sorted []models.DayEntry, pred Predicate, today string) (int, error) {
	if err := utils.ValidateDate(today); err != nil {
		return 0, err
	}

	byDate := make(map[string]models.DayEntry, len(sorted))
	for _, e := range sorted {
		byDate[e.Date] = e
	}

	start := today
	if _, ok := byDate[start]; !ok {
		// No entry for today yet: the streak is still alive if it ran
		// through yesterday.
		yesterday, err := utils.AddDays(today, -1)
		if err != nil {
			return 0, err
		}
		start = yesterday
	}

	current := 0
	for d := start; ; {
		e, ok := byDate[d]
		if !ok || !pred(e) {
			break
		}
		current++

		prev, err := utils.AddDays(d, -1)
		if err != nil {
			return 0, err
		}
		d = prev
	}

	return current, nil
}
