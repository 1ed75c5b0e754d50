package stats

import (
	"strconv"
	"strings"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/utils"
)

// MonthStats is one month's slice of a year-in-review breakdown.
type MonthStats struct {
	Month        int // 1-12
	EntriesCount int
	AverageMood  float64
	AverageSleep float64
}

// YearStats is the year-in-review summary.
type YearStats struct {
	Year         int
	TotalEntries int
	// Monthly has one element per calendar month; nil for months with
	// no entries.
	Monthly             [12]*MonthStats
	BestDay             *models.DayEntry
	MostProductiveMonth int // 1-12, or 0 when no month has a rated mood
	AverageMood         float64
	TotalJournalWords   int
}

// ComputeYear aggregates a full calendar year: monthly breakdown, best
// day by mood, most productive month by average mood, and total journal
// word count. Mood averages exclude unrated entries throughout.
func (a *Aggregator) ComputeYear(year int) (*YearStats, error) {
	start, end := utils.YearBounds(year)

	entries, err := a.store.GetEntriesInRange(start, end)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoData
	}

	ys := &YearStats{Year: year, TotalEntries: len(entries)}

	type acc struct {
		count     int
		moodSum   int
		moodCount int
		sleepSum  float64
	}
	var months [12]acc

	moodSum, moodCount := 0, 0
	for i := range entries {
		e := &entries[i]

		m, err := strconv.Atoi(e.Date[5:7])
		if err != nil || m < 1 || m > 12 {
			continue
		}
		months[m-1].count++
		months[m-1].sleepSum += e.Sleep.Hours

		if e.Mood != nil {
			months[m-1].moodSum += *e.Mood
			months[m-1].moodCount++
			moodSum += *e.Mood
			moodCount++

			if ys.BestDay == nil || *e.Mood > *ys.BestDay.Mood {
				ys.BestDay = e
			}
		}

		ys.TotalJournalWords += len(strings.Fields(e.JournalText))
	}

	if moodCount > 0 {
		ys.AverageMood = float64(moodSum) / float64(moodCount)
	}

	bestAvg := 0.0
	for i, m := range months {
		if m.count == 0 {
			continue
		}
		ms := &MonthStats{
			Month:        i + 1,
			EntriesCount: m.count,
			AverageSleep: m.sleepSum / float64(m.count),
		}
		if m.moodCount > 0 {
			ms.AverageMood = float64(m.moodSum) / float64(m.moodCount)
			if ms.AverageMood > bestAvg {
				bestAvg = ms.AverageMood
				ys.MostProductiveMonth = ms.Month
			}
		}
		ys.Monthly[i] = ms
	}

	return ys, nil
}
