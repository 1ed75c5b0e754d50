package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/stats"
	"github.com/julianstephens/daybook/internal/utils"
)

type StatsCmd struct {
	Months int `help:"Number of months to cover, ending today." default:"1"`
}

// statsPeriod returns the closed interval covered by a stats request:
// from the first day of the month (months-1) back through today.
func statsPeriod(months int, now time.Time) (string, string) {
	end := now
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location()).AddDate(0, -(months - 1), 0)
	return utils.FormatDate(start), utils.FormatDate(end)
}

func (c *StatsCmd) Run(ctx *Context) error {
	if c.Months < 1 {
		return fmt.Errorf("months must be at least 1")
	}

	start, end := statsPeriod(c.Months, time.Now())
	agg := stats.NewAggregator(ctx.Store)

	res, err := agg.Compute(start, end)
	if err != nil {
		if errors.Is(err, stats.ErrNoData) {
			fmt.Printf("No entries between %s and %s yet.\n", start, end)
			return nil
		}
		return err
	}

	fmt.Printf("Stats for %s — %s\n\n", res.PeriodStart, res.PeriodEnd)
	fmt.Printf("Entries: %d of %d days\n", res.EntriesCount, res.TotalDays)
	if res.MoodRatedCount > 0 {
		fmt.Printf("Average mood: %.1f/5 (%d rated)\n", res.AverageMood, res.MoodRatedCount)
	} else {
		fmt.Println("Average mood: no ratings yet")
	}
	fmt.Printf("Average sleep: %.1fh\n", res.AverageSleep)
	fmt.Printf("Screen time: %.0fm/day average, %dm total\n", res.AverageScreenTime, res.TotalScreenTime)

	fmt.Println("\nMood distribution:")
	for mood := 1; mood <= 5; mood++ {
		count := res.MoodDistribution[mood]
		fmt.Printf("  %d: %s %d\n", mood, strings.Repeat("█", count), count)
	}

	fmt.Println("\nHabits:")
	for _, key := range models.HabitKeys {
		hs := res.HabitStats[key]
		fmt.Printf("  %-8s %3d%%  (%d days, streak %d, longest %d)\n",
			models.HabitConfig[key].Label, hs.Percentage, hs.CompletedDays,
			hs.Streak.Current, hs.Streak.Longest)
	}

	fmt.Printf("\nJournal streak: %d (longest %d)\n", res.JournalStreak.Current, res.JournalStreak.Longest)

	return nil
}

type StreaksCmd struct {
	Months int `help:"Number of months to cover, ending today." default:"12"`
}

func (c *StreaksCmd) Run(ctx *Context) error {
	if c.Months < 1 {
		return fmt.Errorf("months must be at least 1")
	}

	start, end := statsPeriod(c.Months, time.Now())
	res, err := stats.NewAggregator(ctx.Store).Compute(start, end)
	if err != nil {
		if errors.Is(err, stats.ErrNoData) {
			fmt.Println("No entries yet.")
			return nil
		}
		return err
	}

	for _, key := range models.HabitKeys {
		info := models.HabitConfig[key]
		hs := res.HabitStats[key]
		goal := ""
		if info.GoalType == models.GoalMinimize {
			goal = " (tracking to reduce)"
		}
		fmt.Printf("%-8s current %2d  longest %2d%s\n", info.Label, hs.Streak.Current, hs.Streak.Longest, goal)
	}
	fmt.Printf("%-8s current %2d  longest %2d\n", "Journal", res.JournalStreak.Current, res.JournalStreak.Longest)

	return nil
}

type HeatmapCmd struct {
	Year int `help:"Calendar year (default: current)." default:"0"`
}

func (c *HeatmapCmd) Run(ctx *Context) error {
	year := c.Year
	if year == 0 {
		year = time.Now().Year()
	}

	lookup, err := stats.NewAggregator(ctx.Store).YearLookup(year)
	if err != nil {
		if errors.Is(err, stats.ErrNoData) {
			fmt.Printf("No entries in %d yet.\n", year)
			return nil
		}
		return err
	}

	fmt.Printf("%d — %d entries\n\n", year, len(lookup))

	for month := 1; month <= 12; month++ {
		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		days := first.AddDate(0, 1, -1).Day()

		var row strings.Builder
		for day := 1; day <= days; day++ {
			date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			if e, ok := lookup[date]; ok {
				if e.Mood != nil {
					row.WriteString(fmt.Sprintf("%d", *e.Mood))
				} else {
					row.WriteString("·")
				}
			} else {
				row.WriteString(" ")
			}
		}
		fmt.Printf("%s  %s\n", first.Format("Jan"), row.String())
	}

	return nil
}

type YearCmd struct {
	Year int `help:"Calendar year (default: current)." default:"0"`
}

func (c *YearCmd) Run(ctx *Context) error {
	year := c.Year
	if year == 0 {
		year = time.Now().Year()
	}

	ys, err := stats.NewAggregator(ctx.Store).ComputeYear(year)
	if err != nil {
		if errors.Is(err, stats.ErrNoData) {
			fmt.Printf("No entries in %d yet.\n", year)
			return nil
		}
		return err
	}

	fmt.Printf("Year in review: %d\n\n", ys.Year)
	fmt.Printf("Total entries: %d\n", ys.TotalEntries)
	if ys.AverageMood > 0 {
		fmt.Printf("Average mood: %.1f/5\n", ys.AverageMood)
	}
	fmt.Printf("Journal words: %d\n", ys.TotalJournalWords)
	if ys.BestDay != nil {
		fmt.Printf("Best day: %s (mood %d)\n", ys.BestDay.Date, *ys.BestDay.Mood)
	}
	if ys.MostProductiveMonth > 0 {
		fmt.Printf("Best month: %s\n", time.Month(ys.MostProductiveMonth))
	}

	fmt.Println("\nMonthly breakdown:")
	for _, ms := range ys.Monthly {
		if ms == nil {
			continue
		}
		fmt.Printf("  %-9s %3d entries  mood %.1f  sleep %.1fh\n",
			time.Month(ms.Month), ms.EntriesCount, ms.AverageMood, ms.AverageSleep)
	}

	return nil
}
