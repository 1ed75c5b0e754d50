package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/utils"
)

type ReflectCmd struct {
	Add  ReflectAddCmd  `cmd:"" help:"Write a reflection for a week."`
	Show ReflectShowCmd `cmd:"" help:"Show the reflection for a week." default:"1"`
	List ReflectListCmd `cmd:"" help:"List all weekly reflections."`
}

type ReflectAddCmd struct {
	Week string `help:"Any date within the week, YYYY-MM-DD (default: today)." default:""`
}

func (c *ReflectAddCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Week)
	if err != nil {
		return err
	}
	t, err := utils.ParseDate(date)
	if err != nil {
		return err
	}
	weekStart, weekEnd := utils.WeekBounds(t)

	existing, err := ctx.Store.GetWeeklyReflection(weekStart)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	summary := existing.Summary
	highlights := strings.Join(existing.Highlights, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(fmt.Sprintf("Reflection for %s — %s", weekStart, weekEnd)).
				Description("How did the week go?").
				Value(&summary),
			huh.NewInput().
				Title("Highlights").
				Description("Comma-separated moments worth remembering.").
				Value(&highlights),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	habits, err := weekHabitSummary(ctx.Store, weekStart, weekEnd)
	if err != nil {
		return err
	}

	reflection := models.WeeklyReflection{
		ID:        existing.ID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Summary:   summary,
		Habits:    habits,
	}
	for _, h := range strings.Split(highlights, ",") {
		if h = strings.TrimSpace(h); h != "" {
			reflection.Highlights = append(reflection.Highlights, h)
		}
	}

	if _, err := ctx.Store.SaveWeeklyReflection(reflection); err != nil {
		return err
	}

	fmt.Printf("Saved reflection for week of %s.\n", weekStart)
	return nil
}

// weekHabitSummary counts habit days over one week's persisted entries.
func weekHabitSummary(store storage.Provider, weekStart, weekEnd string) (models.HabitSummary, error) {
	entries, err := store.GetEntriesInRange(weekStart, weekEnd)
	if err != nil {
		return models.HabitSummary{}, err
	}

	var sum models.HabitSummary
	screenTotal := 0
	for _, e := range entries {
		if e.Habits.Workout {
			sum.Workout++
		}
		if e.Habits.Drink {
			sum.Drink++
		}
		if e.Habits.Smoke {
			sum.Smoke++
		}
		if e.Habits.Read {
			sum.Read++
		}
		if e.Habits.LSAT {
			sum.LSAT++
		}
		screenTotal += e.Habits.ScreenTime
	}
	if len(entries) > 0 {
		sum.AvgScreenTime = float64(screenTotal) / float64(len(entries))
	}

	return sum, nil
}

type ReflectShowCmd struct {
	Week string `help:"Any date within the week, YYYY-MM-DD (default: today)." default:""`
}

func (c *ReflectShowCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Week)
	if err != nil {
		return err
	}
	t, err := utils.ParseDate(date)
	if err != nil {
		return err
	}
	weekStart, _ := utils.WeekBounds(t)

	r, err := ctx.Store.GetWeeklyReflection(weekStart)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("No reflection for week of %s.\n", weekStart)
			return nil
		}
		return err
	}

	printReflection(r)
	return nil
}

type ReflectListCmd struct{}

func (c *ReflectListCmd) Run(ctx *Context) error {
	reflections, err := ctx.Store.GetAllWeeklyReflections()
	if err != nil {
		return err
	}

	if len(reflections) == 0 {
		fmt.Println("No reflections yet.")
		return nil
	}

	for _, r := range reflections {
		printReflection(r)
		fmt.Println()
	}
	return nil
}

func printReflection(r models.WeeklyReflection) {
	fmt.Printf("Week of %s — %s\n", r.WeekStart, r.WeekEnd)
	if r.Summary != "" {
		fmt.Printf("  %s\n", r.Summary)
	}
	for _, h := range r.Highlights {
		fmt.Printf("  • %s\n", h)
	}
	fmt.Printf("  Workout %d  Alcohol %d  Smoke %d  Read %d  LSAT %d  Screen %.0fm/day\n",
		r.Habits.Workout, r.Habits.Drink, r.Habits.Smoke, r.Habits.Read, r.Habits.LSAT, r.Habits.AvgScreenTime)
}
