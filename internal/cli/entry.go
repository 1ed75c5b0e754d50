package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/validation"
)

type EntryCmd struct {
	Show EntryShowCmd `cmd:"" help:"Show the entry for a date." default:"1"`
	Set  EntrySetCmd  `cmd:"" help:"Set fields on the entry for a date."`
}

type EntryShowCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *EntryShowCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	entry, err := ctx.Store.GetEntry(date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("No entry for %s.\n", date)
			return nil
		}
		return err
	}

	fmt.Printf("%s\n", entry.Date)
	fmt.Printf("  Mood:        %s\n", FormatMood(entry.Mood))
	fmt.Printf("  Sleep:       %.1fh (quality %d/5)\n", entry.Sleep.Hours, entry.Sleep.Quality)
	fmt.Printf("  Habits:      %s\n", FormatHabits(entry))
	fmt.Printf("  Screen time: %dm\n", entry.Habits.ScreenTime)
	if entry.Highlight != "" {
		fmt.Printf("  Highlight:   %s\n", entry.Highlight)
	}
	if entry.HasJournal() {
		fmt.Printf("\n%s\n", entry.JournalText)
	}

	return nil
}

type EntrySetCmd struct {
	Date         string   `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Mood         *int     `help:"Mood rating 1-5."`
	ClearMood    bool     `help:"Unset the mood rating."`
	SleepHours   *float64 `help:"Hours slept (0-24)."`
	SleepQuality *int     `help:"Sleep quality 1-5."`
	Highlight    *string  `help:"Day's highlight."`
	Journal      *string  `help:"Journal text."`
	ScreenTime   *int     `help:"Screen time in minutes (0-1440)."`
	Done         []string `help:"Habits to mark done (workout, drink, smoke, read, lsat)."`
	Undone       []string `help:"Habits to mark not done."`
}

func (c *EntrySetCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	entry, err := ctx.Store.GetEntry(date)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		entry = models.NewDayEntry(date)
	}

	patch := models.EntryPatch{
		Mood:         c.Mood,
		ClearMood:    c.ClearMood,
		SleepHours:   c.SleepHours,
		SleepQuality: c.SleepQuality,
		Highlight:    c.Highlight,
		JournalText:  c.Journal,
		ScreenTime:   c.ScreenTime,
	}
	patch.Apply(&entry)

	for _, name := range c.Done {
		key, err := parseHabitKey(name)
		if err != nil {
			return err
		}
		entry.SetHabit(key, true)
	}
	for _, name := range c.Undone {
		key, err := parseHabitKey(name)
		if err != nil {
			return err
		}
		entry.SetHabit(key, false)
	}

	if err := validation.ValidateEntry(entry).Err(); err != nil {
		return err
	}

	saved, err := ctx.Store.UpsertEntry(entry)
	if err != nil {
		return err
	}

	fmt.Printf("Saved entry for %s.\n", saved.Date)
	return nil
}

func parseHabitKey(name string) (models.HabitKey, error) {
	key := models.HabitKey(name)
	if _, ok := models.HabitConfig[key]; !ok {
		return "", fmt.Errorf("unknown habit %q", name)
	}
	return key, nil
}
