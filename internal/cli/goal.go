package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
)

type GoalCmd struct {
	Add     GoalAddCmd     `cmd:"" help:"Add a goal for a month."`
	List    GoalListCmd    `cmd:"" help:"List monthly goals." default:"1"`
	Done    GoalDoneCmd    `cmd:"" help:"Mark a goal as completed."`
	Reflect GoalReflectCmd `cmd:"" help:"Set the end-of-month reflection."`
}

type GoalAddCmd struct {
	Text  string `arg:"" help:"Goal text."`
	Month string `help:"Month in YYYY-MM format (default: current)." default:""`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	month, err := ResolveMonth(c.Month)
	if err != nil {
		return err
	}

	mg, err := ctx.Store.GetMonthlyGoal(month)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		mg = models.MonthlyGoal{Month: month}
	}

	mg.Goals = append(mg.Goals, models.Goal{
		ID:   uuid.New().String(),
		Text: c.Text,
	})

	if _, err := ctx.Store.SaveMonthlyGoal(mg); err != nil {
		return err
	}

	fmt.Printf("Added goal for %s: %s\n", month, c.Text)
	return nil
}

type GoalListCmd struct {
	Month string `help:"Month in YYYY-MM format (default: all months)." default:""`
	All   bool   `help:"List goals for all months."`
}

func (c *GoalListCmd) Run(ctx *Context) error {
	var goals []models.MonthlyGoal

	if c.All && c.Month == "" {
		all, err := ctx.Store.GetAllMonthlyGoals()
		if err != nil {
			return err
		}
		goals = all
	} else {
		month, err := ResolveMonth(c.Month)
		if err != nil {
			return err
		}
		mg, err := ctx.Store.GetMonthlyGoal(month)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Printf("No goals for %s.\n", month)
				return nil
			}
			return err
		}
		goals = []models.MonthlyGoal{mg}
	}

	if len(goals) == 0 {
		fmt.Println("No goals found.")
		return nil
	}

	for _, mg := range goals {
		fmt.Printf("%s\n", mg.Month)
		for i, g := range mg.Goals {
			mark := "○"
			if g.IsCompleted {
				mark = "✓"
			}
			fmt.Printf("  %d. %s %s\n", i+1, mark, g.Text)
		}
		if mg.Reflection != "" {
			fmt.Printf("  Reflection: %s\n", mg.Reflection)
		}
	}

	return nil
}

type GoalDoneCmd struct {
	Number int    `arg:"" help:"Goal number within the month (1-based)."`
	Month  string `help:"Month in YYYY-MM format (default: current)." default:""`
}

func (c *GoalDoneCmd) Run(ctx *Context) error {
	month, err := ResolveMonth(c.Month)
	if err != nil {
		return err
	}

	mg, err := ctx.Store.GetMonthlyGoal(month)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no goals for %s", month)
		}
		return err
	}

	if c.Number < 1 || c.Number > len(mg.Goals) {
		return fmt.Errorf("goal number %d out of range (1-%d)", c.Number, len(mg.Goals))
	}

	now := time.Now()
	mg.Goals[c.Number-1].IsCompleted = true
	mg.Goals[c.Number-1].CompletedAt = &now

	allDone := true
	for _, g := range mg.Goals {
		if !g.IsCompleted {
			allDone = false
			break
		}
	}
	mg.Completed = allDone

	if _, err := ctx.Store.SaveMonthlyGoal(mg); err != nil {
		return err
	}

	fmt.Printf("Completed goal: %s\n", mg.Goals[c.Number-1].Text)
	return nil
}

type GoalReflectCmd struct {
	Text  string `arg:"" help:"Reflection text."`
	Month string `help:"Month in YYYY-MM format (default: current)." default:""`
}

func (c *GoalReflectCmd) Run(ctx *Context) error {
	month, err := ResolveMonth(c.Month)
	if err != nil {
		return err
	}

	mg, err := ctx.Store.GetMonthlyGoal(month)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		mg = models.MonthlyGoal{Month: month}
	}

	mg.Reflection = c.Text
	if _, err := ctx.Store.SaveMonthlyGoal(mg); err != nil {
		return err
	}

	fmt.Printf("Saved reflection for %s.\n", month)
	return nil
}
