package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			// Close first to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized daybook storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	sourceStore := sqlite.NewStore(sourcePath)

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating day entries...")
	entries, err := sourceStore.GetEntriesInRange("0000-01-01", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get entries from source: %w", err)
	}
	for _, entry := range entries {
		if _, err := ctx.Store.UpsertEntry(entry); err != nil {
			return fmt.Errorf("failed to save entry %s: %w", entry.Date, err)
		}
	}
	fmt.Printf("    Migrated %d entries\n", len(entries))

	fmt.Println("  Migrating monthly goals...")
	goals, err := sourceStore.GetAllMonthlyGoals()
	if err != nil {
		return fmt.Errorf("failed to get goals from source: %w", err)
	}
	for _, mg := range goals {
		if _, err := ctx.Store.SaveMonthlyGoal(mg); err != nil {
			return fmt.Errorf("failed to save goals for %s: %w", mg.Month, err)
		}
	}
	fmt.Printf("    Migrated %d goal months\n", len(goals))

	fmt.Println("  Migrating weekly reflections...")
	reflections, err := sourceStore.GetAllWeeklyReflections()
	if err != nil {
		return fmt.Errorf("failed to get reflections from source: %w", err)
	}
	for _, r := range reflections {
		if _, err := ctx.Store.SaveWeeklyReflection(r); err != nil {
			return fmt.Errorf("failed to save reflection for week %s: %w", r.WeekStart, err)
		}
	}
	fmt.Printf("    Migrated %d reflections\n", len(reflections))

	return nil
}
