package system

import (
	"fmt"
	"io/fs"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/migration"
	"github.com/julianstephens/daybook/internal/storage/sqlite"
	"github.com/julianstephens/daybook/migrations"
)

type MigrateCmd struct {
	Status bool `help:"Show the current and latest schema versions without applying anything."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("migrate command only supports SQLite storage")
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	runner := migration.NewRunner(db, subFS)

	if c.Status {
		if err := runner.EnsureSchemaVersionTable(); err != nil {
			return err
		}
		current, err := runner.GetCurrentVersion()
		if err != nil {
			return err
		}
		latest, err := runner.GetLatestVersion()
		if err != nil {
			return err
		}
		fmt.Printf("Schema version: %d (latest available: %d)\n", current, latest)
		if current < latest {
			fmt.Println("Run 'daybook migrate' to apply pending migrations.")
		}
		return nil
	}

	count, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}

	return nil
}
