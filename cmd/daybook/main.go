package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/cli/backups"
	"github.com/julianstephens/daybook/internal/cli/system"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"~/.config/daybook/daybook.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd    `cmd:"" help:"Initialize daybook storage."`
	Migrate  system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd     `cmd:"" help:"Launch the interactive journal." default:"1"`
	Entry    cli.EntryCmd      `cmd:"" help:"Show or edit a day entry."`
	Stats    cli.StatsCmd      `cmd:"" help:"Show statistics for a period."`
	Streaks  cli.StreaksCmd    `cmd:"" help:"Show habit and journal streaks."`
	Heatmap  cli.HeatmapCmd    `cmd:"" help:"Show a mood heatmap for a year."`
	Year     cli.YearCmd       `cmd:"" help:"Show a year in review."`
	Goal     cli.GoalCmd       `cmd:"" help:"Manage monthly goals."`
	Reflect  cli.ReflectCmd    `cmd:"" help:"Manage weekly reflections."`
	Settings cli.SettingsCmd   `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal journal and habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	store := sqlite.NewStore(CLI.Config)
	appCtx := &cli.Context{Store: store}

	// Load the store before running the command. Init and tui handle their
	// own loading so a fresh database gets a helpful message instead of a
	// generic open failure.
	loaded := false
	if sel := ctx.Selected(); sel != nil && sel.Name != "init" && sel.Name != "tui" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		loaded = true
	}

	if err := ctx.Run(appCtx); err != nil {
		if loaded {
			store.Close()
		}
		errors.Fatal(err)
	}
	if loaded {
		store.Close()
	}
}
