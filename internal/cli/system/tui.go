package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/daybook/internal/cli"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/julianstephens/daybook/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	// Automatic backup on TUI startup, after a successful load.
	ctx.PerformAutomaticBackup()

	model, err := tui.NewModel(ctx.Store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
