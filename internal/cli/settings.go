package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/models"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Change a setting."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	s, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("theme          %s\n", s.Theme)
	fmt.Printf("default-view   %s\n", s.DefaultView)
	fmt.Printf("notifications  %t\n", s.NotificationsEnabled)
	return nil
}

type SettingsSetCmd struct {
	Theme         string `help:"Color theme." enum:"light,dark," default:""`
	DefaultView   string `help:"View opened on launch." enum:"journal,calendar," default:"" name:"default-view"`
	Notifications *bool  `help:"Enable or disable reminders."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	s, err := ctx.Store.GetSettings()
	if err != nil {
		s = models.DefaultSettings()
	}

	if c.Theme != "" {
		s.Theme = c.Theme
	}
	if c.DefaultView != "" {
		s.DefaultView = c.DefaultView
	}
	if c.Notifications != nil {
		s.NotificationsEnabled = *c.Notifications
	}

	if err := ctx.Store.SaveSettings(s); err != nil {
		return err
	}

	fmt.Println("Settings updated.")
	return nil
}
