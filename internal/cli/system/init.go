package system

import (
	"fmt"
	"os"

	"github.com/nfielder/habitd/internal/cli"
	"github.com/nfielder/habitd/internal/constants"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing database before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
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
	fmt.Printf("Initialized habitd storage at: %s\n", ctx.Store.GetConfigPath())

	// seed the reminder toggle from the current delivery capability so a
	// fresh install without the tray app does not silently queue triggers
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.RemindersEnabled = ctx.Notifier.Granted()
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	if !settings.RemindersEnabled {
		fmt.Println("Notification delivery is unavailable; reminders start disabled.")
	}

	if err := ctx.Engine.EnsureWindow(ctx.Engine.Today(), constants.WindowDays); err != nil {
		return err
	}
	fmt.Printf("Seeded a %d-day tracking calendar.\n", constants.WindowDays)
	return nil
}
