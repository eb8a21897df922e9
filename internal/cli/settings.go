package cli

import (
	"fmt"
	"strconv"

	"github.com/nfielder/habitd/internal/utils"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" default:"1" help:"Show current settings."`
	Set  SettingsSetCmd  `cmd:"" help:"Change a setting."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Settings"))
	fmt.Printf("  reminders: %t\n", settings.RemindersEnabled)
	fmt.Printf("  digest:    %t\n", settings.DailyDigestEnabled)
	fmt.Printf("  timezone:  %s\n", settings.Timezone)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" enum:"reminders,digest,timezone" help:"Setting to change (reminders, digest, timezone)."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case "reminders":
		enabled, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("invalid value %q, expected true or false", c.Value)
		}
		settings.RemindersEnabled = enabled
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
		// reflect the toggle in the derived trigger schedule right away
		if enabled {
			if err := ctx.Reminders.Reconcile(); err != nil {
				return err
			}
		} else {
			habits, err := ctx.Store.GetAllHabits()
			if err != nil {
				return err
			}
			for _, h := range habits {
				if err := ctx.Store.DeleteTriggersForHabit(h.Name); err != nil {
					return err
				}
			}
		}
	case "digest":
		enabled, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("invalid value %q, expected true or false", c.Value)
		}
		settings.DailyDigestEnabled = enabled
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
		if enabled {
			if err := ctx.Digest.ScheduleNext(); err != nil {
				return err
			}
		} else if err := ctx.Digest.CancelAll(); err != nil {
			return err
		}
	case "timezone":
		if !utils.ValidateTimezone(c.Value) {
			return fmt.Errorf("unknown timezone %q", c.Value)
		}
		settings.Timezone = c.Value
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
	}

	fmt.Printf("Set %s to %s\n", c.Key, c.Value)
	return nil
}
