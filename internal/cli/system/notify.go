package system

import (
	"context"
	"fmt"
	"time"

	"github.com/nfielder/habitd/internal/cli"
	"github.com/nfielder/habitd/internal/constants"
)

// NotifyCmd is the delivery tick. It is intended to run from cron (or a
// similar per-minute schedule): it fires every reminder trigger whose
// HH:MM matches the current minute, then fires the daily digest when its
// pending request has come due.
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// keep the tracking calendar current before anything fires today
	if err := ctx.Engine.ExtendThroughToday(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	now := time.Now()
	clock := now.Format(constants.TimeFormat)

	if settings.RemindersEnabled {
		triggers, err := ctx.Store.ListTriggers()
		if err != nil {
			return err
		}
		for _, t := range triggers {
			if t.FireTime != clock {
				continue
			}
			body := fmt.Sprintf("%s (%s / %s)", t.Body, t.CompleteLabel, t.IncompleteLabel)
			if c.DryRun {
				fmt.Printf("[DryRun] %s: %s\n", t.Title, body)
				continue
			}
			if err := ctx.Notifier.Notify(t.Title, body); err != nil {
				fmt.Printf("Failed to send notification for %s: %v\n", t.HabitName, err)
			}
		}
	} else if c.DryRun {
		fmt.Println("Reminders are disabled in settings.")
	}

	due, err := ctx.Digest.Due()
	if err != nil {
		return err
	}
	if due {
		if c.DryRun {
			fmt.Println("[DryRun] Daily digest is due.")
			return nil
		}
		if err := ctx.Digest.OnFire(context.Background()); err != nil {
			return err
		}
	}
	return nil
}
