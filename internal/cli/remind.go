package cli

import (
	"fmt"

	"github.com/nfielder/habitd/internal/models"
	"github.com/nfielder/habitd/internal/utils"
)

type RemindCmd struct {
	Set    RemindSetCmd    `cmd:"" help:"Set or replace a habit's reminder."`
	Delete RemindDeleteCmd `cmd:"" help:"Remove a habit's reminder."`
	List   RemindListCmd   `cmd:"" help:"List pending notification triggers."`
}

type RemindSetCmd struct {
	Name            string `arg:"" help:"Habit name."`
	At              string `help:"Start time in HH:MM format." required:""`
	Message         string `help:"Notification message." required:""`
	Count           int    `help:"Repeats per day." default:"1"`
	Every           int    `help:"Minutes between repeats." default:"60"`
	CompleteLabel   string `help:"Label for the 'mark complete' action." default:"Done!"`
	IncompleteLabel string `help:"Label for the 'not yet' action." default:"Not yet"`
}

func (c *RemindSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if !utils.ValidClock(c.At) {
		return fmt.Errorf("invalid time format: %s (expected HH:MM)", c.At)
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	if c.Count > 1 && c.Every < 1 {
		return fmt.Errorf("spacing must be at least 1 minute when repeating")
	}

	cfg := models.Reminder{
		HabitID:         habit.ID,
		StartTime:       c.At,
		Message:         c.Message,
		CompleteLabel:   c.CompleteLabel,
		IncompleteLabel: c.IncompleteLabel,
		Count:           c.Count,
		SpacingMin:      c.Every,
	}
	if err := ctx.Reminders.SetReminder(habit, cfg); err != nil {
		return err
	}

	fmt.Printf("Reminder set for %s: %d per day starting at %s\n", habit.Name, c.Count, c.At)
	return nil
}

type RemindDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *RemindDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Reminders.DeleteReminder(habit); err != nil {
		return err
	}
	fmt.Printf("Reminder removed for %s\n", habit.Name)
	return nil
}

type RemindListCmd struct{}

func (c *RemindListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	triggers, err := ctx.Store.ListTriggers()
	if err != nil {
		return err
	}
	if len(triggers) == 0 {
		fmt.Println("No pending triggers.")
		return nil
	}

	for _, t := range triggers {
		fmt.Printf("%s  %s  %s\n", t.FireTime, t.ID, faintStyle.Render(t.Body))
	}
	return nil
}
