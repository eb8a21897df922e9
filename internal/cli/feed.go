package cli

import (
	"fmt"

	"github.com/nfielder/habitd/internal/models"
	"github.com/nfielder/habitd/internal/utils"
)

type FeedCmd struct {
	Report FeedReportCmd `cmd:"" help:"Report an externally sourced total for a special habit."`
}

type FeedReportCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Value int64  `arg:"" help:"Observed total for the day."`
	Date  string `help:"Day to report for, YYYY-MM-DD. Defaults to today."`
}

func (c *FeedReportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}
	if habit.Kind != models.HabitSpecial {
		return fmt.Errorf("habit %q is tracked manually, use 'habit bump' instead", c.Name)
	}

	day := c.Date
	if day == "" {
		day = ctx.Engine.Today()
	} else if !utils.ValidDay(day) {
		return fmt.Errorf("invalid date: %s (expected YYYY-MM-DD)", c.Date)
	}

	if c.Value < 0 {
		return fmt.Errorf("value must not be negative")
	}

	if err := ctx.Engine.ReportSpecialHabitTotal(c.Name, day, c.Value); err != nil {
		return err
	}
	fmt.Printf("%s: %d %s on %s\n", habit.Name, c.Value, habit.GoalUnit, day)
	return nil
}
