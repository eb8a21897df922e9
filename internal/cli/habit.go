package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/nfielder/habitd/internal/models"
	"github.com/nfielder/habitd/internal/utils"
	"github.com/nfielder/habitd/internal/validation"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit an existing habit."`
	List    HabitListCmd    `cmd:"" help:"List habits with today's progress."`
	Bump    HabitBumpCmd    `cmd:"" help:"Increment or decrement a habit's count."`
	Done    HabitDoneCmd    `cmd:"" help:"Mark one unit of progress for today."`
	Log     HabitLogCmd     `cmd:"" help:"Show recent progress history."`
	Summary HabitSummaryCmd `cmd:"" help:"Show goal and streaks for a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit and its history."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Kind        string `help:"Habit kind: custom or special." default:"custom"`
	Period      string `help:"Goal period: daily or weekly." default:"daily"`
	Goal        int64  `help:"Target count per period."`
	Unit        string `help:"Goal unit label, e.g. Cups." default:"Times"`
	Color       string `help:"Display color." default:"dark-blue"`
	Interactive bool   `short:"i" help:"Fill in the habit via an interactive form."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	draft := models.HabitDraft{
		Name:     c.Name,
		Kind:     c.Kind,
		Period:   c.Period,
		Goal:     c.Goal,
		GoalUnit: c.Unit,
		Color:    c.Color,
	}

	if c.Interactive || c.Name == "" {
		if err := runDraftForm(&draft); err != nil {
			return err
		}
	}

	if err := validation.ValidateDraft(draft); err != nil {
		return err
	}

	habit, err := ctx.Engine.CommitHabit(draft)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s goal: %d %s)\n", habit.Name, habit.Period, habit.Goal, habit.GoalUnit)
	return nil
}

type HabitEditCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Rename      string `help:"New habit name."`
	Goal        int64  `help:"New target count per period."`
	Unit        string `help:"New goal unit label."`
	Color       string `help:"New display color."`
	Interactive bool   `short:"i" help:"Edit the habit via an interactive form."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	// scratch copy: mutate freely, nothing persists until commit
	draft := models.DraftFromHabit(habit)
	if reminder, err := ctx.Store.GetReminder(habit.ID); err == nil {
		draft.WithReminder = true
		draft.StartTime = reminder.StartTime
		draft.Message = reminder.Message
		draft.CompleteLabel = reminder.CompleteLabel
		draft.IncompleteLabel = reminder.IncompleteLabel
		draft.Count = reminder.Count
		draft.SpacingMin = reminder.SpacingMin
	}

	if c.Rename != "" {
		draft.Name = c.Rename
	}
	if c.Goal != 0 {
		draft.Goal = c.Goal
	}
	if c.Unit != "" {
		draft.GoalUnit = c.Unit
	}
	if c.Color != "" {
		draft.Color = c.Color
	}

	if c.Interactive {
		if err := runEditForm(&draft); err != nil {
			return err
		}
	}

	if err := validation.ValidateDraft(draft); err != nil {
		return err
	}

	if _, err := ctx.Engine.CommitHabit(draft); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", draft.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Engine.ExtendThroughToday(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits set. Run 'habitd habit add' to add one.")
		return nil
	}

	today := ctx.Engine.Today()
	for _, habit := range habits {
		count := int64(0)
		if rec, err := ctx.Store.GetRecord(habit.ID, today); err == nil {
			count = rec.Count
		}
		line := fmt.Sprintf("%s  %d/%d %s (%s)", habit.Name, count, habit.Goal, habit.GoalUnit, habit.Period)
		fmt.Println(Colorize(habit.Color, line))
	}
	return nil
}

type HabitBumpCmd struct {
	Name string `arg:"" help:"Habit name."`
	By   int64  `help:"Amount to add (negative to subtract)." default:"1"`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitBumpCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Engine.ExtendThroughToday(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day := c.Date
	if day == "" {
		day = ctx.Engine.Today()
	} else if !utils.ValidDay(day) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	if err := ctx.Engine.ApplyDelta(habit.ID, day, c.By); err != nil {
		return err
	}

	rec, err := ctx.Store.GetRecord(habit.ID, day)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d/%d %s on %s\n", habit.Name, rec.Count, habit.Goal, habit.GoalUnit, day)
	return nil
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Engine.ExtendThroughToday(); err != nil {
		return err
	}
	if err := ctx.Engine.HandleReminderAction(c.Name, true); err != nil {
		return err
	}
	fmt.Printf("Logged progress for %s\n", c.Name)
	return nil
}

type HabitLogCmd struct {
	Name string `arg:"" help:"Habit name."`
	Days int    `help:"Number of days to show." default:"14"`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	records, err := ctx.Store.GetRecords(habit.ID)
	if err != nil {
		return err
	}

	today := ctx.Engine.Today()
	var shown []models.ProgressRecord
	for _, r := range records {
		if r.Day > today {
			break
		}
		shown = append(shown, r)
	}
	if len(shown) > c.Days {
		shown = shown[len(shown)-c.Days:]
	}
	if len(shown) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	fmt.Println(titleStyle.Render(habit.Name))
	var marks []string
	for _, r := range shown {
		if r.Count >= habit.Goal {
			marks = append(marks, doneStyle.Render("✓"))
		} else {
			marks = append(marks, missStyle.Render("✗"))
		}
	}
	fmt.Printf("%s .. %s\n", shown[0].Day, shown[len(shown)-1].Day)
	fmt.Println(strings.Join(marks, " "))
	return nil
}

type HabitSummaryCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitSummaryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Engine.ExtendThroughToday(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	streaks, err := ctx.Engine.Streaks(c.Name)
	if err != nil {
		return err
	}

	period := strings.ToUpper(string(habit.Period)[:1]) + string(habit.Period)[1:]
	fmt.Println(Colorize(habit.Color, titleStyle.Render(habit.Name)))
	fmt.Printf("%s Goal: %d %s\n", period, habit.Goal, habit.GoalUnit)
	fmt.Printf("Current streak: %s\n", streaks.FormatCurrent())
	fmt.Printf("Longest streak: %s\n", streaks.FormatLongest())
	return nil
}

type HabitDeleteCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Force bool   `short:"f" help:"Delete without confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete habit %q and all of its history?", c.Name)).
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Engine.DeleteHabit(c.Name); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", c.Name)
	return nil
}

// runDraftForm collects a new habit's fields interactively.
func runDraftForm(draft *models.HabitDraft) error {
	goalStr := ""
	if draft.Goal > 0 {
		goalStr = strconv.FormatInt(draft.Goal, 10)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&draft.Name),
			huh.NewSelect[string]().Title("Kind").
				Options(
					huh.NewOption("Custom (tracked by you)", string(models.HabitCustom)),
					huh.NewOption("Special (fed externally)", string(models.HabitSpecial)),
				).Value(&draft.Kind),
			huh.NewSelect[string]().Title("Period").
				Options(
					huh.NewOption("Daily", string(models.PeriodDaily)),
					huh.NewOption("Weekly", string(models.PeriodWeekly)),
				).Value(&draft.Period),
			huh.NewInput().Title("Goal").Value(&goalStr),
			huh.NewInput().Title("Goal unit").Value(&draft.GoalUnit),
			huh.NewSelect[string]().Title("Color").
				Options(huh.NewOptions(models.Palette...)...).Value(&draft.Color),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	goal, err := strconv.ParseInt(strings.TrimSpace(goalStr), 10, 64)
	if err != nil {
		return fmt.Errorf("goal must be a number")
	}
	draft.Goal = goal
	return nil
}

// runEditForm edits an existing habit's mutable fields.
func runEditForm(draft *models.HabitDraft) error {
	goalStr := strconv.FormatInt(draft.Goal, 10)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&draft.Name),
			huh.NewInput().Title("Goal").Value(&goalStr),
			huh.NewInput().Title("Goal unit").Value(&draft.GoalUnit),
			huh.NewSelect[string]().Title("Color").
				Options(huh.NewOptions(models.Palette...)...).Value(&draft.Color),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	goal, err := strconv.ParseInt(strings.TrimSpace(goalStr), 10, 64)
	if err != nil {
		return fmt.Errorf("goal must be a number")
	}
	draft.Goal = goal
	return nil
}

