package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/nfielder/habitd/internal/errors"
	"github.com/nfielder/habitd/internal/logger"
	"github.com/nfielder/habitd/internal/models"
	"github.com/nfielder/habitd/internal/storage"
	"github.com/nfielder/habitd/internal/utils"
)

// ReminderScheduler is the slice of the reminder scheduler the engine needs
// when committing or deleting habits.
type ReminderScheduler interface {
	SetReminder(habit models.Habit, cfg models.Reminder) error
	DeleteReminder(habit models.Habit) error
}

// FeedRefresher re-pulls a special habit's total from its external source.
// Wired in by the integration that owns the feed; optional.
type FeedRefresher interface {
	Refresh(habitName string) error
}

// Engine is the habit progress and scheduling core. All mutations are
// serialized behind one mutex; external callbacks re-enter through the same
// lock before touching shared state. Observers are notified only after the
// store has committed.
type Engine struct {
	mu        sync.Mutex
	store     storage.Provider
	reminders ReminderScheduler
	events    *registry
	feed      FeedRefresher
	now       func() time.Time
}

func New(store storage.Provider, reminders ReminderScheduler) *Engine {
	return &Engine{
		store:     store,
		reminders: reminders,
		events:    newRegistry(),
		now:       time.Now,
	}
}

// Subscribe registers an observer for one event kind and returns a handle
// for teardown.
func (e *Engine) Subscribe(kind EventKind, fn func(Event)) *Subscription {
	return e.events.subscribe(kind, fn)
}

// Today returns the current date in the user's configured timezone.
func (e *Engine) Today() string {
	settings, err := e.store.GetSettings()
	if err != nil {
		return utils.Day(e.now())
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return utils.Day(e.now())
	}
	// keep the injectable clock authoritative for the instant
	return utils.Day(e.now().In(now.Location()))
}

// CommitHabit applies a draft: create-or-update of the habit plus reminder
// replace, as one logical operation. New habits start tracking today;
// their progress records are backfilled through the end of the calendar
// window. Returns the committed habit.
func (e *Engine) CommitHabit(draft models.HabitDraft) (models.Habit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := utils.Day(e.now())
	if err := e.extendThrough(today); err != nil {
		return models.Habit{}, err
	}

	var habit models.Habit
	if draft.ID == "" {
		if _, err := e.store.GetHabitByName(draft.Name); err == nil {
			return models.Habit{}, fmt.Errorf("habit with name %q already exists", draft.Name)
		}

		habit = models.Habit{
			ID:        uuid.New().String(),
			Name:      draft.Name,
			Kind:      models.HabitKind(draft.Kind),
			Period:    models.Period(draft.Period),
			Goal:      draft.Goal,
			GoalUnit:  draft.GoalUnit,
			Color:     draft.Color,
			StartDay:  today,
			CreatedAt: e.now(),
		}

		latest, err := e.store.LatestDay()
		if err != nil {
			return models.Habit{}, apperrors.Storage("latest day", err)
		}
		span, err := utils.DaysBetween(today, latest)
		if err != nil {
			return models.Habit{}, err
		}
		days, err := utils.DayRange(today, span+1)
		if err != nil {
			return models.Habit{}, err
		}
		if err := e.store.CreateHabitWithRecords(habit, days); err != nil {
			return models.Habit{}, apperrors.Storage("create habit", err)
		}
	} else {
		existing, err := e.store.GetHabit(draft.ID)
		if err != nil {
			return models.Habit{}, fmt.Errorf("habit %s not found", draft.ID)
		}

		// kind and period are immutable after creation; changing them
		// would invalidate the aggregation history
		habit = existing
		habit.Name = draft.Name
		habit.Goal = draft.Goal
		habit.GoalUnit = draft.GoalUnit
		habit.Color = draft.Color

		if existing.Name != habit.Name {
			// stale triggers carry the old name; retract them first
			if err := e.reminders.DeleteReminder(existing); err != nil {
				logger.Warn("Failed to retract triggers for renamed habit", "habit", existing.Name, "error", err)
			}
		}
		if err := e.store.UpdateHabit(habit); err != nil {
			return models.Habit{}, apperrors.Storage("update habit", err)
		}
	}

	if draft.WithReminder {
		if err := e.reminders.SetReminder(habit, draft.Reminder(habit.ID)); err != nil {
			return models.Habit{}, err
		}
	} else {
		if err := e.reminders.DeleteReminder(habit); err != nil {
			return models.Habit{}, err
		}
	}

	e.publishHabitsChanged()
	return habit, nil
}

// DeleteHabit removes the habit, its history, its reminder, and all derived
// triggers.
func (e *Engine) DeleteHabit(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	habit, err := e.store.GetHabitByName(name)
	if err != nil {
		return fmt.Errorf("habit %q not found", name)
	}

	if err := e.reminders.DeleteReminder(habit); err != nil {
		return err
	}
	if err := e.store.DeleteHabit(habit.ID); err != nil {
		return apperrors.Storage("delete habit", err)
	}

	e.publishHabitsChanged()
	return nil
}

// SetFeedRefresher wires the external counter feed used to re-pull special
// habit totals on reminder accept actions.
func (e *Engine) SetFeedRefresher(f FeedRefresher) {
	e.feed = f
}

// ReportSpecialHabitTotal is the entry point for external telemetry: an
// authoritative total for a special habit on a given day.
func (e *Engine) ReportSpecialHabitTotal(habitName, day string, value int64) error {
	habit, err := e.store.GetHabitByName(habitName)
	if err != nil {
		return fmt.Errorf("habit %q not found", habitName)
	}
	return e.SetAbsolute(habit.ID, day, value)
}

// HandleReminderAction routes a reminder notification response. Accepting
// increments custom habits by one for today; special habits re-pull from
// their external feed instead.
func (e *Engine) HandleReminderAction(habitName string, accepted bool) error {
	if !accepted {
		return nil
	}

	habit, err := e.store.GetHabitByName(habitName)
	if err != nil {
		return fmt.Errorf("habit %q not found", habitName)
	}

	if habit.Kind == models.HabitSpecial {
		if e.feed == nil {
			logger.Info("No feed source configured for special habit", "habit", habitName)
			return nil
		}
		return e.feed.Refresh(habitName)
	}

	return e.ApplyDelta(habit.ID, e.Today(), 1)
}

func (e *Engine) publishHabitsChanged() {
	habits, err := e.store.GetAllHabits()
	if err != nil {
		logger.Warn("Failed to load habits for change notification", "error", err)
		return
	}
	e.events.publish(Event{Kind: EventHabitsChanged, Habits: habits})
}
