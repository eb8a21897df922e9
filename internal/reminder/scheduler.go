package reminder

import (
	"fmt"
	"time"

	"github.com/nfielder/habitd/internal/constants"
	apperrors "github.com/nfielder/habitd/internal/errors"
	"github.com/nfielder/habitd/internal/logger"
	"github.com/nfielder/habitd/internal/models"
	"github.com/nfielder/habitd/internal/storage"
	"github.com/nfielder/habitd/internal/utils"
)

// Sink receives derived notification triggers. The OS-facing layer drains
// it; the scheduler only decides what should exist and when.
type Sink interface {
	ScheduleTrigger(t models.Trigger) error
	CancelTrigger(id string) error
	CancelTriggersForHabit(habitName string) error
	ListPendingTriggers() ([]models.Trigger, error)
}

// PermissionChecker reports whether OS-level notification delivery has been
// granted.
type PermissionChecker interface {
	Granted() bool
}

// Scheduler derives recurring notification triggers from habit reminder
// configuration and keeps the derived schedule consistent with edits and
// deletes.
type Scheduler struct {
	store storage.Provider
	sink  Sink
	perm  PermissionChecker
}

func NewScheduler(store storage.Provider, sink Sink, perm PermissionChecker) *Scheduler {
	return &Scheduler{store: store, sink: sink, perm: perm}
}

// SetReminder replaces the habit's reminder configuration. Previously
// derived triggers are fully retracted before the new ones are installed,
// so a re-save never leaves duplicates. Trigger scheduling failures are
// logged and do not roll back the reminder entity; re-saving heals a
// missing trigger.
func (s *Scheduler) SetReminder(habit models.Habit, cfg models.Reminder) error {
	if err := s.sink.CancelTriggersForHabit(habit.Name); err != nil {
		return err
	}

	cfg.HabitID = habit.ID
	if err := s.store.SaveReminder(cfg); err != nil {
		return apperrors.Storage("save reminder", err)
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		return apperrors.Storage("load settings", err)
	}
	if !settings.RemindersEnabled {
		logger.Info("Reminder saved but notifications are disabled in settings", "habit", habit.Name)
		return nil
	}
	if s.perm != nil && !s.perm.Granted() {
		logger.Info("Reminder saved but notification permission is missing", "habit", habit.Name)
		return nil
	}

	for _, t := range DeriveTriggers(habit, cfg, time.Now()) {
		if err := s.sink.ScheduleTrigger(t); err != nil {
			logger.Warn("Failed to schedule reminder trigger", "id", t.ID, "error", err)
		}
	}
	return nil
}

// DeleteReminder retracts every trigger derived for the habit and clears
// the reminder entity.
func (s *Scheduler) DeleteReminder(habit models.Habit) error {
	if err := s.sink.CancelTriggersForHabit(habit.Name); err != nil {
		return err
	}
	if err := s.store.DeleteReminder(habit.ID); err != nil {
		return apperrors.Storage("delete reminder", err)
	}
	return nil
}

// Reconcile re-derives triggers for every stored reminder. Run on startup
// so the pending schedule matches the persisted configuration after
// setting toggles or missed scheduling.
func (s *Scheduler) Reconcile() error {
	habits, err := s.store.GetAllHabits()
	if err != nil {
		return apperrors.Storage("load habits", err)
	}

	for _, habit := range habits {
		cfg, err := s.store.GetReminder(habit.ID)
		if err != nil {
			// no reminder configured; make sure no stale triggers linger
			if err := s.sink.CancelTriggersForHabit(habit.Name); err != nil {
				return err
			}
			continue
		}
		if err := s.SetReminder(habit, cfg); err != nil {
			return err
		}
	}
	return nil
}

// DeriveTriggers expands a reminder configuration into its daily trigger
// set: trigger i fires at start + i*spacing.
func DeriveTriggers(habit models.Habit, cfg models.Reminder, now time.Time) []models.Trigger {
	triggers := make([]models.Trigger, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		fireTime, err := utils.AddMinutes(cfg.StartTime, i*cfg.SpacingMin)
		if err != nil {
			logger.Warn("Skipping trigger with invalid start time", "habit", habit.Name, "start", cfg.StartTime)
			continue
		}
		triggers = append(triggers, models.Trigger{
			ID:              fmt.Sprintf(constants.ReminderIDFormat, habit.Name, i),
			HabitName:       habit.Name,
			FireTime:        fireTime,
			Title:           habit.Name,
			Body:            cfg.Message,
			CompleteLabel:   cfg.CompleteLabel,
			IncompleteLabel: cfg.IncompleteLabel,
			CreatedAt:       now,
		})
	}
	return triggers
}
