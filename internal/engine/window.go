package engine

import (
	"fmt"

	"github.com/nfielder/habitd/internal/constants"
	apperrors "github.com/nfielder/habitd/internal/errors"
	"github.com/nfielder/habitd/internal/utils"
)

// EnsureWindow guarantees a trackable date exists for each of the next
// windowDays consecutive days starting at anchor, creating any missing ones
// in date order with a zero-count record per existing habit. Idempotent:
// covered days are skipped.
func (e *Engine) EnsureWindow(anchor string, windowDays int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ensureWindow(anchor, windowDays)
}

// ExtendThroughToday grows the calendar forward transparently: a fresh
// store is seeded with one window anchored at today, and an existing one is
// appended to in full windows until today is covered. The sequence stays
// gapless because every extension starts at the day after the latest
// generated date.
func (e *Engine) ExtendThroughToday() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.extendThrough(utils.Day(e.now()))
}

func (e *Engine) ensureWindow(anchor string, windowDays int) error {
	if !utils.ValidDay(anchor) {
		return fmt.Errorf("invalid anchor date: %s", anchor)
	}

	days, err := utils.DayRange(anchor, windowDays)
	if err != nil {
		return err
	}

	existing, err := e.store.GetTrackableDates()
	if err != nil {
		return apperrors.Storage("load trackable dates", err)
	}
	covered := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		covered[d] = struct{}{}
	}

	var missing []string
	for _, d := range days {
		if _, ok := covered[d]; !ok {
			missing = append(missing, d)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if err := e.store.ExtendCalendar(missing); err != nil {
		return apperrors.Storage("extend calendar", err)
	}

	e.events.publish(Event{Kind: EventCalendarChanged, Days: missing})
	return nil
}

func (e *Engine) extendThrough(today string) error {
	latest, err := e.store.LatestDay()
	if err != nil {
		return apperrors.Storage("latest day", err)
	}

	if latest == "" {
		return e.ensureWindow(today, constants.WindowDays)
	}

	for latest < today {
		next, err := utils.AddDays(latest, 1)
		if err != nil {
			return err
		}
		if err := e.ensureWindow(next, constants.WindowDays); err != nil {
			return err
		}
		if latest, err = e.store.LatestDay(); err != nil {
			return apperrors.Storage("latest day", err)
		}
	}
	return nil
}
