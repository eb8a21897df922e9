package engine

import (
	"fmt"

	"github.com/nfielder/habitd/internal/constants"
	apperrors "github.com/nfielder/habitd/internal/errors"
	"github.com/nfielder/habitd/internal/models"
)

// ApplyDelta increments a custom habit's count for the given day by delta.
// For weekly habits the delta is mirrored across the day's whole week
// block; counts never go below zero.
func (e *Engine) ApplyDelta(habitID, day string, delta int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	habit, err := e.store.GetHabit(habitID)
	if err != nil {
		return fmt.Errorf("habit %s not found", habitID)
	}
	if habit.Kind != models.HabitCustom {
		return fmt.Errorf("habit %q is fed externally and cannot be incremented", habit.Name)
	}

	return e.updateCounts(habit, day, func(count int64) int64 {
		return count + delta
	})
}

// SetAbsolute overwrites a special habit's count for the given day with an
// authoritative external total, mirrored across the week block for weekly
// habits.
func (e *Engine) SetAbsolute(habitID, day string, value int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	habit, err := e.store.GetHabit(habitID)
	if err != nil {
		return fmt.Errorf("habit %s not found", habitID)
	}
	if habit.Kind != models.HabitSpecial {
		return fmt.Errorf("habit %q is user-tracked and cannot be overwritten", habit.Name)
	}

	return e.updateCounts(habit, day, func(int64) int64 {
		return value
	})
}

// updateCounts applies the transform to the record for (habit, day), and
// for weekly habits to every stored record of the day's week block, then
// commits the block as one write. Callers hold the engine lock.
func (e *Engine) updateCounts(habit models.Habit, day string, transform func(int64) int64) error {
	records, err := e.store.GetRecords(habit.ID)
	if err != nil {
		return apperrors.Storage("load records", err)
	}

	idx := -1
	for i, r := range records {
		if r.Day == day {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("no progress record for %q on %s", habit.Name, day)
	}

	targets := []models.ProgressRecord{records[idx]}
	if habit.Period == models.PeriodWeekly {
		targets = weekBlock(records, idx)
	}

	updated := make([]models.ProgressRecord, len(targets))
	for i, r := range targets {
		r.Count = transform(r.Count)
		if r.Count < 0 {
			r.Count = 0
		}
		updated[i] = r
	}

	if err := e.store.UpdateRecordCounts(updated); err != nil {
		return apperrors.Storage("update counts", err)
	}

	e.events.publish(Event{Kind: EventProgressChanged, Records: updated})
	return nil
}

// weekBlock returns the stored records of the 7-day block containing index
// idx. Blocks are anchored to the habit's first record, not the ISO
// calendar, so block k spans records [7k, 7k+7). Partial blocks at the end
// of history yield only the in-range records.
func weekBlock(records []models.ProgressRecord, idx int) []models.ProgressRecord {
	start := idx - idx%constants.DaysPerWeek
	end := start + constants.DaysPerWeek
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
