package engine

import (
	"fmt"

	"github.com/nfielder/habitd/internal/constants"
	apperrors "github.com/nfielder/habitd/internal/errors"
	"github.com/nfielder/habitd/internal/models"
)

// Streaks loads a habit's history and computes its current and longest
// streaks as of today.
func (e *Engine) Streaks(habitName string) (models.StreakSummary, error) {
	habit, err := e.store.GetHabitByName(habitName)
	if err != nil {
		return models.StreakSummary{}, fmt.Errorf("habit %q not found", habitName)
	}

	records, err := e.store.GetRecords(habit.ID)
	if err != nil {
		return models.StreakSummary{}, apperrors.Storage("load records", err)
	}

	return ComputeStreaks(habit, records, e.Today()), nil
}

// ComputeStreaks is a pure function over a habit's chronologically sorted
// progress records. A record counts toward a streak when its count has
// reached the habit's goal. Future-dated records are excluded: only records
// up to today are evaluated, and a today outside the stored range clamps to
// the latest available record.
//
// Daily habits count one unit per satisfying day. Weekly habits evaluate
// the first record of each 7-day block (all seven mirror one total), one
// unit per week.
func ComputeStreaks(habit models.Habit, records []models.ProgressRecord, today string) models.StreakSummary {
	summary := models.StreakSummary{Unit: habit.PeriodUnit()}
	if len(records) == 0 {
		return summary
	}

	// clamp the evaluation cutoff to the stored range
	last := len(records) - 1
	if today < records[last].Day {
		last = -1
		for i, r := range records {
			if r.Day > today {
				break
			}
			last = i
		}
		if last < 0 {
			return summary
		}
	}

	step := 1
	if habit.Period == models.PeriodWeekly {
		step = constants.DaysPerWeek
	}

	current, longest := 0, 0
	for i := 0; i <= last; i += step {
		if records[i].Count >= habit.Goal {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}

	summary.Current = current
	summary.Longest = longest
	return summary
}
