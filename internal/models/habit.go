package models

import (
	"fmt"
	"time"
)

// HabitKind distinguishes how a habit's counts are produced.
type HabitKind string

const (
	// HabitCustom habits are incremented and decremented by the user.
	HabitCustom HabitKind = "custom"
	// HabitSpecial habits receive authoritative totals from an external
	// feed; counts are overwritten, never incremented.
	HabitSpecial HabitKind = "special"
)

// Period is the aggregation granularity of a habit's goal.
type Period string

const (
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

// Habit represents a recurring goal tracked over time
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      HabitKind `json:"kind"`
	Period    Period    `json:"period"`
	Goal      int64     `json:"goal"`
	GoalUnit  string    `json:"goal_unit"` // e.g. "Cups", "Steps"
	Color     string    `json:"color"`
	StartDay  string    `json:"start_day"` // YYYY-MM-DD, first tracked day
	CreatedAt time.Time `json:"created_at"`
}

// PeriodUnit returns the streak unit label for the habit's period.
func (h Habit) PeriodUnit() string {
	if h.Period == PeriodWeekly {
		return "week"
	}
	return "day"
}

// ProgressRecord is the count for one habit on one trackable date. For
// weekly habits the same count is mirrored across all records of the week.
type ProgressRecord struct {
	ID      string `json:"id"`
	HabitID string `json:"habit_id"`
	Day     string `json:"day"` // YYYY-MM-DD format
	Count   int64  `json:"count"`
}

// Palette is the closed set of display colors a habit may carry.
var Palette = []string{
	"dark-blue",
	"light-blue",
	"dark-green",
	"light-green",
	"red",
	"orange",
	"purple",
	"yellow",
}

// ValidColor reports whether c is a palette color.
func ValidColor(c string) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

// StreakSummary holds the result of a streak computation.
type StreakSummary struct {
	Current int
	Longest int
	Unit    string // "day" or "week"
}

// FormatCurrent renders the current streak with a singular or plural unit.
func (s StreakSummary) FormatCurrent() string {
	return formatStreak(s.Current, s.Unit)
}

// FormatLongest renders the longest streak with a singular or plural unit.
func (s StreakSummary) FormatLongest() string {
	return formatStreak(s.Longest, s.Unit)
}

func formatStreak(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
