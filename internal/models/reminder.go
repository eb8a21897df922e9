package models

import "time"

// Reminder is a habit-scoped repeating notification configuration. A habit
// owns at most one; saving a new configuration replaces the old one.
type Reminder struct {
	HabitID         string `json:"habit_id"`
	StartTime       string `json:"start_time"` // HH:MM format
	Message         string `json:"message"`
	CompleteLabel   string `json:"complete_label"`
	IncompleteLabel string `json:"incomplete_label"`
	Count           int    `json:"count"`       // repeats per day
	SpacingMin      int    `json:"spacing_min"` // minutes between repeats
}

// Trigger is one derived notification request, pending with the trigger
// sink. Reminder triggers repeat daily at FireTime.
type Trigger struct {
	ID              string    `json:"id"` // "<habit name>#<i>" for reminders
	HabitName       string    `json:"habit_name"`
	FireTime        string    `json:"fire_time"` // HH:MM format
	Title           string    `json:"title"`
	Body            string    `json:"body"`
	CompleteLabel   string    `json:"complete_label"`
	IncompleteLabel string    `json:"incomplete_label"`
	CreatedAt       time.Time `json:"created_at"`
}

// DigestState tracks the daily digest request chain.
type DigestState struct {
	Pending      bool       `json:"pending"`
	EarliestFire *time.Time `json:"earliest_fire,omitempty"`
}

// Quote is one piece of daily motivational content.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
