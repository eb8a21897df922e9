package models

// HabitDraft is a plain mutable copy of a habit's editable fields. The CLI
// and forms mutate it freely; nothing is persisted until the draft is
// committed, which performs create-or-update plus reminder replace as one
// logical operation.
type HabitDraft struct {
	ID       string `validate:"omitempty,uuid4"`
	Name     string `validate:"required,max=64"`
	Kind     string `validate:"required,oneof=custom special"`
	Period   string `validate:"required,oneof=daily weekly"`
	Goal     int64  `validate:"required,gt=0"`
	GoalUnit string `validate:"required,max=32"`
	Color    string `validate:"required,palette"`

	// Reminder settings; applied only when WithReminder is set, otherwise
	// any existing reminder is removed on commit.
	WithReminder    bool
	StartTime       string `validate:"omitempty,clock"`
	Message         string `validate:"omitempty,max=200"`
	CompleteLabel   string `validate:"omitempty,max=64"`
	IncompleteLabel string `validate:"omitempty,max=64"`
	Count           int    `validate:"omitempty,gte=0,lte=24"`
	SpacingMin      int    `validate:"omitempty,gte=0,lte=720"`
}

// DraftFromHabit copies a habit's fields into a new draft.
func DraftFromHabit(h Habit) HabitDraft {
	return HabitDraft{
		ID:       h.ID,
		Name:     h.Name,
		Kind:     string(h.Kind),
		Period:   string(h.Period),
		Goal:     h.Goal,
		GoalUnit: h.GoalUnit,
		Color:    h.Color,
	}
}

// Reminder builds the reminder entity described by the draft for the given
// habit. Only meaningful when WithReminder is set.
func (d HabitDraft) Reminder(habitID string) Reminder {
	return Reminder{
		HabitID:         habitID,
		StartTime:       d.StartTime,
		Message:         d.Message,
		CompleteLabel:   d.CompleteLabel,
		IncompleteLabel: d.IncompleteLabel,
		Count:           d.Count,
		SpacingMin:      d.SpacingMin,
	}
}
