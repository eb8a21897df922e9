package validation

import (
	"strings"
	"testing"

	"github.com/nfielder/habitd/internal/models"
)

func validDraft() models.HabitDraft {
	return models.HabitDraft{
		Name:     "Drink Water",
		Kind:     "custom",
		Period:   "daily",
		Goal:     8,
		GoalUnit: "Cups",
		Color:    "dark-blue",
	}
}

func TestValidateDraftAccepts(t *testing.T) {
	if err := ValidateDraft(validDraft()); err != nil {
		t.Errorf("expected valid draft, got %v", err)
	}
}

func TestValidateDraftFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.HabitDraft)
		wantMsg string
	}{
		{
			name:    "missing name",
			mutate:  func(d *models.HabitDraft) { d.Name = "" },
			wantMsg: "name",
		},
		{
			name:    "name too long",
			mutate:  func(d *models.HabitDraft) { d.Name = strings.Repeat("x", 65) },
			wantMsg: "name",
		},
		{
			name:    "bad kind",
			mutate:  func(d *models.HabitDraft) { d.Kind = "magical" },
			wantMsg: "kind",
		},
		{
			name:    "bad period",
			mutate:  func(d *models.HabitDraft) { d.Period = "hourly" },
			wantMsg: "period",
		},
		{
			name:    "zero goal",
			mutate:  func(d *models.HabitDraft) { d.Goal = 0 },
			wantMsg: "goal",
		},
		{
			name:    "negative goal",
			mutate:  func(d *models.HabitDraft) { d.Goal = -2 },
			wantMsg: "goal",
		},
		{
			name:    "missing unit",
			mutate:  func(d *models.HabitDraft) { d.GoalUnit = "" },
			wantMsg: "unit",
		},
		{
			name:    "off-palette color",
			mutate:  func(d *models.HabitDraft) { d.Color = "magenta" },
			wantMsg: "color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)
			err := ValidateDraft(draft)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(strings.ToLower(err.Error()), tt.wantMsg) {
				t.Errorf("expected message mentioning %q, got %q", tt.wantMsg, err)
			}
		})
	}
}

func TestValidateDraftReminderRules(t *testing.T) {
	base := validDraft()
	base.WithReminder = true
	base.StartTime = "09:00"
	base.Message = "Hydrate"
	base.CompleteLabel = "Done!"
	base.IncompleteLabel = "Not yet"
	base.Count = 3
	base.SpacingMin = 60

	if err := ValidateDraft(base); err != nil {
		t.Fatalf("expected valid reminder draft, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*models.HabitDraft)
	}{
		{"bad start time", func(d *models.HabitDraft) { d.StartTime = "9am" }},
		{"zero count", func(d *models.HabitDraft) { d.Count = 0 }},
		{"repeat without spacing", func(d *models.HabitDraft) { d.SpacingMin = 0 }},
		{"empty message", func(d *models.HabitDraft) { d.Message = "" }},
		{"empty complete label", func(d *models.HabitDraft) { d.CompleteLabel = "" }},
		{"empty incomplete label", func(d *models.HabitDraft) { d.IncompleteLabel = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := base
			tt.mutate(&draft)
			if err := ValidateDraft(draft); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateDraftSingleShotNeedsNoSpacing(t *testing.T) {
	draft := validDraft()
	draft.WithReminder = true
	draft.StartTime = "09:00"
	draft.Message = "Hydrate"
	draft.CompleteLabel = "Done!"
	draft.IncompleteLabel = "Not yet"
	draft.Count = 1
	draft.SpacingMin = 0

	if err := ValidateDraft(draft); err != nil {
		t.Errorf("a single daily reminder needs no spacing, got %v", err)
	}
}

func TestValidateDraftIgnoresReminderFieldsWhenUnset(t *testing.T) {
	draft := validDraft()
	draft.WithReminder = false
	draft.StartTime = ""
	draft.Count = 0

	if err := ValidateDraft(draft); err != nil {
		t.Errorf("reminder fields are free-form when the reminder is off, got %v", err)
	}
}
