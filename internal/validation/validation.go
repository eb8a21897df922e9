package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nfielder/habitd/internal/models"
	"github.com/nfielder/habitd/internal/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// tag-level rules the stock library doesn't know about
	_ = v.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
		return models.ValidColor(fl.Field().String())
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return utils.ValidClock(fl.Field().String())
	})
	return v
}

// ValidateDraft checks a habit draft before it reaches the engine; the
// engine assumes validated input.
func ValidateDraft(draft models.HabitDraft) error {
	if err := validate.Struct(draft); err != nil {
		return describeFirst(err)
	}

	if draft.WithReminder {
		if !utils.ValidClock(draft.StartTime) {
			return fmt.Errorf("reminder start time must be in HH:MM format")
		}
		if draft.Count < 1 {
			return fmt.Errorf("reminder repeat count must be at least 1")
		}
		if draft.Count > 1 && draft.SpacingMin < 1 {
			return fmt.Errorf("reminder spacing must be at least 1 minute when repeating")
		}
		if draft.Message == "" {
			return fmt.Errorf("reminder message cannot be empty")
		}
		if draft.CompleteLabel == "" || draft.IncompleteLabel == "" {
			return fmt.Errorf("reminder action labels cannot be empty")
		}
	}
	return nil
}

// describeFirst turns the first field error into a user-facing message.
func describeFirst(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	switch fe.Field() {
	case "Name":
		return fmt.Errorf("habit name is required and must be at most 64 characters")
	case "Kind":
		return fmt.Errorf("habit kind must be %q or %q", models.HabitCustom, models.HabitSpecial)
	case "Period":
		return fmt.Errorf("habit period must be %q or %q", models.PeriodDaily, models.PeriodWeekly)
	case "Goal":
		return fmt.Errorf("habit goal must be a positive number")
	case "GoalUnit":
		return fmt.Errorf("goal unit is required and must be at most 32 characters")
	case "Color":
		return fmt.Errorf("color must be one of: %v", models.Palette)
	case "StartTime":
		return fmt.Errorf("reminder start time must be in HH:MM format")
	default:
		return fmt.Errorf("invalid %s", fe.Field())
	}
}
