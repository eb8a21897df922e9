package reminder

import (
	apperrors "github.com/nfielder/habitd/internal/errors"
	"github.com/nfielder/habitd/internal/models"
	"github.com/nfielder/habitd/internal/storage"
)

// StoreSink persists pending triggers in the store. The notify command
// drains it each minute and delivers whatever is due.
type StoreSink struct {
	store storage.Provider
}

func NewStoreSink(store storage.Provider) *StoreSink {
	return &StoreSink{store: store}
}

func (s *StoreSink) ScheduleTrigger(t models.Trigger) error {
	if err := s.store.AddTrigger(t); err != nil {
		return apperrors.Storage("add trigger", err)
	}
	return nil
}

func (s *StoreSink) CancelTrigger(id string) error {
	if err := s.store.DeleteTrigger(id); err != nil {
		return apperrors.Storage("delete trigger", err)
	}
	return nil
}

func (s *StoreSink) CancelTriggersForHabit(habitName string) error {
	if err := s.store.DeleteTriggersForHabit(habitName); err != nil {
		return apperrors.Storage("delete triggers", err)
	}
	return nil
}

func (s *StoreSink) ListPendingTriggers() ([]models.Trigger, error) {
	triggers, err := s.store.ListTriggers()
	if err != nil {
		return nil, apperrors.Storage("list triggers", err)
	}
	return triggers, nil
}
