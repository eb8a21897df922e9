package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/nfielder/habitd/internal/constants"
	apperrors "github.com/nfielder/habitd/internal/errors"
	"github.com/nfielder/habitd/internal/logger"
	"github.com/nfielder/habitd/internal/models"
	"github.com/nfielder/habitd/internal/storage"
)

// QuoteSource fetches one piece of daily content. A single attempt per
// cycle; failures are skipped and retried naturally the next day.
type QuoteSource interface {
	FetchTodayQuote(ctx context.Context) (models.Quote, error)
}

// Notifier delivers the rendered digest.
type Notifier interface {
	Notify(title, body string) error
}

// Scheduler maintains the daily digest request chain: one pending request
// at a time, fired no earlier than 24 hours after the last, looping while
// the feature is enabled.
type Scheduler struct {
	store  storage.Provider
	quotes QuoteSource
	notify Notifier
	now    func() time.Time
}

func NewScheduler(store storage.Provider, quotes QuoteSource, notify Notifier) *Scheduler {
	return &Scheduler{
		store:  store,
		quotes: quotes,
		notify: notify,
		now:    time.Now,
	}
}

// ScheduleNext registers the next digest request. No-op while the feature
// is disabled or a request is already pending, so double scheduling never
// produces duplicates.
func (s *Scheduler) ScheduleNext() error {
	settings, err := s.store.GetSettings()
	if err != nil {
		return apperrors.Storage("load settings", err)
	}
	if !settings.DailyDigestEnabled {
		return nil
	}

	state, err := s.store.GetDigestState()
	if err != nil {
		return apperrors.Storage("load digest state", err)
	}
	if state.Pending {
		return nil
	}

	earliest := s.now().Add(constants.DigestInterval)
	state = models.DigestState{Pending: true, EarliestFire: &earliest}
	if err := s.store.SaveDigestState(state); err != nil {
		return apperrors.Storage("save digest state", err)
	}
	return nil
}

// Due reports whether a pending request has reached its earliest fire time.
func (s *Scheduler) Due() (bool, error) {
	state, err := s.store.GetDigestState()
	if err != nil {
		return false, apperrors.Storage("load digest state", err)
	}
	return state.Pending && state.EarliestFire != nil && !s.now().Before(*state.EarliestFire), nil
}

// OnFire consumes the pending request. The next request is scheduled
// before the fetch-and-notify side effect runs, so a failed fetch never
// breaks the recurrence.
func (s *Scheduler) OnFire(ctx context.Context) error {
	state, err := s.store.GetDigestState()
	if err != nil {
		return apperrors.Storage("load digest state", err)
	}
	if !state.Pending {
		return nil
	}

	if err := s.store.SaveDigestState(models.DigestState{}); err != nil {
		return apperrors.Storage("save digest state", err)
	}
	if err := s.ScheduleNext(); err != nil {
		return err
	}

	quote, err := s.quotes.FetchTodayQuote(ctx)
	if err != nil {
		logger.Warn("Daily quote fetch failed, skipping this cycle", "error", err)
		return nil
	}

	body := quote.Text
	if quote.Author != "" {
		body = fmt.Sprintf("%s - %s", quote.Text, quote.Author)
	}
	if err := s.notify.Notify("Daily Motivation", body); err != nil {
		logger.Warn("Failed to deliver daily digest", "error", err)
	}
	return nil
}

// CancelAll retracts any pending request. Called when the feature is
// disabled; in-flight fetches are allowed to finish and be discarded.
func (s *Scheduler) CancelAll() error {
	if err := s.store.SaveDigestState(models.DigestState{}); err != nil {
		return apperrors.Storage("save digest state", err)
	}
	return nil
}
