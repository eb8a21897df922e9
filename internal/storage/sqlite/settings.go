package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nfielder/habitd/internal/models"
)

func (s *Store) GetSettings() (models.UserSettings, error) {
	row := s.db.QueryRow(`
		SELECT reminders_enabled, daily_digest_enabled, timezone
		FROM user_settings WHERE id = 1`)

	var settings models.UserSettings
	var reminders, digest int
	if err := row.Scan(&reminders, &digest, &settings.Timezone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserSettings{}, fmt.Errorf("settings not found")
		}
		return models.UserSettings{}, err
	}
	settings.RemindersEnabled = reminders == 1
	settings.DailyDigestEnabled = digest == 1
	return settings, nil
}

func (s *Store) SaveSettings(settings models.UserSettings) error {
	reminders := 0
	if settings.RemindersEnabled {
		reminders = 1
	}
	digest := 0
	if settings.DailyDigestEnabled {
		digest = 1
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO user_settings (id, reminders_enabled, daily_digest_enabled, timezone)
		VALUES (1, ?, ?, ?)`,
		reminders, digest, settings.Timezone)
	return err
}

func (s *Store) GetDigestState() (models.DigestState, error) {
	row := s.db.QueryRow("SELECT pending, earliest_fire FROM digest_state WHERE id = 1")

	var pending int
	var earliest sql.NullString
	if err := row.Scan(&pending, &earliest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DigestState{}, nil
		}
		return models.DigestState{}, err
	}

	state := models.DigestState{Pending: pending == 1}
	if earliest.Valid {
		t, err := time.Parse(time.RFC3339, earliest.String)
		if err != nil {
			return models.DigestState{}, fmt.Errorf("failed to parse earliest_fire: %w", err)
		}
		state.EarliestFire = &t
	}
	return state, nil
}

func (s *Store) SaveDigestState(state models.DigestState) error {
	pending := 0
	if state.Pending {
		pending = 1
	}
	var earliest sql.NullString
	if state.EarliestFire != nil {
		earliest = sql.NullString{String: state.EarliestFire.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO digest_state (id, pending, earliest_fire)
		VALUES (1, ?, ?)`,
		pending, earliest)
	return err
}
