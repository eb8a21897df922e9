package sqlite

import (
	"time"

	"github.com/nfielder/habitd/internal/models"
)

// SaveReminder inserts or replaces the habit's reminder.
func (s *Store) SaveReminder(r models.Reminder) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO reminders
			(habit_id, start_time, message, complete_label, incomplete_label, repeat_count, spacing_min)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.HabitID, r.StartTime, r.Message, r.CompleteLabel, r.IncompleteLabel, r.Count, r.SpacingMin)
	return err
}

func (s *Store) GetReminder(habitID string) (models.Reminder, error) {
	row := s.db.QueryRow(`
		SELECT habit_id, start_time, message, complete_label, incomplete_label, repeat_count, spacing_min
		FROM reminders WHERE habit_id = ?`, habitID)

	var r models.Reminder
	err := row.Scan(&r.HabitID, &r.StartTime, &r.Message, &r.CompleteLabel, &r.IncompleteLabel, &r.Count, &r.SpacingMin)
	if err != nil {
		return models.Reminder{}, err
	}
	return r, nil
}

func (s *Store) DeleteReminder(habitID string) error {
	_, err := s.db.Exec("DELETE FROM reminders WHERE habit_id = ?", habitID)
	return err
}

func (s *Store) AddTrigger(t models.Trigger) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO triggers
			(id, habit_name, fire_time, title, body, complete_label, incomplete_label, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.HabitName, t.FireTime, t.Title, t.Body, t.CompleteLabel, t.IncompleteLabel,
		t.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) DeleteTrigger(id string) error {
	_, err := s.db.Exec("DELETE FROM triggers WHERE id = ?", id)
	return err
}

func (s *Store) DeleteTriggersForHabit(habitName string) error {
	_, err := s.db.Exec("DELETE FROM triggers WHERE habit_name = ?", habitName)
	return err
}

func (s *Store) ListTriggers() ([]models.Trigger, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_name, fire_time, title, body, complete_label, incomplete_label, created_at
		FROM triggers ORDER BY fire_time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var triggers []models.Trigger
	for rows.Next() {
		var t models.Trigger
		var createdAt string
		if err := rows.Scan(&t.ID, &t.HabitName, &t.FireTime, &t.Title, &t.Body,
			&t.CompleteLabel, &t.IncompleteLabel, &createdAt); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, err
		}
		triggers = append(triggers, t)
	}
	return triggers, rows.Err()
}
