package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nfielder/habitd/internal/models"
)

func scanHabit(row interface{ Scan(...any) error }) (models.Habit, error) {
	var h models.Habit
	var createdAt string

	err := row.Scan(&h.ID, &h.Name, &h.Kind, &h.Period, &h.Goal, &h.GoalUnit, &h.Color, &h.StartDay, &createdAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return h, nil
}

const habitColumns = "id, name, kind, period, goal, goal_unit, color, start_day, created_at"

// CreateHabitWithRecords inserts the habit and one zero-count progress
// record for each of the given days, as a single transaction.
func (s *Store) CreateHabitWithRecords(habit models.Habit, days []string) error {
	return s.inTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO habits (`+habitColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			habit.ID, habit.Name, habit.Kind, habit.Period, habit.Goal,
			habit.GoalUnit, habit.Color, habit.StartDay, habit.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO progress_records (id, habit_id, day, count)
			VALUES (?, ?, ?, 0)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, day := range days {
			if _, err := stmt.Exec(uuid.New().String(), habit.ID, day); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE name = ?`, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT ` + habitColumns + ` FROM habits ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	res, err := s.db.Exec(`
		UPDATE habits
		SET name = ?, goal = ?, goal_unit = ?, color = ?
		WHERE id = ?`,
		habit.Name, habit.Goal, habit.GoalUnit, habit.Color, habit.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("habit %s not found", habit.ID)
	}
	return nil
}

// DeleteHabit removes the habit, its progress records, its reminder, and
// any pending triggers derived from it, as a single transaction.
func (s *Store) DeleteHabit(id string) error {
	return s.inTx(func(tx *sql.Tx) error {
		var name string
		if err := tx.QueryRow("SELECT name FROM habits WHERE id = ?", id).Scan(&name); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM triggers WHERE habit_name = ?", name); err != nil {
			return err
		}
		// reminders and progress_records cascade
		_, err := tx.Exec("DELETE FROM habits WHERE id = ?", id)
		return err
	})
}
