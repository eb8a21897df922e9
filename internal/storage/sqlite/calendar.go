package sqlite

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/nfielder/habitd/internal/models"
)

func (s *Store) GetTrackableDates() ([]string, error) {
	rows, err := s.db.Query("SELECT day FROM trackable_dates ORDER BY day")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

// LatestDay returns the most recent generated date, or "" for an empty
// calendar.
func (s *Store) LatestDay() (string, error) {
	var day string
	err := s.db.QueryRow("SELECT day FROM trackable_dates ORDER BY day DESC LIMIT 1").Scan(&day)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return day, nil
}

// ExtendCalendar inserts the given days plus one zero-count record per
// existing habit for each new day, as a single transaction. Days that
// already exist are skipped, so re-running with a covered range is a no-op.
func (s *Store) ExtendCalendar(days []string) error {
	if len(days) == 0 {
		return nil
	}

	habits, err := s.GetAllHabits()
	if err != nil {
		return err
	}

	return s.inTx(func(tx *sql.Tx) error {
		dateStmt, err := tx.Prepare("INSERT OR IGNORE INTO trackable_dates (day) VALUES (?)")
		if err != nil {
			return err
		}
		defer dateStmt.Close()

		recStmt, err := tx.Prepare(`
			INSERT OR IGNORE INTO progress_records (id, habit_id, day, count)
			VALUES (?, ?, ?, 0)`)
		if err != nil {
			return err
		}
		defer recStmt.Close()

		for _, day := range days {
			res, err := dateStmt.Exec(day)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				// day already existed, its records do too
				continue
			}
			for _, h := range habits {
				if day < h.StartDay {
					continue
				}
				if _, err := recStmt.Exec(uuid.New().String(), h.ID, day); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func scanRecord(row interface{ Scan(...any) error }) (models.ProgressRecord, error) {
	var r models.ProgressRecord
	err := row.Scan(&r.ID, &r.HabitID, &r.Day, &r.Count)
	return r, err
}

// GetRecords returns all of a habit's progress records sorted ascending by
// day.
func (s *Store) GetRecords(habitID string) ([]models.ProgressRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, count FROM progress_records
		WHERE habit_id = ? ORDER BY day`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ProgressRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) GetRecord(habitID, day string) (models.ProgressRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, day, count FROM progress_records
		WHERE habit_id = ? AND day = ?`, habitID, day)
	return scanRecord(row)
}

func (s *Store) GetRecordsForDay(day string) ([]models.ProgressRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, count FROM progress_records
		WHERE day = ? ORDER BY habit_id`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ProgressRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// UpdateRecordCounts writes the counts of all given records as a single
// transaction, so a weekly block is never partially visible.
func (s *Store) UpdateRecordCounts(records []models.ProgressRecord) error {
	if len(records) == 0 {
		return nil
	}
	return s.inTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("UPDATE progress_records SET count = ? WHERE id = ?")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, r := range records {
			if _, err := stmt.Exec(r.Count, r.ID); err != nil {
				return err
			}
		}
		return nil
	})
}
