package storage

import "github.com/nfielder/habitd/internal/models"

// Provider is the persistence boundary of the engine. Compound operations
// (calendar growth, habit creation, weekly block writes, habit deletion) are
// transactional: either every row is committed or none is.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.UserSettings, error)
	SaveSettings(models.UserSettings) error

	// Habits
	CreateHabitWithRecords(habit models.Habit, days []string) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	// DeleteHabit removes the habit together with its progress records,
	// reminder, and pending triggers.
	DeleteHabit(id string) error

	// Calendar
	GetTrackableDates() ([]string, error)
	LatestDay() (string, error)
	// ExtendCalendar inserts the given days and one zero-count record per
	// existing habit whose start day is not after the new day.
	ExtendCalendar(days []string) error

	// Progress records
	GetRecords(habitID string) ([]models.ProgressRecord, error)
	GetRecord(habitID, day string) (models.ProgressRecord, error)
	GetRecordsForDay(day string) ([]models.ProgressRecord, error)
	UpdateRecordCounts(records []models.ProgressRecord) error

	// Reminders
	SaveReminder(models.Reminder) error
	GetReminder(habitID string) (models.Reminder, error)
	DeleteReminder(habitID string) error

	// Notification triggers
	AddTrigger(models.Trigger) error
	DeleteTrigger(id string) error
	DeleteTriggersForHabit(habitName string) error
	ListTriggers() ([]models.Trigger, error)

	// Daily digest
	GetDigestState() (models.DigestState, error)
	SaveDigestState(models.DigestState) error

	// Utils
	GetConfigPath() string
}
