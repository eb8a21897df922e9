package reminder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nfielder/habitd/internal/models"
	"github.com/nfielder/habitd/internal/storage"
	"github.com/nfielder/habitd/internal/storage/sqlite"
)

type grantedPerm bool

func (g grantedPerm) Granted() bool { return bool(g) }

func setupTestScheduler(t *testing.T, granted bool) (*Scheduler, storage.Provider, func()) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	settings.RemindersEnabled = true
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	sched := NewScheduler(store, NewStoreSink(store), grantedPerm(granted))
	cleanup := func() {
		store.Close()
	}
	return sched, store, cleanup
}

func addTestHabit(t *testing.T, store storage.Provider, name string) models.Habit {
	t.Helper()
	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Kind:      models.HabitCustom,
		Period:    models.PeriodDaily,
		Goal:      8,
		GoalUnit:  "Cups",
		Color:     "dark-blue",
		StartDay:  "2026-08-01",
		CreatedAt: time.Now(),
	}
	if err := store.CreateHabitWithRecords(habit, nil); err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	return habit
}

func testReminder(count, spacing int) models.Reminder {
	return models.Reminder{
		StartTime:       "09:00",
		Message:         "Time to hydrate",
		CompleteLabel:   "Done!",
		IncompleteLabel: "Not yet",
		Count:           count,
		SpacingMin:      spacing,
	}
}

func TestDeriveTriggers(t *testing.T) {
	habit := models.Habit{ID: "h1", Name: "Drink Water"}
	cfg := testReminder(3, 90)

	triggers := DeriveTriggers(habit, cfg, time.Now())
	if len(triggers) != 3 {
		t.Fatalf("expected 3 triggers, got %d", len(triggers))
	}

	wantTimes := []string{"09:00", "10:30", "12:00"}
	wantIDs := []string{"Drink Water#0", "Drink Water#1", "Drink Water#2"}
	for i, tr := range triggers {
		if tr.FireTime != wantTimes[i] {
			t.Errorf("trigger %d: expected fire time %s, got %s", i, wantTimes[i], tr.FireTime)
		}
		if tr.ID != wantIDs[i] {
			t.Errorf("trigger %d: expected ID %s, got %s", i, wantIDs[i], tr.ID)
		}
		if tr.Title != "Drink Water" || tr.Body != "Time to hydrate" {
			t.Errorf("trigger %d: unexpected content %+v", i, tr)
		}
		if tr.CompleteLabel != "Done!" || tr.IncompleteLabel != "Not yet" {
			t.Errorf("trigger %d: unexpected action labels %+v", i, tr)
		}
	}
}

func TestDeriveTriggersWrapsMidnight(t *testing.T) {
	habit := models.Habit{ID: "h1", Name: "Wind Down"}
	cfg := testReminder(2, 120)
	cfg.StartTime = "23:30"

	triggers := DeriveTriggers(habit, cfg, time.Now())
	if len(triggers) != 2 {
		t.Fatalf("expected 2 triggers, got %d", len(triggers))
	}
	if triggers[1].FireTime != "01:30" {
		t.Errorf("expected wrap past midnight to 01:30, got %s", triggers[1].FireTime)
	}
}

func TestSetReminderSchedulesTriggers(t *testing.T) {
	sched, store, cleanup := setupTestScheduler(t, true)
	defer cleanup()

	habit := addTestHabit(t, store, "Drink Water")
	if err := sched.SetReminder(habit, testReminder(4, 60)); err != nil {
		t.Fatalf("failed to set reminder: %v", err)
	}

	cfg, err := store.GetReminder(habit.ID)
	if err != nil {
		t.Fatalf("reminder not persisted: %v", err)
	}
	if cfg.Count != 4 {
		t.Errorf("expected count 4, got %d", cfg.Count)
	}

	triggers, err := store.ListTriggers()
	if err != nil {
		t.Fatalf("failed to list triggers: %v", err)
	}
	if len(triggers) != 4 {
		t.Errorf("expected 4 pending triggers, got %d", len(triggers))
	}
}

func TestSetReminderReplaceLeavesNoDuplicates(t *testing.T) {
	sched, store, cleanup := setupTestScheduler(t, true)
	defer cleanup()

	habit := addTestHabit(t, store, "Drink Water")
	if err := sched.SetReminder(habit, testReminder(5, 30)); err != nil {
		t.Fatalf("failed to set reminder: %v", err)
	}
	if err := sched.SetReminder(habit, testReminder(2, 60)); err != nil {
		t.Fatalf("failed to replace reminder: %v", err)
	}

	triggers, err := store.ListTriggers()
	if err != nil {
		t.Fatalf("failed to list triggers: %v", err)
	}
	if len(triggers) != 2 {
		t.Errorf("replace must fully retract the old schedule, got %d triggers", len(triggers))
	}
}

func TestSetReminderGatedBySettings(t *testing.T) {
	sched, store, cleanup := setupTestScheduler(t, true)
	defer cleanup()

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	settings.RemindersEnabled = false
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	habit := addTestHabit(t, store, "Drink Water")
	if err := sched.SetReminder(habit, testReminder(3, 60)); err != nil {
		t.Fatalf("failed to set reminder: %v", err)
	}

	// the reminder entity persists so re-enabling can re-derive
	if _, err := store.GetReminder(habit.ID); err != nil {
		t.Errorf("reminder should persist while disabled: %v", err)
	}
	triggers, err := store.ListTriggers()
	if err != nil {
		t.Fatalf("failed to list triggers: %v", err)
	}
	if len(triggers) != 0 {
		t.Errorf("expected no triggers while disabled, got %d", len(triggers))
	}
}

func TestSetReminderGatedByPermission(t *testing.T) {
	sched, store, cleanup := setupTestScheduler(t, false)
	defer cleanup()

	habit := addTestHabit(t, store, "Drink Water")
	if err := sched.SetReminder(habit, testReminder(3, 60)); err != nil {
		t.Fatalf("failed to set reminder: %v", err)
	}

	triggers, err := store.ListTriggers()
	if err != nil {
		t.Fatalf("failed to list triggers: %v", err)
	}
	if len(triggers) != 0 {
		t.Errorf("expected no triggers without permission, got %d", len(triggers))
	}
}

func TestDeleteReminder(t *testing.T) {
	sched, store, cleanup := setupTestScheduler(t, true)
	defer cleanup()

	habit := addTestHabit(t, store, "Drink Water")
	if err := sched.SetReminder(habit, testReminder(3, 60)); err != nil {
		t.Fatalf("failed to set reminder: %v", err)
	}
	if err := sched.DeleteReminder(habit); err != nil {
		t.Fatalf("failed to delete reminder: %v", err)
	}

	if _, err := store.GetReminder(habit.ID); err == nil {
		t.Error("expected reminder entity to be removed")
	}
	triggers, err := store.ListTriggers()
	if err != nil {
		t.Fatalf("failed to list triggers: %v", err)
	}
	if len(triggers) != 0 {
		t.Errorf("expected all triggers retracted, got %d", len(triggers))
	}
}

func TestReconcileRestoresTriggers(t *testing.T) {
	sched, store, cleanup := setupTestScheduler(t, true)
	defer cleanup()

	withReminder := addTestHabit(t, store, "Drink Water")
	if err := sched.SetReminder(withReminder, testReminder(2, 60)); err != nil {
		t.Fatalf("failed to set reminder: %v", err)
	}
	stale := addTestHabit(t, store, "Old Habit")
	if err := store.AddTrigger(models.Trigger{
		ID: "Old Habit#0", HabitName: stale.Name, FireTime: "07:00",
		Title: stale.Name, Body: "stale", CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("failed to add stale trigger: %v", err)
	}

	// wipe the derived schedule, as a settings toggle would
	if err := store.DeleteTriggersForHabit(withReminder.Name); err != nil {
		t.Fatalf("failed to clear triggers: %v", err)
	}

	if err := sched.Reconcile(); err != nil {
		t.Fatalf("failed to reconcile: %v", err)
	}

	triggers, err := store.ListTriggers()
	if err != nil {
		t.Fatalf("failed to list triggers: %v", err)
	}
	if len(triggers) != 2 {
		t.Fatalf("expected 2 reconciled triggers, got %d", len(triggers))
	}
	for _, tr := range triggers {
		if tr.HabitName != "Drink Water" {
			t.Errorf("stale trigger survived reconcile: %+v", tr)
		}
	}
}
