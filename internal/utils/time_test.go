package utils

import (
	"testing"
	"time"
)

func TestDay(t *testing.T) {
	ts := time.Date(2026, 8, 10, 23, 59, 0, 0, time.UTC)
	if got := Day(ts); got != "2026-08-10" {
		t.Errorf("expected 2026-08-10, got %s", got)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		day  string
		n    int
		want string
	}{
		{"2026-08-10", 1, "2026-08-11"},
		{"2026-08-31", 1, "2026-09-01"},
		{"2026-12-31", 1, "2027-01-01"},
		{"2026-08-10", -1, "2026-08-09"},
		{"2026-02-28", 1, "2026-03-01"},
		{"2028-02-28", 1, "2028-02-29"}, // leap year
	}
	for _, tt := range tests {
		got, err := AddDays(tt.day, tt.n)
		if err != nil {
			t.Errorf("AddDays(%s, %d): %v", tt.day, tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AddDays(%s, %d) = %s, want %s", tt.day, tt.n, got, tt.want)
		}
	}

	if _, err := AddDays("bad", 1); err == nil {
		t.Error("expected error for malformed day")
	}
}

func TestDayRange(t *testing.T) {
	days, err := DayRange("2026-08-30", 4)
	if err != nil {
		t.Fatalf("failed to build range: %v", err)
	}
	want := []string{"2026-08-30", "2026-08-31", "2026-09-01", "2026-09-02"}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("day %d: expected %s, got %s", i, want[i], days[i])
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2026-08-10", "2026-08-10", 0},
		{"2026-08-10", "2026-08-13", 3},
		{"2026-08-13", "2026-08-10", -3},
		{"2026-08-25", "2026-09-05", 11},
	}
	for _, tt := range tests {
		got, err := DaysBetween(tt.a, tt.b)
		if err != nil {
			t.Errorf("DaysBetween(%s, %s): %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		clock string
		n     int
		want  string
	}{
		{"09:00", 0, "09:00"},
		{"09:00", 90, "10:30"},
		{"23:30", 45, "00:15"},
		{"00:00", 1440, "00:00"},
	}
	for _, tt := range tests {
		got, err := AddMinutes(tt.clock, tt.n)
		if err != nil {
			t.Errorf("AddMinutes(%s, %d): %v", tt.clock, tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AddMinutes(%s, %d) = %s, want %s", tt.clock, tt.n, got, tt.want)
		}
	}

	if _, err := AddMinutes("25:00", 5); err == nil {
		t.Error("expected error for invalid clock")
	}
}

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, c := range valid {
		if !ValidClock(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	invalid := []string{"", "24:00", "9:30pm", "noon", "12-30"}
	for _, c := range invalid {
		if ValidClock(c) {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestValidDay(t *testing.T) {
	if !ValidDay("2026-08-10") {
		t.Error("expected valid day")
	}
	invalid := []string{"", "08/10/2026", "2026-13-01", "2026-08-32", "today"}
	for _, d := range invalid {
		if ValidDay(d) {
			t.Errorf("expected %q to be invalid", d)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	valid := []string{"", "Local", "UTC", "America/New_York"}
	for _, tz := range valid {
		if !ValidateTimezone(tz) {
			t.Errorf("expected %q to be valid", tz)
		}
	}
	if ValidateTimezone("Mars/Olympus_Mons") {
		t.Error("expected unknown zone to be invalid")
	}
}
