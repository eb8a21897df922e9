package utils

import (
	"fmt"
	"time"

	"github.com/nfielder/habitd/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// Day truncates t to its date and formats it in the standard date format.
func Day(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a date string in the standard format (YYYY-MM-DD).
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// AddDays returns the day n calendar days after day.
func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", fmt.Errorf("invalid date format: %w", err)
	}
	return Day(t.AddDate(0, 0, n)), nil
}

// DayRange returns n consecutive days starting at anchor (inclusive).
func DayRange(anchor string, n int) ([]string, error) {
	t, err := ParseDay(anchor)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}
	days := make([]string, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, Day(t.AddDate(0, 0, i)))
	}
	return days, nil
}

// DaysBetween returns the number of calendar days from a to b (b - a).
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDay(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDay(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// ParseClock parses a time-of-day string in the standard format (HH:MM).
func ParseClock(clock string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, clock)
}

// AddMinutes returns the clock time n minutes after clock, wrapping past
// midnight.
func AddMinutes(clock string, n int) (string, error) {
	t, err := ParseClock(clock)
	if err != nil {
		return "", fmt.Errorf("invalid time format: %w", err)
	}
	return t.Add(time.Duration(n) * time.Minute).Format(constants.TimeFormat), nil
}

// ValidClock reports whether the string matches the standard time format.
func ValidClock(clock string) bool {
	_, err := ParseClock(clock)
	return err == nil
}

// ValidDay reports whether the string matches the standard date format.
func ValidDay(day string) bool {
	_, err := ParseDay(day)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
