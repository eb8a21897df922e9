package constants

import "time"

const (
	AppName           = "habitd"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/habitd/habitd.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// WindowDays is the length of one calendar window. 35 days is exactly
	// 5 weeks, so weekly aggregation never spans a partial window.
	WindowDays = 35

	// DaysPerWeek is the length of one weekly aggregation block.
	DaysPerWeek = 7

	// DigestInterval is the spacing between daily digest notifications.
	DigestInterval = 24 * time.Hour

	// Notify constants
	NotifierLockfileName   = "habitd-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.nfielder.habitd"
	TrayAppExecutable      = "habitd-tray"

	// Quote source defaults
	DefaultQuoteURL  = "https://zenquotes.io/api/today"
	QuoteTimeout     = 10 * time.Second
	QuoteURLEnvVar   = "HABITD_QUOTE_URL"
	EnvFileName      = ".env"
	DigestTriggerID  = "daily-digest"
	ReminderIDFormat = "%s#%d"
)
