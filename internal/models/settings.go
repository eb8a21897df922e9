package models

// UserSettings represents application-wide settings for the single local
// user. Created once at first launch, mutated by explicit toggles.
type UserSettings struct {
	RemindersEnabled   bool   `json:"reminders_enabled"`    // habit reminder notifications
	DailyDigestEnabled bool   `json:"daily_digest_enabled"` // daily quote digest
	Timezone           string `json:"timezone"`             // IANA timezone name, or "Local"
}
