package model

import "time"

// Settings contains user-editable runtime options.
type Settings struct {
	WorkHours        int
	ReminderInterval time.Duration
	TickInterval     time.Duration
	Notifications    bool
}

// DefaultSettings returns default settings for FinPom.
func DefaultSettings() Settings {
	return Settings{
		WorkHours:        4,
		ReminderInterval: 5 * time.Minute,
		TickInterval:     time.Second,
		Notifications:    true,
	}
}

// Normalize replaces out-of-range values with defaults.
func (settings Settings) Normalize() Settings {
	defaults := DefaultSettings()
	if settings.WorkHours <= 0 {
		settings.WorkHours = defaults.WorkHours
	}
	if settings.ReminderInterval <= 0 {
		settings.ReminderInterval = defaults.ReminderInterval
	}
	if settings.TickInterval <= 0 {
		settings.TickInterval = defaults.TickInterval
	}
	return settings
}
