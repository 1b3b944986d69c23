package model

import "time"

// FocusMinutesPerSession is the fixed length of one focus block.
const FocusMinutesPerSession = 25

// SessionPreset describes a multi-hour work session split into focus/break cycles.
type SessionPreset struct {
	DurationInMinutes int
	Sessions          int
}

var curatedPresets = map[int]SessionPreset{
	4: {DurationInMinutes: 240, Sessions: 8},
	5: {DurationInMinutes: 300, Sessions: 10},
	6: {DurationInMinutes: 360, Sessions: 12},
	7: {DurationInMinutes: 420, Sessions: 14},
	8: {DurationInMinutes: 480, Sessions: 16},
}

// PresetForWorkHours returns the session preset for a whole number of work hours.
// Hours outside the curated table use one cycle per half hour, which can yield
// zero sessions; callers must check Sessions before planning.
func PresetForWorkHours(hours int) SessionPreset {
	if preset, ok := curatedPresets[hours]; ok {
		return preset
	}
	minutes := hours * 60
	return SessionPreset{DurationInMinutes: minutes, Sessions: minutes / 30}
}

// BreakMinutesPerSession returns the break length of a single cycle.
// It is zero for a preset without sessions.
func (preset SessionPreset) BreakMinutesPerSession() float64 {
	if preset.Sessions <= 0 {
		return 0
	}
	return float64(preset.TotalBreak()) / float64(preset.Sessions)
}

// TotalFocus returns the focus minutes across all cycles.
func (preset SessionPreset) TotalFocus() int {
	return FocusMinutesPerSession * preset.Sessions
}

// TotalBreak returns the break minutes across all cycles.
func (preset SessionPreset) TotalBreak() int {
	return preset.DurationInMinutes - preset.TotalFocus()
}

// Duration returns the full session length.
func (preset SessionPreset) Duration() time.Duration {
	return time.Duration(preset.DurationInMinutes) * time.Minute
}
