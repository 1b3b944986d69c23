package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetForWorkHoursCurated(t *testing.T) {
	cases := map[int]SessionPreset{
		4: {DurationInMinutes: 240, Sessions: 8},
		5: {DurationInMinutes: 300, Sessions: 10},
		6: {DurationInMinutes: 360, Sessions: 12},
		7: {DurationInMinutes: 420, Sessions: 14},
		8: {DurationInMinutes: 480, Sessions: 16},
	}
	for hours, want := range cases {
		preset := PresetForWorkHours(hours)
		assert.Equal(t, want, preset, "hours=%d", hours)
		assert.Equal(t, 5.0, preset.BreakMinutesPerSession(), "hours=%d", hours)
	}
}

func TestPresetForWorkHoursFallback(t *testing.T) {
	preset := PresetForWorkHours(3)
	require.Equal(t, SessionPreset{DurationInMinutes: 180, Sessions: 6}, preset)
	assert.Equal(t, 150, preset.TotalFocus())
	assert.Equal(t, 30, preset.TotalBreak())
	assert.Equal(t, 3*time.Hour, preset.Duration())
}

func TestPresetForWorkHoursDeterministic(t *testing.T) {
	for hours := -2; hours <= 12; hours++ {
		assert.Equal(t, PresetForWorkHours(hours), PresetForWorkHours(hours))
	}
}

func TestPresetWithoutSessionsHasNoBreak(t *testing.T) {
	preset := PresetForWorkHours(0)
	require.Equal(t, 0, preset.Sessions)
	assert.Equal(t, 0.0, preset.BreakMinutesPerSession())
}

func TestSplitSeconds(t *testing.T) {
	hours, minutes, seconds := SplitSeconds(3*3600 + 25*60 + 7)
	assert.Equal(t, []int{3, 25, 7}, []int{hours, minutes, seconds})

	hours, minutes, seconds = SplitSeconds(-5)
	assert.Equal(t, []int{0, 0, 0}, []int{hours, minutes, seconds})

	assert.Equal(t, 2700, TotalSeconds(0, 45, 0))
	assert.Equal(t, "1:02:03", FormatClock(3723))
}

func TestSettingsNormalize(t *testing.T) {
	settings := Settings{WorkHours: -1, Notifications: false}.Normalize()
	defaults := DefaultSettings()
	assert.Equal(t, defaults.WorkHours, settings.WorkHours)
	assert.Equal(t, defaults.ReminderInterval, settings.ReminderInterval)
	assert.Equal(t, defaults.TickInterval, settings.TickInterval)
	assert.False(t, settings.Notifications)
}
