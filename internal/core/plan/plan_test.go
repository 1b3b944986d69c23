package plan

import (
	"errors"
	"testing"
	"time"

	"finpom/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSessionNotificationsFourHours(t *testing.T) {
	events, err := PlanSessionNotifications(model.PresetForWorkHours(4))
	require.NoError(t, err)
	require.Len(t, events, 17)

	assert.Equal(t, "Focus Session 1", events[0].Title)
	assert.Equal(t, time.Duration(0), events[0].Delay)
	assert.Equal(t, "Break Time", events[1].Title)
	assert.Equal(t, 1500*time.Second, events[1].Delay)
	assert.Equal(t, "Take a 5.0-minute break!", events[1].Body)
	assert.Equal(t, "Focus Session 2", events[2].Title)
	assert.Equal(t, 1800*time.Second, events[2].Delay)

	last := events[len(events)-1]
	assert.Contains(t, last.Title, "All Sessions Complete")
	assert.Equal(t, 14400*time.Second, last.Delay)
}

func TestPlanSessionNotificationsCountAndOrder(t *testing.T) {
	for hours := 1; hours <= 10; hours++ {
		preset := model.PresetForWorkHours(hours)
		events, err := PlanSessionNotifications(preset)
		require.NoError(t, err)
		require.Len(t, events, 2*preset.Sessions+1)
		assert.Equal(t, preset.Duration(), events[len(events)-1].Delay)

		seen := map[string]bool{}
		for i, event := range events {
			assert.False(t, seen[event.ID], "duplicate id")
			seen[event.ID] = true
			if i > 0 {
				assert.GreaterOrEqual(t, event.Delay, events[i-1].Delay, "hours=%d index=%d", hours, i)
			}
		}
	}
}

func TestPlanSessionNotificationsTruncatesBreakCadence(t *testing.T) {
	// 25 break minutes over 3 cycles: 8.33 shown, 8 used for the cadence.
	events, err := PlanSessionNotifications(model.SessionPreset{DurationInMinutes: 100, Sessions: 3})
	require.NoError(t, err)

	assert.Equal(t, "Take a 8.3-minute break!", events[1].Body)
	assert.Equal(t, 33*time.Minute, events[2].Delay)
	assert.Equal(t, 66*time.Minute, events[4].Delay)
	assert.Equal(t, 100*time.Minute, events[6].Delay)
}

func TestPlanSessionNotificationsRejectsDegeneratePresets(t *testing.T) {
	_, err := PlanSessionNotifications(model.PresetForWorkHours(0))
	assert.True(t, errors.Is(err, ErrDegeneratePreset))

	_, err = PlanSessionNotifications(model.SessionPreset{DurationInMinutes: 30, Sessions: 2})
	assert.True(t, errors.Is(err, ErrOverbookedPreset))
}

func TestManualPlans(t *testing.T) {
	oneMinute := ManualPlans(0, 1, 0)
	require.Len(t, oneMinute, 1)
	assert.Equal(t, time.Minute, oneMinute[0].Delay)
	assert.Len(t, ManualPlans(0, 0, 60), 1)

	fortyFive := ManualPlans(0, 45, 0)
	require.Len(t, fortyFive, 3)
	assert.Equal(t, 2700*time.Second, fortyFive[0].Delay)
	assert.Equal(t, 2730*time.Second, fortyFive[1].Delay)
	assert.Equal(t, 2760*time.Second, fortyFive[2].Delay)

	assert.Empty(t, ManualPlans(0, 44, 60))
	assert.Empty(t, ManualPlans(0, 25, 0))
}

func TestReminderOffsets(t *testing.T) {
	offsets := ReminderOffsets(5*time.Minute, 17*time.Minute)
	assert.Equal(t, []time.Duration{5 * time.Minute, 10 * time.Minute, 15 * time.Minute}, offsets)
	assert.Empty(t, ReminderOffsets(0, time.Hour))
	assert.Empty(t, ReminderOffsets(time.Hour, time.Minute))
}

func TestFixedEvents(t *testing.T) {
	banner := CompletionBanner()
	assert.Equal(t, "YOU DID IT🎉", banner.Title)
	assert.Equal(t, "TENGGO, TENGGO, TENGGO.", banner.Body)
	assert.Equal(t, time.Duration(0), banner.Delay)
	assert.Equal(t, time.Second, Reminder().Delay)
}
