package plan

import (
	"errors"
	"fmt"
	"time"

	"finpom/internal/core/model"

	"github.com/google/uuid"
)

var (
	// ErrDegeneratePreset indicates a preset without any focus/break cycle.
	ErrDegeneratePreset = errors.New("preset has no sessions")
	// ErrOverbookedPreset indicates a preset whose focus blocks exceed its duration.
	ErrOverbookedPreset = errors.New("preset focus time exceeds duration")
)

// ScheduledEvent is a notification to deliver after Delay.
type ScheduledEvent struct {
	ID    string
	Title string
	Body  string
	Delay time.Duration
}

func newEvent(title, body string, delay time.Duration) ScheduledEvent {
	return ScheduledEvent{
		ID:    uuid.NewString(),
		Title: title,
		Body:  body,
		Delay: delay,
	}
}

// PlanSessionNotifications returns the focus/break notifications for a preset,
// ordered by delay and followed by a single completion event.
func PlanSessionNotifications(preset model.SessionPreset) ([]ScheduledEvent, error) {
	if preset.Sessions <= 0 {
		return nil, fmt.Errorf("plan %d minutes: %w", preset.DurationInMinutes, ErrDegeneratePreset)
	}
	if preset.TotalBreak() < 0 {
		return nil, fmt.Errorf("plan %d minutes in %d sessions: %w", preset.DurationInMinutes, preset.Sessions, ErrOverbookedPreset)
	}

	focus := time.Duration(model.FocusMinutesPerSession) * time.Minute
	breakMinutes := preset.BreakMinutesPerSession()
	// The cadence uses whole break minutes while the body shows one decimal.
	cycle := time.Duration(model.FocusMinutesPerSession+int(breakMinutes)) * time.Minute
	breakBody := fmt.Sprintf("Take a %.1f-minute break!", breakMinutes)

	events := make([]ScheduledEvent, 0, 2*preset.Sessions+1)
	for i := 0; i < preset.Sessions; i++ {
		sessionStart := time.Duration(i) * cycle
		events = append(events,
			newEvent(fmt.Sprintf("Focus Session %d", i+1), "Start your focus session now!", sessionStart),
			newEvent("Break Time", breakBody, sessionStart+focus),
		)
	}
	events = append(events, newEvent(
		"All Sessions Complete 🎉",
		"You've completed all your sessions. Great job!",
		preset.Duration(),
	))
	return events, nil
}

// OneMinutePlan returns the extra notification for a manual one-minute input.
func OneMinutePlan(hours, minutes, seconds int) []ScheduledEvent {
	if model.TotalSeconds(hours, minutes, seconds) != 60 {
		return nil
	}
	return []ScheduledEvent{
		newEvent("1 Minute Focus", "You’ve entered a 1-minute session. Make the most of it!", time.Minute),
	}
}

// FortyFiveMinutePlan returns the fixed notifications for a manual 0:45:00 input.
func FortyFiveMinutePlan(hours, minutes, seconds int) []ScheduledEvent {
	if hours != 0 || minutes != 45 || seconds != 0 {
		return nil
	}
	return []ScheduledEvent{
		newEvent("Let’s Focus 📚", "Time to focus. One task at a time!", 2700*time.Second),
		newEvent("Let’s Break 💆🏼‍♀️", "Enjoy your break, now it’s time to recharge!", 2730*time.Second),
		newEvent("YOU DID IT 🎊", "Great work! You've completed your 45-minute focus session!", 2760*time.Second),
	}
}

// ManualPlans returns every single-shot plan matching a raw manual input.
func ManualPlans(hours, minutes, seconds int) []ScheduledEvent {
	events := OneMinutePlan(hours, minutes, seconds)
	return append(events, FortyFiveMinutePlan(hours, minutes, seconds)...)
}

// ReminderOffsets returns the check times of a periodic reminder.
func ReminderOffsets(interval, duration time.Duration) []time.Duration {
	if interval <= 0 || duration < interval {
		return nil
	}
	repeats := int(duration / interval)
	offsets := make([]time.Duration, repeats)
	for i := range offsets {
		offsets[i] = time.Duration(i+1) * interval
	}
	return offsets
}

// Reminder returns the "session not started" notification.
func Reminder() ScheduledEvent {
	return newEvent("Ingat Waktunya", "Kamu belum memulai sesi. Ayo mulai sekarang untuk tetap produktif!", time.Second)
}

// CompletionBanner returns the notification shown when a countdown reaches zero.
func CompletionBanner() ScheduledEvent {
	return newEvent("YOU DID IT🎉", "TENGGO, TENGGO, TENGGO.", 0)
}
