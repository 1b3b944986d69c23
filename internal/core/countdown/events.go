package countdown

import (
	"time"

	"finpom/internal/core/model"
)

// Signal is the outcome of a single countdown transition.
type Signal int

const (
	SignalNone Signal = iota
	SignalUpdated
	SignalCompleted
)

// EventType defines the type of countdown event.
type EventType string

const (
	EventStarted   EventType = "started"
	EventUpdated   EventType = "updated"
	EventCompleted EventType = "completed"
	EventCancelled EventType = "cancelled"
)

// Event is a countdown snapshot for observers.
type Event struct {
	Type    EventType
	State   model.CountdownState
	Hours   int
	Minutes int
	Seconds int
	At      time.Time
}

func newEvent(eventType EventType, state model.CountdownState, at time.Time) Event {
	hours, minutes, seconds := model.SplitSeconds(state.RemainingSeconds)
	return Event{
		Type:    eventType,
		State:   state,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
		At:      at,
	}
}
