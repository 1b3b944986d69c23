package scheduler

import (
	"log"
	"sync"
	"time"

	"finpom/internal/core/plan"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Notifier delivers a notification immediately.
type Notifier interface {
	Notify(title, body string) error
}

// Config contains runtime options for the Scheduler.
type Config struct {
	Clock clockwork.Clock
	// Dispatch runs fired tasks on the owner's execution context.
	// Nil runs them on the timer goroutine.
	Dispatch func(func())
}

type task struct {
	timer    clockwork.Timer
	deadline time.Time
}

// Scheduler delivers plan events after their delay. Pending tasks are grouped
// by session id so a whole session can be cancelled at once, and keyed by
// event id within a session.
type Scheduler struct {
	mu       sync.Mutex
	notifier Notifier
	options  Config
	sessions map[string]map[string]*task
}

// New creates a Scheduler delivering through notifier.
func New(notifier Notifier, options Config) *Scheduler {
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}
	if options.Dispatch == nil {
		options.Dispatch = func(callback func()) { callback() }
	}
	return &Scheduler{
		notifier: notifier,
		options:  options,
		sessions: make(map[string]map[string]*task),
	}
}

// Deliver sends an event right away, ignoring its delay.
func (scheduler *Scheduler) Deliver(event plan.ScheduledEvent) {
	if err := scheduler.notifier.Notify(event.Title, event.Body); err != nil {
		log.Printf("notification %q failed: %v", event.Title, err)
	}
}

// Submit schedules every event under sessionID. Submitting an event id that
// is still pending replaces it.
func (scheduler *Scheduler) Submit(sessionID string, events []plan.ScheduledEvent) {
	for _, event := range events {
		scheduler.submit(sessionID, event)
	}
}

// ScheduleReminders evaluates shouldRemind at every interval over duration and
// submits a reminder event each time it reports true. It returns the number of
// checks scheduled.
func (scheduler *Scheduler) ScheduleReminders(sessionID string, interval, duration time.Duration, shouldRemind func() bool) int {
	offsets := plan.ReminderOffsets(interval, duration)
	for _, offset := range offsets {
		scheduler.after(sessionID, uuid.NewString(), offset, func() {
			if shouldRemind() {
				scheduler.submit(sessionID, plan.Reminder())
			}
		})
	}
	return len(offsets)
}

// CancelSession stops every pending task of sessionID and returns how many were stopped.
func (scheduler *Scheduler) CancelSession(sessionID string) int {
	scheduler.mu.Lock()
	tasks := scheduler.sessions[sessionID]
	delete(scheduler.sessions, sessionID)
	scheduler.mu.Unlock()

	stopped := 0
	for _, pending := range tasks {
		if pending.timer.Stop() {
			stopped++
		}
	}
	if stopped > 0 {
		log.Printf("session %s: cancelled %d pending notifications", sessionID, stopped)
	}
	return stopped
}

// CancelAll stops every pending task.
func (scheduler *Scheduler) CancelAll() {
	scheduler.mu.Lock()
	sessionIDs := make([]string, 0, len(scheduler.sessions))
	for sessionID := range scheduler.sessions {
		sessionIDs = append(sessionIDs, sessionID)
	}
	scheduler.mu.Unlock()

	for _, sessionID := range sessionIDs {
		scheduler.CancelSession(sessionID)
	}
}

// Pending returns the number of tasks of sessionID that have not finished.
func (scheduler *Scheduler) Pending(sessionID string) int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.sessions[sessionID])
}

// Due returns the number of tasks whose time has come but that have not
// finished running yet.
func (scheduler *Scheduler) Due() int {
	now := scheduler.options.Clock.Now()
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	due := 0
	for _, tasks := range scheduler.sessions {
		for _, pending := range tasks {
			if !pending.deadline.After(now) {
				due++
			}
		}
	}
	return due
}

func (scheduler *Scheduler) submit(sessionID string, event plan.ScheduledEvent) {
	scheduler.after(sessionID, event.ID, event.Delay, func() {
		scheduler.Deliver(event)
	})
	log.Printf("notification scheduled: %s in %s", event.Title, event.Delay)
}

func (scheduler *Scheduler) after(sessionID, taskID string, delay time.Duration, run func()) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	tasks, ok := scheduler.sessions[sessionID]
	if !ok {
		tasks = make(map[string]*task)
		scheduler.sessions[sessionID] = tasks
	}
	if previous, ok := tasks[taskID]; ok {
		previous.timer.Stop()
	}
	pending := &task{deadline: scheduler.options.Clock.Now().Add(delay)}
	tasks[taskID] = pending
	pending.timer = scheduler.options.Clock.AfterFunc(delay, func() {
		scheduler.options.Dispatch(func() {
			if !scheduler.current(sessionID, taskID, pending) {
				return
			}
			run()
			scheduler.finish(sessionID, taskID, pending)
		})
	})
}

// current reports whether the task is still the pending one for its id.
func (scheduler *Scheduler) current(sessionID, taskID string, pending *task) bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.sessions[sessionID][taskID] == pending
}

func (scheduler *Scheduler) finish(sessionID, taskID string, pending *task) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	tasks, ok := scheduler.sessions[sessionID]
	if !ok || tasks[taskID] != pending {
		return
	}
	delete(tasks, taskID)
	if len(tasks) == 0 {
		delete(scheduler.sessions, sessionID)
	}
}
