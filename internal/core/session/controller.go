package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"finpom/internal/core/countdown"
	"finpom/internal/core/model"
	"finpom/internal/core/plan"
	"finpom/internal/core/scheduler"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var (
	// ErrEmptyDuration indicates a start request totalling zero seconds or less.
	ErrEmptyDuration = errors.New("duration must be greater than zero")
	// ErrInvalidWorkHours indicates a preset selection that is not a positive hour count.
	ErrInvalidWorkHours = errors.New("work hours must be greater than zero")
)

// Config contains runtime options for the Controller.
type Config struct {
	WorkHours        int
	ReminderInterval time.Duration
	Clock            clockwork.Clock
}

type activeSession struct {
	id     string
	preset model.SessionPreset
	endsAt time.Time
}

// Controller walks the start/break/focus cycle and owns the notification
// plan of the current multi-hour session. It is not safe for concurrent use;
// all calls must come from the engine's dispatch context.
type Controller struct {
	engine    *countdown.Engine
	scheduler *scheduler.Scheduler
	options   Config
	session   *activeSession
}

// Transition returns the phase entered by the next start action.
func Transition(phase model.Phase) model.Phase {
	switch phase {
	case model.PhaseBreakTime:
		return model.PhaseFocus
	default:
		return model.PhaseBreakTime
	}
}

// NextLabel returns the caption of the start action for a phase.
func NextLabel(phase model.Phase) string {
	switch phase {
	case model.PhaseBreakTime:
		return "Break"
	case model.PhaseFocus:
		return "Focus"
	default:
		return "Start"
	}
}

// Headline returns the title shown above the timer for a phase.
func Headline(phase model.Phase) string {
	switch phase {
	case model.PhaseBreakTime:
		return "Focus Time📚"
	case model.PhaseFocus:
		return "Break Time🏝️"
	default:
		return "Focus"
	}
}

// New creates a Controller and subscribes it to engine completions.
func New(engine *countdown.Engine, scheduler *scheduler.Scheduler, options Config) *Controller {
	if options.WorkHours <= 0 {
		options.WorkHours = model.DefaultSettings().WorkHours
	}
	if options.ReminderInterval <= 0 {
		options.ReminderInterval = model.DefaultSettings().ReminderInterval
	}
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}
	controller := &Controller{
		engine:    engine,
		scheduler: scheduler,
		options:   options,
	}
	engine.Observe(controller.handleEvent)
	return controller
}

// RequestStart starts a countdown of the given length and moves to the next phase.
func (controller *Controller) RequestStart(hours, minutes, seconds int) error {
	total := model.TotalSeconds(hours, minutes, seconds)
	if total <= 0 {
		return ErrEmptyDuration
	}

	current := controller.engine.State().Phase
	controller.engine.SetPhase(Transition(current))
	if current == model.PhaseStart {
		controller.engine.SetAcknowledged(true)
	}
	controller.engine.Start(total)
	if current != model.PhaseStart {
		return nil
	}

	sessionID := controller.ensureSession()
	controller.scheduler.Submit(sessionID, plan.ManualPlans(hours, minutes, seconds))
	return nil
}

// SelectWorkHoursPreset records the work hours used by the next session plan
// and starts a countdown of that many hours.
func (controller *Controller) SelectWorkHoursPreset(hours int) (model.SessionPreset, error) {
	if hours <= 0 {
		return model.SessionPreset{}, fmt.Errorf("select %d hours: %w", hours, ErrInvalidWorkHours)
	}
	controller.options.WorkHours = hours
	preset := model.PresetForWorkHours(hours)
	controller.engine.Start(model.TotalSeconds(hours, 0, 0))
	return preset, nil
}

// StartMiniSession starts a one-minute countdown without changing phase.
func (controller *Controller) StartMiniSession() {
	controller.engine.SetAcknowledged(true)
	controller.engine.Start(model.TotalSeconds(0, 1, 0))
}

// Reset stops the countdown, drops every pending notification of the session
// and forgets that the user started it.
func (controller *Controller) Reset() {
	controller.engine.Reset()
	controller.engine.SetAcknowledged(false)
	if controller.session != nil {
		controller.scheduler.CancelSession(controller.session.id)
		controller.session = nil
	}
}

// State returns the shared countdown state.
func (controller *Controller) State() model.CountdownState {
	return controller.engine.State()
}

// NextLabel returns the caption of the start action.
func (controller *Controller) NextLabel() string {
	return NextLabel(controller.engine.State().Phase)
}

// Headline returns the title shown above the timer.
func (controller *Controller) Headline() string {
	return Headline(controller.engine.State().Phase)
}

// WorkHours returns the work hours used for the next session plan.
func (controller *Controller) WorkHours() int {
	return controller.options.WorkHours
}

// SessionID returns the id of the active multi-hour session, if any.
func (controller *Controller) SessionID() string {
	if controller.session == nil {
		return ""
	}
	return controller.session.id
}

// ensureSession returns the active session id, beginning a new session when
// none is active, the previous one has run its full duration, or another
// work-hours preset was selected since it began.
func (controller *Controller) ensureSession() string {
	now := controller.options.Clock.Now()
	preset := model.PresetForWorkHours(controller.options.WorkHours)
	if current := controller.session; current != nil {
		if now.Before(current.endsAt) && current.preset == preset {
			return current.id
		}
		controller.scheduler.CancelSession(current.id)
	}

	controller.session = &activeSession{
		id:     uuid.NewString(),
		preset: preset,
		endsAt: now.Add(preset.Duration()),
	}
	sessionID := controller.session.id

	events, err := plan.PlanSessionNotifications(preset)
	if err != nil {
		log.Printf("session %s: %v", sessionID, err)
		return sessionID
	}
	controller.scheduler.Submit(sessionID, events)
	controller.scheduler.ScheduleReminders(sessionID, controller.options.ReminderInterval, preset.Duration(), func() bool {
		return !controller.engine.State().Acknowledged
	})
	return sessionID
}

func (controller *Controller) handleEvent(event countdown.Event) {
	if event.Type != countdown.EventCompleted {
		return
	}
	controller.scheduler.Deliver(plan.CompletionBanner())
}
