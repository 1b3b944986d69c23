package countdown

import (
	"sync"
	"time"

	"finpom/internal/core/model"
)

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
	// Dispatch runs tick callbacks on the owner's execution context.
	// Nil runs them on the ticker goroutine.
	Dispatch func(func())
}

// Engine drives a single countdown, one decrement per tick.
type Engine struct {
	mu         sync.Mutex
	options    Config
	state      model.CountdownState
	generation int
	stopCh     chan struct{}
	events     []chan Event
	observers  []func(Event)
	closed     bool
}

// Advance computes the next state for one tick.
func Advance(state model.CountdownState) (model.CountdownState, Signal) {
	if !state.Running {
		return state, SignalNone
	}
	state.RemainingSeconds--
	if state.RemainingSeconds <= 0 {
		state.RemainingSeconds = 0
		state.Running = false
		state.Phase = model.PhaseStart
		return state, SignalCompleted
	}
	return state, SignalUpdated
}

// New creates an idle Engine.
func New(options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Dispatch == nil {
		options.Dispatch = func(callback func()) { callback() }
	}
	return &Engine{
		options: options,
		state:   model.IdleState(),
	}
}

// Observe registers a callback invoked for every event on the dispatch context.
func (engine *Engine) Observe(observer func(Event)) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.observers = append(engine.observers, observer)
}

// Subscribe registers a new observer channel. Events are dropped when it is full.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	if engine.closed {
		close(ch)
	} else {
		engine.events = append(engine.events, ch)
	}
	engine.mu.Unlock()
	return ch
}

// State returns a copy of the current countdown state.
func (engine *Engine) State() model.CountdownState {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

// Start begins a countdown of totalSeconds, replacing any running one.
// It reports false and changes nothing when totalSeconds is not positive.
func (engine *Engine) Start(totalSeconds int) bool {
	if totalSeconds <= 0 {
		return false
	}

	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return false
	}
	engine.stopLocked()
	engine.state.Running = true
	engine.state.RemainingSeconds = totalSeconds
	engine.generation++
	generation := engine.generation
	stopCh := make(chan struct{})
	engine.stopCh = stopCh
	event := newEvent(EventStarted, engine.state, time.Now())
	engine.mu.Unlock()

	go engine.run(generation, stopCh)
	engine.emit(event)
	return true
}

// Tick advances the running countdown by one second.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	generation := engine.generation
	engine.mu.Unlock()
	engine.tick(generation)
}

// Cancel stops ticking and keeps the remaining time.
func (engine *Engine) Cancel() {
	engine.mu.Lock()
	if !engine.state.Running {
		engine.mu.Unlock()
		return
	}
	engine.stopLocked()
	engine.state.Running = false
	event := newEvent(EventCancelled, engine.state, time.Now())
	engine.mu.Unlock()

	engine.emit(event)
}

// Reset stops ticking and returns to the idle state. It does nothing when
// the engine is already idle.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	idle := model.IdleState()
	idle.Acknowledged = engine.state.Acknowledged
	if engine.state == idle {
		engine.mu.Unlock()
		return
	}
	engine.stopLocked()
	engine.state = idle
	event := newEvent(EventCancelled, engine.state, time.Now())
	engine.mu.Unlock()

	engine.emit(event)
}

// SetPhase records the session controller phase.
func (engine *Engine) SetPhase(phase model.Phase) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.state.Phase = phase
}

// SetAcknowledged records whether the user has started a countdown.
func (engine *Engine) SetAcknowledged(acknowledged bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.state.Acknowledged = acknowledged
}

// Close stops ticking and closes subscriber channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	engine.stopLocked()
	engine.state.Running = false
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) run(generation int, stopCh chan struct{}) {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			engine.options.Dispatch(func() {
				engine.tick(generation)
			})
		}
	}
}

func (engine *Engine) tick(generation int) {
	engine.mu.Lock()
	if generation != engine.generation {
		engine.mu.Unlock()
		return
	}
	next, signal := Advance(engine.state)
	if signal == SignalNone {
		engine.mu.Unlock()
		return
	}
	engine.state = next

	eventType := EventUpdated
	if signal == SignalCompleted {
		eventType = EventCompleted
		engine.stopLocked()
	}
	event := newEvent(eventType, engine.state, time.Now())
	engine.mu.Unlock()

	engine.emit(event)
}

func (engine *Engine) stopLocked() {
	if engine.stopCh != nil {
		close(engine.stopCh)
		engine.stopCh = nil
	}
}

func (engine *Engine) emit(event Event) {
	engine.mu.Lock()
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
	observers := append([]func(Event){}, engine.observers...)
	engine.mu.Unlock()

	for _, observer := range observers {
		observer(event)
	}
}
