package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventActivate   EventType = "activate"
	EventDeactivate EventType = "deactivate"
	EventStep       EventType = "step"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Automaton string    `json:"automaton"`
}

// StateEvent represents a state entering or leaving the active configuration.
type StateEvent struct {
	EventBase
	State  string `json:"state"`
	Reason string `json:"reason,omitempty"`
}

// StepEvent is emitted once a symbol has been fully consumed.
type StepEvent struct {
	EventBase
	Symbol   Symbol   `json:"symbol"`
	Active   []string `json:"active"`
	Accepted bool     `json:"accepted"`
}

// LifecycleHooks defines callbacks for simulation observability.
// Hooks run synchronously while the automaton is locked and must not call back into it.
type LifecycleHooks struct {
	OnActivate   func(*StateEvent)
	OnDeactivate func(*StateEvent)
	OnStep       func(*StepEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnActivate:   chainState(h.OnActivate, other.OnActivate),
		OnDeactivate: chainState(h.OnDeactivate, other.OnDeactivate),
		OnStep:       chainStep(h.OnStep, other.OnStep),
	}
}

func chainState(a, b func(*StateEvent)) func(*StateEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(e *StateEvent) {
		a(e)
		b(e)
	}
}

func chainStep(a, b func(*StepEvent)) func(*StepEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(e *StepEvent) {
		a(e)
		b(e)
	}
}
