package automaton

import (
	"time"

	"github.com/aretw0/automata/pkg/domain"
)

// activate marks s active and eagerly propagates through epsilon transitions.
// States already activated in the current pass are skipped, which bounds the walk
// on epsilon cycles.
func (a *Automaton) activate(s *State, reason string) {
	stack := []*State{s}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.newlyActivated {
			continue
		}
		top.active, top.newlyActivated = true, true
		a.logger.Debug("activate", "state", top.name, "reason", reason)
		a.emitState(domain.EventActivate, a.cfg.hooks.OnActivate, top, reason)

		eps := top.transitions[domain.Epsilon]
		for i := len(eps) - 1; i >= 0; i-- {
			if !eps[i].newlyActivated {
				stack = append(stack, eps[i])
			}
		}
	}
}

func (a *Automaton) deactivate(s *State, reason string) {
	s.active, s.newlyActivated = false, false
	a.logger.Debug("deactivate", "state", s.name, "reason", reason)
	a.emitState(domain.EventDeactivate, a.cfg.hooks.OnDeactivate, s, reason)
}

func (a *Automaton) resetNewActivations() {
	for _, s := range a.states {
		s.newlyActivated = false
	}
}

func (a *Automaton) emitState(kind domain.EventType, hook func(*domain.StateEvent), s *State, reason string) {
	if hook == nil {
		return
	}
	hook(&domain.StateEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: kind, Automaton: a.name},
		State:     s.name,
		Reason:    reason,
	})
}

func (a *Automaton) activeStates() []*State {
	var out []*State
	for _, s := range a.states {
		if s.active {
			out = append(out, s)
		}
	}
	return out
}

// ActiveStates returns the current configuration in Q order.
func (a *Automaton) ActiveStates() []*State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.activeStates()
}

// ActiveNames returns the names of the active states, sorted lexicographically.
func (a *Automaton) ActiveNames() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return sortedNames(a.activeStates())
}

// Transition consumes one symbol from every active state.
// A symbol outside the alphabet yields a *domain.UnknownSymbolError and leaves the
// configuration untouched.
func (a *Automaton) Transition(symbol domain.Symbol) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.transition(symbol)
}

func (a *Automaton) transition(symbol domain.Symbol) error {
	if !a.InAlphabet(symbol) {
		return &domain.UnknownSymbolError{Automaton: a.name, Symbol: symbol}
	}
	a.logger.Debug("transition", "symbol", string(symbol))

	// Dead states go first.
	for _, s := range a.activeStates() {
		if !s.HasTransition(symbol) {
			a.deactivate(s, "no transition")
		}
	}

	// The snapshot fixes which sources fire during this step.
	for _, s := range a.activeStates() {
		targets := s.transitions[symbol]
		if len(targets) > 0 && !s.newlyActivated {
			a.deactivate(s, "transition")
		}
		a.logger.Debug("targets", "symbol", string(symbol), "state", s.name, "targets", names(targets))
		for _, t := range targets {
			if !t.newlyActivated {
				a.activate(t, "transition")
			}
		}
	}

	a.resetNewActivations()

	if hook := a.cfg.hooks.OnStep; hook != nil {
		hook(&domain.StepEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStep, Automaton: a.name},
			Symbol:    symbol,
			Active:    sortedNames(a.activeStates()),
			Accepted:  a.isAccepted(),
		})
	}
	return nil
}

// Feed consumes the symbols in order, stopping at the first unknown symbol.
func (a *Automaton) Feed(symbols ...domain.Symbol) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, symbol := range symbols {
		if err := a.transition(symbol); err != nil {
			return err
		}
	}
	return nil
}

// IsAccepted reports whether any active state is accepting.
func (a *Automaton) IsAccepted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isAccepted()
}

func (a *Automaton) isAccepted() bool {
	for _, f := range a.accepting {
		if f.active {
			return true
		}
	}
	return false
}

// Reset restores the initial configuration: q0 and its epsilon closure.
func (a *Automaton) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reset()
}

func (a *Automaton) reset() {
	for _, s := range a.states {
		if s.active {
			a.deactivate(s, "reset")
		}
		s.newlyActivated = false
	}
	a.activate(a.initial, "reset")
	a.resetNewActivations()
}

// Accepts resets the automaton, consumes word and reports acceptance.
// The configuration reached by word is left in place.
func (a *Automaton) Accepts(word []domain.Symbol) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reset()
	for _, symbol := range word {
		if err := a.transition(symbol); err != nil {
			return false, err
		}
	}
	return a.isAccepted(), nil
}

// Run is like Accepts but records the configuration after every symbol.
func (a *Automaton) Run(word []domain.Symbol) (*domain.Trace, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reset()

	trace := &domain.Trace{
		Automaton: a.name,
		Input:     domain.Word(word),
		Initial:   sortedNames(a.activeStates()),
		Steps:     make([]domain.Step, 0, len(word)),
	}
	for _, symbol := range word {
		if err := a.transition(symbol); err != nil {
			return nil, err
		}
		trace.Steps = append(trace.Steps, domain.Step{
			Symbol: symbol,
			Active: sortedNames(a.activeStates()),
		})
	}
	trace.Accepted = a.isAccepted()
	return trace, nil
}
