package automaton

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// State is a single automaton vertex.
type State struct {
	name string

	// transitions maps a symbol to its ordered targets; symbols keeps insertion order.
	transitions map[domain.Symbol][]*State
	symbols     []domain.Symbol

	// members holds the NFA states a determinized state stands for.
	members []*State

	owner *Automaton
	index int

	active         bool
	newlyActivated bool
}

// NewState creates a detached state with no transitions.
func NewState(name string) *State {
	return &State{
		name:        name,
		transitions: make(map[domain.Symbol][]*State),
		index:       -1,
	}
}

// Name returns the state label.
func (s *State) Name() string {
	return s.name
}

// AddTransition appends targets reachable from s on symbol.
// Calling it with no targets is a no-op. It fails once s is owned by an Automaton.
func (s *State) AddTransition(symbol domain.Symbol, targets ...*State) error {
	if s.owner != nil {
		return &domain.PreconditionError{
			Op:     "add transition",
			Reason: fmt.Sprintf("state %q is sealed by automaton %q", s.name, s.owner.name),
		}
	}
	for _, t := range targets {
		if t == nil {
			return &domain.PreconditionError{
				Op:     "add transition",
				Reason: fmt.Sprintf("nil target on %q from state %q", string(symbol), s.name),
			}
		}
	}
	s.link(symbol, targets...)
	return nil
}

func (s *State) link(symbol domain.Symbol, targets ...*State) {
	if len(targets) == 0 {
		return
	}
	if _, ok := s.transitions[symbol]; !ok {
		s.symbols = append(s.symbols, symbol)
	}
	s.transitions[symbol] = append(s.transitions[symbol], targets...)
}

// Targets returns a copy of the targets reachable on symbol.
// An absent symbol yields nil and never creates an entry.
func (s *State) Targets(symbol domain.Symbol) []*State {
	targets, ok := s.transitions[symbol]
	if !ok {
		return nil
	}
	return append([]*State(nil), targets...)
}

// HasTransition reports whether symbol labels at least one outgoing edge.
func (s *State) HasTransition(symbol domain.Symbol) bool {
	_, ok := s.transitions[symbol]
	return ok
}

// Symbols lists the outgoing symbols in insertion order.
func (s *State) Symbols() []domain.Symbol {
	return append([]domain.Symbol(nil), s.symbols...)
}

// IsActive reports whether s is part of the current configuration.
func (s *State) IsActive() bool {
	return s.active
}

// Members returns the NFA states a DFA state was built from, or nil.
func (s *State) Members() []*State {
	return append([]*State(nil), s.members...)
}

func (s *State) String() string {
	var sb strings.Builder
	sb.WriteString(s.name)
	sb.WriteString(":\n")
	for _, symbol := range s.symbols {
		sb.WriteString(fmt.Sprintf(" %s: %v\n", symbol, names(s.transitions[symbol])))
	}
	return sb.String()
}

func names(states []*State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.name
	}
	return out
}
