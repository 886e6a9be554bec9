package automaton

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/automata/pkg/domain"
)

// Automaton is a finite automaton over a fixed state set Q, alphabet Sigma,
// initial state q0 and accepting set F.
//
// An Automaton is safe for concurrent use, but every simulation call mutates the one
// shared configuration; callers wanting independent runs should build separate automata.
type Automaton struct {
	name      string
	states    []*State
	byName    map[string]*State
	alphabet  []domain.Symbol
	sigma     map[domain.Symbol]struct{}
	initial   *State
	accepting []*State
	final     map[*State]struct{}

	cfg    config
	logger *slog.Logger
	mu     sync.Mutex
}

// New validates the graph, seals its states and activates the initial configuration.
// Any violation yields a *domain.StructuralError and no automaton.
func New(name string, states []*State, alphabet []domain.Symbol, initial *State, accepting []*State, opts ...Option) (*Automaton, error) {
	cfg := newConfig(opts)
	a := &Automaton{
		name:     name,
		byName:   make(map[string]*State, len(states)),
		sigma:    make(map[domain.Symbol]struct{}, len(alphabet)),
		final:    make(map[*State]struct{}, len(accepting)),
		cfg:      cfg,
		logger:   cfg.logger.With("automaton", name),
		alphabet: append([]domain.Symbol(nil), alphabet...),
	}

	if err := a.validate(states, initial, accepting); err != nil {
		return nil, err
	}

	a.states = append([]*State(nil), states...)
	a.initial = initial
	for i, s := range a.states {
		s.owner = a
		s.index = i
		s.active, s.newlyActivated = false, false
	}
	for _, f := range accepting {
		if _, dup := a.final[f]; dup {
			continue
		}
		a.final[f] = struct{}{}
		a.accepting = append(a.accepting, f)
	}

	a.mu.Lock()
	a.activate(a.initial, "init")
	a.resetNewActivations()
	a.mu.Unlock()

	return a, nil
}

func (a *Automaton) structural(reason string) *domain.StructuralError {
	return &domain.StructuralError{Automaton: a.name, Reason: reason}
}

func (a *Automaton) validate(states []*State, initial *State, accepting []*State) error {
	if len(states) == 0 {
		return a.structural("state set is empty")
	}

	for _, symbol := range a.alphabet {
		if symbol.IsEpsilon() {
			return &domain.StructuralError{Automaton: a.name, Symbol: symbol, Reason: "epsilon cannot be part of the alphabet"}
		}
		if symbol == "" {
			return a.structural("empty symbol in alphabet")
		}
		if _, dup := a.sigma[symbol]; dup {
			return &domain.StructuralError{Automaton: a.name, Symbol: symbol, Reason: "duplicate alphabet symbol"}
		}
		a.sigma[symbol] = struct{}{}
	}

	owned := make(map[*State]struct{}, len(states))
	for _, s := range states {
		if s == nil {
			return a.structural("nil state")
		}
		if s.owner != nil {
			return &domain.StructuralError{Automaton: a.name, State: s.name, Reason: fmt.Sprintf("state already owned by automaton %q", s.owner.name)}
		}
		if _, dup := a.byName[s.name]; dup {
			return &domain.StructuralError{Automaton: a.name, State: s.name, Reason: "duplicate state name"}
		}
		a.byName[s.name] = s
		owned[s] = struct{}{}
	}

	if initial == nil {
		return a.structural("initial state is nil")
	}
	if _, ok := owned[initial]; !ok {
		return &domain.StructuralError{Automaton: a.name, State: initial.name, Reason: "initial state is not in the state set"}
	}
	for _, f := range accepting {
		if f == nil {
			return a.structural("nil accepting state")
		}
		if _, ok := owned[f]; !ok {
			return &domain.StructuralError{Automaton: a.name, State: f.name, Reason: "accepting state is not in the state set"}
		}
	}

	for _, s := range states {
		for _, symbol := range s.symbols {
			for _, t := range s.transitions[symbol] {
				if _, ok := owned[t]; !ok {
					return &domain.StructuralError{Automaton: a.name, State: s.name, Symbol: symbol, Reason: fmt.Sprintf("transition target %q is not in the state set", t.name)}
				}
			}
			if symbol.IsEpsilon() {
				continue
			}
			if _, ok := a.sigma[symbol]; ok {
				continue
			}
			if !a.cfg.lenient {
				return &domain.StructuralError{Automaton: a.name, State: s.name, Symbol: symbol, Reason: "transition symbol is not in the alphabet"}
			}
			a.logger.Warn("transition symbol outside alphabet", "state", s.name, "symbol", string(symbol))
		}
	}

	return nil
}

// Name returns the automaton name.
func (a *Automaton) Name() string { return a.name }

// States returns Q in construction order.
func (a *Automaton) States() []*State { return append([]*State(nil), a.states...) }

// State looks a state up by name.
func (a *Automaton) State(name string) (*State, bool) {
	s, ok := a.byName[name]
	return s, ok
}

// Alphabet returns Sigma in declaration order.
func (a *Automaton) Alphabet() []domain.Symbol { return append([]domain.Symbol(nil), a.alphabet...) }

// Initial returns q0.
func (a *Automaton) Initial() *State { return a.initial }

// Accepting returns F in declaration order.
func (a *Automaton) Accepting() []*State { return append([]*State(nil), a.accepting...) }

// IsAcceptingState reports whether s belongs to F.
func (a *Automaton) IsAcceptingState(s *State) bool {
	_, ok := a.final[s]
	return ok
}

// InAlphabet reports whether symbol belongs to Sigma.
func (a *Automaton) InAlphabet(symbol domain.Symbol) bool {
	_, ok := a.sigma[symbol]
	return ok
}

// HasEpsilon reports whether any state has an epsilon transition.
func (a *Automaton) HasEpsilon() bool {
	for _, s := range a.states {
		if s.HasTransition(domain.Epsilon) {
			return true
		}
	}
	return false
}

// IsDeterministic reports whether the automaton is a complete DFA: no epsilon
// transitions and exactly one target for every symbol from every state.
func (a *Automaton) IsDeterministic() bool {
	for _, s := range a.states {
		if s.HasTransition(domain.Epsilon) {
			return false
		}
		for _, symbol := range a.alphabet {
			if len(s.transitions[symbol]) != 1 {
				return false
			}
		}
	}
	return true
}

func (a *Automaton) String() string {
	return fmt.Sprintf("%s: [%s]", a.name, strings.Join(a.ActiveNames(), " "))
}

func sortedNames(states []*State) []string {
	out := names(states)
	sort.Strings(out)
	return out
}
