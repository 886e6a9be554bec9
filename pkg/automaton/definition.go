package automaton

import (
	"github.com/aretw0/automata/pkg/domain"
)

// FromDefinition builds an Automaton from its plain-data description.
// Every name referenced by the definition must be declared in States.
func FromDefinition(def *domain.Definition, opts ...Option) (*Automaton, error) {
	if def == nil {
		return nil, &domain.StructuralError{Reason: "definition is nil"}
	}

	unknown := func(name, role string) error {
		return &domain.StructuralError{Automaton: def.Name, State: name, Reason: role + " references an undeclared state"}
	}

	states := make([]*State, 0, len(def.States))
	byName := make(map[string]*State, len(def.States))
	for _, name := range def.States {
		if _, dup := byName[name]; dup {
			return nil, &domain.StructuralError{Automaton: def.Name, State: name, Reason: "duplicate state name"}
		}
		s := NewState(name)
		byName[name] = s
		states = append(states, s)
	}

	for _, t := range def.Transitions {
		from, ok := byName[t.From]
		if !ok {
			return nil, unknown(t.From, "transition source")
		}
		targets := make([]*State, 0, len(t.To))
		for _, name := range t.To {
			to, ok := byName[name]
			if !ok {
				return nil, unknown(name, "transition target")
			}
			targets = append(targets, to)
		}
		from.link(t.Symbol, targets...)
	}

	var initial *State
	if def.Initial != "" {
		s, ok := byName[def.Initial]
		if !ok {
			return nil, unknown(def.Initial, "initial")
		}
		initial = s
	}

	accepting := make([]*State, 0, len(def.Accepting))
	for _, name := range def.Accepting {
		s, ok := byName[name]
		if !ok {
			return nil, unknown(name, "accepting")
		}
		accepting = append(accepting, s)
	}

	return New(def.Name, states, def.Alphabet, initial, accepting, opts...)
}

// Definition exports the structure of the automaton. Activation flags are not part of it.
func (a *Automaton) Definition() *domain.Definition {
	def := &domain.Definition{
		Name:      a.name,
		Alphabet:  a.Alphabet(),
		States:    names(a.states),
		Initial:   a.initial.name,
		Accepting: names(a.accepting),
	}
	for _, s := range a.states {
		for _, symbol := range s.symbols {
			def.Transitions = append(def.Transitions, domain.Transition{
				From:   s.name,
				Symbol: symbol,
				To:     names(s.transitions[symbol]),
			})
		}
	}
	return def
}
