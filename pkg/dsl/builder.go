package dsl

import (
	"fmt"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	name      string
	alphabet  []domain.Symbol
	initial   string
	accepting []string
	order     []string
	states    map[string]*StateBuilder
}

// New creates a new automaton builder.
func New(name string) *Builder {
	return &Builder{
		name:   name,
		states: make(map[string]*StateBuilder),
	}
}

// Alphabet appends input symbols.
func (b *Builder) Alphabet(symbols ...domain.Symbol) *Builder {
	b.alphabet = append(b.alphabet, symbols...)
	return b
}

// Initial sets the start state, declaring it if needed.
func (b *Builder) Initial(id string) *Builder {
	b.declare(id)
	b.initial = id
	return b
}

// Accept marks states as accepting, declaring them if needed.
func (b *Builder) Accept(ids ...string) *Builder {
	for _, id := range ids {
		b.declare(id)
	}
	b.accepting = append(b.accepting, ids...)
	return b
}

// State returns the builder of the named state.
// If the state does not exist yet it is declared.
func (b *Builder) State(id string) *StateBuilder {
	return b.declare(id)
}

func (b *Builder) declare(id string) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Definition returns the plain-data form of what has been declared so far.
// States appear in declaration order.
func (b *Builder) Definition() *domain.Definition {
	def := &domain.Definition{
		Name:      b.name,
		Alphabet:  append([]domain.Symbol(nil), b.alphabet...),
		States:    append([]string(nil), b.order...),
		Initial:   b.initial,
		Accepting: append([]string(nil), b.accepting...),
	}
	for _, id := range b.order {
		def.Transitions = append(def.Transitions, b.states[id].transitions...)
	}
	return def.Clone()
}

// Build validates the declarations and returns the automaton.
func (b *Builder) Build(opts ...automaton.Option) (*automaton.Automaton, error) {
	m, err := automaton.FromDefinition(b.Definition(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton %q: %w", b.name, err)
	}
	return m, nil
}

// StateBuilder provides a fluent API for configuring one state.
type StateBuilder struct {
	id          string
	builder     *Builder
	transitions []domain.Transition
}

// On adds transitions on symbol to the named targets, declaring them if needed.
func (s *StateBuilder) On(symbol domain.Symbol, to ...string) *StateBuilder {
	if len(to) == 0 {
		return s
	}
	for _, id := range to {
		s.builder.declare(id)
	}
	for i := range s.transitions {
		if s.transitions[i].Symbol == symbol {
			s.transitions[i].To = append(s.transitions[i].To, to...)
			return s
		}
	}
	s.transitions = append(s.transitions, domain.Transition{
		From:   s.id,
		Symbol: symbol,
		To:     append([]string(nil), to...),
	})
	return s
}

// Epsilon adds spontaneous transitions.
func (s *StateBuilder) Epsilon(to ...string) *StateBuilder {
	return s.On(domain.Epsilon, to...)
}

// Accept marks this state as accepting.
func (s *StateBuilder) Accept() *StateBuilder {
	s.builder.Accept(s.id)
	return s
}

// State switches to another state, for chaining.
func (s *StateBuilder) State(id string) *StateBuilder {
	return s.builder.State(id)
}
