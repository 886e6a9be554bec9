package thompson

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// Fragment is a single-entry, single-exit NFA sub-graph under construction.
type Fragment struct {
	Entry *automaton.State
	Exit  *automaton.State
}

// Builder allocates states and composes fragments.
// A fragment passed to Union, Star, Concat or Automaton is consumed and cannot be reused.
type Builder struct {
	registry *Registry
	fusion   bool
	logger   *slog.Logger
	consumed map[Fragment]bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithFusion makes Concat fuse the left exit with the right entry instead of linking
// them with an epsilon transition. It saves one state per concatenation.
func WithFusion() Option {
	return func(b *Builder) {
		b.fusion = true
	}
}

// WithPrefix sets the prefix of generated state names (default "s").
func WithPrefix(prefix string) Option {
	return func(b *Builder) {
		b.registry = NewRegistry(prefix)
	}
}

// WithLogger sets a custom structured logger for the builder.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates a builder with its own registry.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		registry: NewRegistry("s"),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		consumed: make(map[Fragment]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry exposes the state registry of this builder session.
func (b *Builder) Registry() *Registry {
	return b.registry
}

// Literal builds entry --symbol--> exit.
func (b *Builder) Literal(symbol domain.Symbol) (Fragment, error) {
	if symbol == "" || symbol.IsEpsilon() {
		return Fragment{}, &domain.PreconditionError{Op: "literal", Reason: fmt.Sprintf("%q is not a valid input symbol", string(symbol))}
	}
	f := Fragment{Entry: b.registry.Allocate(), Exit: b.registry.Allocate()}
	if err := f.Entry.AddTransition(symbol, f.Exit); err != nil {
		return Fragment{}, err
	}
	b.logger.Debug("literal", "symbol", string(symbol), "entry", f.Entry.Name(), "exit", f.Exit.Name())
	return f, nil
}

// Union builds entry --ε--> {x.entry, y.entry}, with both exits --ε--> exit.
func (b *Builder) Union(x, y Fragment) (Fragment, error) {
	if err := b.consume("union", x, y); err != nil {
		return Fragment{}, err
	}
	f := Fragment{Entry: b.registry.Allocate(), Exit: b.registry.Allocate()}
	if err := b.chain(
		link(f.Entry, x.Entry, y.Entry),
		link(x.Exit, f.Exit),
		link(y.Exit, f.Exit),
	); err != nil {
		return Fragment{}, err
	}
	b.logger.Debug("union", "entry", f.Entry.Name(), "exit", f.Exit.Name())
	return f, nil
}

// Star builds entry --ε--> {x.entry, exit} and x.exit --ε--> {x.entry, exit}.
func (b *Builder) Star(x Fragment) (Fragment, error) {
	if err := b.consume("star", x); err != nil {
		return Fragment{}, err
	}
	f := Fragment{Entry: b.registry.Allocate(), Exit: b.registry.Allocate()}
	if err := b.chain(
		link(f.Entry, x.Entry, f.Exit),
		link(x.Exit, x.Entry, f.Exit),
	); err != nil {
		return Fragment{}, err
	}
	b.logger.Debug("star", "entry", f.Entry.Name(), "exit", f.Exit.Name())
	return f, nil
}

// Concat joins x then y. By default x.exit --ε--> y.entry; with fusion, x.exit takes
// over y.entry's transitions and y.entry is dropped from the registry.
func (b *Builder) Concat(x, y Fragment) (Fragment, error) {
	if err := b.consume("concat", x, y); err != nil {
		return Fragment{}, err
	}
	f := Fragment{Entry: x.Entry, Exit: y.Exit}

	if !b.fusion {
		if err := b.chain(link(x.Exit, y.Entry)); err != nil {
			return Fragment{}, err
		}
		b.logger.Debug("concat", "link", x.Exit.Name()+"->"+y.Entry.Name())
		return f, nil
	}

	if err := b.fuse(x.Exit, y.Entry); err != nil {
		return Fragment{}, err
	}
	b.logger.Debug("concat", "fused", y.Entry.Name()+"->"+x.Exit.Name())
	return f, nil
}

func (b *Builder) fuse(into, from *automaton.State) error {
	if len(into.Symbols()) > 0 {
		return &domain.PreconditionError{Op: "concat", Reason: fmt.Sprintf("cannot fuse into %q: it already has transitions", into.Name())}
	}
	for _, s := range b.registry.States() {
		for _, symbol := range s.Symbols() {
			for _, t := range s.Targets(symbol) {
				if t == from {
					return &domain.PreconditionError{Op: "concat", Reason: fmt.Sprintf("cannot fuse %q: %q points at it", from.Name(), s.Name())}
				}
			}
		}
	}
	for _, symbol := range from.Symbols() {
		if err := into.AddTransition(symbol, from.Targets(symbol)...); err != nil {
			return err
		}
	}
	return b.registry.Remove(from)
}

// Automaton wraps a finished fragment: q0 is its entry and F is {exit}.
// Only states reachable from the entry are included. A nil alphabet is derived from
// the fragment's symbols.
func (b *Builder) Automaton(name string, f Fragment, alphabet []domain.Symbol, opts ...automaton.Option) (*automaton.Automaton, error) {
	if err := b.consume("automaton", f); err != nil {
		return nil, err
	}

	states := b.reachable(f)
	if alphabet == nil {
		alphabet = symbolsOf(states)
	}
	return automaton.New(name, states, alphabet, f.Entry, []*automaton.State{f.Exit}, opts...)
}

func (b *Builder) reachable(f Fragment) []*automaton.State {
	seen := map[*automaton.State]bool{f.Entry: true, f.Exit: true}
	queue := []*automaton.State{f.Entry}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, symbol := range current.Symbols() {
			for _, t := range current.Targets(symbol) {
				if !seen[t] {
					seen[t] = true
					queue = append(queue, t)
				}
			}
		}
	}

	out := make([]*automaton.State, 0, len(seen))
	for _, s := range b.registry.States() {
		if seen[s] {
			out = append(out, s)
		}
	}
	return out
}

func symbolsOf(states []*automaton.State) []domain.Symbol {
	set := map[domain.Symbol]bool{}
	var out []domain.Symbol
	for _, s := range states {
		for _, symbol := range s.Symbols() {
			if symbol.IsEpsilon() || set[symbol] {
				continue
			}
			set[symbol] = true
			out = append(out, symbol)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// consume validates operands and marks them used.
func (b *Builder) consume(op string, fragments ...Fragment) error {
	for i, f := range fragments {
		if f.Entry == nil || f.Exit == nil {
			return &domain.PreconditionError{Op: op, Reason: "fragment has a nil boundary state"}
		}
		if f.Entry == f.Exit {
			return &domain.PreconditionError{Op: op, Reason: fmt.Sprintf("fragment entry and exit are the same state %q", f.Entry.Name())}
		}
		if !b.registry.Contains(f.Entry) || !b.registry.Contains(f.Exit) {
			return &domain.PreconditionError{Op: op, Reason: "fragment does not belong to this builder"}
		}
		if b.consumed[f] {
			return &domain.PreconditionError{Op: op, Reason: fmt.Sprintf("fragment %s..%s was already consumed", f.Entry.Name(), f.Exit.Name())}
		}
		if len(f.Exit.Symbols()) > 0 {
			return &domain.PreconditionError{Op: op, Reason: fmt.Sprintf("fragment exit %q already has outgoing transitions", f.Exit.Name())}
		}
		for _, other := range fragments[:i] {
			if shares(f, other) {
				return &domain.PreconditionError{Op: op, Reason: "operands share boundary states"}
			}
		}
	}
	for _, f := range fragments {
		b.consumed[f] = true
	}
	return nil
}

func shares(x, y Fragment) bool {
	return x.Entry == y.Entry || x.Entry == y.Exit || x.Exit == y.Entry || x.Exit == y.Exit
}

// edge is a group of epsilon moves out of one state.
type edge struct {
	from    *automaton.State
	targets []*automaton.State
}

func link(from *automaton.State, targets ...*automaton.State) edge {
	return edge{from: from, targets: targets}
}

func (b *Builder) chain(edges ...edge) error {
	for _, e := range edges {
		if err := e.from.AddTransition(domain.Epsilon, e.targets...); err != nil {
			return err
		}
	}
	return nil
}
