package automata

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/automata/internal/validator"
	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/regex"
)

// Engine is the high-level entry point for the automata library.
// It resolves definitions from a store and builds, runs and converts automata.
type Engine struct {
	store   ports.DefinitionStore
	hooks   domain.LifecycleHooks
	metrics *observability.Metrics
	logger  *slog.Logger
	lenient bool
	fusion  bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore sets the definition store (default: in-memory).
func WithStore(store ports.DefinitionStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLifecycleHooks registers observability hooks on every automaton the engine builds.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithMetrics records runs, determinizations and simulation steps.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = metrics
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLenientAlphabet builds automata whose transitions may use symbols outside
// the alphabet (logged, never fired).
func WithLenientAlphabet() Option {
	return func(e *Engine) {
		e.lenient = true
	}
}

// WithFusion compiles regex concatenation by state fusion.
func WithFusion() Option {
	return func(e *Engine) {
		e.fusion = true
	}
}

// New initializes a new Engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.metrics != nil {
		eng.hooks = eng.hooks.Merge(eng.metrics.Hooks())
	}
	return eng, nil
}

// Store returns the underlying DefinitionStore.
func (e *Engine) Store() ports.DefinitionStore {
	return e.store
}

func (e *Engine) automatonOptions() []automaton.Option {
	opts := []automaton.Option{
		automaton.WithLogger(e.logger),
		automaton.WithLifecycleHooks(e.hooks),
	}
	if e.lenient {
		opts = append(opts, automaton.WithLenientAlphabet())
	}
	return opts
}

// Build turns a definition into an automaton with the engine's options.
func (e *Engine) Build(def *domain.Definition) (*automaton.Automaton, error) {
	return automaton.FromDefinition(def, e.automatonOptions()...)
}

// Definitions lists the stored definition names.
func (e *Engine) Definitions(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}

// Definition returns a stored definition without building it.
func (e *Engine) Definition(ctx context.Context, name string) (*domain.Definition, error) {
	def, err := e.store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	return def, nil
}

// Load builds the stored automaton called name.
func (e *Engine) Load(ctx context.Context, name string) (*automaton.Automaton, error) {
	def, err := e.Definition(ctx, name)
	if err != nil {
		return nil, err
	}
	return e.Build(def)
}

// Save validates def by building it, then stores it.
func (e *Engine) Save(ctx context.Context, def *domain.Definition) error {
	if _, err := e.Build(def); err != nil {
		return err
	}
	if err := e.store.Save(ctx, def); err != nil {
		return fmt.Errorf("save %q: %w", def.Name, err)
	}
	e.logger.Info("definition saved", "automaton", def.Name)
	return nil
}

// Delete removes a stored definition.
func (e *Engine) Delete(ctx context.Context, name string) error {
	return e.store.Delete(ctx, name)
}

// Compile builds the Thompson NFA of pattern. The result is not stored.
func (e *Engine) Compile(name, pattern string) (*automaton.Automaton, error) {
	opts := []regex.Option{
		regex.WithLogger(e.logger),
		regex.WithAutomatonOptions(e.automatonOptions()...),
	}
	if e.fusion {
		opts = append(opts, regex.WithFusion())
	}
	return regex.Compile(name, pattern, opts...)
}

// Run simulates the stored automaton on word.
func (e *Engine) Run(ctx context.Context, name string, word []domain.Symbol) (*domain.Trace, error) {
	m, err := e.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return e.RunAutomaton(m, word)
}

// RunAutomaton simulates m on word and records the outcome.
func (e *Engine) RunAutomaton(m *automaton.Automaton, word []domain.Symbol) (*domain.Trace, error) {
	trace, err := m.Run(word)
	if err != nil {
		return nil, err
	}
	if e.metrics != nil {
		e.metrics.ObserveRun(trace)
	}
	e.logger.Debug("run", "automaton", m.Name(), "input", trace.Input, "accepted", trace.Accepted)
	return trace, nil
}

// Determinize returns the DFA of the stored automaton called name.
func (e *Engine) Determinize(ctx context.Context, name string) (*automaton.Automaton, error) {
	m, err := e.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return e.DeterminizeAutomaton(m)
}

// DeterminizeAutomaton applies subset construction to m.
func (e *Engine) DeterminizeAutomaton(m *automaton.Automaton) (*automaton.Automaton, error) {
	dfa, err := m.ToDFA()
	if err != nil {
		return nil, err
	}
	if e.metrics != nil {
		e.metrics.ObserveDeterminization(m.Name(), len(dfa.States()))
	}
	return dfa, nil
}

// Inspect reports unreachable and dead states of the stored automaton called name.
func (e *Engine) Inspect(ctx context.Context, name string) (*validator.Report, error) {
	m, err := e.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return validator.Inspect(m), nil
}
