package regex

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/thompson"
)

// Assemble builds the Thompson fragment for n bottom-up.
func Assemble(b *thompson.Builder, n Node) (thompson.Fragment, error) {
	switch n := n.(type) {
	case Literal:
		return b.Literal(n.Symbol)
	case Star:
		inner, err := Assemble(b, n.Operand)
		if err != nil {
			return thompson.Fragment{}, err
		}
		return b.Star(inner)
	case Union:
		left, right, err := assemblePair(b, n.Left, n.Right)
		if err != nil {
			return thompson.Fragment{}, err
		}
		return b.Union(left, right)
	case Concat:
		left, right, err := assemblePair(b, n.Left, n.Right)
		if err != nil {
			return thompson.Fragment{}, err
		}
		return b.Concat(left, right)
	case nil:
		return thompson.Fragment{}, &domain.PreconditionError{Op: "assemble", Reason: "nil node"}
	default:
		return thompson.Fragment{}, fmt.Errorf("regex: unsupported node %T", n)
	}
}

func assemblePair(b *thompson.Builder, l, r Node) (thompson.Fragment, thompson.Fragment, error) {
	left, err := Assemble(b, l)
	if err != nil {
		return thompson.Fragment{}, thompson.Fragment{}, err
	}
	right, err := Assemble(b, r)
	if err != nil {
		return thompson.Fragment{}, thompson.Fragment{}, err
	}
	return left, right, nil
}

type compileConfig struct {
	alphabet  []domain.Symbol
	builder   []thompson.Option
	automaton []automaton.Option
	logger    *slog.Logger
}

// Option configures Compile.
type Option func(*compileConfig)

// WithAlphabet fixes the alphabet instead of deriving it from the pattern's literals.
func WithAlphabet(symbols ...domain.Symbol) Option {
	return func(c *compileConfig) {
		c.alphabet = symbols
	}
}

// WithFusion compiles concatenations by state fusion.
func WithFusion() Option {
	return func(c *compileConfig) {
		c.builder = append(c.builder, thompson.WithFusion())
	}
}

// WithLogger is shared by the builder and the resulting automaton.
func WithLogger(logger *slog.Logger) Option {
	return func(c *compileConfig) {
		c.logger = logger
	}
}

// WithAutomatonOptions forwards options to automaton.New.
func WithAutomatonOptions(opts ...automaton.Option) Option {
	return func(c *compileConfig) {
		c.automaton = append(c.automaton, opts...)
	}
}

// Compile parses pattern and returns its Thompson NFA.
func Compile(name, pattern string, opts ...Option) (*automaton.Automaton, error) {
	var cfg compileConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	tree, err := Parse(pattern)
	if err != nil {
		return nil, err
	}

	builderOpts := cfg.builder
	automatonOpts := cfg.automaton
	if cfg.logger != nil {
		builderOpts = append(builderOpts, thompson.WithLogger(cfg.logger))
		automatonOpts = append([]automaton.Option{automaton.WithLogger(cfg.logger)}, automatonOpts...)
	}

	b := thompson.NewBuilder(builderOpts...)
	f, err := Assemble(b, tree)
	if err != nil {
		return nil, fmt.Errorf("assemble %q: %w", pattern, err)
	}
	m, err := b.Automaton(name, f, cfg.alphabet, automatonOpts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	return m, nil
}
