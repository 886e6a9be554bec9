package automaton

import (
	"io"
	"log/slog"

	"github.com/aretw0/automata/pkg/domain"
)

type config struct {
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	lenient bool
}

// Option configures an Automaton at construction time.
type Option func(*config)

// WithLogger sets the structured logger used for activation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithLenientAlphabet logs a warning instead of failing when a transition symbol
// is outside the alphabet. Such transitions can never fire, since Transition rejects
// unknown symbols.
func WithLenientAlphabet() Option {
	return func(c *config) {
		c.lenient = true
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// options replays the configuration so derived automata (e.g. ToDFA) inherit it.
func (c config) options() []Option {
	opts := []Option{WithLogger(c.logger), WithLifecycleHooks(c.hooks)}
	if c.lenient {
		opts = append(opts, WithLenientAlphabet())
	}
	return opts
}
