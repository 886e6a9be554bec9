package observability

import (
	"log/slog"

	"github.com/aretw0/automata/pkg/domain"
)

// LogHooks returns lifecycle hooks that write every event to logger at Debug,
// and step events at Info.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActivate: func(e *domain.StateEvent) {
			logger.Debug("state_enter", "automaton", e.Automaton, "state", e.State, "reason", e.Reason)
		},
		OnDeactivate: func(e *domain.StateEvent) {
			logger.Debug("state_leave", "automaton", e.Automaton, "state", e.State, "reason", e.Reason)
		},
		OnStep: func(e *domain.StepEvent) {
			logger.Info("step",
				"automaton", e.Automaton,
				"symbol", e.Symbol.String(),
				"active", e.Active,
				"accepted", e.Accepted,
			)
		},
	}
}
