package observability

import (
	"github.com/aretw0/automata/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by simulation hooks.
// Every collector is labelled by automaton name, so cardinality grows with the
// number of distinct definitions that are run.
type Metrics struct {
	Steps         *prometheus.CounterVec
	Activations   *prometheus.CounterVec
	Deactivations *prometheus.CounterVec
	Active        *prometheus.GaugeVec
	Runs          *prometheus.CounterVec
	DFAStates     *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "automata_steps_total",
			Help: "Total number of input symbols consumed",
		}, []string{"automaton"}),
		Activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "automata_activations_total",
			Help: "Total number of state activations, epsilon propagation included",
		}, []string{"automaton"}),
		Deactivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "automata_deactivations_total",
			Help: "Total number of state deactivations",
		}, []string{"automaton"}),
		Active: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "automata_active_states",
			Help: "Number of active states after the last step",
		}, []string{"automaton"}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "automata_runs_total",
			Help: "Completed runs by verdict",
		}, []string{"automaton", "verdict"}),
		DFAStates: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "automata_dfa_states",
			Help:    "Number of states produced by subset construction",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"automaton"}),
	}

	for _, c := range []prometheus.Collector{m.Steps, m.Activations, m.Deactivations, m.Active, m.Runs, m.DFAStates} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that update the step and activation collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActivate: func(e *domain.StateEvent) {
			m.Activations.WithLabelValues(e.Automaton).Inc()
		},
		OnDeactivate: func(e *domain.StateEvent) {
			m.Deactivations.WithLabelValues(e.Automaton).Inc()
		},
		OnStep: func(e *domain.StepEvent) {
			m.Steps.WithLabelValues(e.Automaton).Inc()
			m.Active.WithLabelValues(e.Automaton).Set(float64(len(e.Active)))
		},
	}
}

// ObserveRun counts a finished run.
func (m *Metrics) ObserveRun(trace *domain.Trace) {
	verdict := "reject"
	if trace.Accepted {
		verdict = "accept"
	}
	m.Runs.WithLabelValues(trace.Automaton, verdict).Inc()
}

// ObserveDeterminization records the size of a DFA built from the named automaton.
func (m *Metrics) ObserveDeterminization(source string, states int) {
	m.DFAStates.WithLabelValues(source).Observe(float64(states))
}
