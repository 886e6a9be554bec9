package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/dsl"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sipser135(t *testing.T, hooks domain.LifecycleHooks) *automaton.Automaton {
	t.Helper()
	b := dsl.New("M").Alphabet("a", "b").Initial("q1").Accept("q1")
	b.State("q1").On("b", "q2").Epsilon("q3")
	b.State("q2").On("a", "q2", "q3").On("b", "q3")
	b.State("q3").On("a", "q1")
	m, err := b.Build(automaton.WithLifecycleHooks(hooks))
	require.NoError(t, err)
	return m
}

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	m := sipser135(t, metrics.Hooks())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Activations.WithLabelValues("M")), "initial closure")

	require.NoError(t, m.Transition("b"))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Active.WithLabelValues("M")))

	require.NoError(t, m.Transition("a"))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Steps.WithLabelValues("M")))
	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.Activations.WithLabelValues("M")))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.Deactivations.WithLabelValues("M")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Active.WithLabelValues("M")))
}

func TestMetrics_Runs(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	m := sipser135(t, domain.LifecycleHooks{})
	for _, w := range []string{"baba", "b", "a"} {
		trace, err := m.Run(domain.SymbolsOf(w))
		require.NoError(t, err)
		metrics.ObserveRun(trace)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Runs.WithLabelValues("M", "accept")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Runs.WithLabelValues("M", "reject")))

	dfa, err := m.ToDFA()
	require.NoError(t, err)
	metrics.ObserveDeterminization(m.Name(), len(dfa.States()))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.DFAStates))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := sipser135(t, observability.LogHooks(logger))
	require.NoError(t, m.Transition("b"))

	out := buf.String()
	assert.Contains(t, out, "msg=state_enter")
	assert.Contains(t, out, "msg=state_leave")
	assert.Contains(t, out, "msg=step")
	assert.Contains(t, out, "active=[q2]")
	assert.Contains(t, out, "accepted=false")
}
