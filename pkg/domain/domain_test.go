package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolsOf(t *testing.T) {
	assert.Equal(t, []domain.Symbol{"b", "a", "b", "a"}, domain.SymbolsOf("baba"))
	assert.Empty(t, domain.SymbolsOf(""))
	assert.Equal(t, "baba", domain.Word(domain.SymbolsOf("baba")))
	assert.Equal(t, "ε", domain.Epsilon.String())
	assert.True(t, domain.Epsilon.IsEpsilon())
}

func TestErrors_Unwrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{
			name:     "Structural",
			err:      &domain.StructuralError{Automaton: "M", State: "q1", Reason: "duplicate state name"},
			sentinel: domain.ErrStructural,
			contains: `(state "q1")`,
		},
		{
			name:     "Unknown Symbol",
			err:      &domain.UnknownSymbolError{Automaton: "M", Symbol: "c"},
			sentinel: domain.ErrUnknownSymbol,
			contains: `symbol "c"`,
		},
		{
			name:     "Precondition",
			err:      &domain.PreconditionError{Op: "concat", Reason: "fragment already consumed"},
			sentinel: domain.ErrPrecondition,
			contains: "concat: fragment already consumed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Contains(t, tt.err.Error(), tt.contains)
		})
	}

	var structural *domain.StructuralError
	require.True(t, errors.As(fmt.Errorf("x: %w", &domain.StructuralError{Reason: "r"}), &structural))
	assert.Equal(t, "r", structural.Reason)
}

func TestDefinition_Clone(t *testing.T) {
	def := &domain.Definition{
		Name:      "M",
		Alphabet:  []domain.Symbol{"a"},
		States:    []string{"q1", "q2"},
		Initial:   "q1",
		Accepting: []string{"q2"},
		Transitions: []domain.Transition{
			{From: "q1", Symbol: "a", To: []string{"q2"}},
		},
	}

	clone := def.Clone()
	clone.Transitions[0].To[0] = "q1"
	clone.States[0] = "x"

	assert.Equal(t, "q2", def.Transitions[0].To[0])
	assert.Equal(t, "q1", def.States[0])
	assert.Nil(t, (*domain.Definition)(nil).Clone())
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{OnActivate: func(e *domain.StateEvent) { calls = append(calls, "a:"+e.State) }}
	b := domain.LifecycleHooks{
		OnActivate: func(e *domain.StateEvent) { calls = append(calls, "b:"+e.State) },
		OnStep:     func(e *domain.StepEvent) { calls = append(calls, "step") },
	}

	merged := a.Merge(b)
	merged.OnActivate(&domain.StateEvent{State: "q1"})
	merged.OnStep(&domain.StepEvent{})

	assert.Equal(t, []string{"a:q1", "b:q1", "step"}, calls)
	assert.Nil(t, merged.OnDeactivate)
}

func TestTrace_Final(t *testing.T) {
	trace := &domain.Trace{Initial: []string{"q1"}}
	assert.Equal(t, []string{"q1"}, trace.Final())

	trace.Steps = []domain.Step{
		{Symbol: "a", Active: []string{"q2"}},
		{Symbol: "b", Active: []string{"q1", "q3"}},
	}
	assert.Equal(t, []string{"q1", "q3"}, trace.Final())
}
