package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func sipser135() *domain.Definition {
	return &domain.Definition{
		Name:      "M",
		Alphabet:  []domain.Symbol{"a", "b"},
		States:    []string{"q1", "q2", "q3"},
		Initial:   "q1",
		Accepting: []string{"q1"},
		Transitions: []domain.Transition{
			{From: "q1", Symbol: "b", To: []string{"q2"}},
			{From: "q1", Symbol: domain.Epsilon, To: []string{"q3"}},
			{From: "q2", Symbol: "a", To: []string{"q2", "q3"}},
			{From: "q2", Symbol: "b", To: []string{"q3"}},
			{From: "q3", Symbol: "a", To: []string{"q1"}},
		},
	}
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		def      *domain.Definition
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes",
			def:  sipser135(),
			contains: []string{
				"graph LR\n",
				`n0((("q1")))`,
				`n1(("q2"))`,
				"start_[ ] --> n0",
			},
			excludes: []string{"classDef active"},
		},
		{
			name: "Parallel Edges Merge",
			def:  sipser135(),
			contains: []string{
				`n1 -- "a,b" --> n2`,
				`n0 -- "ε" --> n2`,
			},
		},
		{
			name: "Subset Names",
			def: &domain.Definition{
				States:  []string{"{q1,q3}", "{}"},
				Initial: "{q1,q3}",
				Transitions: []domain.Transition{
					{From: "{}", Symbol: "a", To: []string{"{}"}},
				},
			},
			contains: []string{`n0(("{q1,q3}"))`, `n1 -- "a" --> n1`},
		},
		{
			name:    "Overlay",
			def:     sipser135(),
			overlay: &graph.Overlay{Active: []string{"q3", "q1"}},
			contains: []string{
				"classDef active",
				"class n0 active;\n    class n2 active;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.def, tt.overlay)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestGenerateDot(t *testing.T) {
	got := graph.GenerateDot(sipser135(), &graph.Overlay{Active: []string{"q2"}})

	assert.True(t, strings.HasPrefix(got, "digraph \"M\" {\n"))
	assert.Contains(t, got, `"q1" [shape=doublecircle];`)
	assert.Contains(t, got, `"q2" [style=filled, fillcolor="#ffeb3b"];`)
	assert.Contains(t, got, `"q3";`)
	assert.Contains(t, got, `"__start" -> "q1";`)
	assert.Contains(t, got, `"q2" -> "q3" [label="a,b"];`)
	assert.Contains(t, got, `"q1" -> "q3" [label="ε"];`)
	assert.True(t, strings.HasSuffix(got, "}\n"))
}

func TestGenerateTable(t *testing.T) {
	want := "| | State | a | b | ε |\n" +
		"|---|---|---|---|---|\n" +
		"| →* | q1 | ∅ | q2 | q3 |\n" +
		"|  | q2 | q2, q3 | q3 | ∅ |\n" +
		"|  | q3 | q1 | ∅ | ∅ |\n"
	assert.Equal(t, want, graph.GenerateTable(sipser135()))
}

func TestGenerateTable_NoEpsilonColumn(t *testing.T) {
	def := &domain.Definition{
		Alphabet:  []domain.Symbol{"0"},
		States:    []string{"a|b"},
		Initial:   "a|b",
		Accepting: []string{"a|b"},
		Transitions: []domain.Transition{
			{From: "a|b", Symbol: "0", To: []string{"a|b"}},
		},
	}
	got := graph.GenerateTable(def)
	assert.NotContains(t, got, "ε")
	assert.Contains(t, got, `| →* | a\|b | a\|b |`)
}
