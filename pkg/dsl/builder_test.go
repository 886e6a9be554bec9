package dsl_test

import (
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Sipser135(t *testing.T) {
	b := dsl.New("M").Alphabet("a", "b").Initial("q1").Accept("q1")

	b.State("q1").On("b", "q2").Epsilon("q3")
	b.State("q2").On("a", "q2", "q3").On("b", "q3")
	b.State("q3").On("a", "q1")

	m, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"q1", "q3"}, m.ActiveNames())
	for _, tt := range []struct {
		word   string
		accept bool
	}{
		{"", true},
		{"a", true},
		{"baba", true},
		{"baa", true},
		{"b", false},
		{"bb", false},
		{"babba", false},
	} {
		ok, err := m.Accepts(domain.SymbolsOf(tt.word))
		require.NoError(t, err)
		assert.Equal(t, tt.accept, ok, tt.word)
	}
}

func TestBuilder_Definition(t *testing.T) {
	b := dsl.New("d").Alphabet("0", "1").Initial("a")
	b.State("a").On("0", "b").On("0", "a").State("b").Accept().On("1", "a")

	def := b.Definition()
	assert.Equal(t, []string{"a", "b"}, def.States)
	assert.Equal(t, []string{"b"}, def.Accepting)
	assert.Equal(t, []domain.Transition{
		{From: "a", Symbol: "0", To: []string{"b", "a"}},
		{From: "b", Symbol: "1", To: []string{"a"}},
	}, def.Transitions)

	def.States[0] = "mutated"
	assert.Equal(t, "a", b.Definition().States[0])
}

func TestBuilder_DeclaresStatesOnFirstMention(t *testing.T) {
	b := dsl.New("m").Alphabet("x")
	b.State("s").On("x", "t")
	b.Initial("s").Accept("u")

	assert.Equal(t, []string{"s", "t", "u"}, b.Definition().States)
}

func TestBuilder_InvalidDefinition(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *dsl.Builder
	}{
		{
			name: "missing initial",
			setup: func() *dsl.Builder {
				b := dsl.New("m").Alphabet("a")
				b.State("s").On("a", "s")
				return b
			},
		},
		{
			name: "symbol outside alphabet",
			setup: func() *dsl.Builder {
				b := dsl.New("m").Alphabet("a").Initial("s")
				b.State("s").On("z", "s")
				return b
			},
		},
		{
			name: "epsilon in alphabet",
			setup: func() *dsl.Builder {
				return dsl.New("m").Alphabet(domain.Epsilon).Initial("s")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.setup().Build()
			assert.ErrorIs(t, err, domain.ErrStructural)
		})
	}
}
