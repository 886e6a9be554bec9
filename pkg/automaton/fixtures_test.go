package automaton_test

import (
	"testing"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/require"
)

func states(names ...string) []*automaton.State {
	out := make([]*automaton.State, len(names))
	for i, n := range names {
		out[i] = automaton.NewState(n)
	}
	return out
}

func link(t *testing.T, from *automaton.State, symbol domain.Symbol, to ...*automaton.State) {
	t.Helper()
	require.NoError(t, from.AddTransition(symbol, to...))
}

// sipser135 is Example 1.35 of Sipser, Introduction to the Theory of Computation (3rd ed.).
func sipser135(t *testing.T, opts ...automaton.Option) *automaton.Automaton {
	t.Helper()
	q := states("q1", "q2", "q3")
	q1, q2, q3 := q[0], q[1], q[2]

	link(t, q1, "b", q2)
	link(t, q1, domain.Epsilon, q3)
	link(t, q2, "a", q2, q3)
	link(t, q2, "b", q3)
	link(t, q3, "a", q1)

	m, err := automaton.New("M", q, []domain.Symbol{"a", "b"}, q1, []*automaton.State{q1}, opts...)
	require.NoError(t, err)
	return m
}

// sipser130 is Example 1.30 of Sipser, extended with epsilon transitions.
func sipser130(t *testing.T, opts ...automaton.Option) *automaton.Automaton {
	t.Helper()
	q := states("q1", "q2", "q3", "q4")
	q1, q2, q3, q4 := q[0], q[1], q[2], q[3]

	link(t, q1, "1", q1, q2)
	link(t, q1, "0", q1)
	link(t, q2, "0", q3)
	link(t, q2, "1", q3)
	link(t, q2, domain.Epsilon, q3)
	link(t, q3, "0", q4)
	link(t, q3, "1", q4)
	link(t, q3, domain.Epsilon, q4)

	m, err := automaton.New("M", q, []domain.Symbol{"0", "1"}, q1, []*automaton.State{q4}, opts...)
	require.NoError(t, err)
	return m
}

// epsilonLoop has an epsilon cycle p -> r -> p plus an epsilon self-loop on r.
// It accepts words over {a,b} ending in "ab".
func epsilonLoop(t *testing.T, initial string) *automaton.Automaton {
	t.Helper()
	q := states("p", "r", "s", "f")
	byName := map[string]*automaton.State{}
	for _, s := range q {
		byName[s.Name()] = s
	}
	p, r, s, f := q[0], q[1], q[2], q[3]

	link(t, p, domain.Epsilon, r)
	link(t, r, domain.Epsilon, p, r)
	link(t, p, "a", p, s)
	link(t, r, "b", r)
	link(t, s, "b", f)

	m, err := automaton.New("loop", q, []domain.Symbol{"a", "b"}, byName[initial], []*automaton.State{f})
	require.NoError(t, err)
	return m
}

func stateNames(states []*automaton.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.Name()
	}
	return out
}

// words enumerates every word over alphabet of length 0..maxLen.
func words(alphabet []domain.Symbol, maxLen int) [][]domain.Symbol {
	out := [][]domain.Symbol{{}}
	frontier := [][]domain.Symbol{{}}
	for n := 0; n < maxLen; n++ {
		var next [][]domain.Symbol
		for _, w := range frontier {
			for _, s := range alphabet {
				word := append(append([]domain.Symbol(nil), w...), s)
				next = append(next, word)
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}
