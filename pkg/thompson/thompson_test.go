package thompson_test

import (
	"errors"
	"testing"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/thompson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(states []*automaton.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.Name()
	}
	return out
}

func accepts(t *testing.T, m *automaton.Automaton, word string) bool {
	t.Helper()
	ok, err := m.Accepts(domain.SymbolsOf(word))
	require.NoError(t, err)
	return ok
}

func lit(t *testing.T, b *thompson.Builder, s domain.Symbol) thompson.Fragment {
	t.Helper()
	f, err := b.Literal(s)
	require.NoError(t, err)
	return f
}

func TestRegistry_NamesAreNeverReused(t *testing.T) {
	r := thompson.NewRegistry("s")
	s0, s1, s2 := r.Allocate(), r.Allocate(), r.Allocate()
	assert.Equal(t, []string{"s0", "s1", "s2"}, names(r.States()))

	require.NoError(t, r.Remove(s1))
	assert.False(t, r.Contains(s1))
	assert.True(t, r.Contains(s0))
	assert.Equal(t, 2, r.Len())

	s3 := r.Allocate()
	assert.Equal(t, "s3", s3.Name())
	assert.Equal(t, []string{"s0", "s2", "s3"}, names(r.States()))

	err := r.Remove(s1)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
	_ = s2
}

func TestBuilder_Operators(t *testing.T) {
	tests := []struct {
		name   string
		build  func(t *testing.T, b *thompson.Builder) thompson.Fragment
		accept []string
		reject []string
		states int
	}{
		{
			name:   "literal",
			build:  func(t *testing.T, b *thompson.Builder) thompson.Fragment { return lit(t, b, "a") },
			accept: []string{"a"},
			reject: []string{"", "aa"},
			states: 2,
		},
		{
			name: "union",
			build: func(t *testing.T, b *thompson.Builder) thompson.Fragment {
				f, err := b.Union(lit(t, b, "a"), lit(t, b, "b"))
				require.NoError(t, err)
				return f
			},
			accept: []string{"a", "b"},
			reject: []string{"", "ab", "ba"},
			states: 6,
		},
		{
			name: "star",
			build: func(t *testing.T, b *thompson.Builder) thompson.Fragment {
				f, err := b.Star(lit(t, b, "a"))
				require.NoError(t, err)
				return f
			},
			accept: []string{"", "a", "aaaa"},
			reject: []string{"b", "ab"},
			states: 4,
		},
		{
			name: "concat",
			build: func(t *testing.T, b *thompson.Builder) thompson.Fragment {
				f, err := b.Concat(lit(t, b, "a"), lit(t, b, "b"))
				require.NoError(t, err)
				return f
			},
			accept: []string{"ab"},
			reject: []string{"", "a", "b", "ba", "abab"},
			states: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := thompson.NewBuilder()
			m, err := b.Automaton("m", tt.build(t, b), []domain.Symbol{"a", "b"})
			require.NoError(t, err)

			assert.Len(t, m.States(), tt.states)
			assert.Len(t, m.Accepting(), 1)
			for _, w := range tt.accept {
				assert.True(t, accepts(t, m, w), "should accept %q", w)
			}
			for _, w := range tt.reject {
				assert.False(t, accepts(t, m, w), "should reject %q", w)
			}
		})
	}
}

// (a|b)*abb, the classic dragon book example.
func buildABB(t *testing.T, opts ...thompson.Option) (*thompson.Builder, thompson.Fragment) {
	t.Helper()
	b := thompson.NewBuilder(opts...)

	ab, err := b.Union(lit(t, b, "a"), lit(t, b, "b"))
	require.NoError(t, err)
	loop, err := b.Star(ab)
	require.NoError(t, err)

	f := loop
	for _, s := range []domain.Symbol{"a", "b", "b"} {
		f, err = b.Concat(f, lit(t, b, s))
		require.NoError(t, err)
	}
	return b, f
}

func TestBuilder_ConcatModes(t *testing.T) {
	linked, lf := buildABB(t)
	fused, ff := buildABB(t, thompson.WithFusion())

	lm, err := linked.Automaton("linked", lf, nil)
	require.NoError(t, err)
	fm, err := fused.Automaton("fused", ff, nil)
	require.NoError(t, err)

	assert.Len(t, lm.States(), 14)
	assert.Len(t, fm.States(), 11)
	assert.Equal(t, []domain.Symbol{"a", "b"}, lm.Alphabet())
	assert.Equal(t, []domain.Symbol{"a", "b"}, fm.Alphabet())

	for _, w := range []string{"abb", "aabb", "babb", "ababb"} {
		assert.True(t, accepts(t, lm, w), w)
		assert.True(t, accepts(t, fm, w), w)
	}
	for _, w := range []string{"", "ab", "abba", "bbbb"} {
		assert.False(t, accepts(t, lm, w), w)
		assert.False(t, accepts(t, fm, w), w)
	}
}

func TestBuilder_FusionRemovesRightEntry(t *testing.T) {
	b := thompson.NewBuilder(thompson.WithFusion())
	x := lit(t, b, "a")
	y := lit(t, b, "b")

	f, err := b.Concat(x, y)
	require.NoError(t, err)
	assert.False(t, b.Registry().Contains(y.Entry))
	assert.Equal(t, []string{"s0", "s1", "s3"}, names(b.Registry().States()))

	m, err := b.Automaton("ab", f, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"s0", "s1", "s3"}, names(m.States()))
	assert.True(t, accepts(t, m, "ab"))
}

func TestBuilder_Preconditions(t *testing.T) {
	t.Run("epsilon literal", func(t *testing.T) {
		_, err := thompson.NewBuilder().Literal(domain.Epsilon)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})

	t.Run("consumed fragment", func(t *testing.T) {
		b := thompson.NewBuilder()
		x := lit(t, b, "a")
		_, err := b.Star(x)
		require.NoError(t, err)

		_, err = b.Star(x)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})

	t.Run("same operand twice", func(t *testing.T) {
		b := thompson.NewBuilder()
		x := lit(t, b, "a")
		_, err := b.Union(x, x)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})

	t.Run("foreign fragment", func(t *testing.T) {
		other := thompson.NewBuilder()
		x := lit(t, other, "a")
		_, err := thompson.NewBuilder().Star(x)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})

	t.Run("exit with transitions", func(t *testing.T) {
		b := thompson.NewBuilder(thompson.WithFusion())
		x := lit(t, b, "a")
		y := lit(t, b, "b")
		require.NoError(t, x.Exit.AddTransition("a", x.Entry))

		_, err := b.Concat(x, y)
		var pre *domain.PreconditionError
		require.True(t, errors.As(err, &pre))
		assert.Equal(t, "concat", pre.Op)
	})

	t.Run("zero fragment", func(t *testing.T) {
		_, err := thompson.NewBuilder().Automaton("m", thompson.Fragment{}, nil)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})
}

func TestBuilder_AutomatonSealsStates(t *testing.T) {
	b := thompson.NewBuilder()
	f := lit(t, b, "a")
	_, err := b.Automaton("a", f, nil)
	require.NoError(t, err)

	_, err = b.Automaton("again", f, nil)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
	assert.ErrorIs(t, f.Entry.AddTransition("a", f.Exit), domain.ErrPrecondition)
}

func TestBuilder_ExplicitAlphabetMustCoverSymbols(t *testing.T) {
	b := thompson.NewBuilder()
	_, err := b.Automaton("m", lit(t, b, "c"), []domain.Symbol{"a", "b"})
	assert.ErrorIs(t, err, domain.ErrStructural)
}

func TestBuilder_Prefix(t *testing.T) {
	b := thompson.NewBuilder(thompson.WithPrefix("n"))
	f := lit(t, b, "x")
	assert.Equal(t, "n0", f.Entry.Name())
	assert.Equal(t, "n1", f.Exit.Name())
}
