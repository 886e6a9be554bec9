package automaton

import (
	"sort"

	"github.com/aretw0/automata/pkg/domain"
)

// EpsilonClosure returns every state reachable from the given states through
// epsilon transitions only, the states themselves included, in Q order.
// It is a pure traversal and never touches the activation flags.
func (a *Automaton) EpsilonClosure(states ...*State) []*State {
	return a.ordered(closure(states))
}

// ReachableStates returns the epsilon closure of the direct targets of from on symbol.
func (a *Automaton) ReachableStates(from []*State, symbol domain.Symbol) ([]*State, error) {
	if !a.InAlphabet(symbol) {
		return nil, &domain.UnknownSymbolError{Automaton: a.name, Symbol: symbol}
	}
	return a.ordered(closure(move(from, symbol))), nil
}

func closure(states []*State) map[*State]struct{} {
	seen := make(map[*State]struct{}, len(states))
	stack := make([]*State, 0, len(states))
	for _, s := range states {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range top.transitions[domain.Epsilon] {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				stack = append(stack, t)
			}
		}
	}
	return seen
}

func move(from []*State, symbol domain.Symbol) []*State {
	var out []*State
	for _, s := range from {
		out = append(out, s.transitions[symbol]...)
	}
	return out
}

func (a *Automaton) ordered(set map[*State]struct{}) []*State {
	out := make([]*State, 0, len(set))
	for s := range set {
		if s.owner == a {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
	return out
}
