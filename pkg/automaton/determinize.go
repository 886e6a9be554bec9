package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// ToDFA converts the automaton into an equivalent DFA by subset construction.
//
// Each DFA state is named after the set of NFA states it represents, e.g. "{q1,q3}",
// and exposes them through Members. The empty set "{}" is materialised when reached and
// loops to itself on every symbol, so the result is always complete.
//
// Options are appended to the ones the receiver was built with. An automaton that is
// already deterministic is returned unchanged and opts are ignored.
func (a *Automaton) ToDFA(opts ...Option) (*Automaton, error) {
	if a.IsDeterministic() {
		a.logger.Debug("already deterministic, skipping subset construction")
		return a, nil
	}

	var (
		index   = make(map[string]*State)
		created []*State
	)
	intern := func(members []*State) *State {
		key := subsetKey(members)
		if s, ok := index[key]; ok {
			return s
		}
		s := NewState(subsetName(members))
		s.members = members
		index[key] = s
		created = append(created, s)
		return s
	}

	start := intern(a.EpsilonClosure(a.initial))

	// created doubles as the worklist: states are processed in creation order.
	for i := 0; i < len(created); i++ {
		current := created[i]
		for _, symbol := range a.alphabet {
			next := a.ordered(closure(move(current.members, symbol)))
			current.link(symbol, intern(next))
		}
	}

	var accepting []*State
	for _, s := range created {
		for _, m := range s.members {
			if a.IsAcceptingState(m) {
				accepting = append(accepting, s)
				break
			}
		}
	}

	a.logger.Info("determinized", "nfa_states", len(a.states), "dfa_states", len(created))

	return New(a.name+"_dfa", created, a.alphabet, start, accepting, append(a.cfg.options(), opts...)...)
}

// subsetKey is the canonical identity of a member set: its sorted Q indices.
func subsetKey(members []*State) string {
	idx := make([]int, len(members))
	for i, m := range members {
		idx[i] = m.index
	}
	sort.Ints(idx)
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// subsetName renders members as "{q1,q3}". Names holding a delimiter are quoted so
// distinct sets never share a name: {"a,b"} is not {a,b}.
func subsetName(members []*State) string {
	parts := names(members)
	for i, name := range parts {
		if name == "" || strings.ContainsAny(name, `,{}"`) {
			parts[i] = strconv.Quote(name)
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}
