/*
Package automaton models finite automata as a graph of states joined by labelled
transitions, including epsilon transitions.

The same Automaton type serves as an NFA or a DFA. Simulation tracks the set of active
states (all configurations consistent with the input consumed so far) instead of
materialising subsets; ToDFA performs the subset construction explicitly.

	q1, q2 := automaton.NewState("q1"), automaton.NewState("q2")
	_ = q1.AddTransition("a", q2)
	m, err := automaton.New("M", []*automaton.State{q1, q2}, []domain.Symbol{"a"}, q1, []*automaton.State{q2})
	if err != nil {
		return err
	}
	_ = m.Transition("a")
	m.IsAccepted() // true

Construction validates the whole graph and seals every state: transitions are immutable
afterwards and only the activation flags change, through Transition and Reset.
*/
package automaton
