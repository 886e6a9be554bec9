/*
Package automata is a finite automata engine: nondeterministic simulation with
epsilon moves, subset construction and Thompson construction from regular
expressions.

# Concept

An automaton is a set of named states, an input alphabet, an initial state and a
set of accepting states. Simulation keeps every state the input could have reached
active at once, so NFAs run directly without being determinized first. When a DFA
is wanted, subset construction builds one whose states are the reachable sets of
NFA states.

Definitions are plain data (domain.Definition) kept in a ports.DefinitionStore:
in memory, as YAML/JSON files, or in Redis. The Engine ties the store, the
simulation packages and the ambient stack (structured logging, Prometheus metrics)
together; the CLI and the HTTP adapter are thin layers over it.

# Usage

	eng, err := automata.New(automata.WithStore(file.New("./definitions")))
	if err != nil {
		log.Fatal(err)
	}

	m, err := eng.Compile("abb", "(a|b)*abb")
	if err != nil {
		log.Fatal(err)
	}
	if err := eng.Save(ctx, m.Definition()); err != nil {
		log.Fatal(err)
	}

	trace, err := eng.Run(ctx, "abb", domain.SymbolsOf("babb"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(trace.Accepted) // true

The packages can also be used on their own: pkg/automaton for hand-built
automata, pkg/dsl for a fluent builder, pkg/thompson and pkg/regex for
construction from expressions.
*/
package automata
