/*
Package dsl provides a fluent Go DSL for hand-writing automata.

It is the programmatic counterpart of definition files: states are declared by
name, transitions refer to states by name, and Build validates the whole thing
through automaton.FromDefinition.

Example usage:

	b := dsl.New("ends-in-ab").
		Alphabet("a", "b").
		Initial("p").
		Accept("f")

	b.State("p").On("a", "p", "s").On("b", "p")
	b.State("s").On("b", "f")

	m, err := b.Build()
*/
package dsl
