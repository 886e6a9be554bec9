// Package thompson assembles NFA fragments compositionally (Thompson construction).
//
// Every fragment has exactly one entry and one exit state. Literal creates a two-state
// fragment; Union, Star and Concat combine fragments into larger ones. A finished
// fragment becomes an Automaton whose initial state is the entry and whose only
// accepting state is the exit.
package thompson
