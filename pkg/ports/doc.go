/*
Package ports defines the driven ports (interfaces) of the automata engine.

# Key Interfaces

  - DefinitionStore: persists automaton definitions (memory, file or Redis adapters).

RunDefinitionStoreContract is a reusable suite every adapter runs in its tests.
*/
package ports
