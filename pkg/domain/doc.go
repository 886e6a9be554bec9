/*
Package domain contains the core vocabulary shared by every automata package.

It defines the input symbols, the serialisable description of an automaton, the typed
errors of the engine and the lifecycle events emitted during simulation. The package is
kept pure and free of I/O, persistence or simulation logic, so adapters (stores, HTTP,
CLI) can depend on it without pulling in the engine.

# Key Entities

  - Symbol: an input letter. Epsilon is a reserved marker that labels no-input transitions.
  - Definition: a plain-data description of an automaton (states, alphabet, q0, F, edges).
  - Trace: the step-by-step record of a simulation run.
  - LifecycleHooks: observational callbacks for activations and steps.
*/
package domain
