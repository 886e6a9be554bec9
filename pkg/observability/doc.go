/*
Package observability provides tools for monitoring the automata engine.

It turns simulation lifecycle hooks into Prometheus metrics and structured log
records. Both are plain domain.LifecycleHooks, so they can be merged and passed to
automaton.WithLifecycleHooks.
*/
package observability
