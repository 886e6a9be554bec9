package domain

import (
	"errors"
	"fmt"
)

// ErrStructural is the sentinel behind every StructuralError.
var ErrStructural = errors.New("structural error")

// ErrUnknownSymbol is the sentinel behind every UnknownSymbolError.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ErrPrecondition is the sentinel behind every PreconditionError.
var ErrPrecondition = errors.New("precondition violation")

// ErrDefinitionNotFound is returned when a definition name cannot be found in a store.
var ErrDefinitionNotFound = errors.New("definition not found")

// StructuralError reports malformed construction arguments.
// Construction fails as a whole; no partially usable automaton is returned.
type StructuralError struct {
	Automaton string
	State     string
	Symbol    Symbol
	Reason    string
}

func (e *StructuralError) Error() string {
	msg := fmt.Sprintf("automaton %q: %s", e.Automaton, e.Reason)
	if e.State != "" {
		msg += fmt.Sprintf(" (state %q)", e.State)
	}
	if e.Symbol != "" {
		msg += fmt.Sprintf(" (symbol %q)", string(e.Symbol))
	}
	return msg
}

func (e *StructuralError) Unwrap() error { return ErrStructural }

// UnknownSymbolError reports a symbol outside the alphabet.
type UnknownSymbolError struct {
	Automaton string
	Symbol    Symbol
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("automaton %q: symbol %q is not in the alphabet", e.Automaton, string(e.Symbol))
}

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }

// PreconditionError reports an operation invoked in an invalid order or on invalid operands.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }
