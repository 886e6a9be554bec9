package domain

import (
	"sort"
	"strings"
)

// Symbol is a letter of an input alphabet.
type Symbol string

// Epsilon labels transitions that consume no input.
// It is never a member of an alphabet.
const Epsilon Symbol = "$"

// IsEpsilon reports whether s is the epsilon marker.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

// String renders epsilon as ε for display.
func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(s)
}

// SymbolsOf splits a word into single-rune symbols.
func SymbolsOf(word string) []Symbol {
	symbols := make([]Symbol, 0, len(word))
	for _, r := range word {
		symbols = append(symbols, Symbol(r))
	}
	return symbols
}

// Word joins symbols back into a string.
func Word(symbols []Symbol) string {
	var sb strings.Builder
	for _, s := range symbols {
		sb.WriteString(string(s))
	}
	return sb.String()
}

// SortSymbols sorts symbols in place, lexicographically.
func SortSymbols(symbols []Symbol) {
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
}
