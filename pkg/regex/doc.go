// Package regex parses a minimal regular-expression language and compiles it to a
// Thompson NFA.
//
// The grammar has literals, union (|), Kleene star (*), grouping and concatenation,
// written either implicitly (ab) or explicitly (a.b). Whitespace is ignored. Every
// other rune is a literal symbol, except the epsilon marker which is rejected.
//
//	m, err := regex.Compile("abb", "(a|b)*abb")
//	ok, err := m.Accepts(domain.SymbolsOf("babb"))
package regex
