package graph

import (
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// GenerateTable renders the transition function as a markdown table: one row per
// state, one column per alphabet symbol, plus an ε column when the automaton has
// epsilon transitions. The first column marks the initial state (→) and accepting
// states (*). Missing transitions show as ∅.
func GenerateTable(def *domain.Definition) string {
	columns := append([]domain.Symbol(nil), def.Alphabet...)
	seen := map[domain.Symbol]bool{}
	for _, s := range columns {
		seen[s] = true
	}
	hasEpsilon := false
	for _, t := range def.Transitions {
		if t.Symbol.IsEpsilon() {
			hasEpsilon = true
			continue
		}
		// symbols outside the alphabet only appear with lenient checking
		if !seen[t.Symbol] {
			seen[t.Symbol] = true
			columns = append(columns, t.Symbol)
		}
	}
	if hasEpsilon {
		columns = append(columns, domain.Epsilon)
	}

	cells := map[string]map[domain.Symbol][]string{}
	for _, t := range def.Transitions {
		row, ok := cells[t.From]
		if !ok {
			row = map[domain.Symbol][]string{}
			cells[t.From] = row
		}
		row[t.Symbol] = append(row[t.Symbol], t.To...)
	}
	accepting := acceptingSet(def)

	var sb strings.Builder
	sb.WriteString("| | State |")
	for _, c := range columns {
		sb.WriteString(" " + escape(c.String()) + " |")
	}
	sb.WriteString("\n|---|---|")
	for range columns {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for _, name := range def.States {
		marker := ""
		if name == def.Initial {
			marker += "→"
		}
		if accepting[name] {
			marker += "*"
		}
		sb.WriteString("| " + marker + " | " + escape(name) + " |")
		for _, c := range columns {
			targets := cells[name][c]
			cell := "∅"
			if len(targets) > 0 {
				cell = escape(strings.Join(targets, ", "))
			}
			sb.WriteString(" " + cell + " |")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
