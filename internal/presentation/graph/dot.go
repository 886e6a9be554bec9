package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// GenerateDot produces a Graphviz digraph of the automaton.
func GenerateDot(def *domain.Definition, overlay *Overlay) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", strconv.Quote(def.Name))
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [shape=circle];\n")

	accepting := acceptingSet(def)
	active := overlay.activeSet()
	for _, name := range def.States {
		var attrs []string
		if accepting[name] {
			attrs = append(attrs, "shape=doublecircle")
		}
		if active[name] {
			attrs = append(attrs, "style=filled", `fillcolor="#ffeb3b"`)
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&sb, "    %s;\n", strconv.Quote(name))
			continue
		}
		fmt.Fprintf(&sb, "    %s [%s];\n", strconv.Quote(name), strings.Join(attrs, ", "))
	}

	if def.Initial != "" {
		sb.WriteString("    \"__start\" [shape=point];\n")
		fmt.Fprintf(&sb, "    \"__start\" -> %s;\n", strconv.Quote(def.Initial))
	}

	for _, e := range edges(def) {
		fmt.Fprintf(&sb, "    %s -> %s [label=%s];\n", strconv.Quote(e.from), strconv.Quote(e.to), strconv.Quote(e.label()))
	}

	sb.WriteString("}\n")
	return sb.String()
}
