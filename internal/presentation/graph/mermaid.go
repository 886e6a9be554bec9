package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// States are circles, accepting states double circles, and an unlabelled arrow from
// a hidden point marks the initial state. Parallel transitions share one edge whose
// label lists their symbols. Active states from the overlay are highlighted.
func GenerateMermaid(def *domain.Definition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	// Names such as "{q1,q3}" are not valid Mermaid ids, so ids are positional.
	ids := make(map[string]string, len(def.States))
	for i, name := range def.States {
		ids[name] = "n" + strconv.Itoa(i)
	}

	accepting := acceptingSet(def)
	for _, name := range def.States {
		label := strings.ReplaceAll(name, `"`, "'")
		if accepting[name] {
			fmt.Fprintf(&sb, "    %s(((\"%s\")))\n", ids[name], label)
		} else {
			fmt.Fprintf(&sb, "    %s((\"%s\"))\n", ids[name], label)
		}
	}

	if id, ok := ids[def.Initial]; ok {
		sb.WriteString("    start_[ ] --> " + id + "\n")
		sb.WriteString("    style start_ fill:none,stroke:none\n")
	}

	for _, e := range edges(def) {
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", ids[e.from], e.label(), ids[e.to])
	}

	if active := overlay.activeSet(); len(active) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme
		sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, name := range def.States {
			if active[name] {
				fmt.Fprintf(&sb, "    class %s active;\n", ids[name])
			}
		}
	}

	return sb.String()
}
