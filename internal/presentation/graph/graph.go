package graph

import (
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// Overlay contains dynamic simulation data to visualize on the graph.
type Overlay struct {
	Active []string
}

func (o *Overlay) activeSet() map[string]bool {
	set := map[string]bool{}
	if o == nil {
		return set
	}
	for _, name := range o.Active {
		set[name] = true
	}
	return set
}

// edge groups every symbol labelling the same (from, to) pair.
type edge struct {
	from, to string
	labels   []string
}

// edges merges parallel transitions, keeping first-appearance order.
func edges(def *domain.Definition) []edge {
	var out []edge
	index := map[[2]string]int{}
	for _, t := range def.Transitions {
		for _, to := range t.To {
			key := [2]string{t.From, to}
			i, ok := index[key]
			if !ok {
				i = len(out)
				index[key] = i
				out = append(out, edge{from: t.From, to: to})
			}
			label := t.Symbol.String()
			if !contains(out[i].labels, label) {
				out[i].labels = append(out[i].labels, label)
			}
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (e edge) label() string {
	return strings.Join(e.labels, ",")
}

func acceptingSet(def *domain.Definition) map[string]bool {
	set := map[string]bool{}
	for _, name := range def.Accepting {
		set[name] = true
	}
	return set
}
