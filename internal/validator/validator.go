package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
)

// Report summarizes structural properties that construction does not reject.
type Report struct {
	Automaton     string   `json:"automaton"`
	States        int      `json:"states"`
	Transitions   int      `json:"transitions"`
	Unreachable   []string `json:"unreachable,omitempty"`
	Dead          []string `json:"dead,omitempty"`
	HasEpsilon    bool     `json:"has_epsilon"`
	Deterministic bool     `json:"deterministic"`
	EmptyLanguage bool     `json:"empty_language"`
}

// Inspect walks the graph forward from q0 and backward from F.
// Unreachable states cannot be entered from q0; dead states cannot reach F.
// Both lists follow the automaton's state order.
func Inspect(m *automaton.Automaton) *Report {
	states := m.States()
	r := &Report{
		Automaton:     m.Name(),
		States:        len(states),
		HasEpsilon:    m.HasEpsilon(),
		Deterministic: m.IsDeterministic(),
	}

	reverse := make(map[*automaton.State][]*automaton.State)
	for _, s := range states {
		for _, symbol := range s.Symbols() {
			targets := s.Targets(symbol)
			r.Transitions += len(targets)
			for _, t := range targets {
				reverse[t] = append(reverse[t], s)
			}
		}
	}

	forward := func(s *automaton.State) []*automaton.State {
		var out []*automaton.State
		for _, symbol := range s.Symbols() {
			out = append(out, s.Targets(symbol)...)
		}
		return out
	}
	reachable := crawl([]*automaton.State{m.Initial()}, forward)
	live := crawl(m.Accepting(), func(s *automaton.State) []*automaton.State { return reverse[s] })

	for _, s := range states {
		if !reachable[s] {
			r.Unreachable = append(r.Unreachable, s.Name())
		}
		if !live[s] {
			r.Dead = append(r.Dead, s.Name())
		}
	}
	r.EmptyLanguage = !live[m.Initial()]
	return r
}

func crawl(from []*automaton.State, next func(*automaton.State) []*automaton.State) map[*automaton.State]bool {
	visited := make(map[*automaton.State]bool)
	queue := append([]*automaton.State(nil), from...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, t := range next(current) {
			if !visited[t] {
				queue = append(queue, t)
			}
		}
	}
	return visited
}

// Issues lists human-readable warnings; nil when the automaton is trim.
func (r *Report) Issues() []string {
	var issues []string
	if len(r.Unreachable) > 0 {
		issues = append(issues, fmt.Sprintf("unreachable states: %s", strings.Join(r.Unreachable, ", ")))
	}
	if len(r.Dead) > 0 {
		issues = append(issues, fmt.Sprintf("dead states: %s", strings.Join(r.Dead, ", ")))
	}
	if r.EmptyLanguage {
		issues = append(issues, "the automaton accepts no word")
	}
	return issues
}

func (r *Report) String() string {
	kind := "NFA"
	if r.Deterministic {
		kind = "DFA"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s, %d states, %d transitions", r.Automaton, kind, r.States, r.Transitions)
	if r.HasEpsilon {
		sb.WriteString(", epsilon moves")
	}
	for _, issue := range r.Issues() {
		sb.WriteString("\n- " + issue)
	}
	return sb.String()
}
