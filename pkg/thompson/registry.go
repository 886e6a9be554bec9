package thompson

import (
	"fmt"
	"strconv"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// Registry hands out uniquely named states for one builder session.
// Names are never reused, even after Remove.
type Registry struct {
	prefix string
	next   int
	seq    map[*automaton.State]int
	live   []*automaton.State
}

// NewRegistry creates a registry naming states prefix0, prefix1, ...
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		seq:    make(map[*automaton.State]int),
	}
}

// Allocate creates a fresh state.
func (r *Registry) Allocate() *automaton.State {
	s := automaton.NewState(r.prefix + strconv.Itoa(r.next))
	r.seq[s] = r.next
	r.next++
	r.live = append(r.live, s)
	return s
}

// Remove discards a state from the live set.
func (r *Registry) Remove(s *automaton.State) error {
	if _, ok := r.seq[s]; !ok {
		return &domain.PreconditionError{Op: "remove", Reason: fmt.Sprintf("state %q is not live in this registry", s.Name())}
	}
	delete(r.seq, s)
	for i, v := range r.live {
		if v == s {
			r.live = append(r.live[:i], r.live[i+1:]...)
			break
		}
	}
	return nil
}

// Contains reports whether s is live in this registry.
func (r *Registry) Contains(s *automaton.State) bool {
	_, ok := r.seq[s]
	return ok
}

// States returns the live states in allocation order.
func (r *Registry) States() []*automaton.State {
	return append([]*automaton.State(nil), r.live...)
}

// Len returns the number of live states.
func (r *Registry) Len() int {
	return len(r.live)
}
