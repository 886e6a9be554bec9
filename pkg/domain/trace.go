package domain

// Step records the active configuration right after one symbol was consumed.
type Step struct {
	Symbol Symbol   `json:"symbol"`
	Active []string `json:"active"`
}

// Trace is the result of running a word through an automaton from its initial configuration.
type Trace struct {
	Automaton string   `json:"automaton"`
	Input     string   `json:"input"`
	Initial   []string `json:"initial"`
	Steps     []Step   `json:"steps"`
	Accepted  bool     `json:"accepted"`
}

// Final returns the active configuration after the last symbol.
func (t *Trace) Final() []string {
	if len(t.Steps) == 0 {
		return t.Initial
	}
	return t.Steps[len(t.Steps)-1].Active
}
