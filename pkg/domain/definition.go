package domain

// Definition is a plain-data description of an automaton.
// It is what stores persist and what the file loader decodes.
type Definition struct {
	Name        string       `json:"name" yaml:"name" mapstructure:"name"`
	Alphabet    []Symbol     `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
	States      []string     `json:"states" yaml:"states" mapstructure:"states"`
	Initial     string       `json:"initial" yaml:"initial" mapstructure:"initial"`
	Accepting   []string     `json:"accepting" yaml:"accepting" mapstructure:"accepting"`
	Transitions []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty" mapstructure:"transitions"`
}

// Clone returns a deep copy so callers can mutate it freely.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	out := &Definition{
		Name:      d.Name,
		Initial:   d.Initial,
		Alphabet:  append([]Symbol(nil), d.Alphabet...),
		States:    append([]string(nil), d.States...),
		Accepting: append([]string(nil), d.Accepting...),
	}
	if d.Transitions != nil {
		out.Transitions = make([]Transition, len(d.Transitions))
		for i, t := range d.Transitions {
			out.Transitions[i] = Transition{
				From:   t.From,
				Symbol: t.Symbol,
				To:     append([]string(nil), t.To...),
			}
		}
	}
	return out
}
