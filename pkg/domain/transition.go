package domain

// Transition is one labelled edge group of a Definition.
// A single entry may fan out to several targets (non-determinism).
type Transition struct {
	From   string   `json:"from" yaml:"from" mapstructure:"from"`
	Symbol Symbol   `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To     []string `json:"to" yaml:"to" mapstructure:"to"`
}
