package automata

// Version is the release of the automata module, overridden at build time with
// -ldflags "-X github.com/aretw0/automata.Version=...".
var Version = "0.1.0-dev"
