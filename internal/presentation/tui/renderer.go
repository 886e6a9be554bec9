package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown using glamour.
// When styled is false the markdown is returned untouched, which keeps piped
// output machine-readable.
func NewRenderer(styled bool) (func(string) (string, error), error) {
	if !styled {
		return func(markdown string) (string, error) { return markdown, nil }, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// Verdict renders ACCEPT in green or REJECT in red.
// With the Ascii profile no escape sequences are emitted.
func Verdict(accepted bool, p termenv.Profile) string {
	if accepted {
		return p.String("ACCEPT").Foreground(p.Color("#22c55e")).Bold().String()
	}
	return p.String("REJECT").Foreground(p.Color("#ef4444")).Bold().String()
}

// Muted renders secondary information such as traces.
func Muted(s string, p termenv.Profile) string {
	return p.String(s).Faint().String()
}
