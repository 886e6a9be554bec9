package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdict(t *testing.T) {
	assert.Equal(t, "ACCEPT", tui.Verdict(true, termenv.Ascii))
	assert.Equal(t, "REJECT", tui.Verdict(false, termenv.Ascii))

	colored := tui.Verdict(true, termenv.TrueColor)
	assert.Contains(t, colored, "ACCEPT")
	assert.Contains(t, colored, "\x1b[")
}

func TestMuted(t *testing.T) {
	assert.Equal(t, "q1 q2", tui.Muted("q1 q2", termenv.Ascii))
}

func TestNewRenderer_Plain(t *testing.T) {
	render, err := tui.NewRenderer(false)
	require.NoError(t, err)

	out, err := render("| a | b |\n|---|---|\n")
	require.NoError(t, err)
	assert.Equal(t, "| a | b |\n|---|---|\n", out)
}

func TestNewRenderer_Styled(t *testing.T) {
	render, err := tui.NewRenderer(true)
	require.NoError(t, err)

	out, err := render("| State | a |\n|---|---|\n| q1 | q2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "q1")
	assert.Contains(t, out, "q2")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, termenv.Ascii)
	assert.Contains(t, buf.String(), `\__,_|`)
	assert.NotContains(t, buf.String(), "\x1b[")
}
