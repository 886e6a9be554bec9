package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		ports.RunDefinitionStoreContract(t, file.New(t.TempDir()))
	})
	t.Run("json", func(t *testing.T) {
		ports.RunDefinitionStoreContract(t, file.New(t.TempDir(), file.WithFormat(file.FormatJSON)))
	})
}

const sipser130 = `
name: sipser130
alphabet: [0, 1]
states: [q1, q2, q3, q4]
initial: q1
accepting: [q4]
transitions:
  - {from: q1, symbol: 0, to: [q1]}
  - {from: q1, symbol: 1, to: [q1, q2]}
  - {from: q2, symbol: 0, to: [q3]}
  - {from: q2, symbol: 1, to: [q3]}
  - {from: q2, symbol: $, to: [q3]}
  - {from: q3, symbol: 0, to: [q4]}
  - {from: q3, symbol: 1, to: [q4]}
  - {from: q3, symbol: $, to: [q4]}
`

func TestDecode_NumericSymbols(t *testing.T) {
	def, err := file.Decode([]byte(sipser130))
	require.NoError(t, err)

	assert.Equal(t, []domain.Symbol{"0", "1"}, def.Alphabet)
	assert.Equal(t, domain.Symbol("0"), def.Transitions[0].Symbol)
	assert.Equal(t, domain.Epsilon, def.Transitions[4].Symbol)

	m, err := automaton.FromDefinition(def)
	require.NoError(t, err)
	ok, err := m.Accepts(domain.SymbolsOf("0100"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDecode_JSON(t *testing.T) {
	def, err := file.Decode([]byte(`{"name":"j","alphabet":["a"],"states":["s"],"initial":"s","accepting":["s"],
		"transitions":[{"from":"s","symbol":"a","to":["s"]}]}`))
	require.NoError(t, err)
	assert.Equal(t, "j", def.Name)
	assert.Len(t, def.Transitions, 1)
}

func TestDecode_Errors(t *testing.T) {
	tests := map[string]string{
		"scalar accepting": "name: m\nstates: [a]\naccepting: a\n",
		"unknown key":      "name: m\nstart: a\n",
		"not yaml":         "name: [unterminated\n",
		"empty":            "",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := file.Decode([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_DefaultsNameToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anon.yml")
	require.NoError(t, os.WriteFile(path, []byte("alphabet: [a]\nstates: [s]\ninitial: s\n"), 0o644))

	def, err := file.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "anon", def.Name)

	store := file.New(dir)
	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"anon"}, names)
}

func TestFileStore_FormatSwitchDropsStaleCopy(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	def := &domain.Definition{Name: "m", Alphabet: []domain.Symbol{"a"}, States: []string{"s"}, Initial: "s"}

	require.NoError(t, file.New(dir).Save(ctx, def))
	require.NoError(t, file.New(dir, file.WithFormat(file.FormatJSON)).Save(ctx, def))

	_, err := os.Stat(filepath.Join(dir, "m.yaml"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "m.json"))
	assert.NoError(t, err)
}

func TestFileStore_RejectsPathNames(t *testing.T) {
	store := file.New(t.TempDir())
	err := store.Save(context.Background(), &domain.Definition{Name: "../escape"})
	assert.ErrorIs(t, err, domain.ErrStructural)

	_, err = store.Load(context.Background(), "a/b")
	assert.ErrorIs(t, err, domain.ErrStructural)
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	_, err := file.Encode(&domain.Definition{Name: "m"}, "toml")
	assert.Error(t, err)
}
