package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractDefinition(name string) *domain.Definition {
	return &domain.Definition{
		Name:      name,
		Alphabet:  []domain.Symbol{"0", "1"},
		States:    []string{"q1", "q2"},
		Initial:   "q1",
		Accepting: []string{"q2"},
		Transitions: []domain.Transition{
			{From: "q1", Symbol: "0", To: []string{"q1"}},
			{From: "q1", Symbol: "1", To: []string{"q1", "q2"}},
			{From: "q2", Symbol: domain.Epsilon, To: []string{"q1"}},
		},
	}
}

// RunDefinitionStoreContract runs a suite of tests to verify that a DefinitionStore
// implementation adheres to the defined interface contract.
func RunDefinitionStoreContract(t *testing.T, store DefinitionStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		def := contractDefinition(name)
		require.NoError(t, store.Save(ctx, def))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, def, loaded)
	})

	t.Run("Overwrite", func(t *testing.T) {
		def := contractDefinition(name)
		def.Accepting = []string{"q1"}
		require.NoError(t, store.Save(ctx, def))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, []string{"q1"}, loaded.Accepting)
	})

	t.Run("Isolation", func(t *testing.T) {
		def := contractDefinition(name)
		require.NoError(t, store.Save(ctx, def))
		def.States[0] = "mutated"

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		loaded.Initial = "mutated"

		again, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "q1", again.States[0])
		assert.Equal(t, "q1", again.Initial)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)
	})

	t.Run("Empty Name", func(t *testing.T) {
		err := store.Save(ctx, contractDefinition(""))
		assert.ErrorIs(t, err, domain.ErrStructural)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, contractDefinition(name)))
		require.NoError(t, store.Delete(ctx, name))

		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound, "Load after Delete should return ErrDefinitionNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Delete is idempotent")
	})

	t.Run("List", func(t *testing.T) {
		b, a := name+"-b", name+"-a"
		require.NoError(t, store.Save(ctx, contractDefinition(b)))
		require.NoError(t, store.Save(ctx, contractDefinition(a)))
		defer func() {
			_ = store.Delete(ctx, a)
			_ = store.Delete(ctx, b)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, a)
		assert.Contains(t, names, b)
		assert.IsNonDecreasing(t, names)
	})
}

// ValidateName rejects definitions that cannot be stored.
func ValidateName(def *domain.Definition) error {
	if def == nil {
		return &domain.StructuralError{Reason: "definition is nil"}
	}
	if def.Name == "" {
		return &domain.StructuralError{Reason: "definition has no name"}
	}
	return nil
}
