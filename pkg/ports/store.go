package ports

import (
	"context"

	"github.com/aretw0/automata/pkg/domain"
)

// DefinitionStore persists automaton definitions by name.
type DefinitionStore interface {
	// Save creates or replaces the definition stored under def.Name.
	Save(ctx context.Context, def *domain.Definition) error

	// Load retrieves a definition.
	// Returns domain.ErrDefinitionNotFound if it does not exist.
	Load(ctx context.Context, name string) (*domain.Definition, error)

	// Delete removes a definition. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in lexicographic order.
	List(ctx context.Context) ([]string, error)
}
