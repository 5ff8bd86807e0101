package store

import (
	"context"

	"github.com/google/uuid"
)

// Crud is the uniform persistence contract for one entity type. Implementations
// acquire a pooled connection per call and run exactly one statement on it.
type Crud[T any] interface {
	// Get fails with a not-found error when no row matches id.
	Get(ctx context.Context, id uuid.UUID) (T, error)
	// GetAll returns every entity in insertion order.
	GetAll(ctx context.Context) ([]T, error)
	// Create returns the entity as stored.
	Create(ctx context.Context, entity T) (T, error)
	// Update returns the entity it was given and succeeds when no row matched.
	Update(ctx context.Context, entity T) (T, error)
	// Delete succeeds when no row matched.
	Delete(ctx context.Context, entity T) error
}
