package student

import (
	"context"
)

// Repository defines the operations for storing and retrieving Student records.
// Returned records are copies; mutating them does not affect the store.
type Repository interface {
	FindByID(ctx context.Context, sapID string) (*Student, error)
	ValidateNewID(ctx context.Context, sapID string) error // Length and uniqueness check used before collecting the rest of a new record
	Add(ctx context.Context, sapID, password, name string) (*Student, error)
	Remove(ctx context.Context, sapID string) (*Student, error) // Returns the removed record
	UpdateField(ctx context.Context, sapID string, field Field, value int) (*Student, error)
	Authenticate(ctx context.Context, sapID, password string) (*Student, error)
	List(ctx context.Context) []Summary
	Count(ctx context.Context) int
	Capacity() int
}
