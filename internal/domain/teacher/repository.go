package teacher

import (
	"context"
)

// Repository defines the operations for storing and checking Teacher accounts.
// Accounts are never updated or removed once created.
type Repository interface {
	ValidateNewUsername(ctx context.Context, username string) error
	Add(ctx context.Context, username, password string) (*Teacher, error)
	Authenticate(ctx context.Context, username, password string) (*Teacher, error)
	Count(ctx context.Context) int
	Capacity() int
}
