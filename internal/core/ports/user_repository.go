package ports

import (
	"context"

	"github.com/fittrack/goaltracker/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
// The store's unique indexes on username and email are the sole serialization
// point for concurrent registrations of the same name.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
