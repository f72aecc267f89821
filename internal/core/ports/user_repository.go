package ports

import (
	"context"

	"github.com/washify/laundry-market/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create appends a new user. Returns domain.ErrEmailTaken when another
	// user already holds the same email (exact, case-sensitive match).
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// List returns all users in insertion order.
	List(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByCredentials matches email and password exactly.
	// Returns domain.ErrInvalidCredentials when no user matches both.
	FindByCredentials(ctx context.Context, email, password string) (*domain.User, error)
	// Update overwrites the stored user with the same ID.
	Update(ctx context.Context, u *domain.User) error
}
