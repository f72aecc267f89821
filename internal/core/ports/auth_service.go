package ports

import (
	"context"

	"github.com/washify/laundry-market/internal/core/domain"
)

// AuthService defines the login/logout/session use cases.
type AuthService interface {
	// Login authenticates by exact email+password match and persists a new
	// session snapshot, replacing any prior one. A user logging in through
	// the wrong portal gets a *domain.RoleMismatchError naming their role.
	Login(ctx context.Context, email, password string, expectedRole domain.Role) (*domain.Session, error)
	// CurrentSession returns (nil, nil) when nobody is logged in.
	CurrentSession(ctx context.Context) (*domain.Session, error)
	// Logout removes the session unconditionally; idempotent.
	Logout(ctx context.Context) error
}
