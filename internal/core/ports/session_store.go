package ports

import (
	"context"

	"github.com/washify/laundry-market/internal/core/domain"
)

// SessionStore persists the single active session. There is at most one
// session at a time; Put replaces any prior one.
type SessionStore interface {
	// Get returns the active session, or (nil, nil) when nobody is logged in.
	Get(ctx context.Context) (*domain.Session, error)
	Put(ctx context.Context, s *domain.Session) error
	// Clear removes the session. Clearing an absent session is not an error.
	Clear(ctx context.Context) error
}
