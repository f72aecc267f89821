package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/core/ports"
)

// AuthService implements login, logout and session lookup. Credentials are
// compared in plaintext, preserving the prototype's behavior; do not reuse
// this outside a local single-user store.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Login authenticates by exact email+password match, checks the portal role,
// and persists a fresh session snapshot, replacing any prior one.
func (s *AuthService) Login(ctx context.Context, email, password string, expectedRole domain.Role) (*domain.Session, error) {
	user, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if user.Role != expectedRole {
		return nil, &domain.RoleMismatchError{Role: user.Role}
	}

	session := &domain.Session{
		UserID:       user.ID,
		Name:         user.Name,
		Role:         user.Role,
		Area:         user.Area,
		PricePerWash: user.PricePerWash,
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("logged in")
	return session, nil
}

// CurrentSession returns (nil, nil) when nobody is logged in.
func (s *AuthService) CurrentSession(ctx context.Context) (*domain.Session, error) {
	return s.sessions.Get(ctx)
}

// Logout removes the session unconditionally; logging out twice is fine.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info().Msg("logged out")
	return nil
}
