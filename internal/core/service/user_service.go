package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/core/ports"
	"github.com/washify/laundry-market/internal/pkg/token"
)

type UserService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, sessions ports.SessionStore, logger zerolog.Logger) *UserService {
	return &UserService{users: users, sessions: sessions, logger: logger}
}

// Register creates a new account. Sellers get their marketplace defaults
// (zero rating and reviews, the standard price when none was given) filled in
// before the record is appended.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	if _, err := domain.ParseRole(string(input.Role)); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       token.Next(),
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
		Area:     input.Area,
	}
	if user.IsSeller() {
		user.Rating = 0
		user.Reviews = 0
		user.PricePerWash = input.PricePerWash
		if user.PricePerWash == 0 {
			user.PricePerWash = domain.DefaultPricePerWash
		}
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrEmailTaken) {
			s.logger.Error().Err(err).Msg("failed to register user")
		}
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// ListSellers returns sellers whose name or area contains search,
// case-insensitively. An empty search matches every seller.
func (s *UserService) ListSellers(ctx context.Context, search string) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(search)
	sellers := make([]*domain.User, 0)
	for _, u := range users {
		if !u.IsSeller() {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Area), needle) {
			continue
		}
		sellers = append(sellers, u)
	}
	return sellers, nil
}

// UpdateSellerPrice overwrites the seller's price. When that seller is the
// currently logged-in user, the session's cached price is refreshed too; an
// unrelated active session is left untouched.
func (s *UserService) UpdateSellerPrice(ctx context.Context, userID string, price float64) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	user.PricePerWash = price
	if err := s.users.Update(ctx, user); err != nil {
		return false, err
	}

	sess, err := s.sessions.Get(ctx)
	if err != nil {
		return false, err
	}
	if sess != nil && sess.UserID == userID {
		sess.PricePerWash = price
		if err := s.sessions.Put(ctx, sess); err != nil {
			return false, err
		}
	}

	s.logger.Info().Str("user_id", userID).Float64("price", price).Msg("seller price updated")
	return true, nil
}
