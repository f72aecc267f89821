package ports

import (
	"context"

	"github.com/washify/laundry-market/internal/core/domain"
)

// RegisterUserInput carries all data needed to create an account.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Area     string
	// PricePerWash is only honored for sellers; zero means "use the default".
	PricePerWash float64
}

// UserService defines account use cases.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// ListSellers returns sellers whose name or area contains search
	// (case-insensitive). Empty search matches every seller.
	ListSellers(ctx context.Context, search string) ([]*domain.User, error)
	// UpdateSellerPrice overwrites the seller's price and, when that same
	// user is currently logged in, refreshes the session's cached price too.
	// Returns false (no error) when the user id is unknown.
	UpdateSellerPrice(ctx context.Context, userID string, price float64) (bool, error)
}
