package ports

import (
	"context"

	"github.com/washify/laundry-market/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	// List returns all orders in insertion order.
	List(ctx context.Context) ([]*domain.Order, error)
	// FindByID returns domain.ErrOrderNotFound when no order has that id.
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// Update overwrites the stored order with the same ID.
	Update(ctx context.Context, o *domain.Order) error
	// SeedIfAbsent initializes the collection with the given orders when it
	// has never been written, and reports whether it did. When the collection
	// exists, even empty, it is left untouched.
	SeedIfAbsent(ctx context.Context, orders []domain.Order) (bool, error)
}
