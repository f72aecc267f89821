package ports

import (
	"context"

	"github.com/washify/laundry-market/internal/core/domain"
)

// PlaceOrderInput carries all data needed to place an order. The store layer
// deliberately does not validate Amount or Quantity signs; that is the
// calling form's job.
type PlaceOrderInput struct {
	StudentID   string
	StudentName string
	SellerID    string
	SellerName  string
	Items       []string
	Amount      float64
	Quantity    int
}

// ListOrdersFilter narrows the order listing. Zero values mean "no filter".
type ListOrdersFilter struct {
	StudentID string
	SellerID  string
	Status    domain.OrderStatus
}

// OrderService defines order use cases.
type OrderService interface {
	// Place creates a new order with status Pending and a fresh #ORD- id.
	Place(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, error)
	// UpdateStatus parses newStatus against the closed enumeration and
	// overwrites the order's status. Returns the updated order.
	UpdateStatus(ctx context.Context, orderID, newStatus string) (*domain.Order, error)
	// Seed bootstraps the collection on first run; no-op once it exists.
	Seed(ctx context.Context, orders []domain.Order) (bool, error)
}
