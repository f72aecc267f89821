package ports

import (
	"context"

	"github.com/washify/laundry-market/internal/core/domain"
)

// ChatRepository defines persistence operations for per-order chats.
type ChatRepository interface {
	Create(ctx context.Context, c *domain.Chat) error
	// List returns all chats in insertion order.
	List(ctx context.Context) ([]*domain.Chat, error)
	// FindByID returns (nil, nil) when no chat has that id.
	FindByID(ctx context.Context, id string) (*domain.Chat, error)
	// FindByOrderID returns (nil, nil) when the order has no chat yet.
	FindByOrderID(ctx context.Context, orderID string) (*domain.Chat, error)
	// Update overwrites the stored chat with the same ID.
	Update(ctx context.Context, c *domain.Chat) error
}
