package ports

import (
	"context"

	"github.com/washify/laundry-market/internal/core/domain"
)

// OpenChatInput identifies the order conversation and its two participants.
type OpenChatInput struct {
	OrderID     string
	StudentID   string
	SellerID    string
	StudentName string
	SellerName  string
}

// ChatService defines the per-order messaging use cases.
type ChatService interface {
	// OpenForOrder returns the order's existing chat or lazily creates an
	// empty one. Calling it again for the same order returns the same chat.
	OpenForOrder(ctx context.Context, input OpenChatInput) (*domain.Chat, error)
	List(ctx context.Context) ([]*domain.Chat, error)
	// ForOrder returns (nil, nil) when the order has no chat.
	ForOrder(ctx context.Context, orderID string) (*domain.Chat, error)
	// SendMessage appends to the chat and bumps LastUpdated. An unknown
	// chatID yields (nil, nil); the caller must check.
	SendMessage(ctx context.Context, chatID, senderID, text string) (*domain.Message, error)
}
