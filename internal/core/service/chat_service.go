package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/core/ports"
	"github.com/washify/laundry-market/internal/pkg/token"
)

type ChatService struct {
	chats  ports.ChatRepository
	logger zerolog.Logger
}

func NewChatService(chats ports.ChatRepository, logger zerolog.Logger) *ChatService {
	return &ChatService{chats: chats, logger: logger}
}

// OpenForOrder returns the order's chat, creating an empty one on first use.
// Repeated calls for the same order return the existing chat unchanged.
func (s *ChatService) OpenForOrder(ctx context.Context, input ports.OpenChatInput) (*domain.Chat, error) {
	existing, err := s.chats.FindByOrderID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	chat := &domain.Chat{
		ID:           token.Next(),
		OrderID:      input.OrderID,
		Participants: []string{input.StudentID, input.SellerID},
		ParticipantNames: map[string]string{
			input.StudentID: input.StudentName,
			input.SellerID:  input.SellerName,
		},
		Messages:    []domain.Message{},
		LastUpdated: time.Now().UTC(),
	}
	if err := s.chats.Create(ctx, chat); err != nil {
		return nil, err
	}

	s.logger.Info().Str("chat_id", chat.ID).Str("order_id", chat.OrderID).Msg("chat created")
	return chat, nil
}

func (s *ChatService) List(ctx context.Context) ([]*domain.Chat, error) {
	return s.chats.List(ctx)
}

// ForOrder returns (nil, nil) when the order has no chat yet.
func (s *ChatService) ForOrder(ctx context.Context, orderID string) (*domain.Chat, error) {
	return s.chats.FindByOrderID(ctx, orderID)
}

// SendMessage appends a message to the chat and bumps LastUpdated. An unknown
// chatID yields (nil, nil) and leaves every chat untouched.
func (s *ChatService) SendMessage(ctx context.Context, chatID, senderID, text string) (*domain.Message, error) {
	chat, err := s.chats.FindByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, nil
	}

	msg := domain.Message{
		ID:        token.Next(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	chat.Messages = append(chat.Messages, msg)
	chat.LastUpdated = msg.Timestamp

	if err := s.chats.Update(ctx, chat); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("chat_id", chatID).Str("sender_id", senderID).Msg("message sent")
	return &msg, nil
}
