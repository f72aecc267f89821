package kvrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/infrastructure/storage"
)

type ChatRepository struct {
	store storage.Store
}

func NewChatRepository(store storage.Store) *ChatRepository {
	return &ChatRepository{store: store}
}

func (r *ChatRepository) load(ctx context.Context) ([]domain.Chat, error) {
	data, ok, err := r.store.Get(ctx, storage.KeyChats)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var chats []domain.Chat
	if err := json.Unmarshal(data, &chats); err != nil {
		return nil, fmt.Errorf("decode chats: %w", err)
	}
	return chats, nil
}

func (r *ChatRepository) save(ctx context.Context, chats []domain.Chat) error {
	data, err := json.Marshal(chats)
	if err != nil {
		return fmt.Errorf("encode chats: %w", err)
	}
	return r.store.Set(ctx, storage.KeyChats, data)
}

func (r *ChatRepository) Create(ctx context.Context, c *domain.Chat) error {
	chats, err := r.load(ctx)
	if err != nil {
		return err
	}

	chats = append(chats, *c)
	return r.save(ctx, chats)
}

func (r *ChatRepository) List(ctx context.Context) ([]*domain.Chat, error) {
	chats, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Chat, len(chats))
	for i := range chats {
		c := chats[i]
		out[i] = &c
	}
	return out, nil
}

// FindByID returns (nil, nil) on a miss; an unknown chat is an expected case
// for senders, not an error.
func (r *ChatRepository) FindByID(ctx context.Context, id string) (*domain.Chat, error) {
	chats, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range chats {
		if chats[i].ID == id {
			c := chats[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ChatRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Chat, error) {
	chats, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range chats {
		if chats[i].OrderID == orderID {
			c := chats[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ChatRepository) Update(ctx context.Context, c *domain.Chat) error {
	chats, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range chats {
		if chats[i].ID == c.ID {
			chats[i] = *c
			return r.save(ctx, chats)
		}
	}
	return fmt.Errorf("chat %s not stored", c.ID)
}
