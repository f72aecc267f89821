package service

import (
	"context"
	"fmt"

	"github.com/washify/laundry-market/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories, mirroring the kvrepo invariants
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users []*domain.User
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.users = append(r.users, cloneUser(u))
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, len(r.users))
	for i, u := range r.users {
		out[i] = cloneUser(u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByCredentials(_ context.Context, email, password string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Password == password {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			r.users[i] = cloneUser(u)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubSessionStore struct {
	sess *domain.Session
}

func (s *stubSessionStore) Get(_ context.Context) (*domain.Session, error) {
	if s.sess == nil {
		return nil, nil
	}
	clone := *s.sess
	return &clone, nil
}

func (s *stubSessionStore) Put(_ context.Context, sess *domain.Session) error {
	clone := *sess
	s.sess = &clone
	return nil
}

func (s *stubSessionStore) Clear(_ context.Context) error {
	s.sess = nil
	return nil
}

type stubOrderRepo struct {
	orders []*domain.Order
	seeded bool
}

func cloneOrder(o *domain.Order) *domain.Order {
	clone := *o
	clone.Items = append([]string(nil), o.Items...)
	return &clone
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	r.orders = append(r.orders, cloneOrder(o))
	r.seeded = true
	return nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	out := make([]*domain.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = cloneOrder(o)
	}
	return out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) Update(_ context.Context, o *domain.Order) error {
	for i, existing := range r.orders {
		if existing.ID == o.ID {
			r.orders[i] = cloneOrder(o)
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

func (r *stubOrderRepo) SeedIfAbsent(_ context.Context, seed []domain.Order) (bool, error) {
	if r.seeded {
		return false, nil
	}
	for i := range seed {
		r.orders = append(r.orders, cloneOrder(&seed[i]))
	}
	r.seeded = true
	return true, nil
}

type stubChatRepo struct {
	chats []*domain.Chat
}

func cloneChat(c *domain.Chat) *domain.Chat {
	clone := *c
	clone.Participants = append([]string(nil), c.Participants...)
	clone.Messages = append([]domain.Message(nil), c.Messages...)
	clone.ParticipantNames = make(map[string]string, len(c.ParticipantNames))
	for k, v := range c.ParticipantNames {
		clone.ParticipantNames[k] = v
	}
	return &clone
}

func (r *stubChatRepo) Create(_ context.Context, c *domain.Chat) error {
	r.chats = append(r.chats, cloneChat(c))
	return nil
}

func (r *stubChatRepo) List(_ context.Context) ([]*domain.Chat, error) {
	out := make([]*domain.Chat, len(r.chats))
	for i, c := range r.chats {
		out[i] = cloneChat(c)
	}
	return out, nil
}

func (r *stubChatRepo) FindByID(_ context.Context, id string) (*domain.Chat, error) {
	for _, c := range r.chats {
		if c.ID == id {
			return cloneChat(c), nil
		}
	}
	return nil, nil
}

func (r *stubChatRepo) FindByOrderID(_ context.Context, orderID string) (*domain.Chat, error) {
	for _, c := range r.chats {
		if c.OrderID == orderID {
			return cloneChat(c), nil
		}
	}
	return nil, nil
}

func (r *stubChatRepo) Update(_ context.Context, c *domain.Chat) error {
	for i, existing := range r.chats {
		if existing.ID == c.ID {
			r.chats[i] = cloneChat(c)
			return nil
		}
	}
	return fmt.Errorf("chat %s not stored", c.ID)
}
