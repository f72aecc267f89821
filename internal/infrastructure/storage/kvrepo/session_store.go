package kvrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/infrastructure/storage"
)

// SessionStore persists the single active session under its own key.
type SessionStore struct {
	store storage.Store
}

func NewSessionStore(store storage.Store) *SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) Get(ctx context.Context) (*domain.Session, error) {
	data, ok, err := s.store.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) Put(ctx context.Context, sess *domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.store.Set(ctx, storage.KeySession, data)
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, storage.KeySession)
}
