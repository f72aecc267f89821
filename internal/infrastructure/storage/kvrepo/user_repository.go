// Package kvrepo implements the core repository ports over any storage.Store.
// Every mutation follows the same pattern the prototype used: read the whole
// collection, change it in memory, write the whole collection back. There are
// no delta writes and no schema versioning.
package kvrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/infrastructure/storage"
)

type UserRepository struct {
	store storage.Store
}

func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) load(ctx context.Context) ([]domain.User, error) {
	data, ok, err := r.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) save(ctx context.Context, users []domain.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	return r.store.Set(ctx, storage.KeyUsers, data)
}

// Create appends the user after checking email uniqueness. The email match is
// exact and case-sensitive, as in the prototype.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == u.Email {
			return nil, domain.ErrEmailTaken
		}
	}

	users = append(users, *u)
	if err := r.save(ctx, users); err != nil {
		return nil, err
	}

	created := *u
	return &created, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.User, len(users))
	for i := range users {
		u := users[i]
		out[i] = &u
	}
	return out, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	// Plaintext comparison, preserved from the prototype. Not secure.
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID == u.ID {
			users[i] = *u
			return r.save(ctx, users)
		}
	}
	return domain.ErrUserNotFound
}
