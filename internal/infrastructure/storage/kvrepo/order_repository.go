package kvrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/infrastructure/storage"
)

type OrderRepository struct {
	store storage.Store
}

func NewOrderRepository(store storage.Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// load reports whether the orders key exists at all; SeedIfAbsent needs to
// tell a never-initialized collection apart from an empty one.
func (r *OrderRepository) load(ctx context.Context) ([]domain.Order, bool, error) {
	data, ok, err := r.store.Get(ctx, storage.KeyOrders)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, false, fmt.Errorf("decode orders: %w", err)
	}
	return orders, true, nil
}

func (r *OrderRepository) save(ctx context.Context, orders []domain.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	return r.store.Set(ctx, storage.KeyOrders, data)
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	orders, _, err := r.load(ctx)
	if err != nil {
		return err
	}

	orders = append(orders, *o)
	return r.save(ctx, orders)
}

func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	orders, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Order, len(orders))
	for i := range orders {
		o := orders[i]
		out[i] = &o
	}
	return out, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *OrderRepository) Update(ctx context.Context, o *domain.Order) error {
	orders, _, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID == o.ID {
			orders[i] = *o
			return r.save(ctx, orders)
		}
	}
	return domain.ErrOrderNotFound
}

func (r *OrderRepository) SeedIfAbsent(ctx context.Context, seed []domain.Order) (bool, error) {
	_, exists, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if err := r.save(ctx, append([]domain.Order(nil), seed...)); err != nil {
		return false, err
	}
	return true, nil
}
