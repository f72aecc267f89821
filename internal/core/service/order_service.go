package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/core/ports"
	"github.com/washify/laundry-market/internal/pkg/token"
)

type OrderService struct {
	orders ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

// Place creates a new order with status Pending and an id in the form
// #ORD-<timestamp>. Amount and Quantity are written as given; sign checks
// are the calling form's responsibility.
func (s *OrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		ID:          "#ORD-" + token.Next(),
		StudentID:   input.StudentID,
		StudentName: input.StudentName,
		SellerID:    input.SellerID,
		SellerName:  input.SellerName,
		Items:       append([]string(nil), input.Items...),
		Amount:      input.Amount,
		Quantity:    input.Quantity,
		Status:      domain.StatusPending,
		Date:        time.Now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to place order")
		return nil, err
	}

	s.logger.Info().Str("order_id", order.ID).Str("seller_id", order.SellerID).Float64("amount", order.Amount).Msg("order placed")
	return order, nil
}

func (s *OrderService) List(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Order, 0, len(orders))
	for _, o := range orders {
		if filter.StudentID != "" && o.StudentID != filter.StudentID {
			continue
		}
		if filter.SellerID != "" && o.SellerID != filter.SellerID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		matched = append(matched, o)
	}
	return matched, nil
}

// UpdateStatus overwrites the order's status after parsing newStatus against
// the closed enumeration.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, newStatus string) (*domain.Order, error) {
	status, err := domain.ParseOrderStatus(newStatus)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", orderID).Str("status", newStatus).Msg("order status updated")
	return order, nil
}

// Seed bootstraps the order collection on first run. Once the collection
// exists, even empty, Seed leaves it alone.
func (s *OrderService) Seed(ctx context.Context, orders []domain.Order) (bool, error) {
	seeded, err := s.orders.SeedIfAbsent(ctx, orders)
	if err != nil {
		return false, err
	}
	if seeded {
		s.logger.Info().Int("count", len(orders)).Msg("seeded demo orders")
	}
	return seeded, nil
}
