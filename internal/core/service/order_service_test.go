package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/rs/zerolog"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/core/ports"
)

var orderIDPattern = regexp.MustCompile(`^#ORD-\d+$`)

func TestOrderService_Place(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	order, err := svc.Place(context.Background(), ports.PlaceOrderInput{
		StudentID:   "7",
		StudentName: "Ali",
		SellerID:    "42",
		SellerName:  "Sarah",
		Items:       []string{"shirts", "jeans"},
		Amount:      15.0,
		Quantity:    3,
	})
	if err != nil {
		t.Fatalf("Place returned error: %v", err)
	}

	if !orderIDPattern.MatchString(order.ID) {
		t.Fatalf("order id %q does not match #ORD-<digits>", order.ID)
	}
	if order.Status != domain.StatusPending {
		t.Fatalf("new order status = %s, want Pending", order.Status)
	}
	if order.Date.IsZero() {
		t.Fatal("order date not set")
	}
	if len(repo.orders) != 1 {
		t.Fatalf("stored %d orders, want 1", len(repo.orders))
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	repo := &stubOrderRepo{orders: []*domain.Order{
		{ID: "#ORD-1", Status: domain.StatusPending},
		{ID: "#ORD-2", Status: domain.StatusPending},
	}}
	svc := NewOrderService(repo, zerolog.Nop())

	order, err := svc.UpdateStatus(context.Background(), "#ORD-1", "Completed")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if order.Status != domain.StatusCompleted {
		t.Fatalf("status = %s, want Completed", order.Status)
	}
	if repo.orders[1].Status != domain.StatusPending {
		t.Fatalf("untouched order changed: %s", repo.orders[1].Status)
	}
}

func TestOrderService_UpdateStatus_UnknownOrder(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{}, zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), "#ORD-404", "Completed"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := &stubOrderRepo{orders: []*domain.Order{{ID: "#ORD-1", Status: domain.StatusPending}}}
	svc := NewOrderService(repo, zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), "#ORD-1", "Shipped"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.orders[0].Status != domain.StatusPending {
		t.Fatalf("rejected status was written: %s", repo.orders[0].Status)
	}
}

func TestOrderService_List_Filters(t *testing.T) {
	repo := &stubOrderRepo{orders: []*domain.Order{
		{ID: "#ORD-1", StudentID: "7", SellerID: "42", Status: domain.StatusPending},
		{ID: "#ORD-2", StudentID: "7", SellerID: "43", Status: domain.StatusCompleted},
		{ID: "#ORD-3", StudentID: "8", SellerID: "42", Status: domain.StatusInProgress},
	}}
	svc := NewOrderService(repo, zerolog.Nop())

	tests := []struct {
		name   string
		filter ports.ListOrdersFilter
		want   []string
	}{
		{"all", ports.ListOrdersFilter{}, []string{"#ORD-1", "#ORD-2", "#ORD-3"}},
		{"by student", ports.ListOrdersFilter{StudentID: "7"}, []string{"#ORD-1", "#ORD-2"}},
		{"by seller", ports.ListOrdersFilter{SellerID: "42"}, []string{"#ORD-1", "#ORD-3"}},
		{"by status", ports.ListOrdersFilter{Status: domain.StatusInProgress}, []string{"#ORD-3"}},
		{"combined", ports.ListOrdersFilter{StudentID: "7", SellerID: "43"}, []string{"#ORD-2"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.List(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("List returned error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d orders, want %d", len(got), len(tc.want))
			}
			for i, o := range got {
				if o.ID != tc.want[i] {
					t.Fatalf("order[%d] = %s, want %s", i, o.ID, tc.want[i])
				}
			}
		})
	}
}

func TestOrderService_Seed_OnlyOnce(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	seed := []domain.Order{{ID: "#ORD-2023-001", Status: domain.StatusPending}}

	seeded, err := svc.Seed(context.Background(), seed)
	if err != nil || !seeded {
		t.Fatalf("first Seed = (%v, %v), want (true, nil)", seeded, err)
	}

	seeded, err = svc.Seed(context.Background(), seed)
	if err != nil || seeded {
		t.Fatalf("second Seed = (%v, %v), want (false, nil)", seeded, err)
	}
	if len(repo.orders) != 1 {
		t.Fatalf("stored %d orders after reseed, want 1", len(repo.orders))
	}
}
