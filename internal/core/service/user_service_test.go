package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/washify/laundry-market/internal/core/domain"
	"github.com/washify/laundry-market/internal/core/ports"
)

func newUserService(repo *stubUserRepo, sessions *stubSessionStore) *UserService {
	return NewUserService(repo, sessions, zerolog.Nop())
}

func TestUserService_Register_SellerDefaults(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newUserService(repo, &stubSessionStore{})

	user, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Name:     "Sarah",
		Email:    "sarah@example.com",
		Password: "pw",
		Role:     domain.RoleSeller,
		Area:     "University Road",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if user.PricePerWash != domain.DefaultPricePerWash {
		t.Fatalf("expected default price %d, got %v", domain.DefaultPricePerWash, user.PricePerWash)
	}
	if user.Rating != 0 || user.Reviews != 0 {
		t.Fatalf("expected zeroed rating/reviews, got %v/%v", user.Rating, user.Reviews)
	}
}

func TestUserService_Register_StudentHasNoSellerFields(t *testing.T) {
	svc := newUserService(&stubUserRepo{}, &stubSessionStore{})

	user, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Name:     "Ali",
		Email:    "ali@example.com",
		Password: "pw",
		Role:     domain.RoleStudent,
		// A price sneaking in through the form must be ignored for students.
		PricePerWash: 99,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PricePerWash != 0 {
		t.Fatalf("student should have no price, got %v", user.PricePerWash)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newUserService(repo, &stubSessionStore{})

	input := ports.RegisterUserInput{Name: "A", Email: "a@x.com", Password: "pw", Role: domain.RoleStudent}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	input.Name = "B"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("collection size changed on failed register: %d", len(repo.users))
	}
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	svc := newUserService(&stubUserRepo{}, &stubSessionStore{})

	_, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Name: "A", Email: "a@x.com", Password: "pw", Role: "admin",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_ListSellers_Search(t *testing.T) {
	repo := &stubUserRepo{users: []*domain.User{
		{ID: "1", Name: "Sarah Anderson", Email: "s@x.com", Role: domain.RoleSeller, Area: "University Road"},
		{ID: "2", Name: "Martha Jenkins", Email: "m@x.com", Role: domain.RoleSeller, Area: "North Campus"},
		{ID: "3", Name: "Ali Haider", Email: "ali@x.com", Role: domain.RoleStudent, Area: "University Road"},
	}}
	svc := newUserService(repo, &stubSessionStore{})

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"1", "2"}},
		{"university", []string{"1"}},
		{"SARAH", []string{"1"}},
		{"campus", []string{"2"}},
		{"nobody", nil},
	}
	for _, tc := range tests {
		got, err := svc.ListSellers(context.Background(), tc.search)
		if err != nil {
			t.Fatalf("ListSellers(%q) returned error: %v", tc.search, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("ListSellers(%q) returned %d sellers, want %d", tc.search, len(got), len(tc.want))
		}
		for i, s := range got {
			if s.ID != tc.want[i] {
				t.Fatalf("ListSellers(%q)[%d] = %s, want %s", tc.search, i, s.ID, tc.want[i])
			}
		}
	}
}

func TestUserService_UpdateSellerPrice_SyncsOwnSession(t *testing.T) {
	repo := &stubUserRepo{users: []*domain.User{
		{ID: "42", Name: "Sarah", Email: "s@x.com", Role: domain.RoleSeller, PricePerWash: 10},
	}}
	sessions := &stubSessionStore{sess: &domain.Session{UserID: "42", Name: "Sarah", Role: domain.RoleSeller, PricePerWash: 10}}
	svc := newUserService(repo, sessions)

	ok, err := svc.UpdateSellerPrice(context.Background(), "42", 15.5)
	if err != nil {
		t.Fatalf("UpdateSellerPrice returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected success")
	}
	if repo.users[0].PricePerWash != 15.5 {
		t.Fatalf("user price = %v, want 15.5", repo.users[0].PricePerWash)
	}
	if sessions.sess.PricePerWash != 15.5 {
		t.Fatalf("session price = %v, want 15.5", sessions.sess.PricePerWash)
	}
}

func TestUserService_UpdateSellerPrice_LeavesOtherSessionAlone(t *testing.T) {
	repo := &stubUserRepo{users: []*domain.User{
		{ID: "42", Name: "Sarah", Email: "s@x.com", Role: domain.RoleSeller, PricePerWash: 10},
	}}
	sessions := &stubSessionStore{sess: &domain.Session{UserID: "7", Name: "Ali", Role: domain.RoleStudent}}
	svc := newUserService(repo, sessions)

	ok, err := svc.UpdateSellerPrice(context.Background(), "42", 15.5)
	if err != nil || !ok {
		t.Fatalf("UpdateSellerPrice = (%v, %v), want (true, nil)", ok, err)
	}
	if sessions.sess.PricePerWash != 0 {
		t.Fatalf("unrelated session was touched: price = %v", sessions.sess.PricePerWash)
	}
}

func TestUserService_UpdateSellerPrice_UnknownUser(t *testing.T) {
	svc := newUserService(&stubUserRepo{}, &stubSessionStore{})

	ok, err := svc.UpdateSellerPrice(context.Background(), "missing", 12)
	if err != nil {
		t.Fatalf("expected no error for unknown user, got %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for unknown user")
	}
}
