// Package demo carries the first-run demo catalog: five seller accounts and
// three historical orders, so a fresh install has something on screen.
package demo

import (
	"time"

	"github.com/washify/laundry-market/internal/core/domain"
)

// Password shared by all demo seller accounts.
const Password = "demo123"

// Sellers returns the demo seller accounts. Ids are fixed so reseeding an
// existing store is recognisable by email and skipped.
func Sellers() []domain.User {
	return []domain.User{
		{ID: "1", Name: "Sarah Anderson", Email: "sarah@washify.demo", Password: Password, Role: domain.RoleSeller, Area: "University Road", Rating: 4.8, Reviews: 124, PricePerWash: 2.5},
		{ID: "2", Name: "Martha Jenkins", Email: "martha@washify.demo", Password: Password, Role: domain.RoleSeller, Area: "North Campus", Rating: 4.5, Reviews: 89, PricePerWash: 2.0},
		{ID: "3", Name: "Elena Rodriguez", Email: "elena@washify.demo", Password: Password, Role: domain.RoleSeller, Area: "University Road", Rating: 4.9, Reviews: 215, PricePerWash: 3.0},
		{ID: "4", Name: "Blue Bubbles Laundry", Email: "bluebubbles@washify.demo", Password: Password, Role: domain.RoleSeller, Area: "West End", Rating: 4.2, Reviews: 45, PricePerWash: 2.2},
		{ID: "5", Name: "Jessica Lee", Email: "jessica@washify.demo", Password: Password, Role: domain.RoleSeller, Area: "Downtown", Rating: 4.7, Reviews: 156, PricePerWash: 2.8},
	}
}

// Orders returns the first-run order history. Dates are relative to now so
// the dashboard always shows a plausible recent timeline.
func Orders() []domain.Order {
	now := time.Now().UTC()
	return []domain.Order{
		{ID: "#ORD-2023-001", StudentName: "Ali Haider", Status: domain.StatusPending, Date: now, Amount: 15.0},
		{ID: "#ORD-2023-002", StudentName: "John Doe", Status: domain.StatusInProgress, Date: now.Add(-2 * time.Hour), Amount: 25.5},
		{ID: "#ORD-2023-003", StudentName: "Jane Smith", Status: domain.StatusCompleted, Date: now.Add(-24 * time.Hour), Amount: 12.0},
	}
}
