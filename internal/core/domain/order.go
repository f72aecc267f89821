package domain

import (
	"errors"
	"fmt"
	"time"
)

// OrderStatus is the lifecycle state of an order. It controls which dashboard
// tab the order shows up under.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "In Progress"
	StatusCompleted  OrderStatus = "Completed"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidStatus = errors.New("invalid order status")

// ParseOrderStatus validates a raw status string against the closed set.
// The prototype wrote whatever string it was handed; rejecting unknown values
// here closes that gap without changing any legal transition.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Order is a laundry order placed by a student with a seller. Orders are
// never deleted; only Status changes after creation.
type Order struct {
	ID          string      `json:"id"`
	StudentID   string      `json:"studentId"`
	StudentName string      `json:"studentName"`
	SellerID    string      `json:"sellerId"`
	SellerName  string      `json:"sellerName"`
	Items       []string    `json:"items"`
	Amount      float64     `json:"amount"`
	Quantity    int         `json:"quantity"`
	Status      OrderStatus `json:"status"`
	Date        time.Time   `json:"date"`
}
