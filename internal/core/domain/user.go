package domain

import (
	"errors"
	"fmt"
)

// Role identifies which side of the marketplace a user is on.
type Role string

const (
	RoleStudent Role = "student"
	RoleSeller  Role = "seller"
)

// DefaultPricePerWash is assigned to sellers that register without a price.
const DefaultPricePerWash = 10

var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidRole = errors.New("invalid role")

// RoleMismatchError is returned when credentials check out but the user tried
// to log in through the wrong portal. The message names the actual role so
// the form can tell the user where to go.
type RoleMismatchError struct {
	Role Role
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("invalid role, please login as a %s", e.Role)
}

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleSeller:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// User is a registered account. Password is stored and compared in plaintext:
// this is a faithful port of the prototype's behavior and is NOT secure.
// Rating, Reviews and PricePerWash are only meaningful for sellers.
type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         Role    `json:"role"`
	Area         string  `json:"area,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	Reviews      int     `json:"reviews,omitempty"`
	PricePerWash float64 `json:"pricePerWash,omitempty"`
}

// IsSeller reports whether the user offers laundry services.
func (u *User) IsSeller() bool { return u.Role == RoleSeller }
