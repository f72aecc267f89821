package domain

// Session is the denormalized snapshot of the authenticated user, persisted
// separately from the User record. It is created at login by copying fields
// and is not re-synced afterwards except by the explicit price-update path,
// so it can go stale relative to the User it points at.
type Session struct {
	UserID       string  `json:"userId"`
	Name         string  `json:"name"`
	Role         Role    `json:"role"`
	Area         string  `json:"area,omitempty"`
	PricePerWash float64 `json:"pricePerWash,omitempty"`
}
