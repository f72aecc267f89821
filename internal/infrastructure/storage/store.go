// Package storage defines the key-value medium the repositories persist
// through. The layout mirrors the prototype's browser storage: one JSON
// document per key, rewritten whole on every mutation.
package storage

import "context"

// Keys under which the four collections live.
const (
	KeyUsers   = "users"
	KeySession = "session"
	KeyOrders  = "orders"
	KeyChats   = "chats"
)

// Store is a minimal key-value medium. Get distinguishes an absent key from
// an empty value because first-run order seeding and session lookup both
// depend on that distinction.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes a key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
