// Package token issues time-derived identifiers for users, orders, chats and
// messages. Ids are millisecond timestamps rendered as decimal digits, with a
// monotonic guard so that two records created in the same millisecond still
// get distinct ids.
package token

import (
	"strconv"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	last int64
)

// Next returns a strictly increasing numeric token.
func Next() string {
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= last {
		now = last + 1
	}
	last = now
	return strconv.FormatInt(now, 10)
}
