// middleware/session_blocklist.go
package middleware

import (
	"context"

	"github.com/go-redis/redis/v8"
)

const blocklistKeyPrefix = "session:blocked:"

// SessionBlocklist records logged-out tokens in Redis. Session tokens carry
// no expiry, so blocked entries are kept without a TTL.
type SessionBlocklist struct {
	rdb *redis.Client
}

// NewSessionBlocklist wraps a Redis client; a nil client disables the
// blocklist entirely.
func NewSessionBlocklist(rdb *redis.Client) *SessionBlocklist {
	if rdb == nil {
		return nil
	}
	return &SessionBlocklist{rdb: rdb}
}

// Block invalidates a token for all future requests.
func (b *SessionBlocklist) Block(ctx context.Context, token string) error {
	if b == nil {
		return nil
	}
	return b.rdb.Set(ctx, blocklistKeyPrefix+token, "1", 0).Err()
}

// IsBlocked reports whether a token has been invalidated.
func (b *SessionBlocklist) IsBlocked(ctx context.Context, token string) (bool, error) {
	if b == nil {
		return false, nil
	}
	n, err := b.rdb.Exists(ctx, blocklistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
