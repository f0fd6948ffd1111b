package ratelimit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/util"
)

// CounterStore counts hits per key inside a fixed window. Incr returns the
// count after this hit and the time remaining in the key's window.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
}

// Limiter enforces a max-hits-per-window policy over a CounterStore.
type Limiter struct {
	store  CounterStore
	window time.Duration
	max    int64
}

func NewLimiter(store CounterStore, window time.Duration, max int64) *Limiter {
	return &Limiter{store: store, window: window, max: max}
}

// Allow records a hit for key and reports whether it is within the limit.
// retryAfter is the whole seconds until the window resets, for the
// Retry-After style hint in 429 responses. Store failures fail open so a
// broken counter backend never takes the API down.
func (l *Limiter) Allow(ctx context.Context, key string) (ok bool, retryAfter int64) {
	count, ttl, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		util.GetLogger().Warn("rate limit store error, allowing request",
			zap.String("key", key), zap.Error(err))
		return true, 0
	}
	if count > l.max {
		secs := int64(ttl / time.Second)
		if secs < 1 {
			secs = 1
		}
		return false, secs
	}
	return true, 0
}
