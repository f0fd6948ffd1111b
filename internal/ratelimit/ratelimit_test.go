package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCountsWithinWindow(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, ttl, err := store.Incr(ctx, "1.2.3.4", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
		assert.Greater(t, ttl, time.Duration(0))
	}
}

func TestMemoryStoreResetsAfterWindow(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Incr(ctx, "k", time.Minute)
	store.Incr(ctx, "k", time.Minute)

	now = now.Add(2 * time.Minute)
	count, _, err := store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStoreIsolatesKeys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Incr(ctx, "a", time.Minute)
	store.Incr(ctx, "a", time.Minute)
	count, _, err := store.Incr(ctx, "b", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLimiterBlocksOverMax(t *testing.T) {
	limiter := NewLimiter(NewMemoryStore(), time.Minute, 2)
	ctx := context.Background()

	ok, _ := limiter.Allow(ctx, "ip")
	assert.True(t, ok)
	ok, _ = limiter.Allow(ctx, "ip")
	assert.True(t, ok)
	ok, retryAfter := limiter.Allow(ctx, "ip")
	assert.False(t, ok)
	assert.GreaterOrEqual(t, retryAfter, int64(1))
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("backend down")
}

func TestLimiterFailsOpenOnStoreError(t *testing.T) {
	limiter := NewLimiter(failingStore{}, time.Minute, 1)

	ok, retryAfter := limiter.Allow(context.Background(), "ip")
	assert.True(t, ok)
	assert.Zero(t, retryAfter)
}
