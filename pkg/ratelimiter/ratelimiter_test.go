package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfecthome/site/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var testConfig = ratelimiter.Config{
	Capacity:       3,
	RefillRate:     1,
	RefillInterval: time.Minute,
}

func newLimiter(t *testing.T, clock *fakeClock) *ratelimiter.Bucket {
	t.Helper()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithClock(clock.Now),
	)
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, testConfig)
	require.NoError(t, err)
	return b
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1, RefillInterval: 0},
	} {
		_, err := ratelimiter.NewBucket(store, cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}

	_, err := ratelimiter.NewBucket(nil, testConfig)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
}

func TestBucket_BurstThenDeny(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	limiter := newLimiter(t, clock)
	ctx := context.Background()

	for i := 2; i >= 0; i-- {
		res, err := limiter.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, i, res.Remaining)
		assert.Equal(t, 3, res.Limit)
	}

	res, err := limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, -1, res.Remaining)

	// Denied requests do not dig the bucket deeper.
	res, err = limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, -1, res.Remaining)

	other, err := limiter.Allow(ctx, "other-ip")
	require.NoError(t, err)
	assert.True(t, other.Allowed(), "keys are independent")
}

func TestBucket_Refill(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	limiter := newLimiter(t, clock)
	ctx := context.Background()

	_, err := limiter.AllowN(ctx, "ip", 3)
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	res, err := limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed(), "no partial refill")

	clock.Advance(time.Second)
	res, err = limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	clock.Advance(24 * time.Hour)
	res, err = limiter.Status(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining, "refill is capped at capacity")
	assert.Equal(t, clock.Now().Add(time.Minute), res.ResetAt)
}

func TestBucket_AllowNInvalid(t *testing.T) {
	t.Parallel()

	limiter := newLimiter(t, newFakeClock())
	_, err := limiter.AllowN(context.Background(), "ip", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestBucket_Reset(t *testing.T) {
	t.Parallel()

	limiter := newLimiter(t, newFakeClock())
	ctx := context.Background()

	_, err := limiter.AllowN(ctx, "ip", 3)
	require.NoError(t, err)
	require.NoError(t, limiter.Reset(ctx, "ip"))

	res, err := limiter.Status(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining)
}

func TestBucket_Concurrent(t *testing.T) {
	t.Parallel()

	limiter := newLimiter(t, newFakeClock())
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := limiter.Allow(ctx, "ip")
			if assert.NoError(t, err) && res.Allowed() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, allowed)
}

func TestResult_RetryAfter(t *testing.T) {
	t.Parallel()

	ok := &ratelimiter.Result{Remaining: 0, ResetAt: time.Now().Add(time.Minute)}
	assert.Zero(t, ok.RetryAfter())

	denied := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(time.Minute)}
	assert.InDelta(t, time.Minute.Seconds(), denied.RetryAfter().Seconds(), 1)

	past := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(-time.Minute)}
	assert.Zero(t, past.RetryAfter())
}

func TestMemoryStore_CleanupRemovesStaleBuckets(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(10*time.Millisecond),
		ratelimiter.WithClock(clock.Now),
	)
	defer store.Close()

	_, _, err := store.ConsumeTokens(context.Background(), "ip", 1, testConfig)
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	clock.Advance(2 * time.Hour)
	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 10*time.Millisecond)

	store.Close()
	store.Close()
}
