package ratelimiter_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfecthome/site/pkg/ratelimiter"
)

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	defer client.Close()

	clock := newFakeClock()
	store := ratelimiter.NewRedisStore(client,
		ratelimiter.WithKeyPrefix("test:ratelimit:"+uuid.NewString()+":"),
		ratelimiter.WithRedisClock(clock.Now),
	)
	limiter, err := ratelimiter.NewBucket(store, testConfig)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 2; i >= 0; i-- {
		res, err := limiter.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.Equal(t, i, res.Remaining)
	}

	res, err := limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	clock.Advance(time.Minute)
	res, err = limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, clock.Now().Add(time.Minute).UnixMilli(), res.ResetAt.UnixMilli())

	require.NoError(t, limiter.Reset(ctx, "ip"))
	res, err = limiter.Status(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining)
}
