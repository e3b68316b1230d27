package ratelimiter

import (
	"context"
	"time"
)

// Store persists bucket state. Implementations must apply refill and
// consumption atomically per key.
type Store interface {
	// ConsumeTokens refills the bucket for the elapsed time, then takes
	// tokens if enough are available. remaining is the balance after the
	// attempt; a negative value means the request was denied and nothing
	// was taken. tokens == 0 only reports the current state.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}
