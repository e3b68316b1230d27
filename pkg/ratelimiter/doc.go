// Package ratelimiter implements a token bucket limiter with in-memory and
// Redis stores, plus HTTP middleware.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each allowed request takes one token; a denied request
// takes nothing and reports a negative Remaining.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.Composite(
//		ratelimiter.Static("booking"),
//		func(r *http.Request) string { return clientip.GetIPFromContext(r.Context()) },
//	))).Post("/booking", submit)
//
// Use NewRedisStore when several instances must share limits. Its Lua script
// performs the same refill and consume steps as MemoryStore atomically on the
// server.
package ratelimiter
