// Package ratelimiter is a token bucket limiter with an in-memory store and
// HTTP middleware.
//
// Each key owns a bucket of Capacity tokens. RefillRate tokens are added every
// RefillInterval, up to Capacity. A request consumes one token and is denied
// when the bucket is empty.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity: 30, RefillRate: 10, RefillInterval: time.Second,
//	})
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP)).Post("/validate", h)
//
// Denied requests receive 429 with the standard JSON error envelope and a
// Retry-After header.
package ratelimiter
