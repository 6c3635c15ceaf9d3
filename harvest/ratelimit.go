package harvest

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// OriginLimiter provides per-origin rate limiting using token buckets.
// Each origin host gets its own limiter, so concurrent requests to
// different origins proceed while requests to the same origin are paced.
type OriginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewOriginLimiter creates an OriginLimiter with the specified requests
// per second limit. Each origin gets a burst of 1 (no bursting allowed).
func NewOriginLimiter(rps float64) *OriginLimiter {
	return &OriginLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the origin.
// Returns an error if the context is canceled before the wait completes.
func (l *OriginLimiter) Wait(ctx context.Context, origin string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[origin]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[origin] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}

// WaitURL rate limits by the host of rawURL. Unparseable URLs share a
// single bucket keyed by the raw string.
func (l *OriginLimiter) WaitURL(ctx context.Context, rawURL string) error {
	origin := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		origin = u.Host
	}
	return l.Wait(ctx, origin)
}
