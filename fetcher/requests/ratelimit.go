package requests

import (
	"context"
	"lolinsights/pkg/config"
	"sync"
	"time"
)

// Single riot rate limiting window.
type limitWindow struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the constraints.
type RateLimiter struct {
	windows []*limitWindow
	mu      sync.Mutex
}

// Create a instance of the rate limiter with the configured windows.
func CreateRateLimiter() *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		windows: []*limitWindow{
			{
				limit:         config.Limits.Lower.Count,
				resetInterval: config.Limits.Lower.ResetInterval,
				lastReset:     now,
			},
			{
				limit:         config.Limits.Higher.Count,
				resetInterval: config.Limits.Higher.ResetInterval,
				lastReset:     now,
			},
		},
	}
}

// Reset every window that passed its interval.
func (r *RateLimiter) resetCounts() {
	now := time.Now()
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Try to consume one request slot, returning how long to wait when full.
func (r *RateLimiter) tryAcquire() (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	var waitTime time.Duration
	for _, window := range r.windows {
		if window.count < window.limit {
			continue
		}

		waitTill := window.resetInterval - time.Since(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}

	if waitTime > 0 {
		return false, waitTime
	}

	for _, window := range r.windows {
		window.count++
	}
	return true, 0
}

// Wait blocks until a request slot is available on every window,
// or until the context is canceled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		acquired, waitTime := r.tryAcquire()
		if acquired {
			return nil
		}

		timer := time.NewTimer(waitTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
