package requests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Limiter with small windows so the tests run fast.
func newTestLimiter(lowerCount int, lowerInterval time.Duration) *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		windows: []*limitWindow{
			{
				limit:         lowerCount,
				resetInterval: lowerInterval,
				lastReset:     now,
			},
			{
				limit:         1000,
				resetInterval: time.Hour,
				lastReset:     now,
			},
		},
	}
}

func TestTryAcquire(t *testing.T) {
	limiter := newTestLimiter(2, time.Hour)

	for i := 0; i < 2; i++ {
		acquired, waitTime := limiter.tryAcquire()
		assert.True(t, acquired)
		assert.Zero(t, waitTime)
	}

	// Window exhausted, must report a positive wait.
	acquired, waitTime := limiter.tryAcquire()
	assert.False(t, acquired)
	assert.Greater(t, waitTime, time.Duration(0))
}

func TestWaitRecoversAfterReset(t *testing.T) {
	limiter := newTestLimiter(1, 30*time.Millisecond)

	assert.NoError(t, limiter.Wait(context.Background()))

	// Second acquire must block until the window resets.
	start := time.Now()
	assert.NoError(t, limiter.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestWaitCanceled(t *testing.T) {
	limiter := newTestLimiter(1, time.Hour)
	assert.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
