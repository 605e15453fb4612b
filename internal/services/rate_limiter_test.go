package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	limiter := NewRateLimiter(60, time.Hour)
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	for i := 0; i < 60; i++ {
		require.NoError(t, limiter.CheckLimit(), "call %d should pass", i+1)
	}

	err := limiter.CheckLimit()
	require.Error(t, err)
	assert.True(t, IsRateLimitExceeded(err))
	assert.Equal(t, 0, limiter.Remaining())
}

func TestRateLimiterWindowAdvances(t *testing.T) {
	limiter := NewRateLimiter(2, time.Hour)
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	require.NoError(t, limiter.CheckLimit())
	require.NoError(t, limiter.CheckLimit())
	require.Error(t, limiter.CheckLimit())

	// Still inside the window
	current = current.Add(30 * time.Minute)
	require.Error(t, limiter.CheckLimit())

	// Past the reset: a fresh window starts and the budget is back
	current = current.Add(31 * time.Minute)
	require.NoError(t, limiter.CheckLimit())
	require.NoError(t, limiter.CheckLimit())
	require.Error(t, limiter.CheckLimit())
}

func TestRateLimiterErrorCarriesResetTime(t *testing.T) {
	limiter := NewRateLimiter(1, time.Hour)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return start }

	require.NoError(t, limiter.CheckLimit())

	err := limiter.CheckLimit()
	require.Error(t, err)

	rle, ok := err.(*RateLimitExceededError)
	require.True(t, ok)
	assert.Equal(t, start.Add(time.Hour), rle.ResetTime)
	assert.Equal(t, 1, rle.Limit)
}
