package services

import (
	"sync"
	"time"
)

// RateLimiter guards the GitHub fetch path against burning through the
// unauthenticated API quota. It is a fixed window that advances on expiry:
// the first call after the window passes starts a fresh one.
type RateLimiter struct {
	mu        sync.Mutex
	requests  int
	resetTime time.Time
	max       int
	window    time.Duration

	now func() time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// CheckLimit consumes one request from the current window. It returns a
// RateLimitExceededError once the budget is spent, until the window resets.
func (l *RateLimiter) CheckLimit() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if l.resetTime.IsZero() || !now.Before(l.resetTime) {
		l.requests = 0
		l.resetTime = now.Add(l.window)
	}

	if l.requests >= l.max {
		return &RateLimitExceededError{
			ResetTime: l.resetTime,
			Limit:     l.max,
		}
	}

	l.requests++
	return nil
}

// Remaining reports how many requests are left in the current window
func (l *RateLimiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.resetTime.IsZero() || !l.now().Before(l.resetTime) {
		return l.max
	}

	return l.max - l.requests
}
