package services

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel error kinds for the fetch pipeline. Handlers map these onto
// HTTP statuses while keeping the outward message generic.
var (
	// ErrEmptyUsername is returned before any network call is made
	ErrEmptyUsername = errors.New("username is required")

	// ErrUserNotFound indicates the GitHub user does not exist
	ErrUserNotFound = errors.New("github user not found")

	// ErrCacheCorrupt indicates a stored cache payload could not be decoded.
	// Callers treat it as a cache miss.
	ErrCacheCorrupt = errors.New("cache entry corrupt")
)

// RateLimitExceededError is returned by the internal request guard when the
// per-window call budget is spent
type RateLimitExceededError struct {
	ResetTime time.Time
	Limit     int
}

func (e *RateLimitExceededError) Error() string {
	return fmt.Sprintf("rate limit of %d requests exceeded, resets at %v", e.Limit, e.ResetTime)
}

// UpstreamError wraps a failure talking to the GitHub API
type UpstreamError struct {
	Operation string
	Err       error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github api: %s failed: %v", e.Operation, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsRateLimitExceeded checks whether an error is the internal guard tripping
func IsRateLimitExceeded(err error) bool {
	var rle *RateLimitExceededError
	return errors.As(err, &rle)
}
