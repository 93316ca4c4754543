package requests

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel for a expected 404, like a Riot ID that doesn't exist.
var ErrNotFound = errors.New("resource not found on the Riot API")

// AuthError is returned on a 401/403, meaning the key is invalid or expired.
// Fatal for the whole pipeline run, since every following call would fail too.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("Riot API key rejected with status %d, the key may be invalid or expired", e.StatusCode)
}

// RateLimitError is returned on a 429. The core never retries by itself,
// the caller decides what to do with the Retry-After hint.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("Riot API rate limit exceeded, retry after %s", e.RetryAfter)
	}
	return "Riot API rate limit exceeded"
}

// ApiError is any other non-2xx response, carrying the status and body.
type ApiError struct {
	StatusCode int
	Body       string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("Riot API returned status code %d: %s", e.StatusCode, e.Body)
}

// DataIntegrityError is a well formed 2xx response missing a expected field,
// like a match without participants or a summoner missing after a
// successful account lookup.
type DataIntegrityError struct {
	Resource string
	Reason   string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("malformed %s response: %s", e.Resource, e.Reason)
}

// IsNotFound reports whether the error chain contains the 404 sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAuthError reports whether the error chain contains a AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsRateLimited reports whether the error chain contains a RateLimitError.
func IsRateLimited(err error) bool {
	var rateErr *RateLimitError
	return errors.As(err, &rateErr)
}
