package requests

import (
	"context"
	"fmt"
	"io"
	"lolinsights/pkg/config"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Shared client so connections are reused between the fetchers.
var httpClient = &http.Client{
	Timeout: 10 * time.Second,
}

// Do a authenticated request to the Riot API.
// Return the response, with non-2xx statuses already classified.
func AuthRequest(ctx context.Context, rawUrl string, params map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if len(params) > 0 {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}

	if config.ApiKey == "" {
		return nil, &AuthError{StatusCode: http.StatusUnauthorized}
	}
	// Add the token from the .env
	req.Header.Set("X-Riot-Token", config.ApiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if err := classifyStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

// Create a simple unauthenticated request, used for the DDragon.
func Request(ctx context.Context, rawUrl string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	return httpClient.Do(req)
}

// Convert a non-2xx response into the matching typed error.
func classifyStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{StatusCode: resp.StatusCode}
	case http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfter(resp)}
	default:
		// Read a bounded chunk of the body for diagnostics.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &ApiError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
}

// Parse the Retry-After header, zero when absent or malformed.
func retryAfter(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
