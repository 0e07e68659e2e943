package llmprovider

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrEmptyCompletion indicates the provider answered without any text
	ErrEmptyCompletion = errors.New("empty completion")

	// ErrProviderUnavailable indicates a 5xx answer from the provider
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// retryable reports whether another attempt on the same provider may help.
func retryable(err error) bool {
	return errors.Is(err, ErrProviderRateLimited) ||
		errors.Is(err, ErrEmptyCompletion) ||
		errors.Is(err, ErrProviderUnavailable)
}

// classifyStatus maps an HTTP status to the sentinel it retries under.
func classifyStatus(status int) error {
	switch {
	case status == http.StatusTooManyRequests:
		return ErrProviderRateLimited
	case status >= http.StatusInternalServerError:
		return ErrProviderUnavailable
	}
	return nil
}

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
