package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// StatusError is an unexpected HTTP status from an upstream provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Retryable reports whether repeating the request could succeed.
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusRequestTimeout
}

// AcquisitionError is a failure to fetch a date's base match list. It fails the whole load.
type AcquisitionError struct {
	Date string
	Err  error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("fetch matches for %s: %v", e.Date, e.Err)
}

func (e *AcquisitionError) Unwrap() error { return e.Err }

// EnrichmentError is a failure to fetch optional per-match detail. It is never fatal.
type EnrichmentError struct {
	MatchID string
	Err     error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("fetch enrichment for match %s: %v", e.MatchID, e.Err)
}

func (e *EnrichmentError) Unwrap() error { return e.Err }

// IsAcquisitionError reports whether err wraps an AcquisitionError.
func IsAcquisitionError(err error) bool {
	var acqErr *AcquisitionError
	return errors.As(err, &acqErr)
}
