package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/metrics"
)

const (
	defaultRetryAttempts = 1
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 10 * time.Second
)

// retryingProvider wraps a DataProvider with retry/backoff behavior and records
// one provider metric per upstream attempt.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. maxAttempts <= 0 means a single
// attempt; backoff <= 0 uses the default initial interval.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, initial time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			b.Reset()
			return b
		},
	}
}

func (r *retryingProvider) FetchMatches(ctx context.Context, date string) ([]matches.Match, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return withRetry(ctx, r, "fetch matches", func(ctx context.Context) ([]matches.Match, error) {
		return r.inner.FetchMatches(ctx, date)
	})
}

func (r *retryingProvider) FetchEnrichment(ctx context.Context, matchID string) (matches.Enrichment, error) {
	if r.inner == nil {
		return matches.Enrichment{}, ErrProviderUnavailable
	}
	return withRetry(ctx, r, "fetch enrichment", func(ctx context.Context) (matches.Enrichment, error) {
		return r.inner.FetchEnrichment(ctx, matchID)
	})
}

// Close releases resources held by the wrapped provider when it supports it.
func (r *retryingProvider) Close() {
	if c, ok := r.inner.(interface{ Close() }); ok {
		c.Close()
	}
}

func withRetry[T any](ctx context.Context, r *retryingProvider, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	b := r.newBackOff()

	for attempt := 1; ; attempt++ {
		start := time.Now()
		val, err := fn(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return val, nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}

		if attempt >= r.maxAttempts || !retryable(err) {
			if r.maxAttempts > 1 {
				logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider "+op+" failed",
					"attempts", attempt, "err", err)
			}
			return zero, err
		}

		delay := r.computeDelay(err, b)
		if delay == backoff.Stop {
			return zero, err
		}
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider "+op+" retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "delay_ms", delay.Milliseconds(), "err", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

// computeDelay honours an upstream Retry-After, otherwise takes the next exponential step.
func (r *retryingProvider) computeDelay(err error, b backoff.BackOff) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	return b.NextBackOff()
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrProviderUnavailable) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return true
}
