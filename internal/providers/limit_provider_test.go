package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimitedProviderBlocksUntilTick(t *testing.T) {
	inner := &stubProvider{}
	rl := NewRateLimitedProvider(inner, 5*time.Millisecond, nil).(*rateLimitedProvider)
	defer rl.Close()

	start := time.Now()
	if _, err := rl.FetchMatches(context.Background(), "2025-04-15"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Fatalf("expected call to wait for ticker, elapsed %s", elapsed)
	}
	if _, err := rl.FetchEnrichment(context.Background(), "1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if inner.calls.Load() != 2 {
		t.Fatalf("expected inner provider called twice, got %d", inner.calls.Load())
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &stubProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil).(*rateLimitedProvider)
	defer rl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchMatches(ctx, "2025-04-15"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if _, err := rl.FetchEnrichment(ctx, "1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.calls.Load() != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	var inner DataProvider
	rl := NewRateLimitedProvider(inner, time.Millisecond, nil).(*rateLimitedProvider)
	defer rl.Close()

	if _, err := rl.FetchMatches(context.Background(), "2025-04-15"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderCloseIsIdempotent(t *testing.T) {
	rl := NewRateLimitedProvider(&stubProvider{}, time.Millisecond, nil).(*rateLimitedProvider)
	rl.Close()
	rl.Close()
}

func TestRateLimitedProviderDisabledWhenIntervalZero(t *testing.T) {
	inner := &stubProvider{}
	if got := NewRateLimitedProvider(inner, 0, nil); got != DataProvider(inner) {
		t.Fatalf("expected inner provider returned unchanged, got %T", got)
	}
}
