package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval between upstream calls.
type rateLimitedProvider struct {
	next      DataProvider
	interval  time.Duration
	ticker    *time.Ticker
	logger    *slog.Logger
	closeOnce sync.Once
}

// NewRateLimitedProvider returns a DataProvider whose calls are spaced at least interval apart.
// Calls block until the next slot or context cancellation. A non-positive interval disables limiting.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		return next
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchMatches(ctx context.Context, date string) ([]matches.Match, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchMatches(ctx, date)
}

func (p *rateLimitedProvider) FetchEnrichment(ctx context.Context, matchID string) (matches.Enrichment, error) {
	if err := p.wait(ctx); err != nil {
		return matches.Enrichment{}, err
	}
	return p.next.FetchEnrichment(ctx, matchID)
}

// Close stops the underlying ticker.
func (p *rateLimitedProvider) Close() {
	p.closeOnce.Do(func() {
		p.ticker.Stop()
	})
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}
