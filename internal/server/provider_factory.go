package server

import (
	"log/slog"

	"github.com/preston-bernstein/football-fixtures-service/internal/config"
	"github.com/preston-bernstein/football-fixtures-service/internal/metrics"
	"github.com/preston-bernstein/football-fixtures-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	limited := providers.NewRateLimitedProvider(base, cfg.Upstream.MinInterval, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.Upstream.RetryAttempts, cfg.Upstream.RetryBackoff)
}
