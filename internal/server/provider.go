package server

import (
	"log/slog"

	"github.com/preston-bernstein/football-fixtures-service/internal/config"
	"github.com/preston-bernstein/football-fixtures-service/internal/logging"
	"github.com/preston-bernstein/football-fixtures-service/internal/providers"
	"github.com/preston-bernstein/football-fixtures-service/internal/providers/fixture"
	"github.com/preston-bernstein/football-fixtures-service/internal/providers/sofascore"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "sofascore":
		return sofascore.NewClient(sofascore.Config{
			BaseURL:   cfg.Sofascore.BaseURL,
			UserAgent: cfg.Sofascore.UserAgent,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
