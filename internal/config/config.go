package config

import (
	"fmt"

	"github.com/preston-bernstein/football-fixtures-service/internal/timeutil"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	RefreshInterval Duration
	Provider        string
	AdminToken      string
	Sofascore       SofascoreConfig
	Matches         MatchesConfig
	Upstream        UpstreamConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Provider:        envOrDefault(envProvider, defaultProvider),
		AdminToken:      envOrDefault(envAdminToken, ""),
		Sofascore:       loadSofascore(),
		Matches:         loadMatches(),
		Upstream:        loadUpstream(),
		Metrics:         loadMetrics(),
	}
}

// Validate reports configuration that would make every load fail.
func (c Config) Validate() error {
	if len(c.Matches.Dates) == 0 {
		return fmt.Errorf("%s: at least one date is required", envMatchDates)
	}
	for _, d := range c.Matches.Dates {
		if _, err := timeutil.ParseDate(d); err != nil {
			return fmt.Errorf("%s: invalid date %q: %w", envMatchDates, d, err)
		}
	}
	return nil
}
