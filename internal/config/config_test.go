package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("expected default refresh interval %s, got %s", defaultRefreshInterval, cfg.RefreshInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Sofascore.BaseURL != defaultSofascoreBaseURL {
		t.Fatalf("expected default sofascore base url %s, got %s", defaultSofascoreBaseURL, cfg.Sofascore.BaseURL)
	}
	if len(cfg.Matches.Dates) != 2 || cfg.Matches.Dates[0] != "2025-04-15" || cfg.Matches.Dates[1] != "2025-04-16" {
		t.Fatalf("unexpected default dates %v", cfg.Matches.Dates)
	}
	if cfg.Matches.PageSize != 4 || cfg.Matches.EnrichmentConcurrency != 4 {
		t.Fatalf("unexpected match defaults %+v", cfg.Matches)
	}
	if cfg.Upstream.RetryAttempts != 1 || cfg.Upstream.MinInterval != 0 {
		t.Fatalf("unexpected upstream defaults %+v", cfg.Upstream)
	}
	if cfg.AdminToken != "" {
		t.Fatalf("expected empty admin token by default, got %s", cfg.AdminToken)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envRefreshInterval, "45s")
	t.Setenv(envProvider, "sofascore")
	t.Setenv(envSofascoreBaseURL, "http://example.com/api")
	t.Setenv(envAdminToken, "secret-token")
	t.Setenv(envMatchDates, " 2025-05-01 ,,2025-05-02")
	t.Setenv(envPageSize, "10")
	t.Setenv(envEnrichConcurrent, "8")
	t.Setenv(envRetryAttempts, "3")
	t.Setenv(envMinInterval, "250ms")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.RefreshInterval != 45*time.Second {
		t.Fatalf("expected refresh interval 45s, got %s", cfg.RefreshInterval)
	}
	if cfg.Provider != "sofascore" {
		t.Fatalf("expected provider sofascore, got %s", cfg.Provider)
	}
	if cfg.Sofascore.BaseURL != "http://example.com/api" {
		t.Fatalf("expected sofascore base url override, got %s", cfg.Sofascore.BaseURL)
	}
	if cfg.AdminToken != "secret-token" {
		t.Fatalf("expected admin token override, got %s", cfg.AdminToken)
	}
	if len(cfg.Matches.Dates) != 2 || cfg.Matches.Dates[0] != "2025-05-01" || cfg.Matches.Dates[1] != "2025-05-02" {
		t.Fatalf("expected trimmed dates, got %v", cfg.Matches.Dates)
	}
	if cfg.Matches.PageSize != 10 || cfg.Matches.EnrichmentConcurrency != 8 {
		t.Fatalf("unexpected match overrides %+v", cfg.Matches)
	}
	if cfg.Upstream.RetryAttempts != 3 || cfg.Upstream.MinInterval != 250*time.Millisecond {
		t.Fatalf("unexpected upstream overrides %+v", cfg.Upstream)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envRefreshInterval, "not-a-duration")

	cfg := Load()

	if cfg.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("expected default refresh interval on invalid value, got %s", cfg.RefreshInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envRefreshInterval, "0s")

	cfg := Load()

	if cfg.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("expected default refresh interval on non-positive value, got %s", cfg.RefreshInterval)
	}
}

func TestValidateRejectsBadDates(t *testing.T) {
	cases := []struct {
		name  string
		dates []string
	}{
		{"empty", nil},
		{"garbage", []string{"2025-04-15", "soon"}},
		{"wrong_layout", []string{"15/04/2025"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Matches: MatchesConfig{Dates: tc.dates}}
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error for %v", tc.dates)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, b ,,c ")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected split %v", got)
	}
	if got := splitList(""); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestLoadMetricsDefaults(t *testing.T) {
	cfg := Load()
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Metrics.ServiceName != defaultOtelServiceName {
		t.Fatalf("expected service name %s, got %s", defaultOtelServiceName, cfg.Metrics.ServiceName)
	}
}
