package config

import "time"

const (
	envPort             = "PORT"
	envRefreshInterval  = "REFRESH_INTERVAL"
	envProvider         = "PROVIDER"
	envAdminToken       = "ADMIN_TOKEN"
	envSofascoreBaseURL = "SOFASCORE_BASE_URL"
	envSofascoreAgent   = "SOFASCORE_USER_AGENT"
	envMatchDates       = "MATCH_DATES"
	envPageSize         = "PAGE_SIZE"
	envEnrichConcurrent = "ENRICHMENT_CONCURRENCY"
	envRetryAttempts    = "PROVIDER_RETRY_ATTEMPTS"
	envRetryBackoff     = "PROVIDER_RETRY_BACKOFF"
	envMinInterval      = "PROVIDER_MIN_INTERVAL"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// SofaScore has no published quota; two minutes keeps the refresh polite.
	defaultRefreshInterval   = 2 * Duration(time.Minute)
	defaultProvider          = "fixture"
	defaultSofascoreBaseURL  = "https://api.sofascore.com/api/v1"
	defaultMatchDates        = "2025-04-15,2025-04-16"
	defaultPageSize          = 4
	defaultEnrichConcurrency = 4
	defaultRetryAttempts     = 1
	defaultRetryBackoff      = 200 * Duration(time.Millisecond)
	defaultMetricsPort       = "9090"
	defaultOtelServiceName   = "football-fixtures-service"
)
