package config

// MatchesConfig controls which dates are loaded and how they are presented.
type MatchesConfig struct {
	Dates                 []string
	PageSize              int
	EnrichmentConcurrency int
}

// SofascoreConfig controls how we talk to the SofaScore API.
type SofascoreConfig struct {
	BaseURL   string
	UserAgent string
}

// UpstreamConfig controls the retry and rate limit wrappers around the provider.
type UpstreamConfig struct {
	RetryAttempts int
	RetryBackoff  Duration
	MinInterval   Duration // 0 disables rate limiting
}

func loadMatches() MatchesConfig {
	return MatchesConfig{
		Dates:                 listEnvOrDefault(envMatchDates, defaultMatchDates),
		PageSize:              intEnvOrDefault(envPageSize, defaultPageSize),
		EnrichmentConcurrency: intEnvOrDefault(envEnrichConcurrent, defaultEnrichConcurrency),
	}
}

func loadSofascore() SofascoreConfig {
	return SofascoreConfig{
		BaseURL:   envOrDefault(envSofascoreBaseURL, defaultSofascoreBaseURL),
		UserAgent: envOrDefault(envSofascoreAgent, ""),
	}
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		MinInterval:   durationEnvOrDefault(envMinInterval, 0),
	}
}
