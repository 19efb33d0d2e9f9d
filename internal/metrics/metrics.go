package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type loadStats struct {
	loads        int
	failures     int
	staleDropped int
	enriched     int
	enrichFailed int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and loads,
// and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	load  loadStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordLoad tracks one full load (all dates plus enrichment).
func (r *Recorder) RecordLoad(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.load.loads++
	r.load.lastDuration = duration
	if err != nil {
		r.load.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLoad(duration, err)
	}
}

// RecordStaleLoad counts a load result discarded because a newer load superseded it.
func (r *Recorder) RecordStaleLoad() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.load.staleDropped++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCounter(r.otel.staleLoads, 1)
	}
}

// RecordEnrichment counts the outcome of one per-match enrichment fetch.
func (r *Recorder) RecordEnrichment(outcome string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	switch outcome {
	case OutcomeEnriched:
		r.load.enriched++
	case OutcomeFailed:
		r.load.enrichFailed++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordEnrichment(outcome)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// LoadSnapshot is a copy of the load counters.
type LoadSnapshot struct {
	Loads              int
	Failures           int
	StaleDropped       int
	Enriched           int
	EnrichmentFailures int
	LastDuration       time.Duration
}

// Loads returns a copy of the load counters.
func (r *Recorder) Loads() LoadSnapshot {
	if r == nil {
		return LoadSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return LoadSnapshot{
		Loads:              r.load.loads,
		Failures:           r.load.failures,
		StaleDropped:       r.load.staleDropped,
		Enriched:           r.load.enriched,
		EnrichmentFailures: r.load.enrichFailed,
		LastDuration:       r.load.lastDuration,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
