package providers

import (
	"context"

	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
)

// MatchProvider fetches the fixtures scheduled on one calendar date.
// The date is a YYYY-MM-DD string.
type MatchProvider interface {
	FetchMatches(ctx context.Context, date string) ([]matches.Match, error)
}

// EnrichmentProvider fetches supplementary detail for a single finished match.
type EnrichmentProvider interface {
	FetchEnrichment(ctx context.Context, matchID string) (matches.Enrichment, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	MatchProvider
	EnrichmentProvider
}
