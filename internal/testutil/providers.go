package testutil

import (
	"context"

	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/providers"
)

// GoodProvider returns the provided matches for every date with no error.
type GoodProvider struct {
	Matches []matches.Match
}

func (p GoodProvider) FetchMatches(ctx context.Context, date string) ([]matches.Match, error) {
	return p.Matches, nil
}

func (p GoodProvider) FetchEnrichment(ctx context.Context, matchID string) (matches.Enrichment, error) {
	return matches.Enrichment{}, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchMatches(ctx context.Context, date string) ([]matches.Match, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchEnrichment(ctx context.Context, matchID string) (matches.Enrichment, error) {
	return matches.Enrichment{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchMatches(ctx context.Context, date string) ([]matches.Match, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchEnrichment(ctx context.Context, matchID string) (matches.Enrichment, error) {
	return matches.Enrichment{}, providers.ErrProviderUnavailable
}

// NotifyingProvider returns matches and closes Notify on the first fetch.
type NotifyingProvider struct {
	Matches []matches.Match
	Notify  chan struct{}
}

func (p *NotifyingProvider) FetchMatches(ctx context.Context, date string) ([]matches.Match, error) {
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Matches, nil
}

func (p *NotifyingProvider) FetchEnrichment(ctx context.Context, matchID string) (matches.Enrichment, error) {
	return matches.Enrichment{}, nil
}
