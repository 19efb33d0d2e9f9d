package testutil

import (
	"context"

	appmatches "github.com/preston-bernstein/football-fixtures-service/internal/app/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/store"
)

// NewServiceWithMatches builds a matches service over an in-memory store and loads m once.
// A nil slice leaves the service in its initial loading state.
func NewServiceWithMatches(m []matches.Match) *appmatches.Service {
	svc := appmatches.NewService(
		store.NewMemoryStore(4),
		GoodProvider{Matches: m},
		appmatches.Config{Window: matches.MustDateWindow(SampleDate)},
		nil,
		nil,
	)
	if m != nil {
		_ = svc.Load(context.Background())
	}
	return svc
}
