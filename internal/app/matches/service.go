package matches

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/football-fixtures-service/internal/browse"
	domain "github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/filter"
	"github.com/preston-bernstein/football-fixtures-service/internal/logging"
	"github.com/preston-bernstein/football-fixtures-service/internal/metrics"
	"github.com/preston-bernstein/football-fixtures-service/internal/pagination"
	"github.com/preston-bernstein/football-fixtures-service/internal/providers"
)

// DefaultEnrichmentConcurrency bounds concurrent enrichment calls when none is configured.
const DefaultEnrichmentConcurrency = 4

// ErrStaleLoad is returned when a newer load started before this one finished.
var ErrStaleLoad = errors.New("load superseded by a newer load")

// Store defines the contract for holding the browse state.
type Store interface {
	Begin() browse.Token
	Abandon(token browse.Token)
	Apply(ev browse.Event) (browse.State, bool)
	State() browse.State
	GetMatch(id string) (domain.Match, bool)
}

// Config controls which dates are loaded and how enrichment fans out.
type Config struct {
	Window                domain.DateWindow
	EnrichmentConcurrency int
}

// Query is one browse request.
type Query struct {
	League string
	Page   int
	Width  int
}

// Service coordinates loading matches from a provider into a Store and serving views of them.
type Service struct {
	store       Store
	provider    providers.DataProvider
	window      domain.DateWindow
	concurrency int
	logger      *slog.Logger
	metrics     *metrics.Recorder
}

// NewService constructs a Service with the provided Store and provider.
func NewService(store Store, provider providers.DataProvider, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	concurrency := cfg.EnrichmentConcurrency
	if concurrency < 1 {
		concurrency = DefaultEnrichmentConcurrency
	}
	return &Service{
		store:       store,
		provider:    provider,
		window:      cfg.Window,
		concurrency: concurrency,
		logger:      logger,
		metrics:     recorder,
	}
}

// Load fetches every configured date, enriches finished matches and commits the result.
// Any date failing fails the whole load with an AcquisitionError. Results of a load that
// was superseded while in flight are discarded and ErrStaleLoad is returned.
func (s *Service) Load(ctx context.Context) error {
	start := time.Now()
	token := s.store.Begin()
	logger := logging.FromContext(ctx, s.logger)

	list, err := s.fetch(ctx)
	if err == nil {
		list = s.enrich(ctx, list)
		err = ctx.Err()
	}

	if err != nil && ctx.Err() != nil {
		// Shutdown or caller cancel: leave the last good result in place and let an
		// older load still in flight commit.
		s.store.Abandon(token)
		s.metrics.RecordLoad(time.Since(start), err)
		return err
	}

	var ev browse.Event = browse.LoadSucceeded{Token: token, Matches: list}
	if err != nil {
		ev = browse.LoadFailed{Token: token, Err: err}
	}
	if _, ok := s.store.Apply(ev); !ok {
		s.metrics.RecordStaleLoad()
		logging.Info(logger, "discarded stale load", logging.FieldToken, uint64(token))
		return ErrStaleLoad
	}

	s.metrics.RecordLoad(time.Since(start), err)
	if err != nil {
		logging.Error(logger, "match load failed", err, logging.FieldToken, uint64(token))
		return err
	}
	logging.Info(logger, "matches loaded",
		logging.FieldToken, uint64(token),
		logging.FieldCount, len(list),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

// fetch retrieves all dates concurrently; the first failure cancels the rest.
func (s *Service) fetch(ctx context.Context) ([]domain.Match, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	dates := s.window.Dates()
	results := make([][]domain.Match, len(dates))

	g, gctx := errgroup.WithContext(ctx)
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			list, err := s.provider.FetchMatches(gctx, date)
			if err != nil {
				return &providers.AcquisitionError{Date: date, Err: err}
			}
			results[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.Match
	for _, list := range results {
		all = append(all, list...)
	}
	return filter.ByDateWindow(domain.UniqueByID(all), s.window), nil
}

// enrich attaches optional detail to finished matches. Failures keep the match unenriched.
func (s *Service) enrich(ctx context.Context, list []domain.Match) []domain.Match {
	out := make([]domain.Match, len(list))
	copy(out, list)

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, m := range list {
		if m.Status != domain.StatusFinished {
			continue
		}
		i, m := i, m
		g.Go(func() error {
			enrichment, err := s.provider.FetchEnrichment(ctx, m.ID)
			if err != nil {
				s.metrics.RecordEnrichment(metrics.OutcomeFailed)
				logging.Warn(logging.FromContext(ctx, s.logger), "match enrichment failed",
					logging.FieldMatchID, m.ID,
					"error", &providers.EnrichmentError{MatchID: m.ID, Err: err},
				)
				return nil
			}
			if enrichment.IsEmpty() {
				s.metrics.RecordEnrichment(metrics.OutcomeEmpty)
				return nil
			}
			s.metrics.RecordEnrichment(metrics.OutcomeEnriched)
			out[i] = m.WithEnrichment(enrichment)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Browse renders the page selected by q over the last committed load.
// Each query starts from the first page of the chosen league, then navigates.
func (s *Service) Browse(q Query) browse.View {
	state := browse.Fold(s.store.State(),
		browse.LeagueSelected{League: q.League},
		browse.PageRequested{Page: q.Page},
	)
	return browse.Render(state, pagination.MaxVisibleForWidth(q.Width))
}

// Leagues returns the league options of the last committed load.
func (s *Service) Leagues() []string {
	return filter.LeagueOptions(s.store.State().Matches)
}

// MatchByID returns a single match if present.
func (s *Service) MatchByID(id string) (domain.Match, bool) {
	return s.store.GetMatch(id)
}

// State returns the current browse state.
func (s *Service) State() browse.State {
	return s.store.State()
}
