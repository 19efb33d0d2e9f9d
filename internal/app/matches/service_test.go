package matches

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/football-fixtures-service/internal/browse"
	domain "github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/filter"
	"github.com/preston-bernstein/football-fixtures-service/internal/metrics"
	"github.com/preston-bernstein/football-fixtures-service/internal/providers"
	"github.com/preston-bernstein/football-fixtures-service/internal/providers/fixture"
	"github.com/preston-bernstein/football-fixtures-service/internal/store"
)

var window = domain.MustDateWindow("2025-04-15", "2025-04-16")

func at(date string, hour int) time.Time {
	d, _ := time.Parse("2006-01-02", date)
	return d.Add(time.Duration(hour) * time.Hour)
}

type stubProvider struct {
	mu         sync.Mutex
	byDate     map[string][]domain.Match
	dateErr    map[string]error
	enrichErr  map[string]error
	enrichment domain.Enrichment
	enriched   []string
}

func (p *stubProvider) FetchMatches(ctx context.Context, date string) ([]domain.Match, error) {
	if err := p.dateErr[date]; err != nil {
		return nil, err
	}
	return p.byDate[date], nil
}

func (p *stubProvider) FetchEnrichment(ctx context.Context, id string) (domain.Enrichment, error) {
	p.mu.Lock()
	p.enriched = append(p.enriched, id)
	p.mu.Unlock()
	if err := p.enrichErr[id]; err != nil {
		return domain.Enrichment{}, err
	}
	return p.enrichment, nil
}

func newStub() *stubProvider {
	return &stubProvider{
		byDate: map[string][]domain.Match{
			"2025-04-15": {
				{ID: "a", StartTime: at("2025-04-15", 19), Tournament: "UCL", Status: domain.StatusFinished},
				{ID: "b", StartTime: at("2025-04-15", 20), Tournament: "EPL", Status: domain.StatusNotStarted},
				{ID: "early", StartTime: at("2025-04-14", 23), Tournament: "MLS", Status: domain.StatusFinished},
				{ID: "no-time", Tournament: "EPL", Status: domain.StatusNotStarted},
			},
			"2025-04-16": {
				{ID: "b", StartTime: at("2025-04-15", 20), Tournament: "EPL", Status: domain.StatusNotStarted},
				{ID: "c", StartTime: at("2025-04-16", 19), Tournament: "UCL", Status: domain.StatusFinished},
			},
		},
		enrichment: domain.Enrichment{PlayerOfMatch: &domain.Player{Name: "Rice"}},
	}
}

func newService(p providers.DataProvider, rec *metrics.Recorder) (*Service, *store.MemoryStore) {
	st := store.NewMemoryStore(4)
	return NewService(st, p, Config{Window: window, EnrichmentConcurrency: 2}, nil, rec), st
}

func ids(list []domain.Match) []string {
	out := make([]string, len(list))
	for i, m := range list {
		out[i] = m.ID
	}
	return out
}

func TestLoadFiltersDeduplicatesAndEnriches(t *testing.T) {
	p := newStub()
	p.enrichErr = map[string]error{"c": errors.New("timeout")}
	rec := metrics.NewRecorder()
	svc, st := newService(p, rec)

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}

	state := st.State()
	if state.Phase != browse.PhaseReady {
		t.Fatalf("expected ready, got %s", state.Phase)
	}
	got := ids(state.Matches)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	a, _ := svc.MatchByID("a")
	if a.Enrichment == nil || a.Enrichment.PlayerOfMatch.Name != "Rice" {
		t.Fatalf("expected finished match enriched, got %+v", a.Enrichment)
	}
	c, ok := svc.MatchByID("c")
	if !ok {
		t.Fatal("expected match with failed enrichment to be kept")
	}
	if c.Enrichment != nil {
		t.Fatalf("expected failed enrichment to leave match unenriched, got %+v", c.Enrichment)
	}
	b, _ := svc.MatchByID("b")
	if b.Enrichment != nil {
		t.Fatal("expected unfinished match not enriched")
	}
	for _, id := range p.enriched {
		if id == "b" || id == "early" {
			t.Fatalf("unexpected enrichment call for %s", id)
		}
	}

	loads := rec.Loads()
	if loads.Loads != 1 || loads.Failures != 0 || loads.Enriched != 1 || loads.EnrichmentFailures != 1 {
		t.Fatalf("unexpected load metrics %+v", loads)
	}
}

func TestLoadDoesNotMutateProviderMatches(t *testing.T) {
	p := newStub()
	svc, _ := newService(p, nil)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if p.byDate["2025-04-15"][0].Enrichment != nil {
		t.Fatal("expected provider data untouched by enrichment")
	}
}

func TestLoadFailsWhenAnyDateFails(t *testing.T) {
	p := newStub()
	cause := errors.New("503 from upstream")
	p.dateErr = map[string]error{"2025-04-16": cause}
	rec := metrics.NewRecorder()
	svc, st := newService(p, rec)

	err := svc.Load(context.Background())
	if !providers.IsAcquisitionError(err) {
		t.Fatalf("expected acquisition error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause preserved, got %v", err)
	}

	state := st.State()
	if state.Phase != browse.PhaseFailed || state.Err == "" {
		t.Fatalf("expected failed state with message, got %+v", state)
	}
	if len(state.Matches) != 0 {
		t.Fatalf("expected no partial results, got %v", ids(state.Matches))
	}
	if rec.Loads().Failures != 1 {
		t.Fatalf("expected failure recorded, got %+v", rec.Loads())
	}
}

func TestLoadWithoutProvider(t *testing.T) {
	svc, st := newService(nil, nil)
	if err := svc.Load(context.Background()); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if st.State().Phase != browse.PhaseFailed {
		t.Fatalf("expected failed phase, got %s", st.State().Phase)
	}
}

func TestLoadCanceledKeepsPreviousResult(t *testing.T) {
	p := newStub()
	svc, st := newService(p, nil)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if st.State().Phase != browse.PhaseReady || len(st.State().Matches) != 3 {
		t.Fatalf("expected previous result retained, got %+v", st.State())
	}
}

// gatedProvider blocks its first FetchMatches call until released.
type gatedProvider struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	first   []domain.Match
	second  []domain.Match
}

func (p *gatedProvider) FetchMatches(ctx context.Context, date string) ([]domain.Match, error) {
	if p.calls.Add(1) == 1 {
		close(p.started)
		<-p.release
		return p.first, nil
	}
	return p.second, nil
}

func (p *gatedProvider) FetchEnrichment(ctx context.Context, id string) (domain.Enrichment, error) {
	return domain.Enrichment{}, nil
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	p := &gatedProvider{
		started: make(chan struct{}),
		release: make(chan struct{}),
		first:   []domain.Match{{ID: "old", StartTime: at("2025-04-15", 12), Status: domain.StatusNotStarted}},
		second:  []domain.Match{{ID: "new", StartTime: at("2025-04-15", 12), Status: domain.StatusNotStarted}},
	}
	rec := metrics.NewRecorder()
	st := store.NewMemoryStore(4)
	svc := NewService(st, p, Config{Window: domain.MustDateWindow("2025-04-15")}, nil, rec)

	firstErr := make(chan error, 1)
	go func() { firstErr <- svc.Load(context.Background()) }()
	<-p.started

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("expected newer load to succeed, got %v", err)
	}
	close(p.release)

	if err := <-firstErr; !errors.Is(err, ErrStaleLoad) {
		t.Fatalf("expected ErrStaleLoad, got %v", err)
	}
	if _, ok := svc.MatchByID("old"); ok {
		t.Fatal("expected stale result not committed")
	}
	if _, ok := svc.MatchByID("new"); !ok {
		t.Fatal("expected newer result kept")
	}
	if rec.Loads().StaleDropped != 1 {
		t.Fatalf("expected one stale drop, got %+v", rec.Loads())
	}
}

func TestCanceledNewerLoadLetsOlderLoadCommit(t *testing.T) {
	p := &gatedProvider{
		started: make(chan struct{}),
		release: make(chan struct{}),
		first:   []domain.Match{{ID: "old", StartTime: at("2025-04-15", 12), Status: domain.StatusNotStarted}},
		second:  []domain.Match{{ID: "new", StartTime: at("2025-04-15", 12), Status: domain.StatusNotStarted}},
	}
	rec := metrics.NewRecorder()
	st := store.NewMemoryStore(4)
	svc := NewService(st, p, Config{Window: domain.MustDateWindow("2025-04-15")}, nil, rec)

	firstErr := make(chan error, 1)
	go func() { firstErr <- svc.Load(context.Background()) }()
	<-p.started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled reload, got %v", err)
	}
	close(p.release)

	if err := <-firstErr; err != nil {
		t.Fatalf("expected older load to commit, got %v", err)
	}
	if st.State().Phase != browse.PhaseReady {
		t.Fatalf("expected ready phase, got %s", st.State().Phase)
	}
	if _, ok := svc.MatchByID("old"); !ok {
		t.Fatal("expected older result committed")
	}
	if _, ok := svc.MatchByID("new"); ok {
		t.Fatal("expected canceled result not committed")
	}
	if rec.Loads().StaleDropped != 0 {
		t.Fatalf("expected no stale drops, got %+v", rec.Loads())
	}
}

// countingProvider records the peak number of concurrent enrichment calls.
type countingProvider struct {
	list   []domain.Match
	active atomic.Int32
	peak   atomic.Int32
}

func (p *countingProvider) FetchMatches(ctx context.Context, date string) ([]domain.Match, error) {
	return p.list, nil
}

func (p *countingProvider) FetchEnrichment(ctx context.Context, id string) (domain.Enrichment, error) {
	n := p.active.Add(1)
	for {
		peak := p.peak.Load()
		if n <= peak || p.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)
	p.active.Add(-1)
	return domain.Enrichment{Highlights: &domain.Video{URL: "https://v.example/" + id}}, nil
}

func TestEnrichmentConcurrencyIsBounded(t *testing.T) {
	list := make([]domain.Match, 0, 12)
	for i := 0; i < 12; i++ {
		list = append(list, domain.Match{
			ID:        string(rune('a' + i)),
			StartTime: at("2025-04-15", 10),
			Status:    domain.StatusFinished,
		})
	}
	p := &countingProvider{list: list}
	st := store.NewMemoryStore(4)
	svc := NewService(st, p, Config{Window: domain.MustDateWindow("2025-04-15"), EnrichmentConcurrency: 3}, nil, nil)

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if peak := p.peak.Load(); peak > 3 || peak < 1 {
		t.Fatalf("expected peak concurrency within 1..3, got %d", peak)
	}
	for _, m := range st.State().Matches {
		if m.Enrichment == nil || m.Enrichment.Highlights == nil {
			t.Fatalf("expected match %s enriched", m.ID)
		}
	}
}

func TestNewServiceDefaultsConcurrency(t *testing.T) {
	svc := NewService(store.NewMemoryStore(4), nil, Config{Window: window}, nil, nil)
	if svc.concurrency != DefaultEnrichmentConcurrency {
		t.Fatalf("expected default concurrency, got %d", svc.concurrency)
	}
}

func TestBrowseSelectsLeagueAndPage(t *testing.T) {
	svc, _ := newService(fixture.New(), nil)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}

	all := svc.Browse(Query{League: filter.AllLeagues, Page: 1, Width: 1024})
	if all.Phase != browse.PhaseReady {
		t.Fatalf("expected ready view, got %s", all.Phase)
	}
	// Seven fixtures per date, minus the one that kicks off the evening before the window.
	if all.TotalMatches != 13 || all.TotalPages != 4 {
		t.Fatalf("expected 13 matches over 4 pages, got %d over %d", all.TotalMatches, all.TotalPages)
	}
	if len(all.VisibleMatches) != 4 || !all.ShowControls {
		t.Fatalf("expected first page of 4 with controls, got %d (controls=%v)", len(all.VisibleMatches), all.ShowControls)
	}
	if all.RangeStart != 1 || all.RangeEnd != 4 {
		t.Fatalf("expected range 1-4, got %d-%d", all.RangeStart, all.RangeEnd)
	}

	last := svc.Browse(Query{Page: 4})
	if last.CurrentPage != 4 || len(last.VisibleMatches) != 1 {
		t.Fatalf("expected last page with 1 match, got page %d with %d", last.CurrentPage, len(last.VisibleMatches))
	}

	beyond := svc.Browse(Query{Page: 9})
	if beyond.CurrentPage != 1 {
		t.Fatalf("expected out-of-range page to stay on page 1, got %d", beyond.CurrentPage)
	}

	ucl := svc.Browse(Query{League: "UEFA Champions League", Page: 1})
	if ucl.TotalMatches != 4 || ucl.ShowControls {
		t.Fatalf("expected 4 UCL matches without controls, got %d (controls=%v)", ucl.TotalMatches, ucl.ShowControls)
	}
	for _, m := range ucl.VisibleMatches {
		if m.Tournament != "UEFA Champions League" {
			t.Fatalf("unexpected league %s in filtered view", m.Tournament)
		}
	}

	none := svc.Browse(Query{League: "Serie A"})
	if !none.Empty || none.TotalPages != 0 {
		t.Fatalf("expected empty view for unknown league, got %+v", none)
	}
}

func TestBrowseBeforeLoadIsLoading(t *testing.T) {
	svc, _ := newService(newStub(), nil)
	view := svc.Browse(Query{})
	if view.Phase != browse.PhaseLoading {
		t.Fatalf("expected loading phase, got %s", view.Phase)
	}
	if view.VisibleMatches == nil || len(view.VisibleMatches) != 0 {
		t.Fatalf("expected empty non-nil matches, got %v", view.VisibleMatches)
	}
}

func TestLeaguesFromFixtureLoad(t *testing.T) {
	svc, _ := newService(fixture.New(), nil)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	got := svc.Leagues()
	want := []string{"UEFA Champions League", "Premier League", "LaLiga", "MLS"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
