package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/preston-bernstein/football-fixtures-service/internal/browse"
	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
)

func TestMemoryStoreCommitAndGet(t *testing.T) {
	s := NewMemoryStore(4)

	token := s.Begin()
	state, ok := s.Apply(browse.LoadSucceeded{Token: token, Matches: []matches.Match{
		{ID: "1", Provider: "test"},
		{ID: "2", Provider: "test"},
	}})
	if !ok {
		t.Fatal("expected current load to be accepted")
	}
	if state.Phase != browse.PhaseReady {
		t.Fatalf("expected ready phase, got %s", state.Phase)
	}
	if got := len(s.ListMatches()); got != 2 {
		t.Fatalf("expected 2 matches, got %d", got)
	}

	m, found := s.GetMatch("1")
	if !found {
		t.Fatalf("expected to find match with id 1")
	}
	if m.Provider != "test" {
		t.Fatalf("unexpected provider %s", m.Provider)
	}
}

func TestMemoryStoreStartsLoading(t *testing.T) {
	s := NewMemoryStore(0)
	st := s.State()
	if st.Phase != browse.PhaseLoading || st.PageSize != browse.DefaultPageSize {
		t.Fatalf("unexpected initial state %+v", st)
	}
	if _, ok := s.GetMatch("missing"); ok {
		t.Fatalf("expected missing id to return false")
	}
}

func TestMemoryStorePreservesOrder(t *testing.T) {
	s := NewMemoryStore(4)
	token := s.Begin()
	s.Apply(browse.LoadSucceeded{Token: token, Matches: []matches.Match{{ID: "c"}, {ID: "a"}, {ID: "b"}}})

	list := s.ListMatches()
	if list[0].ID != "c" || list[1].ID != "a" || list[2].ID != "b" {
		t.Fatalf("expected load order preserved, got %+v", list)
	}
}

func TestMemoryStoreCommitReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore(4)
	first := s.Begin()
	s.Apply(browse.LoadSucceeded{Token: first, Matches: []matches.Match{{ID: "old"}}})

	second := s.Begin()
	if st := s.State(); st.Phase != browse.PhaseReady {
		t.Fatalf("expected previous result served during refresh, got %s", st.Phase)
	}
	s.Apply(browse.LoadSucceeded{Token: second, Matches: []matches.Match{{ID: "new"}}})

	if _, ok := s.GetMatch("old"); ok {
		t.Fatalf("expected old match to be removed after replace")
	}
	if _, ok := s.GetMatch("new"); !ok {
		t.Fatalf("expected new match to be present")
	}
}

func TestMemoryStoreDiscardsStaleResults(t *testing.T) {
	s := NewMemoryStore(4)
	stale := s.Begin()
	current := s.Begin()

	if s.IsCurrent(stale) || !s.IsCurrent(current) {
		t.Fatal("expected only the latest token to be current")
	}

	s.Apply(browse.LoadSucceeded{Token: current, Matches: []matches.Match{{ID: "fresh"}}})

	if _, ok := s.Apply(browse.LoadSucceeded{Token: stale, Matches: []matches.Match{{ID: "stale"}}}); ok {
		t.Fatal("expected stale success to be discarded")
	}
	if _, ok := s.Apply(browse.LoadFailed{Token: stale, Err: errors.New("boom")}); ok {
		t.Fatal("expected stale failure to be discarded")
	}
	if _, ok := s.GetMatch("fresh"); !ok {
		t.Fatal("expected fresh result to survive stale results")
	}
	if st := s.State(); st.Phase != browse.PhaseReady {
		t.Fatalf("expected ready phase, got %s", st.Phase)
	}
}

func TestMemoryStoreAbandonResumesOlderLoad(t *testing.T) {
	s := NewMemoryStore(4)
	older := s.Begin()
	newer := s.Begin()

	s.Abandon(newer)
	if !s.IsCurrent(older) {
		t.Fatal("expected older load to become current")
	}
	if _, ok := s.Apply(browse.LoadSucceeded{Token: older, Matches: []matches.Match{{ID: "kept"}}}); !ok {
		t.Fatal("expected older load to be accepted")
	}
	if _, ok := s.GetMatch("kept"); !ok {
		t.Fatal("expected older result committed")
	}
}

func TestMemoryStoreAbandonIgnoresSettledAndOlderTokens(t *testing.T) {
	s := NewMemoryStore(4)
	first := s.Begin()
	s.Apply(browse.LoadSucceeded{Token: first, Matches: []matches.Match{{ID: "a"}}})

	older := s.Begin()
	current := s.Begin()
	s.Abandon(older)
	if !s.IsCurrent(current) {
		t.Fatal("abandoning an older load must not change the current token")
	}

	s.Abandon(current)
	if !s.IsCurrent(current) {
		t.Fatal("expected token kept when no older load is in flight")
	}
	if st := s.State(); st.Phase != browse.PhaseReady || len(st.Matches) != 1 {
		t.Fatalf("expected previous result retained, got %+v", st)
	}
}

func TestMemoryStoreRecordsFailure(t *testing.T) {
	s := NewMemoryStore(4)
	token := s.Begin()
	st, ok := s.Apply(browse.LoadFailed{Token: token, Err: errors.New("upstream down")})
	if !ok {
		t.Fatal("expected failure to be accepted")
	}
	if st.Phase != browse.PhaseFailed || st.Err != "upstream down" {
		t.Fatalf("unexpected failed state %+v", st)
	}
}

func TestMemoryStoreUserEventsAlwaysApply(t *testing.T) {
	s := NewMemoryStore(1)
	token := s.Begin()
	s.Apply(browse.LoadSucceeded{Token: token, Matches: []matches.Match{{ID: "1"}, {ID: "2"}}})

	st, ok := s.Apply(browse.PageRequested{Page: 2})
	if !ok || st.Page != 2 {
		t.Fatalf("expected page 2, got %d (ok=%v)", st.Page, ok)
	}
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	s := NewMemoryStore(4)
	token := s.Begin()
	s.Apply(browse.LoadSucceeded{Token: token, Matches: []matches.Match{{ID: "copy", Provider: "original"}}})

	list := s.ListMatches()
	list[0].Provider = "mutated"

	m, _ := s.GetMatch("copy")
	if m.Provider != "original" {
		t.Fatalf("expected store to be unaffected by caller mutation, got %s", m.Provider)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore(4)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			token := s.Begin()
			s.Apply(browse.LoadSucceeded{Token: token, Matches: []matches.Match{{ID: "x"}}})
		}()
		go func() {
			defer wg.Done()
			_ = s.State()
			_, _ = s.GetMatch("x")
		}()
	}
	wg.Wait()

	if s.State().Token != 20 {
		t.Fatalf("expected 20 tokens issued, got %d", s.State().Token)
	}
}
