package store

import (
	"sync"

	"github.com/preston-bernstein/football-fixtures-service/internal/browse"
	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
)

// MemoryStore keeps the current browse state in memory, guarded for concurrent readers.
// Only the last committed load is retained.
type MemoryStore struct {
	mu      sync.RWMutex
	state   browse.State
	index   map[string]int
	next    browse.Token
	pending []browse.Token
}

// NewMemoryStore constructs a store in the initial loading state.
func NewMemoryStore(pageSize int) *MemoryStore {
	return &MemoryStore{
		state: browse.New(pageSize),
		index: make(map[string]int),
	}
}

// Begin issues a fresh load token and makes it current.
func (s *MemoryStore) Begin() browse.Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.pending = append(s.pending, s.next)
	s.state = browse.Reduce(s.state, browse.LoadStarted{Token: s.next})
	return s.next
}

// Abandon withdraws a load that will not call Apply, such as one canceled by its
// context. If it was current, the newest older load still in flight becomes current,
// so its result is committed instead of being discarded as stale.
func (s *MemoryStore) Abandon(token browse.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settleLocked(token)
	var resume browse.Token
	if n := len(s.pending); n > 0 {
		resume = s.pending[n-1]
	}
	s.state = browse.Reduce(s.state, browse.LoadAbandoned{Token: token, Resume: resume})
}

// Apply reduces ev into the stored state. The bool is false when a load result was
// discarded because its token is no longer current.
func (s *MemoryStore) Apply(ev browse.Event) (browse.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accepted := true
	switch e := ev.(type) {
	case browse.LoadSucceeded:
		s.settleLocked(e.Token)
		accepted = e.Token == s.state.Token
	case browse.LoadFailed:
		s.settleLocked(e.Token)
		accepted = e.Token == s.state.Token
	}
	if !accepted {
		return s.state, false
	}

	s.state = browse.Reduce(s.state, ev)
	if _, ok := ev.(browse.LoadSucceeded); ok {
		s.reindexLocked()
	}
	return s.state, true
}

// IsCurrent reports whether token belongs to the most recent load.
func (s *MemoryStore) IsCurrent(token browse.Token) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return token == s.state.Token
}

// State returns the current state value.
func (s *MemoryStore) State() browse.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ListMatches returns a copy of the committed matches in load order.
func (s *MemoryStore) ListMatches() []matches.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]matches.Match, len(s.state.Matches))
	copy(out, s.state.Matches)
	return out
}

// GetMatch retrieves a committed match by ID.
func (s *MemoryStore) GetMatch(id string) (matches.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return matches.Match{}, false
	}
	return s.state.Matches[i], true
}

// settleLocked removes token from the in-flight set.
func (s *MemoryStore) settleLocked(token browse.Token) {
	for i, t := range s.pending {
		if t == token {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

func (s *MemoryStore) reindexLocked() {
	s.index = make(map[string]int, len(s.state.Matches))
	for i, m := range s.state.Matches {
		if _, dup := s.index[m.ID]; !dup {
			s.index[m.ID] = i
		}
	}
}
