// Package browse holds the presentation state of the fixtures page as an immutable
// value. Every change goes through Reduce, so rules such as "changing league resets
// the page" live in one place.
package browse

import (
	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/filter"
	"github.com/preston-bernstein/football-fixtures-service/internal/pagination"
)

// Phase is the coarse lifecycle of the page.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// Token identifies one load attempt. Results carrying an older token are stale.
type Token uint64

// State is the full presentation state. Treat it as a value; Reduce never mutates its input.
type State struct {
	Phase    Phase
	Matches  []matches.Match
	League   string
	Page     int
	PageSize int
	Err      string
	Token    Token
}

// DefaultPageSize is the number of matches shown per page.
const DefaultPageSize = 4

// New returns the initial state: loading, all leagues, first page.
func New(pageSize int) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return State{
		Phase:    PhaseLoading,
		League:   filter.AllLeagues,
		Page:     1,
		PageSize: pageSize,
	}
}

// Filtered returns the matches visible under the current league selection.
func (s State) Filtered() []matches.Match {
	return filter.ByLeague(s.Matches, s.League)
}

// TotalPages returns the page count of the filtered list.
func (s State) TotalPages() int {
	return pagination.TotalPages(len(s.Filtered()), s.PageSize)
}
