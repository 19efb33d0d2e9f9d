package browse

import (
	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/filter"
	"github.com/preston-bernstein/football-fixtures-service/internal/pagination"
)

// View is everything the presentation layer needs to draw one page.
type View struct {
	Phase            Phase                `json:"phase"`
	Error            string               `json:"error,omitempty"`
	VisibleMatches   []matches.Match      `json:"visibleMatches"`
	PageControls     []pagination.Control `json:"pageControls"`
	ShowControls     bool                 `json:"showControls"`
	CurrentPage      int                  `json:"currentPage"`
	TotalPages       int                  `json:"totalPages"`
	TotalMatches     int                  `json:"totalMatches"`
	RangeStart       int                  `json:"rangeStart"`
	RangeEnd         int                  `json:"rangeEnd"`
	AvailableLeagues []string             `json:"availableLeagues"`
	SelectedLeague   string               `json:"selectedLeague"`
	Empty            bool                 `json:"empty"`
}

// Render derives the View for s. maxVisible caps the page controls.
func Render(s State, maxVisible int) View {
	view := View{
		Phase:            s.Phase,
		Error:            s.Err,
		VisibleMatches:   []matches.Match{},
		PageControls:     []pagination.Control{},
		CurrentPage:      s.Page,
		AvailableLeagues: filter.LeagueOptions(s.Matches),
		SelectedLeague:   s.League,
	}
	if s.Phase != PhaseReady {
		return view
	}

	filtered := s.Filtered()
	total := pagination.TotalPages(len(filtered), s.PageSize)

	view.VisibleMatches = pagination.Slice(filtered, s.PageSize, s.Page)
	view.TotalPages = total
	view.TotalMatches = len(filtered)
	view.RangeStart, view.RangeEnd = pagination.Range(len(filtered), s.PageSize, s.Page)
	view.ShowControls = pagination.ShouldShowControls(len(filtered), s.PageSize)
	view.PageControls = pagination.BuildControls(s.Page, total, maxVisible)
	view.Empty = len(filtered) == 0
	return view
}
