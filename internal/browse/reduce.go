package browse

import (
	"github.com/preston-bernstein/football-fixtures-service/internal/filter"
	"github.com/preston-bernstein/football-fixtures-service/internal/pagination"
)

// Reduce applies ev to s and returns the next state.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case LoadStarted:
		if e.Token < s.Token {
			return s
		}
		s.Token = e.Token
		// Keep serving the previous result while a refresh is in flight.
		if s.Phase != PhaseReady {
			s.Phase = PhaseLoading
			s.Err = ""
		}
		return s

	case LoadSucceeded:
		if e.Token != s.Token {
			return s
		}
		s.Phase = PhaseReady
		s.Err = ""
		s.Matches = e.Matches
		s.Page = pagination.Clamp(s.Page, s.TotalPages())
		return s

	case LoadFailed:
		if e.Token != s.Token {
			return s
		}
		// Loads are all-or-nothing: a failed refresh drops the previous result too,
		// even though LoadStarted kept serving it while the refresh ran.
		s.Phase = PhaseFailed
		s.Matches = nil
		s.Page = 1
		if e.Err != nil {
			s.Err = e.Err.Error()
		} else {
			s.Err = "load failed"
		}
		return s

	case LoadAbandoned:
		if e.Token != s.Token || e.Resume == 0 || e.Resume > e.Token {
			return s
		}
		s.Token = e.Resume
		return s

	case LeagueSelected:
		league := e.League
		if league == "" {
			league = filter.AllLeagues
		}
		s.League = league
		s.Page = 1
		return s

	case PageRequested:
		s.Page = pagination.Navigate(s.Page, e.Page, s.TotalPages())
		return s

	default:
		return s
	}
}

// Fold applies events in order.
func Fold(s State, events ...Event) State {
	for _, ev := range events {
		s = Reduce(s, ev)
	}
	return s
}
