package browse

import "github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// LoadStarted marks the beginning of a load attempt and makes Token current.
type LoadStarted struct {
	Token Token
}

// LoadSucceeded delivers the matches of a completed load.
type LoadSucceeded struct {
	Token   Token
	Matches []matches.Match
}

// LoadFailed reports a failed load.
type LoadFailed struct {
	Token Token
	Err   error
}

// LoadAbandoned withdraws a load that will never report, handing currency back to
// Resume, an older load still in flight. A zero Resume leaves the token unchanged.
type LoadAbandoned struct {
	Token  Token
	Resume Token
}

// LeagueSelected changes the league filter.
type LeagueSelected struct {
	League string
}

// PageRequested asks to show a page.
type PageRequested struct {
	Page int
}

func (LoadStarted) isEvent()    {}
func (LoadSucceeded) isEvent()  {}
func (LoadFailed) isEvent()     {}
func (LoadAbandoned) isEvent()  {}
func (LeagueSelected) isEvent() {}
func (PageRequested) isEvent()  {}
