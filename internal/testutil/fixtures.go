package testutil

import (
	"strconv"

	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
)

// SampleDate is the first day of the default match window.
const SampleDate = "2025-04-15"

// SampleMatch returns a minimal not-started match in league kicking off at 18:00 UTC on SampleDate.
func SampleMatch(id, league string) matches.Match {
	return matches.Match{
		ID:         id,
		Provider:   "test",
		StartTime:  Kickoff(SampleDate, 18, 0),
		Tournament: league,
		Status:     matches.StatusNotStarted,
		HomeTeam:   matches.Team{Name: "Home"},
		AwayTeam:   matches.Team{Name: "Away"},
		Venue:      "Stadium",
	}
}

// SampleMatches returns n matches in league with ids prefix-1..prefix-n.
func SampleMatches(prefix, league string, n int) []matches.Match {
	out := make([]matches.Match, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, SampleMatch(prefix+"-"+strconv.Itoa(i), league))
	}
	return out
}
