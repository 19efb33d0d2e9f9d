// Package filter narrows a match list to the configured date window and the selected league.
// All functions are pure: inputs are never mutated and identical inputs give identical outputs.
package filter

import "github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"

// AllLeagues is the league selection that disables league filtering.
const AllLeagues = "all"

// ByDateWindow keeps matches whose UTC start date is in window, preserving order.
// Matches without a start time are dropped.
func ByDateWindow(items []matches.Match, window matches.DateWindow) []matches.Match {
	out := make([]matches.Match, 0, len(items))
	for _, m := range items {
		if window.Contains(m.StartTime) {
			out = append(out, m)
		}
	}
	return out
}

// LeagueOptions returns the distinct non-empty tournament names in first-seen order.
func LeagueOptions(items []matches.Match) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range items {
		if m.Tournament == "" {
			continue
		}
		if _, ok := seen[m.Tournament]; ok {
			continue
		}
		seen[m.Tournament] = struct{}{}
		out = append(out, m.Tournament)
	}
	return out
}

// ByLeague keeps matches whose tournament equals selected exactly.
// AllLeagues returns items unchanged.
func ByLeague(items []matches.Match, selected string) []matches.Match {
	if selected == AllLeagues {
		return items
	}
	out := make([]matches.Match, 0)
	for _, m := range items {
		if m.Tournament == selected {
			out = append(out, m)
		}
	}
	return out
}
