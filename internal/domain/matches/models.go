package matches

import "time"

// Team is the normalized side of a fixture.
type Team struct {
	Name       string `json:"name"`
	PictureURL string `json:"pictureUrl,omitempty"`
}

// Player identifies a player named in an enrichment record.
type Player struct {
	Name string `json:"name"`
}

// Video is a highlights link attached to a finished match.
type Video struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url"`
}

// Enrichment is optional supplementary data fetched for finished matches.
type Enrichment struct {
	PlayerOfMatch *Player `json:"playerOfMatch,omitempty"`
	Highlights    *Video  `json:"highlights,omitempty"`
}

// IsEmpty reports whether the enrichment carries nothing worth attaching.
func (e Enrichment) IsEmpty() bool {
	return e.PlayerOfMatch == nil && e.Highlights == nil
}

// Match is the canonical fixture shape exposed by the service.
// StartTime is the zero time when the upstream timestamp was missing or invalid.
type Match struct {
	ID         string      `json:"id"`
	Provider   string      `json:"provider"`
	StartTime  time.Time   `json:"startTime"`
	Tournament string      `json:"tournament,omitempty"`
	Status     Status      `json:"status"`
	HomeTeam   Team        `json:"homeTeam"`
	AwayTeam   Team        `json:"awayTeam"`
	HomeScore  *int        `json:"homeScore,omitempty"`
	AwayScore  *int        `json:"awayScore,omitempty"`
	Venue      string      `json:"venue,omitempty"`
	Enrichment *Enrichment `json:"enrichment,omitempty"`
}

// League returns the tournament name, or "Unknown League" when absent.
func (m Match) League() string {
	if m.Tournament == "" {
		return UnknownLeague
	}
	return m.Tournament
}

// WithEnrichment returns a copy of m carrying e. The receiver is left untouched.
func (m Match) WithEnrichment(e Enrichment) Match {
	enriched := e
	m.Enrichment = &enriched
	return m
}

// UnknownLeague is the display name for matches without a tournament.
const UnknownLeague = "Unknown League"

// UniqueByID drops later occurrences of an ID, keeping first-seen order.
func UniqueByID(items []Match) []Match {
	seen := make(map[string]struct{}, len(items))
	out := make([]Match, 0, len(items))
	for _, m := range items {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}
