package fixture

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/providers"
	"github.com/preston-bernstein/football-fixtures-service/internal/timeutil"
)

const providerName = "fixture"

type fixtureMatch struct {
	offset     time.Duration
	tournament string
	status     matches.Status
	home, away string
	homeScore  int
	awayScore  int
	venue      string
	motm       string
}

// One day's worth of fixtures, offset from 00:00 UTC of the requested date.
// The last entry kicks off the evening before, the way upstream schedules spill across days.
var slate = []fixtureMatch{
	{offset: 17*time.Hour + 45*time.Minute, tournament: "UEFA Champions League", status: matches.StatusFinished, home: "Arsenal", away: "Real Madrid", homeScore: 2, awayScore: 1, venue: "Emirates Stadium", motm: "Declan Rice"},
	{offset: 19 * time.Hour, tournament: "UEFA Champions League", status: matches.StatusFinished, home: "Bayern Munich", away: "Inter", homeScore: 1, awayScore: 1, venue: "Allianz Arena"},
	{offset: 13 * time.Hour, tournament: "Premier League", status: matches.StatusInProgress, home: "Brighton", away: "Fulham", homeScore: 0, awayScore: 1, venue: "Amex Stadium"},
	{offset: 15 * time.Hour, tournament: "Premier League", status: matches.StatusNotStarted, home: "Everton", away: "Wolves", venue: "Goodison Park"},
	{offset: 16 * time.Hour, tournament: "LaLiga", status: matches.StatusPostponed, home: "Valencia", away: "Sevilla", venue: "Mestalla"},
	{offset: 11 * time.Hour, status: matches.StatusNotStarted, home: "Club Friendly XI", away: "Academy XI"},
	{offset: -30 * time.Minute, tournament: "MLS", status: matches.StatusFinished, home: "LA Galaxy", away: "Seattle Sounders", homeScore: 3, awayScore: 2, venue: "Dignity Health Sports Park"},
}

// Provider returns a static set of matches useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchMatches returns a deterministic set of sample matches scheduled around date.
func (p *Provider) FetchMatches(ctx context.Context, date string) ([]matches.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid date %q: %w", providerName, date, err)
	}

	out := make([]matches.Match, 0, len(slate))
	for i, f := range slate {
		m := matches.Match{
			ID:         matchID(date, i+1),
			Provider:   providerName,
			StartTime:  day.UTC().Add(f.offset),
			Tournament: f.tournament,
			Status:     f.status,
			HomeTeam:   matches.Team{Name: f.home},
			AwayTeam:   matches.Team{Name: f.away},
			Venue:      f.venue,
		}
		if f.status.HasScore() {
			home, away := f.homeScore, f.awayScore
			m.HomeScore = &home
			m.AwayScore = &away
		}
		out = append(out, m)
	}
	return out, nil
}

// FetchEnrichment returns player of the match and highlights for finished fixture matches.
func (p *Provider) FetchEnrichment(ctx context.Context, id string) (matches.Enrichment, error) {
	if err := ctx.Err(); err != nil {
		return matches.Enrichment{}, err
	}
	f, ok := lookup(id)
	if !ok {
		return matches.Enrichment{}, &providers.StatusError{Provider: providerName, StatusCode: http.StatusNotFound}
	}
	if f.status != matches.StatusFinished {
		return matches.Enrichment{}, nil
	}

	out := matches.Enrichment{
		Highlights: &matches.Video{
			Title: fmt.Sprintf("%s %d-%d %s", f.home, f.homeScore, f.awayScore, f.away),
			URL:   "https://highlights.example.com/" + id,
		},
	}
	if f.motm != "" {
		out.PlayerOfMatch = &matches.Player{Name: f.motm}
	}
	return out, nil
}

func matchID(date string, n int) string {
	return fmt.Sprintf("%s-%s-%d", providerName, strings.ReplaceAll(date, "-", ""), n)
}

func lookup(id string) (fixtureMatch, bool) {
	var date string
	var n int
	if _, err := fmt.Sscanf(id, providerName+"-%8s-%d", &date, &n); err != nil {
		return fixtureMatch{}, false
	}
	if n < 1 || n > len(slate) {
		return fixtureMatch{}, false
	}
	return slate[n-1], true
}
