package sofascore

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/timeutil"
)

func mapEvent(e eventResponse) matches.Match {
	m := matches.Match{
		ID:        strconv.FormatInt(e.ID, 10),
		Provider:  providerName,
		StartTime: timeutil.FromUnix(int64(e.StartTimestamp)),
		Status:    matches.ParseStatus(e.Status.Type),
		HomeTeam:  mapTeam(e.HomeTeam),
		AwayTeam:  mapTeam(e.AwayTeam),
		HomeScore: mapScore(e.HomeScore),
		AwayScore: mapScore(e.AwayScore),
	}
	if e.Tournament != nil {
		m.Tournament = strings.TrimSpace(e.Tournament.Name)
	}
	if e.Venue != nil {
		m.Venue = strings.TrimSpace(e.Venue.Name)
	}
	return m
}

func mapTeam(t teamResponse) matches.Team {
	return matches.Team{
		Name:       t.Name,
		PictureURL: t.PictureURL,
	}
}

func mapScore(s *scoreResponse) *int {
	if s == nil || s.Current == nil {
		return nil
	}
	v := *s.Current
	return &v
}

func mapEnrichment(d *eventDetail) matches.Enrichment {
	var out matches.Enrichment
	if d == nil {
		return out
	}
	if d.BestPlayer != nil && d.BestPlayer.Name != "" {
		out.PlayerOfMatch = &matches.Player{Name: d.BestPlayer.Name}
	}
	for _, v := range d.Videos {
		if v.Type == highlightsType {
			out.Highlights = &matches.Video{Title: v.Title, URL: v.URL}
			break
		}
	}
	return out
}
