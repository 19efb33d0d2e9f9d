package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/preston-bernstein/football-fixtures-service/internal/browse"
	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/pagination"
)

const kickoffLayout = "Mon 02 Jan 15:04 MST"

var statusColors = map[matches.Status]*color.Color{
	matches.StatusNotStarted: color.New(color.FgGreen, color.Bold),
	matches.StatusInProgress: color.New(color.FgRed, color.Bold),
	matches.StatusFinished:   color.New(color.FgHiBlack, color.Bold),
	matches.StatusPostponed:  color.New(color.FgYellow, color.Bold),
}

func statusLabel(s matches.Status) string {
	label := "[" + s.Label() + "]"
	if c, ok := statusColors[s]; ok {
		return c.Sprint(label)
	}
	return label
}

func renderView(w io.Writer, view browse.View) {
	switch view.Phase {
	case browse.PhaseLoading:
		fmt.Fprintln(w, "Matches are still loading, try again shortly.")
		return
	case browse.PhaseFailed:
		fmt.Fprintf(w, "Could not load matches: %s\n", view.Error)
		return
	}

	fmt.Fprintf(w, "League: %s\n\n", view.SelectedLeague)
	if view.Empty {
		fmt.Fprintln(w, "No matches found.")
		return
	}
	for _, m := range view.VisibleMatches {
		fmt.Fprintln(w, matchLine(m))
	}
	fmt.Fprintf(w, "\nShowing %d-%d of %d\n", view.RangeStart, view.RangeEnd, view.TotalMatches)
	if view.ShowControls {
		fmt.Fprintln(w, controlsLine(view.PageControls, view.CurrentPage, view.TotalPages))
	}
}

func renderMatch(w io.Writer, m matches.Match) {
	fmt.Fprintln(w, matchLine(m))
	if m.Venue != "" {
		fmt.Fprintf(w, "  Venue: %s\n", m.Venue)
	}
	if m.Enrichment == nil {
		return
	}
	if p := m.Enrichment.PlayerOfMatch; p != nil {
		fmt.Fprintf(w, "  Player of the match: %s\n", p.Name)
	}
	if v := m.Enrichment.Highlights; v != nil {
		fmt.Fprintf(w, "  Highlights: %s\n", v.URL)
	}
}

func matchLine(m matches.Match) string {
	var b strings.Builder
	b.WriteString(statusLabel(m.Status))
	b.WriteString(" ")
	b.WriteString(m.HomeTeam.Name)
	if m.Status.HasScore() && m.HomeScore != nil && m.AwayScore != nil {
		fmt.Fprintf(&b, " %d-%d ", *m.HomeScore, *m.AwayScore)
	} else {
		b.WriteString(" vs ")
	}
	b.WriteString(m.AwayTeam.Name)
	fmt.Fprintf(&b, "  (%s, %s)", m.League(), m.StartTime.UTC().Format(kickoffLayout))
	return b.String()
}

func controlsLine(controls []pagination.Control, current, total int) string {
	parts := make([]string, 0, len(controls)+2)
	if current > 1 {
		parts = append(parts, "<")
	}
	for _, c := range controls {
		switch {
		case c.Ellipsis:
			parts = append(parts, "...")
		case c.Page == current:
			parts = append(parts, fmt.Sprintf("[%d]", c.Page))
		default:
			parts = append(parts, fmt.Sprintf("%d", c.Page))
		}
	}
	if current < total {
		parts = append(parts, ">")
	}
	return strings.Join(parts, " ")
}
