package matches

import "strings"

// Status mirrors the lifecycle of a fixture.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
	StatusPostponed  Status = "POSTPONED"
	StatusUnknown    Status = "UNKNOWN"
)

// ParseStatus maps an upstream status tag onto a Status. Unrecognized tags map to StatusUnknown.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "notstarted", "not_started", "not-started":
		return StatusNotStarted
	case "inprogress", "in_progress", "in-progress":
		return StatusInProgress
	case "finished":
		return StatusFinished
	case "postponed":
		return StatusPostponed
	default:
		return StatusUnknown
	}
}

// Label returns the display label for the status.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "UPCOMING"
	case StatusInProgress:
		return "LIVE NOW"
	case StatusFinished:
		return "COMPLETED"
	case StatusPostponed:
		return "POSTPONED"
	default:
		return "UNKNOWN"
	}
}

// Color returns the hex badge colour for the status.
func (s Status) Color() string {
	switch s {
	case StatusNotStarted:
		return "#4CAF50"
	case StatusInProgress:
		return "#FF5722"
	case StatusFinished:
		return "#607D8B"
	default:
		return "#9E9E9E"
	}
}

// IsLive reports whether the match is currently being played.
func (s Status) IsLive() bool { return s == StatusInProgress }

// HasScore reports whether a score is meaningful for the status.
func (s Status) HasScore() bool { return s == StatusInProgress || s == StatusFinished }
