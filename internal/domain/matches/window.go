package matches

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/football-fixtures-service/internal/timeutil"
)

// DateWindow is the fixed set of UTC calendar dates eligible for display.
type DateWindow struct {
	dates []string
	set   map[string]struct{}
}

// NewDateWindow builds a window from YYYY-MM-DD strings. Duplicates are dropped.
func NewDateWindow(dates ...string) (DateWindow, error) {
	w := DateWindow{set: make(map[string]struct{}, len(dates))}
	for _, raw := range dates {
		d := strings.TrimSpace(raw)
		if d == "" {
			continue
		}
		if _, err := timeutil.ParseDate(d); err != nil {
			return DateWindow{}, fmt.Errorf("invalid window date %q: %w", d, err)
		}
		if _, ok := w.set[d]; ok {
			continue
		}
		w.set[d] = struct{}{}
		w.dates = append(w.dates, d)
	}
	return w, nil
}

// MustDateWindow is NewDateWindow for literals; it panics on invalid input.
func MustDateWindow(dates ...string) DateWindow {
	w, err := NewDateWindow(dates...)
	if err != nil {
		panic(err)
	}
	return w
}

// Contains reports whether the UTC calendar date of t is in the window.
// The zero time is never contained.
func (w DateWindow) Contains(t time.Time) bool {
	if t.IsZero() || len(w.set) == 0 {
		return false
	}
	_, ok := w.set[timeutil.UTCDate(t)]
	return ok
}

// Dates returns the window's dates in configured order.
func (w DateWindow) Dates() []string {
	out := make([]string, len(w.dates))
	copy(out, w.dates)
	return out
}

// Len returns the number of dates in the window.
func (w DateWindow) Len() int { return len(w.dates) }
