package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	appmatches "github.com/preston-bernstein/football-fixtures-service/internal/app/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/browse"
	domain "github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/filter"
	"github.com/preston-bernstein/football-fixtures-service/internal/logging"
	"github.com/preston-bernstein/football-fixtures-service/internal/poller"
)

// MatchService is the read side of the matches application service.
type MatchService interface {
	Browse(q appmatches.Query) browse.View
	MatchByID(id string) (domain.Match, bool)
	Leagues() []string
}

// LeaguesResponse lists the league filter options.
type LeaguesResponse struct {
	Leagues []string `json:"leagues"`
}

// Handler wires HTTP routes to the matches service.
type Handler struct {
	svc      MatchService
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the service reports ready.
func NewHandler(svc MatchService, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/matches":
		h.Matches(w, r)
	case strings.HasPrefix(r.URL.Path, "/matches/"):
		h.MatchByID(w, r)
	case r.URL.Path == "/leagues":
		h.Leagues(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Matches renders one page of the fixtures list.
// Query: league (default "all"), page (default 1), width (viewport width in px, optional).
// Responds 503 with the view while no load has succeeded yet.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	query := r.URL.Query()

	page, ok := intParam(query, "page", 1)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid page (expected integer)", logger)
		return
	}
	width, ok := intParam(query, "width", 0)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid width (expected integer)", logger)
		return
	}
	league := strings.TrimSpace(query.Get("league"))
	if league == "" {
		league = filter.AllLeagues
	}

	view := h.svc.Browse(appmatches.Query{League: league, Page: page, Width: width})
	status := nethttp.StatusOK
	if view.Phase != browse.PhaseReady {
		status = nethttp.StatusServiceUnavailable
	}
	logging.Info(logger, "served matches page",
		logging.FieldLeague, view.SelectedLeague,
		logging.FieldPage, view.CurrentPage,
		logging.FieldCount, len(view.VisibleMatches),
		"phase", string(view.Phase),
	)
	writeJSON(w, status, view, logger)
}

// MatchByID returns a specific match if present.
func (h *Handler) MatchByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	idRaw := strings.TrimPrefix(r.URL.Path, "/matches/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid match id", h.logger)
		return
	}

	match, ok := h.svc.MatchByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "match not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, match, h.logger)
}

// Leagues lists the league filter options of the current load.
func (h *Handler) Leagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, LeaguesResponse{Leagues: h.svc.Leagues()}, h.logger)
}

func intParam(q url.Values, key string, fallback int) (int, bool) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
