package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	appmatches "github.com/preston-bernstein/football-fixtures-service/internal/app/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/http/requestutil"
	"github.com/preston-bernstein/football-fixtures-service/internal/logging"
	"github.com/preston-bernstein/football-fixtures-service/internal/providers"
)

// Reloader triggers an immediate match load.
type Reloader interface {
	Refresh(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	reloader Reloader
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(reloader Reloader, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reloader: reloader,
		token:    token,
		logger:   logger,
	}
}

// Reload runs a load now and reports its outcome.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.reloader == nil {
		writeError(w, r, http.StatusServiceUnavailable, "reload not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	err := h.reloader.Refresh(r.Context())
	switch {
	case err == nil:
		logging.Info(logger, "admin reload complete")
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	case errors.Is(err, appmatches.ErrStaleLoad):
		logging.Info(logger, "admin reload superseded")
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "superseded"}, logger)
	case errors.Is(err, providers.ErrProviderUnavailable):
		logging.Warn(logger, "admin reload provider unavailable", "error", err)
		writeError(w, r, http.StatusServiceUnavailable, "provider unavailable", logger)
	case providers.IsAcquisitionError(err):
		logging.Warn(logger, "admin reload failed", "error", err)
		writeError(w, r, http.StatusBadGateway, "failed to load matches", logger)
	default:
		logging.Error(logger, "admin reload failed", err)
		writeError(w, r, http.StatusInternalServerError, "reload failed", logger)
	}
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := requestutil.BearerToken(r)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
