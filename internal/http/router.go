package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/football-fixtures-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Admin routes are mounted only when admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/matches", handler.Matches)
	mux.HandleFunc("/matches/", handler.MatchByID)
	mux.HandleFunc("/leagues", handler.Leagues)
	if admin != nil {
		mux.HandleFunc("/admin/reload", admin.Reload)
	}
	return mux
}
