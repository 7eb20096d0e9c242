package http

import (
	"context"
	"net/http"
	"time"

	"bizcelona-backend/internal/logger"
	"bizcelona-backend/internal/repository"

	"github.com/gorilla/mux"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusHandler serves the health check and the keep-alive endpoint that the
// scheduler hits to stop the database from idling out.
type StatusHandler struct {
	store    Pinger
	profiles repository.ProfileRepository
}

func NewStatusHandler(store Pinger, profiles repository.ProfileRepository) *StatusHandler {
	return &StatusHandler{store: store, profiles: profiles}
}

func (h *StatusHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.Error("Health check ping failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, "Database unreachable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleKeepAlive runs a lightweight read against the profiles table so the
// hosted database registers activity and is not paused.
func (h *StatusHandler) HandleKeepAlive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	count, err := h.profiles.Count(ctx)
	if err != nil {
		logger.Error("Keep-alive query failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, "Database unreachable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "alive",
		"profiles": count,
		"pingedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// RegisterStatusRoutes registers the unauthenticated operational endpoints.
func RegisterStatusRoutes(router *mux.Router, store Pinger, profiles repository.ProfileRepository) {
	handler := NewStatusHandler(store, profiles)
	router.HandleFunc("/health", handler.HandleHealth).Methods("GET")
	router.HandleFunc("/api/cron/keep-alive", handler.HandleKeepAlive).Methods("GET")
}
