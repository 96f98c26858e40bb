package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"time"

	"mlb-draft-tracker/internal/domain"
	"mlb-draft-tracker/internal/poller"
	"mlb-draft-tracker/internal/store"
)

// Handler wires HTTP routes to the publication cache. Handlers only ever
// read the current snapshot; they never trigger recomputation and never
// block on a cycle in flight.
type Handler struct {
	cache    *store.SnapshotStore
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(cache *store.SnapshotStore, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		cache:    cache,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the poller has produced a recent snapshot.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn != nil {
		status := h.statusFn()
		if !status.IsReady() {
			h.writeJSON(w, nethttp.StatusServiceUnavailable, map[string]any{
				"ready":                false,
				"consecutive_failures": status.ConsecutiveFailures,
				"last_error":           status.LastError,
			})
			return
		}
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]any{"ready": true})
}

// Players returns the current roster with draft annotations.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, h.cache.Roster())
}

// Picks returns the current pick list.
func (h *Handler) Picks(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, h.cache.Picks())
}

// Data returns the full current snapshot: roster, picks, and the time of
// the last successful cycle.
func (h *Handler) Data(w nethttp.ResponseWriter, r *nethttp.Request) {
	snap, ok := h.cache.Current()
	if !ok {
		// Cold start: nothing published yet; serve an empty snapshot rather
		// than an error so consumers need no special case.
		snap = domain.Snapshot{
			Roster:     []domain.Prospect{},
			Picks:      []domain.DraftPick{},
			LastUpdate: time.Time{},
		}
	}
	h.writeJSON(w, nethttp.StatusOK, snap)
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
