package http

import (
	"context"
	"crypto/subtle"
	"log/slog"
	nethttp "net/http"

	"mlb-draft-tracker/internal/logging"
)

// CycleRunner triggers reconciliation cycles outside the timer.
type CycleRunner interface {
	RunCycle(ctx context.Context) error
	RunReplace(ctx context.Context) error
}

// AdminHandler exposes the token-guarded force-refresh endpoint.
type AdminHandler struct {
	runner CycleRunner
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. With an empty token the
// endpoint is never mounted, so a non-empty token is assumed here.
func NewAdminHandler(runner CycleRunner, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{runner: runner, token: token, logger: logger}
}

// Refresh runs one cycle immediately. With ?replace=1 the roster is rebuilt
// from the fetched batch instead of merged additively; this is the only way
// to drop records, since regular cycles only add and update.
func (h *AdminHandler) Refresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeErrorTo(w, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized", slog.String(logging.FieldPath, r.URL.Path))
		writeErrorTo(w, nethttp.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	var err error
	replace := r.URL.Query().Get("replace") == "1"
	if replace {
		err = h.runner.RunReplace(r.Context())
	} else {
		err = h.runner.RunCycle(r.Context())
	}
	if err != nil {
		logging.Error(h.logger, "admin refresh failed", err)
		writeErrorTo(w, nethttp.StatusBadGateway, "refresh failed", h.logger)
		return
	}

	writeJSONTo(w, nethttp.StatusOK, map[string]any{"refreshed": true, "replace": replace}, h.logger)
}

func (h *AdminHandler) authorize(r *nethttp.Request) bool {
	if h.token == "" {
		return false
	}
	provided := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(provided) > len(prefix) && provided[:len(prefix)] == prefix {
		provided = provided[len(prefix):]
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(h.token)) == 1
}

func writeJSONTo(w nethttp.ResponseWriter, status int, payload any, logger *slog.Logger) {
	h := Handler{logger: logger}
	h.writeJSON(w, status, payload)
}

func writeErrorTo(w nethttp.ResponseWriter, status int, message string, logger *slog.Logger) {
	writeJSONTo(w, status, map[string]string{"error": message}, logger)
}
