package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"fundtrack/internal/core"
)

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	// The store tolerates a missing data file, so readiness is just
	// process liveness plus a source probe.
	if _, err := s.source.LoadRecords(r.Context()); err != nil {
		http.Error(w, "record source unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// loadRecords fetches the current record set, degrading to an empty set on
// error so query endpoints answer with zero matches rather than a 500.
func (s *Server) loadRecords(ctx context.Context) []core.FundingRecord {
	recs, err := s.source.LoadRecords(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load funding records", "error", err)
		return []core.FundingRecord{}
	}
	return recs
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
