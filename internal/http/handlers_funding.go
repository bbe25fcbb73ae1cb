package http

import (
	"net/http"

	"fundtrack/internal/core"
)

type fundingResponse struct {
	Count int                  `json:"count"`
	Rows  []core.FundingRecord `json:"rows"`
}

// handleFunding serves GET /api/funding: direct structured filters over the
// record set, no query interpretation involved.
func (s *Server) handleFunding(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query()
	plan := PlanFromQuery(query)
	limit := parseLimit(query.Get("limit"))

	recs := s.loadRecords(r.Context())
	matched := core.Filter(recs, plan)

	rows := matched
	if len(rows) > limit {
		rows = rows[:limit]
	}

	writeJSON(w, http.StatusOK, fundingResponse{
		Count: len(matched),
		Rows:  rows,
	})
}
