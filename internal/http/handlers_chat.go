package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"fundtrack/internal/core"
)

const (
	maxChatBody = 64 * 1024
	maxChatRows = 500
)

type chatRequest struct {
	Query string `json:"query"`
}

type chatResponse struct {
	Query  string               `json:"query"`
	Plan   core.QueryPlan       `json:"plan"`
	Answer string               `json:"answer"`
	Count  int                  `json:"count"`
	Rows   []core.FundingRecord `json:"rows"`
}

// handleChat serves POST /api/chat: free-text query in, interpreted plan,
// text answer and matching rows out.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxChatBody)
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	today := core.DateOf(s.now())
	plan := core.Interpret(req.Query, today)

	recs := s.loadRecords(r.Context())
	matched := core.Filter(recs, plan.Filters)
	answer := core.Summarize(req.Query, plan, matched)

	rows := matched
	if len(rows) > maxChatRows {
		rows = rows[:maxChatRows]
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Query:  req.Query,
		Plan:   plan,
		Answer: answer,
		Count:  len(matched),
		Rows:   rows,
	})
}
