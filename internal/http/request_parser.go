package http

import (
	"net/url"
	"strconv"
	"strings"

	"fundtrack/internal/core"
)

const (
	defaultLimit = 50000
	maxLimit     = 50000
)

// PlanFromQuery builds a filter plan from /api/funding query parameters.
// Unknown parameters are ignored; unparseable dates leave the bound unset.
func PlanFromQuery(q url.Values) core.FilterPlan {
	plan := core.FilterPlan{
		Company:       strings.TrimSpace(q.Get("company")),
		Round:         strings.TrimSpace(q.Get("round")),
		HQState:       strings.TrimSpace(q.Get("hq_state")),
		HQCity:        strings.TrimSpace(q.Get("hq_city")),
		SmallMolecule: core.ParseTriState(q.Get("small_molecule")),
	}
	if d, ok := core.ParseDate(q.Get("from_date")); ok {
		plan.FromDate = d
	}
	if d, ok := core.ParseDate(q.Get("to_date")); ok {
		plan.ToDate = d
	}
	return plan
}

// parseLimit clamps the requested row limit to [1, maxLimit], falling back
// to the default on missing or malformed input.
func parseLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultLimit
	}
	if n < 1 {
		return 1
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}
