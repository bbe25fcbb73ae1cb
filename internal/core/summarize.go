package core

import (
	"fmt"
	"sort"
	"strings"
)

const noMatchesAnswer = "No matching funding rounds found."

// Summarize renders the matched records into a deterministic textual answer
// shaped by the plan's action. Records are expected newest-first, as loaded
// from the record store.
func Summarize(query string, plan QueryPlan, records []FundingRecord) string {
	if plan.Action.Type == ActionTopByAmount {
		return summarizeTop(plan.Action.N, records)
	}
	return summarizeLatest(records)
}

func bullet(r FundingRecord) string {
	return fmt.Sprintf("- %s — %s (%s, %s)", r.Company, r.FundingAmount, r.FundingRound, r.FundingDate)
}

func summarizeTop(n int, records []FundingRecord) string {
	sorted := append([]FundingRecord(nil), records...)
	// Unparseable amounts rank as zero; the stable sort keeps the original
	// relative order as the tie-break.
	sort.SliceStable(sorted, func(i, j int) bool {
		ai, _ := sorted[i].Amount()
		aj, _ := sorted[j].Amount()
		return ai > aj
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	top := sorted[:n]
	if len(top) == 0 {
		return noMatchesAnswer
	}
	lines := make([]string, 0, len(top)+1)
	lines = append(lines, "Here are the largest rounds in the selected set:")
	for _, r := range top {
		lines = append(lines, bullet(r))
	}
	return strings.Join(lines, "\n")
}

func summarizeLatest(records []FundingRecord) string {
	if len(records) == 0 {
		return noMatchesAnswer
	}
	companies := map[string]struct{}{}
	for _, r := range records {
		if r.Company != "" {
			companies[r.Company] = struct{}{}
		}
	}
	show := records
	if len(show) > 10 {
		show = show[:10]
	}
	lines := make([]string, 0, len(show)+1)
	lines = append(lines, fmt.Sprintf("Found %d funding rounds across %d companies. Showing the latest %d:",
		len(records), len(companies), len(show)))
	for _, r := range show {
		lines = append(lines, bullet(r))
	}
	answer := strings.Join(lines, "\n")
	if len(records) > 10 {
		answer += fmt.Sprintf("\n… and %d more.", len(records)-10)
	}
	return answer
}
