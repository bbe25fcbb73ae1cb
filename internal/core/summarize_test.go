package core

import (
	"fmt"
	"strings"
	"testing"
)

func TestSummarize_NoMatches(t *testing.T) {
	got := Summarize("anything", QueryPlan{Action: FilterAction()}, nil)
	if got != "No matching funding rounds found." {
		t.Errorf("got %q", got)
	}

	got = Summarize("top 5 largest", QueryPlan{Action: TopByAmount(5)}, nil)
	if got != "No matching funding rounds found." {
		t.Errorf("top answer for empty set = %q", got)
	}
}

func TestSummarize_TopByAmount(t *testing.T) {
	recs := []FundingRecord{
		{Company: "Acme", FundingAmount: "$45M", FundingRound: "Series A", FundingDate: "2024-01-15"},
		{Company: "Beta", FundingAmount: "$1.2B", FundingRound: "Seed", FundingDate: "2024-02-01"},
		{Company: "Gamma", FundingAmount: "Undisclosed", FundingRound: "Series B", FundingDate: "2024-03-01"},
	}

	got := Summarize("top 2 largest", QueryPlan{Action: TopByAmount(2)}, recs)
	want := "Here are the largest rounds in the selected set:\n" +
		"- Beta — $1.2B (Seed, 2024-02-01)\n" +
		"- Acme — $45M (Series A, 2024-01-15)"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSummarize_TopRanksUnparsedAmountsAsZero(t *testing.T) {
	recs := []FundingRecord{
		{Company: "Gamma", FundingAmount: "Undisclosed"},
		{Company: "Acme", FundingAmount: "$45M"},
	}
	got := Summarize("largest", QueryPlan{Action: TopByAmount(10)}, recs)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "- Acme") {
		t.Errorf("Acme should rank first, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "- Gamma") {
		t.Errorf("Gamma should rank last, got %q", lines[2])
	}
}

func TestSummarize_TopCapsAtSetSize(t *testing.T) {
	recs := []FundingRecord{
		{Company: "Acme", FundingAmount: "$45M"},
	}
	got := Summarize("top 5", QueryPlan{Action: TopByAmount(5)}, recs)
	if strings.Count(got, "\n- ") != strings.Count(got, "\n") {
		t.Errorf("unexpected answer shape: %q", got)
	}
	if lines := strings.Split(got, "\n"); len(lines) != 2 {
		t.Errorf("got %d lines, want 2", len(lines))
	}
}

func TestSummarize_Latest(t *testing.T) {
	recs := []FundingRecord{
		{Company: "Acme", FundingAmount: "$45M", FundingRound: "Series A", FundingDate: "2024-02-01"},
		{Company: "Beta", FundingAmount: "$30M", FundingRound: "Seed", FundingDate: "2024-01-15"},
		{Company: "Acme", FundingAmount: "$10M", FundingRound: "Seed", FundingDate: "2023-06-01"},
	}

	got := Summarize("deals", QueryPlan{Action: FilterAction()}, recs)
	if !strings.HasPrefix(got, "Found 3 funding rounds across 2 companies. Showing the latest 3:") {
		t.Errorf("unexpected header: %q", got)
	}
	if strings.Contains(got, "more.") {
		t.Errorf("small set should not be truncated: %q", got)
	}
}

func TestSummarize_LatestTruncatesAtTen(t *testing.T) {
	var recs []FundingRecord
	for i := 0; i < 14; i++ {
		recs = append(recs, FundingRecord{
			Company:       fmt.Sprintf("Company %d", i),
			FundingAmount: "$10M",
			FundingRound:  "Seed",
			FundingDate:   "2024-01-01",
		})
	}

	got := Summarize("deals", QueryPlan{Action: FilterAction()}, recs)
	if !strings.HasPrefix(got, "Found 14 funding rounds across 14 companies. Showing the latest 10:") {
		t.Errorf("unexpected header: %q", got)
	}
	if !strings.HasSuffix(got, "… and 4 more.") {
		t.Errorf("missing truncation suffix: %q", got)
	}
	if strings.Count(got, "\n- ") != 10 {
		t.Errorf("got %d bullets, want 10", strings.Count(got, "\n- "))
	}
}

func TestSummarize_LatestCountsDistinctCompanies(t *testing.T) {
	recs := []FundingRecord{
		{Company: "Acme", FundingDate: "2024-01-01"},
		{Company: "Acme", FundingDate: "2024-01-02"},
		{Company: "", FundingDate: "2024-01-03"},
	}
	got := Summarize("deals", QueryPlan{Action: FilterAction()}, recs)
	if !strings.HasPrefix(got, "Found 3 funding rounds across 1 companies.") {
		t.Errorf("blank company names must not count, got %q", got)
	}
}
