package core

import "strings"

// Filter applies the plan against the record set and returns the matching
// subset as an order-preserving subsequence of the input. A record passes
// only when every set filter passes.
func Filter(records []FundingRecord, plan FilterPlan) []FundingRecord {
	out := make([]FundingRecord, 0, len(records))
	for _, r := range records {
		if matches(r, plan) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r FundingRecord, p FilterPlan) bool {
	if !p.FromDate.IsZero() || !p.ToDate.IsZero() {
		d, ok := r.Date()
		if !ok {
			// No parseable date: excluded whenever either bound is set.
			return false
		}
		if !p.FromDate.IsZero() && d.Before(p.FromDate.Time) {
			return false
		}
		if !p.ToDate.IsZero() && d.After(p.ToDate.Time) {
			return false
		}
	}
	if !containsFold(r.Company, p.Company) {
		return false
	}
	if !containsFold(r.FundingRound, p.Round) {
		return false
	}
	if !containsFold(r.HQStateRegion, p.HQState) {
		return false
	}
	if !containsFold(r.HQCity, p.HQCity) {
		return false
	}
	switch p.SmallMolecule {
	case TriYes:
		if r.SmallMolecule() != TriYes {
			return false
		}
	case TriNo:
		// Loose on purpose: blank and unknown values count toward the
		// "no" bucket, favoring recall.
		if r.SmallMolecule() == TriYes {
			return false
		}
	}
	return true
}

// containsFold reports whether needle is a case-insensitive substring of
// hay. An empty needle is an unset filter and always passes; an empty hay
// never matches a non-empty needle.
func containsFold(hay, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(hay), strings.ToLower(needle))
}
