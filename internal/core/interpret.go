package core

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// A matcher inspects the lower-cased query and applies a partial update to
// the plan. orig is the trimmed query with its original casing; matchers
// that echo captured text back to the caller match orig case-insensitively
// instead of slicing it with offsets from q, since lowercasing is not
// byte-length preserving for every rune. Matchers run in a fixed order and
// each later date-range match overwrites bounds set by an earlier one, so
// the last matching range pattern wins.
type matcher func(orig, q string, today Date, plan *QueryPlan)

var matchers = []matcher{
	matchRelativeWeek,
	matchLastNDays,
	matchLastNWeeks,
	matchRelativeMonth,
	matchPastNMonths,
	matchMonthYear,
	matchRound,
	matchSmallMolecule,
	matchNotSmallMolecule,
	matchHQCity,
	matchHQState,
	matchTopAction,
}

// Interpret turns a free-text query into a QueryPlan. It is a pure function
// of the query and the injected current date: absence of a pattern simply
// leaves the corresponding filter unset, and it never fails.
func Interpret(query string, today Date) QueryPlan {
	plan := QueryPlan{Query: query, Action: FilterAction()}
	orig := strings.TrimSpace(query)
	q := strings.ToLower(orig)
	for _, m := range matchers {
		m(orig, q, today, &plan)
	}
	return plan
}

func containsAny(q string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(q, s) {
			return true
		}
	}
	return false
}

func setDateRange(plan *QueryPlan, from, to Date) {
	plan.Filters.FromDate = from
	plan.Filters.ToDate = to
}

func matchRelativeWeek(_, q string, today Date, plan *QueryPlan) {
	if containsAny(q, "last week", "past week", "last 1 week", "past 7 days", "last 7 days") {
		setDateRange(plan, today.AddDays(-7), today)
	}
}

var lastNDaysPattern = regexp.MustCompile(`last\s+(\d+)\s+days`)

func matchLastNDays(_, q string, today Date, plan *QueryPlan) {
	if m := lastNDaysPattern.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			setDateRange(plan, today.AddDays(-n), today)
		}
	}
}

var lastNWeeksPattern = regexp.MustCompile(`last\s+(\d+)\s+weeks`)

func matchLastNWeeks(_, q string, today Date, plan *QueryPlan) {
	if m := lastNWeeksPattern.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			setDateRange(plan, today.AddDays(-7*n), today)
		}
	}
}

func matchRelativeMonth(_, q string, today Date, plan *QueryPlan) {
	if containsAny(q, "last month", "past month", "past 30 days") {
		setDateRange(plan, today.AddDays(-30), today)
	}
}

var pastNMonthsPattern = regexp.MustCompile(`past\s+(\d+)\s+months`)

// "past N months" is calendar-aware, not 30*N days.
func matchPastNMonths(_, q string, today Date, plan *QueryPlan) {
	if m := pastNMonthsPattern.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			setDateRange(plan, today.AddMonths(-n), today)
		}
	}
}

// Three-letter or full month name followed by a 4-digit 20xx year.
// Two-digit years are unsupported.
var monthYearPattern = regexp.MustCompile(`\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+(20\d{2})\b`)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

func matchMonthYear(_, q string, _ Date, plan *QueryPlan) {
	m := monthYearPattern.FindStringSubmatch(q)
	if m == nil {
		return
	}
	mon, ok := monthsByPrefix[m[1][:3]]
	if !ok {
		return
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return
	}
	from := NewDate(year, int(mon), 1)
	setDateRange(plan, from, from.AddMonths(1).AddDays(-1))
}

var roundPattern = regexp.MustCompile(`(?i)\b(seed|pre-seed|series\s*[a-z]|series\s*\d)\b`)

// The funding-stage token keeps the caller's original casing; matching
// against records is case-insensitive anyway. Matched on orig, not q:
// lowercasing can change byte offsets for some runes.
func matchRound(orig, _ string, _ Date, plan *QueryPlan) {
	if m := roundPattern.FindString(orig); m != "" {
		plan.Filters.Round = strings.TrimSpace(m)
	}
}

func matchSmallMolecule(_, q string, _ Date, plan *QueryPlan) {
	if strings.Contains(q, "small molecule") {
		plan.Filters.SmallMolecule = TriYes
	}
}

// Checked independently of the positive phrase: a negation anywhere in the
// query overwrites a "yes" set by matchSmallMolecule.
func matchNotSmallMolecule(_, q string, _ Date, plan *QueryPlan) {
	if containsAny(q, "not small molecule", "non small molecule", "non-small molecule") {
		plan.Filters.SmallMolecule = TriNo
	}
}

var hqCityPattern = regexp.MustCompile(`(?i)hq\s+in\s+([a-z\s.\-]+)`)

// The city token also keeps the caller's casing, matched on orig for the
// same reason as matchRound.
func matchHQCity(orig, _ string, _ Date, plan *QueryPlan) {
	if m := hqCityPattern.FindStringSubmatch(orig); m != nil {
		plan.Filters.HQCity = strings.TrimSpace(m[1])
	}
}

var hqStatePattern = regexp.MustCompile(`\bin\s+([a-z]{2})\b`)

// "in CA" style state abbreviations. The literal token "in" is skipped so
// that "... in in ..." phrasings do not produce a bogus state filter.
func matchHQState(_, q string, _ Date, plan *QueryPlan) {
	if m := hqStatePattern.FindStringSubmatch(q); m != nil {
		if state := strings.ToUpper(m[1]); state != "IN" {
			plan.Filters.HQState = state
		}
	}
}

var topNPattern = regexp.MustCompile(`top\s+(\d+)`)

// maxTopN bounds the n carried in a top_by_amount action. The summarizer
// truncates to the set size anyway; this keeps absurd or overflowing digit
// runs from producing a malformed count.
const maxTopN = 1000

func matchTopAction(_, q string, _ Date, plan *QueryPlan) {
	if m := topNPattern.FindStringSubmatch(q); m != nil && containsAny(q, "largest", "biggest", "amount", "$") {
		n, err := strconv.Atoi(m[1])
		if err != nil || n > maxTopN {
			n = maxTopN
		}
		plan.Action = TopByAmount(n)
		return
	}
	if containsAny(q, "largest", "biggest") {
		plan.Action = TopByAmount(10)
	}
}
