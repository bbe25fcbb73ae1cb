// Package core implements the query pipeline for the funding tracker:
// record model, date/amount normalization, free-text query interpretation,
// filtering and answer summarization. Every function here is total over its
// input domain; parse failures degrade to unset values and never abort the
// pipeline.
package core

import (
	"strings"
	"time"
)

// Date is a calendar date (UTC midnight). The zero value means "no date".
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.AddDate(0, 0, n))
}

// AddMonths returns the date shifted by n calendar months, clamping the day
// to the last day of the target month (Jan 31 + 1 month = Feb 29/28), unlike
// time.AddDate which would normalize into the following month.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year(), d.Time.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := d.Day()
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return NewDate(first.Year(), int(first.Month()), day)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if parsed, ok := ParseDate(s); ok {
		*d = parsed
	} else {
		*d = Date{}
	}
	return nil
}

// Explicit layouts tried before the feed-style fallbacks. ISO first, then the
// long-form dates commonly seen in press releases.
var dateLayouts = []string{
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// Feed-style timestamp layouts, matching what RSS/Atom dates look like in
// the wild. Only the calendar-date part is kept.
var feedLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

// ParseDate parses a heterogeneous date string into a canonical calendar
// date. ok is false on total failure; it never panics.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), true
		}
	}
	for _, layout := range feedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), true
		}
	}
	return Date{}, false
}
