package core

import (
	"regexp"
	"strconv"
	"strings"
)

// A decimal number followed by an M or B magnitude suffix, anywhere in the
// text. Plain numbers without a suffix are deliberately not recognized.
var amountPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([MBmb])`)

// ParseAmount parses a free-text funding amount such as "$45M" or "$1.2B"
// into dollars. Thousands separators are stripped first. ok is false when no
// magnitude-suffixed number is present.
func ParseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if strings.EqualFold(m[2], "b") {
		return val * 1e9, true
	}
	return val * 1e6, true
}
