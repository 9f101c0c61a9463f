package rules

import (
	"regexp"
	"strings"
	"unicode"
)

// signal is a textual pattern scored independently of the keyword table.
// original is the trimmed task text, lower is the lower-cased text plus keywords.
type signal struct {
	name   string
	weight float64
	match  func(original, lower string) bool
}

var (
	deadlineWordRe = regexp.MustCompile(`\b(by|before|until)\b`)
	timeOfDayRe    = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	monthRe        = regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\b`)
)

var signals = []signal{
	{
		name:   "exclamation",
		weight: 1,
		match:  func(original, _ string) bool { return strings.Contains(original, "!") },
	},
	{
		name:   "all_caps",
		weight: 2,
		match:  func(original, _ string) bool { return isShouting(original) },
	},
	{
		name:   "deadline_word",
		weight: 2,
		match:  func(_, lower string) bool { return deadlineWordRe.MatchString(lower) },
	},
	{
		name:   "time_of_day",
		weight: 1,
		match:  func(_, lower string) bool { return timeOfDayRe.MatchString(lower) },
	},
	{
		name:   "month",
		weight: 1,
		match:  func(_, lower string) bool { return monthRe.MatchString(lower) },
	},
}

const (
	shortTextLimit = 20
	longTextLimit  = 100
	lengthAdjust   = 0.5
)

// isShouting reports whether s is longer than 3 characters, has at least one
// letter and no lower-case letters.
func isShouting(s string) bool {
	if len([]rune(s)) <= 3 {
		return false
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// lengthSignal rewards short, terse tasks and penalizes rambling ones.
func lengthSignal(original string) float64 {
	n := len([]rune(original))
	switch {
	case n < shortTextLimit:
		return lengthAdjust
	case n > longTextLimit:
		return -lengthAdjust
	default:
		return 0
	}
}
