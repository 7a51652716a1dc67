package utils

import (
	"strings"

	"github.com/samber/lo"
)

// Line is a cleaned source line together with its 1-based position in the
// original text.
type Line struct {
	No   int
	Text string
}

// StripComment drops everything from the first "//" and trims the rest.
func StripComment(s string) string {
	if idx := strings.Index(s, "//"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// CleanLines strips comments and surrounding whitespace and drops the lines
// left empty.
func CleanLines(raw []string) []string {
	return lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		s = StripComment(s)
		return s, s != ""
	})
}

// NumberLines is CleanLines that keeps the original line numbers.
func NumberLines(raw []string) []Line {
	return lo.FilterMap(raw, func(s string, i int) (Line, bool) {
		s = StripComment(s)
		return Line{No: i + 1, Text: s}, s != ""
	})
}
