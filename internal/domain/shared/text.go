package shared

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldKey returns the case-folded, trimmed form of s used for case-insensitive comparisons
func FoldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// FoldEqual reports whether a and b are equal ignoring case and surrounding whitespace
func FoldEqual(a, b string) bool {
	return FoldKey(a) == FoldKey(b)
}
