package user

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// NormalizeEmail trims and case-folds an address so comparisons ignore case,
// including non-ASCII letters.
func NormalizeEmail(email string) string {
	return folder.String(strings.TrimSpace(email))
}

// SameEmail compares two addresses case-insensitively.
func SameEmail(a, b string) bool {
	return NormalizeEmail(a) == NormalizeEmail(b)
}
