// Package similarity scores how alike two normalized name keys are.
package similarity

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Ratio returns a similarity in [0, 1] between two strings using the
// classic sequence-matcher measure: 2*M/T, where M is the total size of
// the longest matching blocks and T the combined length. Empty input on
// either side scores 0. The measure is symmetric.
func Ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return matcher.Ratio()
}
