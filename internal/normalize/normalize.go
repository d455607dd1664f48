// Package normalize canonicalizes client codes and company names so records
// from different exports can be compared by equality.
package normalize

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"megone/internal/tabular"
)

var lower = cases.Lower(language.Und)

// Identifier canonicalizes a client code cell into its shortest digit
// string. Numeric cells with a zero fractional part lose the decimal;
// text cells are trimmed and stripped of a trailing ".0" artifact left by
// float round-trips in source exports. Absent cells become the empty
// string. The function is total and idempotent.
func Identifier(c tabular.Cell) string {
	if c.Kind() == tabular.KindEmpty {
		return ""
	}
	if v, ok := c.Float(); ok {
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'f', 0, 64)
		}
	}
	return IdentifierText(c.String())
}

// IdentifierText applies the string half of the identifier rules to a value
// that is already text, such as a regexp capture.
func IdentifierText(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSuffix(s, ".0")
}

// Name canonicalizes a display name into its comparison key: trimmed and
// case-folded. Accented characters pass through unchanged; the contact
// exports and the accounting exports use the same spelling, so matching
// stays byte-level beyond case.
func Name(c tabular.Cell) string {
	if c.Kind() == tabular.KindEmpty {
		return ""
	}
	return NameText(c.String())
}

// NameText applies the name rules to a value that is already text.
func NameText(s string) string {
	return lower.String(strings.TrimSpace(s))
}
