package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"megone/internal/normalize"
)

// Parcel is one billing installment found in a statement PDF, tagged with
// the client that was active in the text when the installment line
// appeared.
type Parcel struct {
	Code   string
	Name   string
	Amount float64
	Due    time.Time
}

var (
	clientPattern = regexp.MustCompile(`Cliente: (\d+)`)
	namePattern   = regexp.MustCompile(`Nome: (.+)`)
	parcelPattern = regexp.MustCompile(`(\d{2}/\d{2}/\d{4}) (\d{1,3}(?:\.\d{3})*,\d{2})`)
)

// Parcels folds over the statement text line by line. The statement
// interleaves client headers and installment lines, so the fold carries the
// current client code and name forward: a "Cliente:" line updates the code,
// a "Nome:" line updates the name once a code is active, and a date+amount
// line emits a parcel only when both are active. One line may match more
// than one pattern.
func Parcels(text string) []Parcel {
	var (
		out         []Parcel
		currentCode string
		currentName string
	)
	for _, line := range strings.Split(text, "\n") {
		if m := clientPattern.FindStringSubmatch(line); m != nil {
			currentCode = normalize.IdentifierText(m[1])
		}
		if m := namePattern.FindStringSubmatch(line); m != nil && currentCode != "" {
			currentName = m[1]
		}
		m := parcelPattern.FindStringSubmatch(line)
		if m == nil || currentCode == "" || currentName == "" {
			continue
		}
		due, err := time.Parse("02/01/2006", m[1])
		if err != nil {
			continue
		}
		out = append(out, Parcel{
			Code:   currentCode,
			Name:   currentName,
			Amount: parseAmount(m[2]),
			Due:    due,
		})
	}
	return out
}

// parseAmount converts "1.234,56" to 1234.56. The pattern guarantees the
// shape, so the only failure mode left is overflow, which rounds to zero.
func parseAmount(s string) float64 {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return math.Round(value*100) / 100
}
