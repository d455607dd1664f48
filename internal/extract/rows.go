package extract

import (
	"regexp"
	"strings"
	"time"

	"megone/internal/normalize"
	"megone/internal/tabular"
)

// Renewal is a contract renewal candidate: (code, person, due date).
type Renewal struct {
	Code   string
	Person string
	Due    time.Time
}

// Renewals walks the base table and keeps one candidate per row with a
// real due date that has not yet passed. Expired contracts are dropped,
// not reported. The cutoff is strict: a date before now, including earlier
// today, is expired.
func Renewals(table *tabular.Table, now time.Time) []Renewal {
	out := make([]Renewal, 0, len(table.Rows))
	for _, row := range table.Rows {
		due, ok := row.At(2).Time()
		if !ok || due.Before(now) {
			continue
		}
		out = append(out, Renewal{
			Code:   normalize.Identifier(row.At(0)),
			Person: row.At(1).String(),
			Due:    due,
		})
	}
	return out
}

// Certificate is a digital-certificate renewal candidate.
type Certificate struct {
	Code    string
	Company string
	TaxID   string
	Due     time.Time
}

// Certificates walks the base table, whose layout is (code, company,
// tax id, _, due date, _, _, status). A row qualifies only when the tax id
// is present; rows whose due cell is not a date are skipped rather than
// classified. The status column is carried by the export but unused.
func Certificates(table *tabular.Table) []Certificate {
	out := make([]Certificate, 0, len(table.Rows))
	for _, row := range table.Rows {
		if row.At(2).IsEmpty() {
			continue
		}
		due, ok := row.At(4).Time()
		if !ok {
			continue
		}
		out = append(out, Certificate{
			Code:    normalize.Identifier(row.At(0)),
			Company: row.At(1).String(),
			TaxID:   FormatTaxID(row.At(2)),
			Due:     due,
		})
	}
	return out
}

var nonDigits = regexp.MustCompile(`\D`)

// FormatTaxID normalizes a CNPJ-like tax id to exactly 14 digits: drop a
// trailing ".0" float artifact, strip every non-digit, then left-pad with
// zeros. Source exports lose leading zeros by storing the id numerically.
func FormatTaxID(c tabular.Cell) string {
	s := strings.TrimSuffix(strings.TrimSpace(c.String()), ".0")
	s = nonDigits.ReplaceAllString(s, "")
	for len(s) < 14 {
		s = "0" + s
	}
	return s
}
