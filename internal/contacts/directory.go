// Package contacts indexes the canonical contacts list for lookup by
// client code, exact normalized name, or fuzzy name similarity.
package contacts

import (
	"megone/internal/normalize"
	"megone/internal/similarity"
	"megone/internal/tabular"
)

// Contact is one row of the contacts export. Code is the normalized client
// code; RawCode preserves the source cell for reports that echo the
// contact table verbatim. Name keeps the original display spelling.
type Contact struct {
	Code       string
	RawCode    tabular.Cell
	Name       string
	Individual string
	Group      string
}

// Directory is the in-memory contact index built once per run. Both
// indexes reference the same Contact values; later rows overwrite earlier
// ones on a duplicate code or name key.
type Directory struct {
	byCode map[string]*Contact
	byName map[string]*Contact
	names  []string
}

// NewDirectory builds a directory from a contacts table with columns
// (code, company name, individual contact, group contact). Rows narrower
// than four cells are skipped; width validation against the header is the
// caller's concern.
func NewDirectory(table *tabular.Table) *Directory {
	dir := &Directory{
		byCode: make(map[string]*Contact, len(table.Rows)),
		byName: make(map[string]*Contact, len(table.Rows)),
	}
	for _, row := range table.Rows {
		if len(row) < 4 {
			continue
		}
		contact := &Contact{
			Code:       normalize.Identifier(row.At(0)),
			RawCode:    row.At(0),
			Name:       row.At(1).String(),
			Individual: row.At(2).String(),
			Group:      row.At(3).String(),
		}
		if contact.Code != "" {
			dir.byCode[contact.Code] = contact
		}
		if key := normalize.Name(row.At(1)); key != "" {
			if _, seen := dir.byName[key]; !seen {
				dir.names = append(dir.names, key)
			}
			dir.byName[key] = contact
		}
	}
	return dir
}

// Len reports how many distinct codes are indexed.
func (d *Directory) Len() int { return len(d.byCode) }

// ByCode returns the contact for a normalized code, or nil.
func (d *Directory) ByCode(code string) *Contact {
	if code == "" {
		return nil
	}
	return d.byCode[code]
}

// ByName returns the contact for an exact normalized name key, or nil.
func (d *Directory) ByName(key string) *Contact {
	if key == "" {
		return nil
	}
	return d.byName[key]
}

// Closest scans the name index for the contact most similar to key,
// accepting only scores at or above threshold. A later candidate must beat
// the running best strictly, so ties keep the first name inserted. Returns
// nil and the best score seen when nothing clears the threshold.
func (d *Directory) Closest(key string, threshold float64) (*Contact, float64) {
	if key == "" {
		return nil, 0.0
	}
	var best *Contact
	bestScore := 0.0
	for _, name := range d.names {
		score := similarity.Ratio(key, name)
		if score >= threshold && score > bestScore {
			bestScore = score
			best = d.byName[name]
		}
	}
	return best, bestScore
}
