package tabular

import (
	"strconv"
	"strings"
	"time"
)

// CellKind discriminates the scalar types a spreadsheet cell can carry.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindNumber
	KindText
	KindTime
)

// Cell is one positional value from a table row. Sources are loosely typed:
// the same column can hold numbers, text, dates, or nothing at all, so the
// union is carried through instead of forcing an early string conversion.
type Cell struct {
	kind CellKind
	num  float64
	text string
	when time.Time
}

// EmptyCell returns the absent value.
func EmptyCell() Cell { return Cell{kind: KindEmpty} }

// NumberCell wraps a numeric value.
func NumberCell(v float64) Cell { return Cell{kind: KindNumber, num: v} }

// TextCell wraps a text value.
func TextCell(s string) Cell { return Cell{kind: KindText, text: s} }

// TimeCell wraps a date value.
func TimeCell(t time.Time) Cell { return Cell{kind: KindTime, when: t} }

// Kind reports the cell's scalar type.
func (c Cell) Kind() CellKind { return c.kind }

// IsEmpty reports whether the cell is absent or blank text.
func (c Cell) IsEmpty() bool {
	return c.kind == KindEmpty || (c.kind == KindText && strings.TrimSpace(c.text) == "")
}

// Float returns the numeric value when the cell holds a number.
func (c Cell) Float() (float64, bool) {
	if c.kind != KindNumber {
		return 0, false
	}
	return c.num, true
}

// Time returns the date value when the cell holds one.
func (c Cell) Time() (time.Time, bool) {
	if c.kind != KindTime {
		return time.Time{}, false
	}
	return c.when, true
}

// String renders the cell the way an operator would read it: numbers in
// shortest form, dates as dd/mm/yyyy, absent values as the empty string.
func (c Cell) String() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindText:
		return c.text
	case KindTime:
		return c.when.Format("02/01/2006")
	default:
		return ""
	}
}

// Row is a positional sequence of cells.
type Row []Cell

// At returns the cell at index i, or the absent value when the row is too
// short. Spreadsheet rows are frequently ragged.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return EmptyCell()
	}
	return r[i]
}

// Table is an ordered collection of rows beneath a positional header.
// Columns are addressed by position, never by header text: source files
// rename headers freely, but the column order is the actual contract.
type Table struct {
	Header []string
	Rows   []Row
}

// Width returns the number of columns the header declares.
func (t *Table) Width() int { return len(t.Header) }
