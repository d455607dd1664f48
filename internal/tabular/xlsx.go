package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// XLSXStore reads and writes tables as .xlsx workbooks using the first
// sheet. The first row is treated as the header, matching the source
// exports this tool consumes.
type XLSXStore struct{}

var dateLayouts = []string{
	"02/01/2006",
	"02/01/2006 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
}

// ReadTable loads the active sheet of the workbook at path.
func (XLSXStore) ReadTable(path string) (*Table, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	raw, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return &Table{}, nil
	}

	table := &Table{Header: raw[0], Rows: make([]Row, 0, len(raw)-1)}
	for _, cells := range raw[1:] {
		row := make(Row, len(cells))
		for i, value := range cells {
			row[i] = coerce(value)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// coerce classifies a formatted cell string into the scalar union. Numbers
// and dd/mm/yyyy-style dates are recognized; everything else stays text.
func coerce(value string) Cell {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return EmptyCell()
	}
	if num, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return NumberCell(num)
	}
	for _, layout := range dateLayouts {
		if when, err := time.Parse(layout, trimmed); err == nil {
			return TimeCell(when)
		}
	}
	return TextCell(value)
}

// WriteTable persists the table as a new workbook at path, header first.
func (XLSXStore) WriteTable(path string, table *Table) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for col, name := range table.Header {
		ref, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell %d: %w", col, err)
		}
		if err := file.SetCellValue(sheet, ref, name); err != nil {
			return fmt.Errorf("write header %q: %w", name, err)
		}
	}

	for i, row := range table.Rows {
		for col, cell := range row {
			ref, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("cell %d:%d: %w", i, col, err)
			}
			if err := file.SetCellValue(sheet, ref, cellValue(cell)); err != nil {
				return fmt.Errorf("write cell %s: %w", ref, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func cellValue(c Cell) any {
	switch c.Kind() {
	case KindNumber:
		v, _ := c.Float()
		return v
	case KindTime:
		// Dates are written in their display form so the output matches
		// the operator-facing reports the original workflow produced.
		return c.String()
	default:
		return c.String()
	}
}
