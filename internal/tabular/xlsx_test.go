package tabular_test

import (
	"path/filepath"
	"testing"
	"time"

	"megone/internal/tabular"
)

func TestXLSXRoundTrip(t *testing.T) {
	due := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
	in := &tabular.Table{
		Header: []string{"Código", "Empresa", "Valor", "Vencimento"},
		Rows: []tabular.Row{
			{tabular.TextCell("123"), tabular.TextCell("Acme LLC"), tabular.NumberCell(1234.56), tabular.TimeCell(due)},
			{tabular.TextCell("7"), tabular.TextCell("Beta"), tabular.NumberCell(7), tabular.TextCell("sem data")},
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	store := tabular.XLSXStore{}
	if err := store.WriteTable(path, in); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	out, err := store.ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if out.Width() != 4 {
		t.Fatalf("width = %d, want 4", out.Width())
	}
	if len(out.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(out.Rows))
	}

	first := out.Rows[0]
	if first.At(0).String() != "123" || first.At(1).String() != "Acme LLC" {
		t.Fatalf("first row = %v", first)
	}
	if amount, ok := first.At(2).Float(); !ok || amount != 1234.56 {
		t.Fatalf("amount cell = %v", first.At(2))
	}
	if when, ok := first.At(3).Time(); !ok || !when.Equal(due) {
		t.Fatalf("date cell = %v", first.At(3))
	}

	second := out.Rows[1]
	if second.At(3).Kind() != tabular.KindText {
		t.Fatalf("non-date text reclassified: %v", second.At(3))
	}
}

func TestReadTableMissingFile(t *testing.T) {
	if _, err := (tabular.XLSXStore{}).ReadTable(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}
