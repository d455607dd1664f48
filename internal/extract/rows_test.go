package extract_test

import (
	"testing"
	"time"

	"megone/internal/extract"
	"megone/internal/tabular"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestRenewalsDropsExpiredAndDateless(t *testing.T) {
	table := &tabular.Table{
		Header: []string{"Código", "Pessoa", "Vencimento"},
		Rows: []tabular.Row{
			{tabular.TextCell("1"), tabular.TextCell("Alice"), tabular.TimeCell(now.AddDate(0, 1, 0))},
			{tabular.TextCell("2"), tabular.TextCell("Bob"), tabular.TimeCell(now.AddDate(0, -1, 0))},
			{tabular.TextCell("3"), tabular.TextCell("Carol"), tabular.TextCell("sem data")},
			{tabular.TextCell("4"), tabular.TextCell("Dan"), tabular.EmptyCell()},
		},
	}
	renewals := extract.Renewals(table, now)
	if len(renewals) != 1 {
		t.Fatalf("got %d renewals, want 1", len(renewals))
	}
	if renewals[0].Code != "1" || renewals[0].Person != "Alice" {
		t.Fatalf("renewal = %+v", renewals[0])
	}
}

func TestCertificatesRequireTaxID(t *testing.T) {
	due := tabular.TimeCell(now.AddDate(0, 0, 3))
	table := &tabular.Table{
		Header: []string{"Código", "Empresa", "CNPJ", "x", "Vencimento", "y", "z", "Situação"},
		Rows: []tabular.Row{
			{tabular.TextCell("1"), tabular.TextCell("Acme"), tabular.NumberCell(12345678000190), tabular.EmptyCell(), due},
			{tabular.TextCell("2"), tabular.TextCell("Beta"), tabular.EmptyCell(), tabular.EmptyCell(), due},
			{tabular.TextCell("3"), tabular.TextCell("Gamma"), tabular.TextCell("11.222.333/0001-44"), tabular.EmptyCell(), tabular.TextCell("n/a")},
		},
	}
	certs := extract.Certificates(table)
	if len(certs) != 1 {
		t.Fatalf("got %d certificates, want 1", len(certs))
	}
	if certs[0].Code != "1" {
		t.Fatalf("code = %q", certs[0].Code)
	}
	if certs[0].TaxID != "12345678000190" {
		t.Fatalf("tax id = %q", certs[0].TaxID)
	}
}

func TestFormatTaxID(t *testing.T) {
	cases := []struct {
		cell tabular.Cell
		want string
	}{
		{tabular.TextCell("11.222.333/0001-44"), "11222333000144"},
		{tabular.TextCell("1234567000190.0"), "01234567000190"},
		{tabular.TextCell("123456000190"), "00123456000190"},
		{tabular.NumberCell(12345678000190), "12345678000190"},
		{tabular.TextCell("1"), "00000000000001"},
	}
	for _, tc := range cases {
		if got := extract.FormatTaxID(tc.cell); got != tc.want {
			t.Fatalf("FormatTaxID(%v) = %q, want %q", tc.cell, got, tc.want)
		}
	}
}
