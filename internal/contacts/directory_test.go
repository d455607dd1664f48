package contacts_test

import (
	"testing"

	"megone/internal/contacts"
	"megone/internal/tabular"
)

func contactRow(code, name, individual, group string) tabular.Row {
	return tabular.Row{
		tabular.TextCell(code),
		tabular.TextCell(name),
		tabular.TextCell(individual),
		tabular.TextCell(group),
	}
}

func TestByCode(t *testing.T) {
	dir := contacts.NewDirectory(&tabular.Table{
		Header: []string{"Código", "Nome", "Contato", "Grupo"},
		Rows: []tabular.Row{
			contactRow("123", "Acme LLC", "J. Doe", "Group A"),
			contactRow("456.0", "Beta Ltda", "M. Silva", "Group B"),
		},
	})
	if dir.Len() != 2 {
		t.Fatalf("Len = %d, want 2", dir.Len())
	}
	contact := dir.ByCode("123")
	if contact == nil || contact.Name != "Acme LLC" {
		t.Fatalf("ByCode(123) = %+v", contact)
	}
	// Codes are indexed in normalized form.
	if got := dir.ByCode("456"); got == nil || got.Name != "Beta Ltda" {
		t.Fatalf("ByCode(456) = %+v", got)
	}
	if dir.ByCode("999") != nil {
		t.Fatal("expected miss for unknown code")
	}
	if dir.ByCode("") != nil {
		t.Fatal("expected miss for empty code")
	}
}

func TestDuplicateCodeLastWins(t *testing.T) {
	dir := contacts.NewDirectory(&tabular.Table{
		Header: []string{"a", "b", "c", "d"},
		Rows: []tabular.Row{
			contactRow("7", "First", "x", "y"),
			contactRow("7", "Second", "x", "y"),
		},
	})
	contact := dir.ByCode("7")
	if contact == nil || contact.Name != "Second" {
		t.Fatalf("ByCode(7) = %+v, want the later row", contact)
	}
}

func TestByNameNormalizedKey(t *testing.T) {
	dir := contacts.NewDirectory(&tabular.Table{
		Header: []string{"a", "b", "c", "d"},
		Rows: []tabular.Row{
			contactRow("1", "  Acme LLC ", "J. Doe", "Group A"),
		},
	})
	contact := dir.ByName("acme llc")
	if contact == nil || contact.Individual != "J. Doe" {
		t.Fatalf("ByName(acme llc) = %+v", contact)
	}
	if dir.ByName("Acme LLC") != nil {
		t.Fatal("lookup key must already be normalized")
	}
}

func TestShortRowsSkipped(t *testing.T) {
	dir := contacts.NewDirectory(&tabular.Table{
		Header: []string{"a", "b", "c", "d"},
		Rows: []tabular.Row{
			{tabular.TextCell("5"), tabular.TextCell("Short Row")},
			contactRow("6", "Full Row", "x", "y"),
		},
	})
	if dir.ByCode("5") != nil {
		t.Fatal("row with fewer than 4 cells must be skipped")
	}
	if dir.ByCode("6") == nil {
		t.Fatal("full row must be indexed")
	}
}

func TestClosest(t *testing.T) {
	dir := contacts.NewDirectory(&tabular.Table{
		Header: []string{"a", "b", "c", "d"},
		Rows: []tabular.Row{
			contactRow("1", "Acme LLC", "J. Doe", "Group A"),
			contactRow("2", "Zeta Corporation", "K. Lima", "Group B"),
		},
	})

	found, score := dir.Closest("acme lc", 0.8)
	if found == nil || found.Code != "1" {
		t.Fatalf("Closest(acme lc) = %+v", found)
	}
	if score < 0.8 {
		t.Fatalf("score = %v, want >= threshold", score)
	}

	if found, _ := dir.Closest("completely different", 0.8); found != nil {
		t.Fatalf("expected no match below threshold, got %+v", found)
	}
	if found, _ := dir.Closest("", 0.8); found != nil {
		t.Fatal("empty key must never match")
	}
}
