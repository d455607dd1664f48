package extract_test

import (
	"testing"
	"time"

	"megone/internal/extract"
)

func TestParcelsSingleClient(t *testing.T) {
	text := "Cliente: 42\nNome: Foo Corp\n01/01/2024 1.234,56"
	parcels := extract.Parcels(text)
	if len(parcels) != 1 {
		t.Fatalf("got %d parcels, want 1", len(parcels))
	}
	p := parcels[0]
	if p.Code != "42" {
		t.Fatalf("code = %q", p.Code)
	}
	if p.Name != "Foo Corp" {
		t.Fatalf("name = %q", p.Name)
	}
	if p.Amount != 1234.56 {
		t.Fatalf("amount = %v", p.Amount)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !p.Due.Equal(want) {
		t.Fatalf("due = %v, want %v", p.Due, want)
	}
}

func TestParcelsRequireActiveClientAndName(t *testing.T) {
	// Installment lines before both a code and a name are active must not
	// emit anything.
	text := "01/01/2024 100,00\nCliente: 9\n02/01/2024 200,00\nNome: Bar\n03/01/2024 300,00"
	parcels := extract.Parcels(text)
	if len(parcels) != 1 {
		t.Fatalf("got %d parcels, want 1", len(parcels))
	}
	if parcels[0].Amount != 300.00 {
		t.Fatalf("amount = %v, want 300", parcels[0].Amount)
	}
}

func TestParcelsNameIgnoredWithoutClient(t *testing.T) {
	text := "Nome: Orphan Name\nCliente: 5\nNome: Real Name\n04/02/2024 50,00"
	parcels := extract.Parcels(text)
	if len(parcels) != 1 {
		t.Fatalf("got %d parcels, want 1", len(parcels))
	}
	if parcels[0].Name != "Real Name" {
		t.Fatalf("name = %q, want the name seen after the client", parcels[0].Name)
	}
}

func TestParcelsStateCarriesAcrossClients(t *testing.T) {
	text := "Cliente: 1\nNome: First\n01/03/2024 10,00\n" +
		"Cliente: 2\nNome: Second\n02/03/2024 1.000,00\n03/03/2024 20,50"
	parcels := extract.Parcels(text)
	if len(parcels) != 3 {
		t.Fatalf("got %d parcels, want 3", len(parcels))
	}
	if parcels[0].Code != "1" || parcels[1].Code != "2" || parcels[2].Code != "2" {
		t.Fatalf("codes = %q %q %q", parcels[0].Code, parcels[1].Code, parcels[2].Code)
	}
	if parcels[1].Amount != 1000.00 {
		t.Fatalf("amount = %v, want 1000", parcels[1].Amount)
	}
}

func TestParcelsRestartable(t *testing.T) {
	text := "Cliente: 42\nNome: Foo\n01/01/2024 1,00\n02/01/2024 2,00"
	first := extract.Parcels(text)
	second := extract.Parcels(text)
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("lens = %d, %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("run mismatch at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
