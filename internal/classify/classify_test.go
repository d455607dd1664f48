package classify_test

import (
	"testing"
	"time"

	"megone/internal/classify"
)

var today = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestBillingBoundaries(t *testing.T) {
	cases := []struct {
		elapsed int
		want    int
	}{
		{6, 1}, {7, 2}, {14, 2}, {15, 3}, {19, 3},
		{20, 4}, {24, 4}, {25, 5}, {30, 5}, {31, 6},
	}
	for _, tc := range cases {
		due := today.AddDate(0, 0, -tc.elapsed)
		if got := classify.Billing(due, today); got != tc.want {
			t.Fatalf("Billing(elapsed %d) = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
}

func TestBillingFutureDueDate(t *testing.T) {
	due := today.AddDate(0, 0, 10)
	if got := classify.Billing(due, today); got != 1 {
		t.Fatalf("Billing(future) = %d, want 1", got)
	}
}

func TestCertificateBoundaries(t *testing.T) {
	cases := []struct {
		remaining int
		want      int
	}{
		{6, 1}, {5, 2}, {1, 2}, {0, 3}, {-1, 4},
	}
	for _, tc := range cases {
		due := today.AddDate(0, 0, tc.remaining)
		if got := classify.Certificate(due, today); got != tc.want {
			t.Fatalf("Certificate(remaining %d) = %d, want %d", tc.remaining, got, tc.want)
		}
	}
}

func TestCertificateTierZeroUnreachable(t *testing.T) {
	// The zero branch exists for parity with the business rule but no
	// whole-day count can select it.
	for remaining := -400; remaining <= 400; remaining++ {
		due := today.AddDate(0, 0, remaining)
		if got := classify.Certificate(due, today); got == 0 {
			t.Fatalf("Certificate(remaining %d) = 0; the zero tier must be unreachable", remaining)
		}
	}
}
