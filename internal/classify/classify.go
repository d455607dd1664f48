// Package classify maps due dates to reminder-letter tiers.
package classify

import "time"

// Billing returns the billing reminder tier (1..6) for a parcel due date.
// The tier grows with the number of days the parcel is overdue; future due
// dates land in tier 1.
func Billing(due, today time.Time) int {
	elapsed := daysBetween(due, today)
	switch {
	case elapsed <= 6:
		return 1
	case elapsed <= 14:
		return 2
	case elapsed <= 19:
		return 3
	case elapsed <= 24:
		return 4
	case elapsed <= 30:
		return 5
	default:
		return 6
	}
}

// Certificate returns the certificate notice tier (0..4) from the days
// remaining until expiry: expiring today 3, within five days 2, later 1,
// already expired 4. The final branch cannot be reached with integer day
// counts; it is retained because the upstream business rule carries it.
func Certificate(due, today time.Time) int {
	remaining := daysBetween(today, due)
	switch {
	case remaining == 0:
		return 3
	case remaining > 0 && remaining <= 5:
		return 2
	case remaining > 5:
		return 1
	case remaining < 0:
		return 4
	default:
		return 0
	}
}

// daysBetween counts whole civil days from a to b, ignoring clock time.
func daysBetween(a, b time.Time) int {
	start := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
