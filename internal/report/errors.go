package report

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal run errors. Everything else the pipelines encounter, unmatched
// patterns and directory misses included, is skipped or emitted blank,
// never raised.
var (
	// ErrInputShape marks a table with fewer columns than its pipeline
	// requires.
	ErrInputShape = errors.New("input shape error")
	// ErrPeriodFormat marks an explicitly supplied period that is not
	// MM/YYYY.
	ErrPeriodFormat = errors.New("period format error")
)

// wrapFatal tags a failure with its sentinel and run context so callers
// can classify it with errors.Is while still reading a plain message.
func wrapFatal(marker error, kind Kind, message string) error {
	parts := make([]string, 0, 2)
	if kind, ok := kindTokens[kind]; ok {
		parts = append(parts, kind)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return marker
	}
	return fmt.Errorf("%w: %s", marker, strings.Join(parts, ": "))
}
