// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/iwvelando/property-simulator/pkg/constants"
)

const (
	// DateLayout is the ISO calendar date layout used for acquisition dates.
	DateLayout = constants.DateLayout

	yearDuration = time.Duration(constants.DaysPerYear * 24 * float64(time.Hour))
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses an ISO date. Plain calendar dates are read as UTC
// midnight; full RFC 3339 timestamps are accepted as well.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if t, err := time.Parse(DateLayout, trimmed); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t.UTC(), nil
}

// Today returns UTC midnight of the calendar day containing now.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// HoldingPeriodYears returns the number of whole 365.25-day years elapsed
// between acquired and now. A future acquisition date yields a negative count.
func HoldingPeriodYears(acquired, now time.Time) int {
	elapsed := now.Sub(acquired)
	return int(math.Floor(float64(elapsed) / float64(yearDuration)))
}
