// Package testutil provides common utility functions for testing.
package testutil

import (
	"time"

	"github.com/iwvelando/property-simulator/internal/simulation"
	"github.com/iwvelando/property-simulator/pkg/datetime"
	"github.com/iwvelando/property-simulator/pkg/jurisdiction"
	"github.com/iwvelando/property-simulator/pkg/mathutil"
)

// FixedNow is the sale date used by deterministic tests.
var FixedNow = datetime.MustParseTime(datetime.DateLayout, "2026-06-15")

// FindResult finds the result for a country in a comparison.
// Returns nil if the country was not compared.
func FindResult(comparison *simulation.Comparison, country jurisdiction.Country) *simulation.Result {
	for _, result := range comparison.Results {
		if result.Country == country {
			return result
		}
	}
	return nil
}

// CentsEqual reports whether two amounts agree to the cent.
func CentsEqual(a, b float64) bool {
	return mathutil.WithinTolerance(a, b, 0.001)
}

// Clock returns a function reporting a fixed time.
func Clock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}
