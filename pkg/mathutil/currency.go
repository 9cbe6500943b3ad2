// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/property-simulator/pkg/constants"
)

// Round2 rounds a value to two decimals, i.e. to represent real currency.
//
// Halves always round towards positive infinity: -0.125 becomes -0.12, where
// math.Round would give -0.13.
func Round2(val float64) float64 {
	scaled := float64(val * constants.DecimalPrecision)
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) {
		return val
	}
	floor := math.Floor(scaled)
	if scaled-floor >= 0.5 {
		floor++
	}
	return floor / constants.DecimalPrecision
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}
