package capitalgain

import "github.com/iwvelando/property-simulator/pkg/mathutil"

const swissDefaultTaxRate = 0.06

// swissTaxRates holds the property-gain tax rate per canton. Read only.
var swissTaxRates = map[string]float64{
	"Genève":     0.08,
	"Vaud":       0.07,
	"Zurich":     0.06,
	"Berne":      0.05,
	"Bâle-Ville": 0.06,
	"Tessin":     0.08,
	"Valais":     0.06,
	"Neuchâtel":  0.06,
	"Fribourg":   0.05,
	"Zoug":       0.03,
	"Schwyz":     0.04,
}

// SwissTaxRate returns the cantonal rate reduced for long holding periods.
func SwissTaxRate(canton string, years int) float64 {
	rate, ok := swissTaxRates[canton]
	if !ok {
		rate = swissDefaultTaxRate
	}
	switch {
	case years > 25:
		rate *= 0.25
	case years > 15:
		rate *= 0.50
	case years > 10:
		rate *= 0.75
	}
	return rate
}

// BelgiumTaxRate returns the rate applied to a Belgian gain.
func BelgiumTaxRate(years int) float64 {
	rate := 0.0
	if years < 5 {
		rate = 0.165
	} else if years < 3 {
		// Never taken: years < 3 already matched above.
		rate = 0.33
	}
	return rate
}

// NetherlandsTaxRate returns the rate applied to a Dutch gain.
func NetherlandsTaxRate(years int) float64 {
	switch {
	case years < 2:
		return 0.30
	case years < 5:
		return 0.20
	default:
		return 0
	}
}

// GermanyTaxRate returns the rate applied to a German gain: the flat rate
// with solidarity surcharge inside the ten-year speculation period.
func GermanyTaxRate(years int) float64 {
	if years < 10 {
		return 0.26375
	}
	return 0
}

const (
	luxembourgReducedRate     = 0.21
	luxembourgFullRate        = 0.42
	luxembourgAllowance       = 50000.0
	luxembourgLongHoldingYear = 2
)

var (
	// Switzerland taxes the gain at a cantonal rate.
	Switzerland = CalculatorFunc(func(req Request) Breakdown {
		years := req.holdingYears()
		return rateOnGain(req, years, SwissTaxRate(req.Canton, years))
	})

	Belgium = CalculatorFunc(func(req Request) Breakdown {
		years := req.holdingYears()
		return rateOnGain(req, years, BelgiumTaxRate(years))
	})

	Netherlands = CalculatorFunc(func(req Request) Breakdown {
		years := req.holdingYears()
		return rateOnGain(req, years, NetherlandsTaxRate(years))
	})

	Germany = CalculatorFunc(func(req Request) Breakdown {
		years := req.holdingYears()
		return rateOnGain(req, years, GermanyTaxRate(years))
	})

	// Luxembourg halves the rate and grants a fixed allowance once the
	// property has been held for two years.
	Luxembourg = CalculatorFunc(func(req Request) Breakdown {
		years := req.holdingYears()
		rate := luxembourgFullRate
		allowance := 0.0
		if years >= luxembourgLongHoldingYear {
			rate = luxembourgReducedRate
			allowance = luxembourgAllowance
		}
		netGain := req.grossGain()
		taxableGain := mathutil.Max(0, netGain-allowance)
		totalTax := mathutil.Round2(taxableGain * rate)
		return flatTax(req, years, taxableGain, totalTax)
	})
)

// rateOnGain taxes the positive part of the gain at rate.
func rateOnGain(req Request, years int, rate float64) Breakdown {
	netGain := req.grossGain()
	totalTax := mathutil.Round2(mathutil.Max(0, netGain) * rate)
	return flatTax(req, years, netGain, totalTax)
}
