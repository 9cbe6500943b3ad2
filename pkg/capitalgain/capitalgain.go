// Package capitalgain computes the tax due on the gain realised when a
// property is sold, with jurisdiction-specific holding-period relief.
package capitalgain

import (
	"time"

	"github.com/iwvelando/property-simulator/pkg/datetime"
	"github.com/iwvelando/property-simulator/pkg/mathutil"
)

// Breakdown holds the capital-gain computation of a sale.
type Breakdown struct {
	GrossGain                 float64 `json:"grossGain"`
	DeductibleExpenses        float64 `json:"deductibleExpenses"`
	NetGain                   float64 `json:"netGain"`
	HoldingPeriodYears        int     `json:"holdingPeriodYears"`
	IncomeTaxAllowancePercent float64 `json:"incomeTaxAllowancePercent"`
	SocialTaxAllowancePercent float64 `json:"socialTaxAllowancePercent"`
	TaxableGainIncomeTax      float64 `json:"taxableGainIncomeTax"`
	TaxableGainSocialTax      float64 `json:"taxableGainSocialTax"`
	IncomeTax                 float64 `json:"incomeTax"`
	SocialTax                 float64 `json:"socialTax"`
	Surtax                    float64 `json:"surtax"`
	TotalTax                  float64 `json:"totalTax"`
	NetProceeds               float64 `json:"netProceeds"`
}

// Request is the input of a capital-gain calculation.
type Request struct {
	SalePrice     float64
	PurchasePrice float64
	// RenovationCost is only deductible in France.
	RenovationCost float64
	// AcquisitionDate may be nil when unknown.
	AcquisitionDate *time.Time
	Canton          string
	// Now is the assumed sale date.
	Now time.Time
}

// Calculator computes the capital-gain tax of one jurisdiction.
type Calculator interface {
	CapitalGain(req Request) Breakdown
}

// CalculatorFunc adapts a plain function to the Calculator interface.
type CalculatorFunc func(req Request) Breakdown

// CapitalGain calls f(req).
func (f CalculatorFunc) CapitalGain(req Request) Breakdown {
	return f(req)
}

// holdingYears returns zero when the acquisition date is unknown.
func (r Request) holdingYears() int {
	if r.AcquisitionDate == nil {
		return 0
	}
	return datetime.HoldingPeriodYears(*r.AcquisitionDate, r.Now)
}

func (r Request) grossGain() float64 {
	return mathutil.Round2(r.SalePrice - r.PurchasePrice)
}

// flatTax builds the breakdown shared by every jurisdiction that taxes the
// whole gain at a single rate with no deductible expenses.
func flatTax(req Request, years int, taxableGain, totalTax float64) Breakdown {
	grossGain := req.grossGain()
	return Breakdown{
		GrossGain:            grossGain,
		DeductibleExpenses:   0,
		NetGain:              grossGain,
		HoldingPeriodYears:   years,
		TaxableGainIncomeTax: taxableGain,
		IncomeTax:            totalTax,
		TotalTax:             totalTax,
		NetProceeds:          mathutil.Round2(req.SalePrice - totalTax),
	}
}
