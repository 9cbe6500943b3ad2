// Package fees computes the acquisition costs (registration duties, notary
// emoluments, disbursements and sundry fees) paid on a property purchase.
package fees

import (
	"github.com/iwvelando/property-simulator/pkg/mathutil"
)

// Breakdown holds the acquisition-fee components of a purchase.
type Breakdown struct {
	Total            float64 `json:"total"`
	EffectiveRate    float64 `json:"effectiveRate"`
	RegistrationTax  float64 `json:"registrationTax"`
	NotaryEmoluments float64 `json:"notaryEmoluments"`
	Disbursements    float64 `json:"disbursements"`
	MiscFees         float64 `json:"miscFees"`
}

// Request is the input of a fee calculation.
type Request struct {
	Price  float64
	Canton string
}

// Calculator computes the acquisition fees of one jurisdiction.
type Calculator interface {
	NotaryFees(req Request) Breakdown
}

// CalculatorFunc adapts a plain function to the Calculator interface.
type CalculatorFunc func(req Request) Breakdown

// NotaryFees calls f(req).
func (f CalculatorFunc) NotaryFees(req Request) Breakdown {
	return f(req)
}

// disbursementRate is shared by every jurisdiction.
const disbursementRate = 0.001

// assemble sums the components and derives the effective rate. A zero
// price yields a zero effective rate rather than NaN.
func assemble(price, registrationTax, notaryEmoluments, disbursements, miscFees float64) Breakdown {
	total := mathutil.Round2(registrationTax + notaryEmoluments + disbursements + miscFees)
	return Breakdown{
		Total:            total,
		EffectiveRate:    mathutil.Round2(mathutil.CalculatePercentage(total, price)),
		RegistrationTax:  registrationTax,
		NotaryEmoluments: notaryEmoluments,
		Disbursements:    disbursements,
		MiscFees:         miscFees,
	}
}
