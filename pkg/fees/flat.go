package fees

import "github.com/iwvelando/property-simulator/pkg/mathutil"

// FlatSchedule is a fee scale made of proportional registration and
// emolument rates plus a fixed amount of sundry fees.
type FlatSchedule struct {
	RegistrationRate float64
	EmolumentRate    float64
	MiscFlat         float64
}

// NotaryFees implements Calculator.
func (s FlatSchedule) NotaryFees(req Request) Breakdown {
	price := req.Price
	registrationTax := mathutil.Round2(price * s.RegistrationRate)
	notaryEmoluments := mathutil.Round2(price * s.EmolumentRate)
	disbursements := mathutil.Round2(price * disbursementRate)
	miscFees := mathutil.Round2(s.MiscFlat)
	return assemble(price, registrationTax, notaryEmoluments, disbursements, miscFees)
}

// Flat fee scales. Belgium has no regional variation modelled.
var (
	Belgium     = FlatSchedule{RegistrationRate: 0.125, EmolumentRate: 0.012, MiscFlat: 800}
	Luxembourg  = FlatSchedule{RegistrationRate: 0.07, EmolumentRate: 0.01, MiscFlat: 600}
	Netherlands = FlatSchedule{RegistrationRate: 0.06, EmolumentRate: 0.008, MiscFlat: 600}
	Germany     = FlatSchedule{RegistrationRate: 0.035, EmolumentRate: 0.012, MiscFlat: 700}
)
