package fees

import (
	"math"

	"github.com/iwvelando/property-simulator/pkg/mathutil"
)

const (
	franceRegistrationRate = 0.05807
	franceMiscFlat         = 400.0
	franceMiscRate         = 0.001
)

type bracket struct {
	limit float64
	rate  float64
}

// franceEmolumentBrackets is the regulated regressive scale, applied per
// slice of the price.
var franceEmolumentBrackets = []bracket{
	{limit: 6500, rate: 0.03870},
	{limit: 17000, rate: 0.01596},
	{limit: 60000, rate: 0.01064},
	{limit: math.Inf(1), rate: 0.00799},
}

// France computes French notary fees.
var France = CalculatorFunc(franceNotaryFees)

func franceNotaryFees(req Request) Breakdown {
	price := req.Price
	registrationTax := mathutil.Round2(price * franceRegistrationRate)
	notaryEmoluments := FranceEmoluments(price)
	disbursements := mathutil.Round2(price * disbursementRate)
	miscFees := mathutil.Round2(franceMiscFlat + float64(price*franceMiscRate))
	return assemble(price, registrationTax, notaryEmoluments, disbursements, miscFees)
}

// FranceEmoluments returns the proportional notary emoluments for a French
// purchase price. Each bracket rate only applies to the slice of the price
// that falls inside it; the sum is rounded once.
func FranceEmoluments(price float64) float64 {
	total := 0.0
	previous := 0.0
	for _, b := range franceEmolumentBrackets {
		current := mathutil.Min(price, b.limit)
		if current > previous {
			// float64() stops the compiler fusing into an FMA, which would
			// change the rounding of the slice.
			total += float64((current - previous) * b.rate)
			previous = current
		}
		if price <= b.limit {
			break
		}
	}
	return mathutil.Round2(total)
}
