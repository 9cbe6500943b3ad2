package fees

import "github.com/iwvelando/property-simulator/pkg/mathutil"

const (
	swissDefaultRegistrationRate = 0.025
	swissEmolumentRate           = 0.005
	swissMiscFlat                = 500.0
)

// swissRegistrationRates holds the transfer-duty rate per canton. Read only.
var swissRegistrationRates = map[string]float64{
	"Genève":        0.03,
	"Vaud":          0.033,
	"Zurich":        0.02,
	"Berne":         0.018,
	"Bâle-Ville":    0.025,
	"Bâle-Campagne": 0.02,
	"Lucerne":       0.015,
	"Saint-Gall":    0.015,
	"Argovie":       0.02,
	"Thurgovie":     0.015,
	"Tessin":        0.025,
	"Valais":        0.018,
	"Neuchâtel":     0.033,
	"Fribourg":      0.025,
	"Soleure":       0.022,
	"Schaffhouse":   0.02,
	"Zoug":          0.01,
	"Schwyz":        0.015,
	"Glaris":        0.015,
	"Appenzell":     0.015,
	"Grisons":       0.02,
	"Jura":          0.03,
	"Nidwald":       0.01,
	"Obwald":        0.012,
	"Uri":           0.012,
}

// Switzerland computes Swiss notary fees; the registration duty depends on
// the canton.
var Switzerland = CalculatorFunc(swissNotaryFees)

// SwissRegistrationRate returns the transfer-duty rate of a canton, falling
// back to 2.5% for unknown or empty cantons.
func SwissRegistrationRate(canton string) float64 {
	if rate, ok := swissRegistrationRates[canton]; ok {
		return rate
	}
	return swissDefaultRegistrationRate
}

// KnownCanton reports whether canton has a dedicated registration rate.
func KnownCanton(canton string) bool {
	_, ok := swissRegistrationRates[canton]
	return ok
}

// Cantons returns the number of cantons with a dedicated registration rate.
func Cantons() int {
	return len(swissRegistrationRates)
}

func swissNotaryFees(req Request) Breakdown {
	price := req.Price
	registrationTax := mathutil.Round2(price * SwissRegistrationRate(req.Canton))
	notaryEmoluments := mathutil.Round2(price * swissEmolumentRate)
	disbursements := mathutil.Round2(price * disbursementRate)
	miscFees := mathutil.Round2(swissMiscFlat)
	return assemble(price, registrationTax, notaryEmoluments, disbursements, miscFees)
}
