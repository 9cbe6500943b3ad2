// Package jurisdiction maps each supported country to the calculators that
// implement its acquisition-fee and capital-gain rules.
package jurisdiction

import (
	"github.com/iwvelando/property-simulator/pkg/capitalgain"
	"github.com/iwvelando/property-simulator/pkg/fees"
)

// Country identifies a jurisdiction.
type Country string

// Supported countries.
const (
	France      Country = "france"
	Switzerland Country = "suisse"
	Belgium     Country = "belgique"
	Luxembourg  Country = "luxembourg"
	Netherlands Country = "pays-bas"
	Germany     Country = "allemagne"
)

// Jurisdiction bundles the rules of one country.
type Jurisdiction struct {
	Country Country
	Label   string
	Fees    fees.Calculator
	Gains   capitalgain.Calculator
}

// registry is ordered for display; never modified after initialisation.
var registry = []Jurisdiction{
	{Country: France, Label: "France", Fees: fees.France, Gains: capitalgain.France},
	{Country: Switzerland, Label: "Suisse", Fees: fees.Switzerland, Gains: capitalgain.Switzerland},
	{Country: Belgium, Label: "Belgique", Fees: fees.Belgium, Gains: capitalgain.Belgium},
	{Country: Luxembourg, Label: "Luxembourg", Fees: fees.Luxembourg, Gains: capitalgain.Luxembourg},
	{Country: Netherlands, Label: "Pays-Bas", Fees: fees.Netherlands, Gains: capitalgain.Netherlands},
	{Country: Germany, Label: "Allemagne", Fees: fees.Germany, Gains: capitalgain.Germany},
}

// Lookup returns the jurisdiction registered for country.
func Lookup(country Country) (Jurisdiction, bool) {
	for _, j := range registry {
		if j.Country == country {
			return j, true
		}
	}
	return Jurisdiction{}, false
}

// All returns every registered jurisdiction in display order.
func All() []Jurisdiction {
	out := make([]Jurisdiction, len(registry))
	copy(out, registry)
	return out
}

// Label returns the display name of a country, or the raw value when the
// country is not supported.
func Label(country Country) string {
	if j, ok := Lookup(country); ok {
		return j.Label
	}
	return string(country)
}

// Valid reports whether country is supported.
func (c Country) Valid() bool {
	_, ok := Lookup(c)
	return ok
}

// Countries returns the identifiers of every supported country.
func Countries() []string {
	out := make([]string, 0, len(registry))
	for _, j := range registry {
		out = append(out, string(j.Country))
	}
	return out
}
