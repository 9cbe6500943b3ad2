package simulation

import (
	"fmt"
	"time"

	"github.com/iwvelando/property-simulator/pkg/jurisdiction"
	"github.com/iwvelando/property-simulator/pkg/mathutil"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

// Comparison holds the same transaction simulated in every jurisdiction.
type Comparison struct {
	Results []*Result `json:"results"`
	// EffectiveRate summarises the acquisition-fee rates; nil without a purchase.
	EffectiveRate *Statistics `json:"effectiveRate,omitempty"`
	// CapitalGainTax summarises the tax due on the sale; nil without a sale.
	CapitalGainTax *Statistics `json:"capitalGainTax,omitempty"`
}

// Statistics describes one figure across jurisdictions.
type Statistics struct {
	Mean    float64              `json:"mean"`
	Median  float64              `json:"median"`
	Min     float64              `json:"min"`
	Max     float64              `json:"max"`
	Lowest  jurisdiction.Country `json:"lowest"`
	Highest jurisdiction.Country `json:"highest"`
}

// Compare runs input once per registered jurisdiction, in registry order.
// The input's own country is ignored; its canton only affects Switzerland.
func Compare(logger *zap.Logger, input Input, now time.Time) (*Comparison, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	comparison := &Comparison{}
	var rates, taxes []float64
	var rateCountries, taxCountries []jurisdiction.Country

	for _, j := range jurisdiction.All() {
		scenario := input
		scenario.Country = j.Country
		result, err := RunWithFixedTime(logger, scenario, now)
		if err != nil {
			return nil, fmt.Errorf("failed to simulate %s: %w", j.Country, err)
		}
		comparison.Results = append(comparison.Results, result)

		if result.NotaryFees != nil {
			rates = append(rates, result.NotaryFees.EffectiveRate)
			rateCountries = append(rateCountries, j.Country)
		}
		if result.CapitalGain != nil {
			taxes = append(taxes, result.CapitalGain.TotalTax)
			taxCountries = append(taxCountries, j.Country)
		}
	}

	var err error
	if comparison.EffectiveRate, err = describe(rates, rateCountries); err != nil {
		return nil, fmt.Errorf("failed to summarise effective rates: %w", err)
	}
	if comparison.CapitalGainTax, err = describe(taxes, taxCountries); err != nil {
		return nil, fmt.Errorf("failed to summarise capital-gain tax: %w", err)
	}

	logger.Debug(fmt.Sprintf("compared %d jurisdictions", len(comparison.Results)),
		zap.String("op", "simulation.Compare"),
	)
	return comparison, nil
}

func describe(values []float64, countries []jurisdiction.Country) (*Statistics, error) {
	if len(values) == 0 {
		return nil, nil
	}
	data := stats.Float64Data(values)

	mean, err := data.Mean()
	if err != nil {
		return nil, err
	}
	median, err := data.Median()
	if err != nil {
		return nil, err
	}
	minimum, err := data.Min()
	if err != nil {
		return nil, err
	}
	maximum, err := data.Max()
	if err != nil {
		return nil, err
	}

	summary := &Statistics{
		Mean:   mathutil.Round2(mean),
		Median: mathutil.Round2(median),
		Min:    minimum,
		Max:    maximum,
	}
	// First jurisdiction in registry order wins ties.
	for i, v := range values {
		if v == minimum && summary.Lowest == "" {
			summary.Lowest = countries[i]
		}
		if v == maximum && summary.Highest == "" {
			summary.Highest = countries[i]
		}
	}
	return summary, nil
}
