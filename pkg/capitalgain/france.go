package capitalgain

import (
	"github.com/iwvelando/property-simulator/pkg/datetime"
	"github.com/iwvelando/property-simulator/pkg/mathutil"
)

const (
	franceAcquisitionCostRate = 0.075
	franceIncomeTaxRate       = 0.19
	franceSocialTaxRate       = 0.172

	// Holding-period relief starts after the fifth year of ownership.
	franceReliefStartYear        = 5
	franceIncomeTaxExemptYear    = 22
	franceSocialTaxExemptYear    = 30
	franceIncomeTaxReliefRate    = 6.0
	franceSocialTaxReliefRate    = 1.65
	franceSocialTaxLateRate      = 1.60
	franceSocialTaxLateBonus     = 9.0
	franceSocialTaxLastEarlyYear = 21
)

type surtaxBand struct {
	threshold float64
	rate      float64
}

// franceSurtaxBands is ordered from the highest threshold down; only the
// first band exceeded applies, to the whole taxable base.
var franceSurtaxBands = []surtaxBand{
	{threshold: 260000, rate: 0.06},
	{threshold: 250000, rate: 0.05},
	{threshold: 200000, rate: 0.04},
	{threshold: 150000, rate: 0.03},
	{threshold: 100000, rate: 0.02},
	{threshold: 50000, rate: 0.02},
}

// France computes the French real-estate capital-gain tax. An unknown
// acquisition date is taken to be today.
var France = CalculatorFunc(franceCapitalGain)

func franceCapitalGain(req Request) Breakdown {
	if req.AcquisitionDate == nil {
		today := datetime.Today(req.Now)
		req.AcquisitionDate = &today
	}
	years := req.holdingYears()

	acquisitionCosts := mathutil.Round2(req.PurchasePrice * franceAcquisitionCostRate)
	deductibleExpenses := mathutil.Round2(acquisitionCosts + req.RenovationCost)
	grossGain := req.grossGain()
	netGain := mathutil.Round2(grossGain - deductibleExpenses)

	incomeTaxAllowance := FranceIncomeTaxAllowance(years)
	socialTaxAllowance := FranceSocialTaxAllowance(years)

	taxableIncomeTax := mathutil.Round2(mathutil.Max(0, netGain*(1-incomeTaxAllowance/100)))
	taxableSocialTax := mathutil.Round2(mathutil.Max(0, netGain*(1-socialTaxAllowance/100)))

	incomeTax := mathutil.Round2(taxableIncomeTax * franceIncomeTaxRate)
	socialTax := mathutil.Round2(taxableSocialTax * franceSocialTaxRate)
	surtax := FranceSurtax(taxableIncomeTax)

	totalTax := mathutil.Round2(incomeTax + socialTax + surtax)

	return Breakdown{
		GrossGain:                 grossGain,
		DeductibleExpenses:        deductibleExpenses,
		NetGain:                   netGain,
		HoldingPeriodYears:        years,
		IncomeTaxAllowancePercent: mathutil.Round2(incomeTaxAllowance),
		SocialTaxAllowancePercent: mathutil.Round2(socialTaxAllowance),
		TaxableGainIncomeTax:      taxableIncomeTax,
		TaxableGainSocialTax:      taxableSocialTax,
		IncomeTax:                 incomeTax,
		SocialTax:                 socialTax,
		Surtax:                    surtax,
		TotalTax:                  totalTax,
		NetProceeds:               mathutil.Round2(req.SalePrice - totalTax),
	}
}

// FranceIncomeTaxAllowance returns the income-tax relief percentage for a
// holding period: 6% per year beyond the fifth, full exemption from year 22.
func FranceIncomeTaxAllowance(years int) float64 {
	switch {
	case years >= franceIncomeTaxExemptYear:
		return 100
	case years > franceReliefStartYear:
		return float64(years-franceReliefStartYear) * franceIncomeTaxReliefRate
	default:
		return 0
	}
}

// FranceSocialTaxAllowance returns the social-levy relief percentage. It
// accrues 1.65% a year from year 6 to 21, then 1.60% a year on top of a
// 9-point step, reaching full exemption at year 30.
func FranceSocialTaxAllowance(years int) float64 {
	switch {
	case years >= franceSocialTaxExemptYear:
		return 100
	case years <= franceReliefStartYear:
		return 0
	case years <= franceSocialTaxLastEarlyYear:
		return float64(years-franceReliefStartYear) * franceSocialTaxReliefRate
	default:
		earlyYears := franceSocialTaxLastEarlyYear - franceReliefStartYear
		early := float64(float64(earlyYears) * franceSocialTaxReliefRate)
		late := float64(float64(years-franceSocialTaxLastEarlyYear) * franceSocialTaxLateRate)
		return early + late + franceSocialTaxLateBonus
	}
}

// FranceSurtax returns the additional levy on large gains.
func FranceSurtax(taxableIncomeTax float64) float64 {
	for _, band := range franceSurtaxBands {
		if taxableIncomeTax > band.threshold {
			return mathutil.Round2(taxableIncomeTax * band.rate)
		}
	}
	return 0
}
