package output

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/iwvelando/property-simulator/internal/simulation"
	"github.com/iwvelando/property-simulator/pkg/loans"
)

// resultRow is one figure of a simulation in long format.
type resultRow struct {
	Section string `csv:"section"`
	Item    string `csv:"item"`
	Value   string `csv:"value"`
}

// comparisonRow is one jurisdiction of a comparison.
type comparisonRow struct {
	Country         string `csv:"country"`
	Label           string `csv:"label"`
	NotaryFees      string `csv:"notary_fees"`
	EffectiveRate   string `csv:"effective_rate"`
	CapitalGainTax  string `csv:"capital_gain_tax"`
	LoanMonthly     string `csv:"loan_monthly"`
	TotalInvestment string `csv:"total_investment"`
}

// CsvFormat outputs every computed figure as section,item,value rows.
func CsvFormat(w io.Writer, result *simulation.Result) error {
	rows := []resultRow{}
	add := func(section, item string, value float64) {
		rows = append(rows, resultRow{Section: section, Item: item, Value: amount(value)})
	}

	if fees := result.NotaryFees; fees != nil {
		add("notary_fees", "registration_tax", fees.RegistrationTax)
		add("notary_fees", "notary_emoluments", fees.NotaryEmoluments)
		add("notary_fees", "disbursements", fees.Disbursements)
		add("notary_fees", "misc_fees", fees.MiscFees)
		add("notary_fees", "total", fees.Total)
		add("notary_fees", "effective_rate", fees.EffectiveRate)
	}
	if gain := result.CapitalGain; gain != nil {
		rows = append(rows, resultRow{Section: "capital_gain", Item: "holding_period_years", Value: fmt.Sprint(gain.HoldingPeriodYears)})
		add("capital_gain", "gross_gain", gain.GrossGain)
		add("capital_gain", "deductible_expenses", gain.DeductibleExpenses)
		add("capital_gain", "net_gain", gain.NetGain)
		add("capital_gain", "income_tax_allowance_percent", gain.IncomeTaxAllowancePercent)
		add("capital_gain", "social_tax_allowance_percent", gain.SocialTaxAllowancePercent)
		add("capital_gain", "taxable_gain_income_tax", gain.TaxableGainIncomeTax)
		add("capital_gain", "taxable_gain_social_tax", gain.TaxableGainSocialTax)
		add("capital_gain", "income_tax", gain.IncomeTax)
		add("capital_gain", "social_tax", gain.SocialTax)
		add("capital_gain", "surtax", gain.Surtax)
		add("capital_gain", "total_tax", gain.TotalTax)
		add("capital_gain", "net_proceeds", gain.NetProceeds)
	}
	if loan := result.Loan; loan != nil {
		add("loan", "monthly_payment", loan.MonthlyPayment)
		add("loan", "total_interest", loan.TotalInterest)
		add("loan", "total_cost", loan.TotalCost)
		add("loan", "total_repaid", loan.TotalRepaid)
	}
	if result.TotalInvestment != nil {
		add("total", "total_investment", *result.TotalInvestment)
	}

	return gocsv.Marshal(rows, w)
}

// CsvComparison outputs one row per jurisdiction; absent figures are empty.
func CsvComparison(w io.Writer, comparison *simulation.Comparison) error {
	rows := make([]comparisonRow, 0, len(comparison.Results))
	for _, result := range comparison.Results {
		row := comparisonRow{
			Country: string(result.Country),
			Label:   result.CountryLabel,
		}
		if result.NotaryFees != nil {
			row.NotaryFees = amount(result.NotaryFees.Total)
			row.EffectiveRate = amount(result.NotaryFees.EffectiveRate)
		}
		if result.CapitalGain != nil {
			row.CapitalGainTax = amount(result.CapitalGain.TotalTax)
		}
		if result.Loan != nil {
			row.LoanMonthly = amount(result.Loan.MonthlyPayment)
		}
		if result.TotalInvestment != nil {
			row.TotalInvestment = amount(*result.TotalInvestment)
		}
		rows = append(rows, row)
	}
	return gocsv.Marshal(rows, w)
}

// CsvSchedule outputs the amortization schedule, one payment per row.
func CsvSchedule(w io.Writer, schedule []loans.Payment) error {
	return gocsv.Marshal(schedule, w)
}

func amount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
