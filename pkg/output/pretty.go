package output

import (
	"io"

	"github.com/iwvelando/property-simulator/internal/simulation"
	"github.com/iwvelando/property-simulator/pkg/format"
	"github.com/iwvelando/property-simulator/pkg/loans"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, result *simulation.Result) error {
	ew := &errWriter{w: w}
	ew.printf("--- Simulation for %s, %s (%s) ---\n", result.City, result.CountryLabel, result.OperationType)

	if fees := result.NotaryFees; fees != nil {
		ew.printf("\nNotary fees\n")
		ew.printf("  Registration tax    | %s\n", format.EUR(fees.RegistrationTax))
		ew.printf("  Notary emoluments   | %s\n", format.EUR(fees.NotaryEmoluments))
		ew.printf("  Disbursements       | %s\n", format.EUR(fees.Disbursements))
		ew.printf("  Miscellaneous       | %s\n", format.EUR(fees.MiscFees))
		ew.printf("  Total               | %s (%s)\n", format.EUR(fees.Total), format.Percent(fees.EffectiveRate))
	}

	if gain := result.CapitalGain; gain != nil {
		ew.printf("\nCapital gain\n")
		ew.printf("  Holding period      | %d years\n", gain.HoldingPeriodYears)
		ew.printf("  Gross gain          | %s\n", format.EUR(gain.GrossGain))
		ew.printf("  Deductible expenses | %s\n", format.EUR(gain.DeductibleExpenses))
		ew.printf("  Net gain            | %s\n", format.EUR(gain.NetGain))
		ew.printf("  Income tax          | %s (allowance %s)\n", format.EUR(gain.IncomeTax), format.Percent(gain.IncomeTaxAllowancePercent))
		ew.printf("  Social tax          | %s (allowance %s)\n", format.EUR(gain.SocialTax), format.Percent(gain.SocialTaxAllowancePercent))
		ew.printf("  Surtax              | %s\n", format.EUR(gain.Surtax))
		ew.printf("  Total tax           | %s\n", format.EUR(gain.TotalTax))
		ew.printf("  Net proceeds        | %s\n", format.EUR(gain.NetProceeds))
	}

	if loan := result.Loan; loan != nil {
		ew.printf("\nLoan\n")
		ew.printf("  Monthly payment     | %s\n", format.EUR(loan.MonthlyPayment))
		ew.printf("  Total interest      | %s\n", format.EUR(loan.TotalInterest))
		ew.printf("  Total repaid        | %s\n", format.EUR(loan.TotalRepaid))
	}

	if result.TotalInvestment != nil {
		ew.printf("\nTotal investment      | %s\n", format.EUR(*result.TotalInvestment))
	}

	ew.printf("\n%s\n\n%s\n", result.Summary, result.Disclaimer)
	return ew.err
}

// PrettyComparison outputs one line per jurisdiction followed by the
// statistics of each compared figure.
func PrettyComparison(w io.Writer, comparison *simulation.Comparison) error {
	ew := &errWriter{w: w}
	ew.printf("Country     | Notary fees     | Rate     | Capital-gain tax | Total investment\n")
	ew.printf("_______     | ___________     | ____     | ________________ | ________________\n")
	for _, result := range comparison.Results {
		fees, rate, tax, total := "-", "-", "-", "-"
		if result.NotaryFees != nil {
			fees = format.EUR(result.NotaryFees.Total)
			rate = format.Percent(result.NotaryFees.EffectiveRate)
		}
		if result.CapitalGain != nil {
			tax = format.EUR(result.CapitalGain.TotalTax)
		}
		if result.TotalInvestment != nil {
			total = format.EUR(*result.TotalInvestment)
		}
		ew.printf("%-11s | %-15s | %-8s | %-16s | %s\n", result.CountryLabel, fees, rate, tax, total)
	}

	if s := comparison.EffectiveRate; s != nil {
		ew.printf("\nEffective rate: mean %s, median %s, lowest %s (%s), highest %s (%s)\n",
			format.Percent(s.Mean), format.Percent(s.Median), s.Lowest, format.Percent(s.Min), s.Highest, format.Percent(s.Max))
	}
	if s := comparison.CapitalGainTax; s != nil {
		ew.printf("\nCapital-gain tax: mean %s, median %s, lowest %s (%s), highest %s (%s)\n",
			format.EUR(s.Mean), format.EUR(s.Median), s.Lowest, format.EUR(s.Min), s.Highest, format.EUR(s.Max))
	}
	return ew.err
}

// PrettySchedule outputs the amortization schedule as a table.
func PrettySchedule(w io.Writer, schedule []loans.Payment) error {
	ew := &errWriter{w: w}
	ew.printf("Month | Payment | Principal | Interest | Remaining\n")
	ew.printf("_____ | _______ | _________ | ________ | _________\n")
	for _, payment := range schedule {
		ew.printf("%5d | %s | %s | %s | %s\n", payment.Month,
			format.EUR(payment.Payment), format.EUR(payment.Principal),
			format.EUR(payment.Interest), format.EUR(payment.RemainingPrincipal))
	}
	ew.printf("\nTotal interest: %s\n", format.EUR(loans.TotalInterest(schedule)))
	return ew.err
}
