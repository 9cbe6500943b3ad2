// Package loans provides fixed-rate mortgage amortization utilities.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/property-simulator/pkg/constants"
	"github.com/iwvelando/property-simulator/pkg/mathutil"
	"go.uber.org/zap"
)

// Breakdown summarises the cost of a loan.
type Breakdown struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	// TotalCost is the cost of credit; it currently equals TotalInterest.
	TotalCost   float64 `json:"totalCost"`
	TotalRepaid float64 `json:"totalRepaid"`
}

// Payment holds the values for a given payment.
type Payment struct {
	Month              int     `json:"month" csv:"month"`
	Payment            float64 `json:"payment" csv:"payment"`
	Principal          float64 `json:"principal" csv:"principal"`
	Interest           float64 `json:"interest" csv:"interest"`
	RemainingPrincipal float64 `json:"remainingPrincipal" csv:"remaining_principal"`
}

// MonthlyRate converts an annual percentage rate into a periodic rate.
func MonthlyRate(annualInterestRate float64) float64 {
	return annualInterestRate / constants.PercentageMultiplier / constants.MonthsPerYear
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula, rounded to the cent.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return mathutil.Round2(principal / float64(termMonths))
	}

	periodicInterestRate := MonthlyRate(annualInterestRate)
	power := math.Pow(1+periodicInterestRate, float64(termMonths))
	return mathutil.Round2(principal * (periodicInterestRate * power) / (power - 1))
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * MonthlyRate(annualInterestRate)
}

// Amortize computes the monthly payment and total cost of a fixed-rate loan
// repaid over the given number of years.
func Amortize(principal, annualInterestRate float64, years int) Breakdown {
	termMonths := years * constants.MonthsPerYear
	monthlyPayment := CalculateMonthlyPayment(principal, annualInterestRate, termMonths)
	totalRepaid := mathutil.Round2(monthlyPayment * float64(termMonths))
	totalInterest := mathutil.Round2(totalRepaid - principal)

	return Breakdown{
		MonthlyPayment: monthlyPayment,
		TotalInterest:  totalInterest,
		TotalCost:      totalInterest,
		TotalRepaid:    totalRepaid,
	}
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// GenerateSchedule creates the month-by-month amortization schedule of a
// loan. Every figure is rounded to the cent and the last payment absorbs the
// residual so the loan closes at exactly zero.
func (g *AmortizationScheduleGenerator) GenerateSchedule(principal, annualInterestRate float64, years int) ([]Payment, error) {
	if principal <= 0 {
		return nil, fmt.Errorf("principal must be positive, got %.2f", principal)
	}
	if annualInterestRate < 0 {
		return nil, fmt.Errorf("interest rate must not be negative, got %.2f", annualInterestRate)
	}
	if years <= 0 {
		return nil, fmt.Errorf("duration must be at least one year, got %d", years)
	}

	termMonths := years * constants.MonthsPerYear
	monthlyPayment := CalculateMonthlyPayment(principal, annualInterestRate, termMonths)

	schedule := make([]Payment, 0, termMonths)
	remaining := principal
	for month := 1; month <= termMonths; month++ {
		var current Payment
		current.Month = month
		current.Interest = mathutil.Round2(CalculateInterestPayment(remaining, annualInterestRate))
		current.Payment = monthlyPayment
		current.Principal = mathutil.Round2(monthlyPayment - current.Interest)

		if month == termMonths || current.Principal >= remaining {
			// Close the loan; we will get machine error otherwise.
			current.Principal = mathutil.Round2(remaining)
			current.Payment = mathutil.Round2(current.Principal + current.Interest)
			current.RemainingPrincipal = 0
			schedule = append(schedule, current)
			if month < termMonths {
				g.logger.Debug(fmt.Sprintf("loan repaid at month %d of %d", month, termMonths),
					zap.String("op", "loans.GenerateSchedule"),
				)
			}
			break
		}

		remaining = mathutil.Round2(remaining - current.Principal)
		current.RemainingPrincipal = remaining
		schedule = append(schedule, current)
	}

	g.logger.Debug(fmt.Sprintf("generated %d payments of %.2f", len(schedule), monthlyPayment),
		zap.String("op", "loans.GenerateSchedule"),
	)
	return schedule, nil
}

// TotalInterest sums the interest paid over a schedule.
func TotalInterest(schedule []Payment) float64 {
	total := 0.0
	for _, payment := range schedule {
		total += payment.Interest
	}
	return mathutil.Round2(total)
}
