package simulation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/property-simulator/pkg/capitalgain"
	"github.com/iwvelando/property-simulator/pkg/datetime"
	"github.com/iwvelando/property-simulator/pkg/fees"
	"github.com/iwvelando/property-simulator/pkg/format"
	"github.com/iwvelando/property-simulator/pkg/jurisdiction"
	"github.com/iwvelando/property-simulator/pkg/loans"
	"github.com/iwvelando/property-simulator/pkg/mathutil"
	"go.uber.org/zap"
)

// Disclaimer is attached to every result.
const Disclaimer = "Cette simulation est fournie à titre indicatif uniquement. " +
	"Les résultats ne constituent pas un conseil fiscal, juridique ou financier. " +
	"Les montants réels peuvent varier en fonction de votre situation personnelle, " +
	"des évolutions législatives et des spécificités de votre dossier. " +
	"Nous vous recommandons de consulter un notaire ou un conseiller fiscal agréé avant toute prise de décision."

// ErrInvalidAcquisitionDate is returned when the acquisition date cannot be
// parsed.
var ErrInvalidAcquisitionDate = errors.New("invalid acquisition date")

// Run simulates the transaction as of now.
func Run(logger *zap.Logger, input Input) (*Result, error) {
	return RunWithFixedTime(logger, input, time.Now())
}

// RunWithFixedTime simulates the transaction with now as the assumed sale
// date. Sections whose inputs are missing are left nil; only a malformed
// acquisition date is an error.
func RunWithFixedTime(logger *zap.Logger, input Input, now time.Time) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var acquisitionDate *time.Time
	if raw := text(input.AcquisitionDate); raw != "" {
		parsed, err := datetime.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAcquisitionDate, err)
		}
		acquisitionDate = &parsed
	}

	result := &Result{
		Country:       input.Country,
		CountryLabel:  jurisdiction.Label(input.Country),
		City:          input.City,
		OperationType: input.OperationType,
		Disclaimer:    Disclaimer,
	}

	rules, known := jurisdiction.Lookup(input.Country)
	if !known {
		logger.Debug(fmt.Sprintf("no rules registered for country %q, skipping fees and capital gain", input.Country),
			zap.String("op", "simulation.Run"),
		)
	}

	purchasePrice, hasPurchasePrice := amount(input.PurchasePrice)
	salePrice, hasSalePrice := amount(input.SalePrice)
	purchased := input.OperationType.IncludesPurchase() && hasPurchasePrice

	if known && purchased {
		breakdown := rules.Fees.NotaryFees(fees.Request{
			Price:  purchasePrice,
			Canton: text(input.Canton),
		})
		result.NotaryFees = &breakdown
	}

	if known && input.OperationType.IncludesSale() && hasSalePrice && hasPurchasePrice {
		renovationCost, _ := amount(input.RenovationCost)
		breakdown := rules.Gains.CapitalGain(capitalgain.Request{
			SalePrice:       salePrice,
			PurchasePrice:   purchasePrice,
			RenovationCost:  renovationCost,
			AcquisitionDate: acquisitionDate,
			Canton:          text(input.Canton),
			Now:             now,
		})
		result.CapitalGain = &breakdown
	}

	loanAmount, hasLoanAmount := amount(input.LoanAmount)
	loanRate, hasLoanRate := amount(input.LoanRate)
	if hasLoanAmount && hasLoanRate && input.LoanDuration != nil && *input.LoanDuration != 0 {
		breakdown := loans.Amortize(loanAmount, loanRate, *input.LoanDuration)
		result.Loan = &breakdown
	}

	if purchased {
		total := purchasePrice
		if result.NotaryFees != nil {
			total += result.NotaryFees.Total
		}
		if result.Loan != nil {
			total += result.Loan.TotalInterest
		}
		total = mathutil.Round2(total)
		result.TotalInvestment = &total
	}

	result.Summary = buildSummary(result)

	logger.Debug("simulation computed",
		zap.String("op", "simulation.Run"),
		zap.String("country", string(input.Country)),
		zap.String("operationType", string(input.OperationType)),
		zap.Bool("notaryFees", result.NotaryFees != nil),
		zap.Bool("capitalGain", result.CapitalGain != nil),
		zap.Bool("loan", result.Loan != nil),
	)

	return result, nil
}

// buildSummary writes one sentence per computed section, in a fixed order.
func buildSummary(result *Result) string {
	parts := []string{
		fmt.Sprintf("Simulation pour %s, %s.", result.City, result.CountryLabel),
	}

	if result.NotaryFees != nil {
		parts = append(parts, fmt.Sprintf(
			"Les frais de notaire estimés s'élèvent à %s, soit un taux effectif de %.2f %% du prix d'acquisition.",
			format.EUR(result.NotaryFees.Total), result.NotaryFees.EffectiveRate))
	}
	if result.CapitalGain != nil {
		if result.CapitalGain.TotalTax > 0 {
			parts = append(parts, fmt.Sprintf(
				"L'impôt sur la plus-value est estimé à %s. Le produit net de cession serait de %s.",
				format.EUR(result.CapitalGain.TotalTax), format.EUR(result.CapitalGain.NetProceeds)))
		} else {
			parts = append(parts, "Aucun impôt sur la plus-value n'est dû pour cette opération.")
		}
	}
	if result.Loan != nil {
		parts = append(parts, fmt.Sprintf(
			"La mensualité du prêt serait de %s pour un coût total du crédit de %s.",
			format.EUR(result.Loan.MonthlyPayment), format.EUR(result.Loan.TotalCost)))
	}
	if result.TotalInvestment != nil && *result.TotalInvestment != 0 {
		parts = append(parts, fmt.Sprintf(
			"L'investissement total estimé s'élève à %s.", format.EUR(*result.TotalInvestment)))
	}

	return strings.Join(parts, " ")
}
