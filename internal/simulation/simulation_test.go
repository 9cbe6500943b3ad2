package simulation

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iwvelando/property-simulator/pkg/datetime"
	"github.com/iwvelando/property-simulator/pkg/jurisdiction"
	"github.com/iwvelando/property-simulator/pkg/mathutil"
	"go.uber.org/zap"
)

var fixedNow = datetime.MustParseTime(datetime.DateLayout, "2026-06-15")

func TestRunPurchaseAndSaleFrance(t *testing.T) {
	input := Input{
		Country:         jurisdiction.France,
		City:            "Nice",
		OperationType:   PurchaseAndSale,
		PurchasePrice:   Float(300000),
		SalePrice:       Float(400000),
		AcquisitionDate: String("2010-01-01"),
		LoanAmount:      Float(250000),
		LoanRate:        Float(3.0),
		LoanDuration:    Int(20),
	}

	result, err := RunWithFixedTime(zap.NewNop(), input, fixedNow)
	if err != nil {
		t.Fatalf("RunWithFixedTime() error = %v", err)
	}

	if result.NotaryFees == nil || result.CapitalGain == nil || result.Loan == nil {
		t.Fatalf("expected every section, got %+v", result)
	}
	if !centsEqual(result.NotaryFees.Total, 21215.25) {
		t.Errorf("NotaryFees.Total = %.2f, expected 21215.25", result.NotaryFees.Total)
	}
	if result.CapitalGain.HoldingPeriodYears != 16 {
		t.Errorf("HoldingPeriodYears = %d, expected 16", result.CapitalGain.HoldingPeriodYears)
	}
	if !centsEqual(result.CapitalGain.TotalTax, 15917.11) {
		t.Errorf("CapitalGain.TotalTax = %.2f, expected 15917.11", result.CapitalGain.TotalTax)
	}
	if !centsEqual(result.Loan.MonthlyPayment, 1386.49) {
		t.Errorf("Loan.MonthlyPayment = %.2f, expected 1386.49", result.Loan.MonthlyPayment)
	}
	if result.TotalInvestment == nil || !centsEqual(*result.TotalInvestment, 403972.85) {
		t.Errorf("TotalInvestment = %v, expected 403972.85", result.TotalInvestment)
	}
	if len(result.Summary) < 50 {
		t.Errorf("summary too short: %q", result.Summary)
	}
	if len(result.Disclaimer) < 50 {
		t.Errorf("disclaimer too short: %q", result.Disclaimer)
	}
	if result.Country != jurisdiction.France || result.CountryLabel != "France" || result.City != "Nice" {
		t.Errorf("unexpected echo fields: %s %s %s", result.Country, result.CountryLabel, result.City)
	}
}

func TestRunBelgiumPurchase(t *testing.T) {
	result, err := RunWithFixedTime(nil, Input{
		Country:       jurisdiction.Belgium,
		City:          "Bruxelles",
		OperationType: Purchase,
		PurchasePrice: Float(350000),
	}, fixedNow)
	if err != nil {
		t.Fatalf("RunWithFixedTime() error = %v", err)
	}

	if result.NotaryFees == nil {
		t.Fatal("expected notary fees")
	}
	if result.NotaryFees.Total != 49100 {
		t.Errorf("Total = %.2f, expected 49100", result.NotaryFees.Total)
	}
	if result.NotaryFees.EffectiveRate != 14.03 {
		t.Errorf("EffectiveRate = %.2f, expected 14.03", result.NotaryFees.EffectiveRate)
	}
	if result.CapitalGain != nil || result.Loan != nil {
		t.Errorf("unexpected sections: %+v", result)
	}
	if result.TotalInvestment == nil || *result.TotalInvestment != 399100 {
		t.Errorf("TotalInvestment = %v, expected 399100", result.TotalInvestment)
	}
	if result.CountryLabel != "Belgique" {
		t.Errorf("CountryLabel = %q, expected Belgique", result.CountryLabel)
	}
}

func TestRunSectionSelection(t *testing.T) {
	tests := []struct {
		name              string
		input             Input
		expectFees        bool
		expectGain        bool
		expectLoan        bool
		expectInvestment  bool
		expectCountryText string
	}{
		{
			name:              "Purchase without price",
			input:             Input{Country: jurisdiction.France, City: "Paris", OperationType: Purchase},
			expectCountryText: "France",
		},
		{
			name:              "Sale without purchase price",
			input:             Input{Country: jurisdiction.Germany, City: "Berlin", OperationType: Sale, SalePrice: Float(500000)},
			expectCountryText: "Allemagne",
		},
		{
			name: "Sale ignores purchase fees",
			input: Input{Country: jurisdiction.Netherlands, City: "Amsterdam", OperationType: Sale,
				PurchasePrice: Float(300000), SalePrice: Float(350000)},
			expectGain:        true,
			expectCountryText: "Pays-Bas",
		},
		{
			name: "Loan is independent of operation type",
			input: Input{Country: jurisdiction.Luxembourg, City: "Luxembourg", OperationType: Sale,
				LoanAmount: Float(100000), LoanRate: Float(2.5), LoanDuration: Int(15)},
			expectLoan:        true,
			expectCountryText: "Luxembourg",
		},
		{
			name: "Zero loan rate counts as absent",
			input: Input{Country: jurisdiction.France, City: "Lille", OperationType: Purchase, PurchasePrice: Float(200000),
				LoanAmount: Float(100000), LoanRate: Float(0), LoanDuration: Int(15)},
			expectFees:        true,
			expectInvestment:  true,
			expectCountryText: "France",
		},
		{
			name:              "Zero purchase price counts as absent",
			input:             Input{Country: jurisdiction.France, City: "Lille", OperationType: Purchase, PurchasePrice: Float(0)},
			expectCountryText: "France",
		},
		{
			name: "Unknown country",
			input: Input{Country: "espagne", City: "Madrid", OperationType: PurchaseAndSale,
				PurchasePrice: Float(300000), SalePrice: Float(350000)},
			expectInvestment:  true,
			expectCountryText: "espagne",
		},
		{
			name: "Unknown operation type",
			input: Input{Country: jurisdiction.France, City: "Paris", OperationType: "location",
				PurchasePrice: Float(300000), SalePrice: Float(350000)},
			expectCountryText: "France",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RunWithFixedTime(zap.NewNop(), tt.input, fixedNow)
			if err != nil {
				t.Fatalf("RunWithFixedTime() error = %v", err)
			}
			if (result.NotaryFees != nil) != tt.expectFees {
				t.Errorf("NotaryFees present = %t, expected %t", result.NotaryFees != nil, tt.expectFees)
			}
			if (result.CapitalGain != nil) != tt.expectGain {
				t.Errorf("CapitalGain present = %t, expected %t", result.CapitalGain != nil, tt.expectGain)
			}
			if (result.Loan != nil) != tt.expectLoan {
				t.Errorf("Loan present = %t, expected %t", result.Loan != nil, tt.expectLoan)
			}
			if (result.TotalInvestment != nil) != tt.expectInvestment {
				t.Errorf("TotalInvestment present = %t, expected %t", result.TotalInvestment != nil, tt.expectInvestment)
			}
			if !strings.Contains(result.Summary, tt.expectCountryText) {
				t.Errorf("summary %q does not mention %q", result.Summary, tt.expectCountryText)
			}
		})
	}
}

func TestRunUnknownCountryInvestmentIsPurchasePrice(t *testing.T) {
	result, err := RunWithFixedTime(zap.NewNop(), Input{
		Country: "espagne", City: "Madrid", OperationType: Purchase, PurchasePrice: Float(300000),
	}, fixedNow)
	if err != nil {
		t.Fatalf("RunWithFixedTime() error = %v", err)
	}
	if result.TotalInvestment == nil || *result.TotalInvestment != 300000 {
		t.Errorf("TotalInvestment = %v, expected 300000", result.TotalInvestment)
	}
	if result.CountryLabel != "espagne" {
		t.Errorf("CountryLabel = %q, expected the raw country", result.CountryLabel)
	}
}

func TestRunInvalidAcquisitionDate(t *testing.T) {
	_, err := RunWithFixedTime(zap.NewNop(), Input{
		Country: jurisdiction.France, City: "Lyon", OperationType: Sale,
		PurchasePrice: Float(200000), SalePrice: Float(350000), AcquisitionDate: String("15/06/2015"),
	}, fixedNow)
	if !errors.Is(err, ErrInvalidAcquisitionDate) {
		t.Fatalf("expected ErrInvalidAcquisitionDate, got %v", err)
	}
}

func TestRunEmptyAcquisitionDateMeansToday(t *testing.T) {
	result, err := RunWithFixedTime(zap.NewNop(), Input{
		Country: jurisdiction.France, City: "Lyon", OperationType: Sale,
		PurchasePrice: Float(300000), SalePrice: Float(400000), AcquisitionDate: String(""),
	}, fixedNow)
	if err != nil {
		t.Fatalf("RunWithFixedTime() error = %v", err)
	}
	if result.CapitalGain.HoldingPeriodYears != 0 {
		t.Errorf("HoldingPeriodYears = %d, expected 0", result.CapitalGain.HoldingPeriodYears)
	}
	if !centsEqual(result.CapitalGain.TotalTax, 29605) {
		t.Errorf("TotalTax = %.2f, expected 29605", result.CapitalGain.TotalTax)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	input := Input{
		Country:         jurisdiction.Switzerland,
		Canton:          String("Vaud"),
		City:            "Lausanne",
		OperationType:   PurchaseAndSale,
		PurchasePrice:   Float(400000),
		SalePrice:       Float(600000),
		AcquisitionDate: String("2018-01-01"),
		LoanAmount:      Float(300000),
		LoanRate:        Float(2.1),
		LoanDuration:    Int(25),
	}

	first, err := RunWithFixedTime(zap.NewNop(), input, fixedNow)
	if err != nil {
		t.Fatalf("first run error = %v", err)
	}
	second, err := RunWithFixedTime(zap.NewNop(), input, fixedNow)
	if err != nil {
		t.Fatalf("second run error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ between runs (-first +second):\n%s", diff)
	}
}

func TestSummaryOrder(t *testing.T) {
	result, err := RunWithFixedTime(zap.NewNop(), Input{
		Country:         jurisdiction.France,
		City:            "Bordeaux",
		OperationType:   PurchaseAndSale,
		PurchasePrice:   Float(200000),
		SalePrice:       Float(350000),
		AcquisitionDate: String("2015-06-15"),
		LoanAmount:      Float(150000),
		LoanRate:        Float(3.5),
		LoanDuration:    Int(25),
	}, fixedNow)
	if err != nil {
		t.Fatalf("RunWithFixedTime() error = %v", err)
	}

	markers := []string{
		"Simulation pour Bordeaux, France.",
		"Les frais de notaire estimés",
		"L'impôt sur la plus-value",
		"La mensualité du prêt",
		"L'investissement total estimé",
	}
	previous := -1
	for _, marker := range markers {
		idx := strings.Index(result.Summary, marker)
		if idx < 0 {
			t.Fatalf("summary %q missing %q", result.Summary, marker)
		}
		if idx <= previous {
			t.Errorf("%q appears out of order in %q", marker, result.Summary)
		}
		previous = idx
	}
	if !strings.Contains(result.Summary, "€") {
		t.Errorf("summary %q has no euro amounts", result.Summary)
	}
}

func TestSummaryWithoutTax(t *testing.T) {
	result, err := RunWithFixedTime(zap.NewNop(), Input{
		Country:         jurisdiction.France,
		City:            "Rennes",
		OperationType:   Sale,
		PurchasePrice:   Float(300000),
		SalePrice:       Float(400000),
		AcquisitionDate: String("1995-01-01"),
	}, fixedNow)
	if err != nil {
		t.Fatalf("RunWithFixedTime() error = %v", err)
	}

	expected := "Simulation pour Rennes, France. Aucun impôt sur la plus-value n'est dû pour cette opération."
	if result.Summary != expected {
		t.Errorf("Summary = %q, expected %q", result.Summary, expected)
	}
}

func TestPreview(t *testing.T) {
	result, err := RunWithFixedTime(zap.NewNop(), Input{
		Country:       jurisdiction.Germany,
		City:          "Munich",
		OperationType: Purchase,
		PurchasePrice: Float(500000),
	}, fixedNow)
	if err != nil {
		t.Fatalf("RunWithFixedTime() error = %v", err)
	}

	preview := result.Preview()
	if preview.Summary != result.Summary {
		t.Errorf("preview summary differs from result")
	}
	if preview.NotaryFeesTotal == nil || *preview.NotaryFeesTotal != 24700 {
		t.Errorf("NotaryFeesTotal = %v, expected 24700", preview.NotaryFeesTotal)
	}
	if preview.CapitalGainTax != nil || preview.LoanMonthly != nil {
		t.Errorf("unexpected preview figures: %+v", preview)
	}
	if preview.TotalInvestment == nil || *preview.TotalInvestment != 524700 {
		t.Errorf("TotalInvestment = %v, expected 524700", preview.TotalInvestment)
	}
}

func TestRunUsesCurrentTime(t *testing.T) {
	result, err := Run(nil, Input{
		Country: jurisdiction.Germany, City: "Hamburg", OperationType: Sale,
		PurchasePrice: Float(300000), SalePrice: Float(400000), AcquisitionDate: String("1990-01-01"),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// Held for well over ten years whatever the current date.
	if result.CapitalGain.TotalTax != 0 {
		t.Errorf("TotalTax = %.2f, expected 0", result.CapitalGain.TotalTax)
	}
}

func centsEqual(a, b float64) bool {
	return mathutil.WithinTolerance(a, b, 0.001)
}

func TestInputWarnings(t *testing.T) {
	input := Input{
		Country:       jurisdiction.Switzerland,
		City:          "Genève",
		OperationType: PurchaseAndSale,
		PurchasePrice: Float(500000),
		SalePrice:     Float(650000),
		LoanAmount:    Float(400000),
	}

	warnings := input.Warnings(fixedNow)
	expected := []string{
		"No canton given - default Swiss rates apply",
		"No acquisition date given - holding period assumed to be zero",
	}
	if diff := cmp.Diff(expected, warnings); diff != "" {
		t.Errorf("warnings mismatch (-expected +got):\n%s", diff)
	}

	input.Canton = String("Genève")
	input.AcquisitionDate = String("2015-01-01")
	if warnings := input.Warnings(fixedNow); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}
