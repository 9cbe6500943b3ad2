package validation

import (
	"strings"
	"testing"

	"github.com/iwvelando/property-simulator/pkg/datetime"
	"github.com/iwvelando/property-simulator/pkg/jurisdiction"
)

var saleDate = datetime.MustParseTime(datetime.DateLayout, "2026-06-15")

func TestValidateAcquisitionDate(t *testing.T) {
	tests := []struct {
		name        string
		date        string
		expectWarn  bool
		expectError bool
	}{
		{name: "Empty date", date: ""},
		{name: "Acquired in the past", date: "2015-01-01"},
		{name: "Acquired on the sale date", date: "2026-06-15"},
		{name: "Acquired after the sale date", date: "2027-01-01", expectWarn: true},
		{name: "Malformed date", date: "2015/01/01", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning, err := ValidateAcquisitionDate(tt.date, saleDate)

			if tt.expectError {
				if err == nil {
					t.Errorf("ValidateAcquisitionDate() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateAcquisitionDate() unexpected error = %v", err)
			}
			if (warning != "") != tt.expectWarn {
				t.Errorf("ValidateAcquisitionDate() warning = %q, expectWarn %t", warning, tt.expectWarn)
			}
		})
	}
}

func TestValidateCanton(t *testing.T) {
	tests := []struct {
		name     string
		country  jurisdiction.Country
		canton   string
		expected int
	}{
		{name: "Known Swiss canton", country: jurisdiction.Switzerland, canton: "Genève", expected: 0},
		{name: "Unknown Swiss canton", country: jurisdiction.Switzerland, canton: "Atlantis", expected: 1},
		{name: "Missing Swiss canton", country: jurisdiction.Switzerland, canton: "", expected: 1},
		{name: "Canton outside Switzerland", country: jurisdiction.France, canton: "Vaud", expected: 1},
		{name: "No canton outside Switzerland", country: jurisdiction.France, canton: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateCanton(tt.country, tt.canton)
			if len(warnings) != tt.expected {
				t.Errorf("Expected %d warnings, got %d: %v", tt.expected, len(warnings), warnings)
			}
		})
	}
}

func TestTransactionConfig_ValidateAll(t *testing.T) {
	tests := []struct {
		name     string
		config   TransactionConfig
		contains []string
	}{
		{
			name: "Clean purchase and sale",
			config: TransactionConfig{
				Country: jurisdiction.France, Purchase: true, Sale: true,
				PurchasePrice: 300000, SalePrice: 400000, AcquisitionDate: "2010-01-01", LoanAmount: 250000,
			},
		},
		{
			name:     "Unsupported country",
			config:   TransactionConfig{Country: "espagne", Purchase: true, PurchasePrice: 300000},
			contains: []string{"Country 'espagne' is not supported"},
		},
		{
			name: "Sale without purchase price or date",
			config: TransactionConfig{
				Country: jurisdiction.Germany, Sale: true, SalePrice: 400000,
			},
			contains: []string{"without purchase price", "No acquisition date"},
		},
		{
			name: "Future acquisition",
			config: TransactionConfig{
				Country: jurisdiction.Belgium, Sale: true, PurchasePrice: 200000, SalePrice: 250000, AcquisitionDate: "2030-01-01",
			},
			contains: []string{"after the sale date"},
		},
		{
			name: "Sale price on a purchase",
			config: TransactionConfig{
				Country: jurisdiction.Luxembourg, Purchase: true, PurchasePrice: 500000, SalePrice: 600000,
			},
			contains: []string{"Sale price is ignored"},
		},
		{
			name: "Loan larger than price",
			config: TransactionConfig{
				Country: jurisdiction.Netherlands, Purchase: true, PurchasePrice: 200000, LoanAmount: 250000,
			},
			contains: []string{"Loan amount exceeds purchase price (250000.00 > 200000.00)"},
		},
		{
			name: "Swiss without canton",
			config: TransactionConfig{
				Country: jurisdiction.Switzerland, Purchase: true, PurchasePrice: 800000,
			},
			contains: []string{"No canton given"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.ValidateAll(saleDate)
			if len(warnings) != len(tt.contains) {
				t.Fatalf("Expected %d warnings, got %d: %v", len(tt.contains), len(warnings), warnings)
			}
			for i, want := range tt.contains {
				if !strings.Contains(warnings[i], want) {
					t.Errorf("warning %d = %q, expected it to contain %q", i, warnings[i], want)
				}
			}
		})
	}
}
