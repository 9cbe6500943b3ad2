package validation

import (
	"fmt"
	"time"

	"github.com/iwvelando/property-simulator/pkg/datetime"
	"github.com/iwvelando/property-simulator/pkg/fees"
	"github.com/iwvelando/property-simulator/pkg/jurisdiction"
)

// ValidateAcquisitionDate checks that the property was acquired before the
// sale date. An empty date is accepted.
func ValidateAcquisitionDate(acquisitionDate string, saleDate time.Time) (string, error) {
	if acquisitionDate == "" {
		return "", nil
	}
	acquired, err := datetime.ParseDate(acquisitionDate)
	if err != nil {
		return "", err
	}

	today := datetime.Today(saleDate)
	if acquired.After(today) {
		return fmt.Sprintf("Acquisition date is after the sale date (%s > %s) - holding period will be negative",
			acquired.Format(datetime.DateLayout), today.Format(datetime.DateLayout)), nil
	}

	return "", nil
}

// ValidateCanton checks that a canton is only given for Switzerland and that
// it has dedicated rates.
func ValidateCanton(country jurisdiction.Country, canton string) []string {
	var warnings []string

	if country != jurisdiction.Switzerland {
		if canton != "" {
			warnings = append(warnings, fmt.Sprintf("Canton '%s' is ignored outside Switzerland", canton))
		}
		return warnings
	}

	if canton == "" {
		warnings = append(warnings, "No canton given - default Swiss rates apply")
	} else if !fees.KnownCanton(canton) {
		warnings = append(warnings, fmt.Sprintf("Canton '%s' has no dedicated rate - default Swiss rates apply", canton))
	}

	return warnings
}

// TransactionConfig is the part of a simulation input checked for accepted
// but suspicious combinations.
type TransactionConfig struct {
	Country         jurisdiction.Country
	Canton          string
	Purchase        bool
	Sale            bool
	PurchasePrice   float64
	SalePrice       float64
	AcquisitionDate string
	LoanAmount      float64
}

// ValidateAll checks the whole transaction and returns warnings; it never
// rejects an input.
func (tc *TransactionConfig) ValidateAll(saleDate time.Time) []string {
	var warnings []string

	if !tc.Country.Valid() {
		warnings = append(warnings, fmt.Sprintf("Country '%s' is not supported - fees and capital gain are skipped", tc.Country))
	}

	warnings = append(warnings, ValidateCanton(tc.Country, tc.Canton)...)

	if tc.Sale {
		warning, err := ValidateAcquisitionDate(tc.AcquisitionDate, saleDate)
		if err == nil && warning != "" {
			warnings = append(warnings, warning)
		}
		if tc.SalePrice > 0 && tc.PurchasePrice <= 0 {
			warnings = append(warnings, "Sale price given without purchase price - capital gain is skipped")
		}
		if tc.SalePrice > 0 && tc.AcquisitionDate == "" {
			warnings = append(warnings, "No acquisition date given - holding period assumed to be zero")
		}
	} else if tc.SalePrice > 0 {
		warnings = append(warnings, "Sale price is ignored for a purchase")
	}

	if tc.LoanAmount > 0 && tc.PurchasePrice > 0 && tc.LoanAmount > tc.PurchasePrice {
		warnings = append(warnings, fmt.Sprintf("Loan amount exceeds purchase price (%.2f > %.2f)",
			tc.LoanAmount, tc.PurchasePrice))
	}

	return warnings
}
