// Package simulation turns a property transaction description into
// acquisition-fee, capital-gain and loan breakdowns with a narrative summary.
package simulation

import (
	"time"

	"github.com/iwvelando/property-simulator/pkg/capitalgain"
	"github.com/iwvelando/property-simulator/pkg/fees"
	"github.com/iwvelando/property-simulator/pkg/jurisdiction"
	"github.com/iwvelando/property-simulator/pkg/loans"
	"github.com/iwvelando/property-simulator/pkg/validation"
)

// OperationType says whether the transaction is a purchase, a sale or both.
type OperationType string

// Supported operation types.
const (
	Purchase        OperationType = "achat"
	Sale            OperationType = "vente"
	PurchaseAndSale OperationType = "achat_vente"
)

// IncludesPurchase reports whether acquisition fees apply.
func (o OperationType) IncludesPurchase() bool {
	return o == Purchase || o == PurchaseAndSale
}

// IncludesSale reports whether capital-gain tax applies.
func (o OperationType) IncludesSale() bool {
	return o == Sale || o == PurchaseAndSale
}

// Input describes one transaction. Optional amounts are pointers; a nil or
// zero amount is treated as absent and the matching section is skipped.
type Input struct {
	Country         jurisdiction.Country `json:"country" yaml:"country" mapstructure:"country" validate:"required,country"`
	Canton          *string              `json:"canton,omitempty" yaml:"canton,omitempty" mapstructure:"canton"`
	City            string               `json:"city" yaml:"city" mapstructure:"city" validate:"required"`
	OperationType   OperationType        `json:"operationType" yaml:"operationType" mapstructure:"operationType" validate:"required,oneof=achat vente achat_vente"`
	PurchasePrice   *float64             `json:"purchasePrice,omitempty" yaml:"purchasePrice,omitempty" mapstructure:"purchasePrice" validate:"omitempty,gt=0"`
	SalePrice       *float64             `json:"salePrice,omitempty" yaml:"salePrice,omitempty" mapstructure:"salePrice" validate:"omitempty,gt=0"`
	AcquisitionDate *string              `json:"acquisitionDate,omitempty" yaml:"acquisitionDate,omitempty" mapstructure:"acquisitionDate" validate:"omitempty,datetime=2006-01-02"`
	RenovationCost  *float64             `json:"renovationCost,omitempty" yaml:"renovationCost,omitempty" mapstructure:"renovationCost" validate:"omitempty,gte=0"`
	LoanAmount      *float64             `json:"loanAmount,omitempty" yaml:"loanAmount,omitempty" mapstructure:"loanAmount" validate:"omitempty,gt=0"`
	LoanRate        *float64             `json:"loanRate,omitempty" yaml:"loanRate,omitempty" mapstructure:"loanRate" validate:"omitempty,gte=0,lte=20"`
	LoanDuration    *int                 `json:"loanDuration,omitempty" yaml:"loanDuration,omitempty" mapstructure:"loanDuration" validate:"omitempty,gte=1,lte=50"`
}

// Warnings lists accepted but suspicious combinations in the input, as of
// the given sale date.
func (in Input) Warnings(saleDate time.Time) []string {
	purchasePrice, _ := amount(in.PurchasePrice)
	salePrice, _ := amount(in.SalePrice)
	loanAmount, _ := amount(in.LoanAmount)
	tc := validation.TransactionConfig{
		Country:         in.Country,
		Canton:          text(in.Canton),
		Purchase:        in.OperationType.IncludesPurchase(),
		Sale:            in.OperationType.IncludesSale(),
		PurchasePrice:   purchasePrice,
		SalePrice:       salePrice,
		AcquisitionDate: text(in.AcquisitionDate),
		LoanAmount:      loanAmount,
	}
	return tc.ValidateAll(saleDate)
}

// Result is the outcome of a simulation. Sections that were not computed
// are nil, so a computed zero stays distinguishable from an absent one.
type Result struct {
	Country         jurisdiction.Country   `json:"country"`
	CountryLabel    string                 `json:"countryLabel"`
	City            string                 `json:"city"`
	OperationType   OperationType          `json:"operationType"`
	NotaryFees      *fees.Breakdown        `json:"notaryFees,omitempty"`
	CapitalGain     *capitalgain.Breakdown `json:"capitalGain,omitempty"`
	Loan            *loans.Breakdown       `json:"loan,omitempty"`
	TotalInvestment *float64               `json:"totalInvestment,omitempty"`
	Summary         string                 `json:"summary"`
	Disclaimer      string                 `json:"disclaimer"`
}

// Preview is the reduced view of a Result shown before purchase of the
// full report.
type Preview struct {
	Summary         string   `json:"summary"`
	NotaryFeesTotal *float64 `json:"notaryFeesTotal,omitempty"`
	CapitalGainTax  *float64 `json:"capitalGainTax,omitempty"`
	LoanMonthly     *float64 `json:"loanMonthly,omitempty"`
	TotalInvestment *float64 `json:"totalInvestment,omitempty"`
}

// Preview extracts the headline figures of the result.
func (r *Result) Preview() Preview {
	preview := Preview{
		Summary:         r.Summary,
		TotalInvestment: r.TotalInvestment,
	}
	if r.NotaryFees != nil {
		preview.NotaryFeesTotal = &r.NotaryFees.Total
	}
	if r.CapitalGain != nil {
		preview.CapitalGainTax = &r.CapitalGain.TotalTax
	}
	if r.Loan != nil {
		preview.LoanMonthly = &r.Loan.MonthlyPayment
	}
	return preview
}

// Float returns a pointer to v, for building inputs.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for building inputs.
func Int(v int) *int {
	return &v
}

// String returns a pointer to v, for building inputs.
func String(v string) *string {
	return &v
}

func amount(p *float64) (float64, bool) {
	if p == nil || *p == 0 {
		return 0, false
	}
	return *p, true
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
