package config

import (
	"errors"

	"github.com/iwvelando/property-simulator/pkg/loans"
	"go.uber.org/zap"
)

// ErrNoLoan is returned when the simulation input does not describe a loan.
var ErrNoLoan = errors.New("simulation has no loan: loanAmount, loanRate and loanDuration are required")

// LoanSchedule computes the month-by-month amortization schedule of the
// simulation's loan.
func (conf *Configuration) LoanSchedule(logger *zap.Logger) ([]loans.Payment, error) {
	input := conf.Simulation
	if input.LoanAmount == nil || input.LoanRate == nil || input.LoanDuration == nil {
		return nil, ErrNoLoan
	}

	generator := loans.NewAmortizationScheduleGenerator(logger)
	return generator.GenerateSchedule(*input.LoanAmount, *input.LoanRate, *input.LoanDuration)
}
