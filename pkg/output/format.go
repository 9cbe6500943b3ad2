// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/property-simulator/internal/simulation"
	"github.com/iwvelando/property-simulator/pkg/constants"
	"github.com/iwvelando/property-simulator/pkg/loans"
	"github.com/iwvelando/property-simulator/pkg/validation"
)

// Result writes a simulation result in the given output format.
func Result(w io.Writer, format string, result *simulation.Result) error {
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}
	switch format {
	case constants.OutputFormatCSV:
		return CsvFormat(w, result)
	case constants.OutputFormatJSON:
		return JSONFormat(w, result)
	default:
		return PrettyFormat(w, result)
	}
}

// Comparison writes a cross-jurisdiction comparison in the given output format.
func Comparison(w io.Writer, format string, comparison *simulation.Comparison) error {
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}
	switch format {
	case constants.OutputFormatCSV:
		return CsvComparison(w, comparison)
	case constants.OutputFormatJSON:
		return JSONFormat(w, comparison)
	default:
		return PrettyComparison(w, comparison)
	}
}

// Schedule writes a loan amortization schedule in the given output format.
func Schedule(w io.Writer, format string, schedule []loans.Payment) error {
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}
	switch format {
	case constants.OutputFormatCSV:
		return CsvSchedule(w, schedule)
	case constants.OutputFormatJSON:
		return JSONFormat(w, schedule)
	default:
		return PrettySchedule(w, schedule)
	}
}

// errWriter remembers the first write error so a table can be printed
// without checking every line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
