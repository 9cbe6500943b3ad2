// Package format renders monetary amounts for human readers.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var frenchPrinter = message.NewPrinter(language.French)

// EUR returns an amount the way a French reader expects it, with locale
// digit grouping, a decimal comma and a trailing euro sign (e.g. "1 234,56 €").
func EUR(amount float64) string {
	return frenchPrinter.Sprintf("%.2f", amount) + " €"
}

// Percent returns a rate with two decimals and a French-style spaced sign.
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f %%", rate)
}
