// Package format provides display formatting for currency amounts, loan
// durations, and percentages. Formatting is a presentation concern only;
// the amortization engine never rounds internally.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/constants"
)

// Currency returns a currency string with the given symbol and thousands
// separators (e.g., "-₹1,234.56"). An empty symbol falls back to the default.
func Currency(symbol string, amount float64) string {
	if symbol == "" {
		symbol = constants.DefaultCurrencySymbol
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but
// with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}

// MonthsToYears converts a month count to a readable duration string, e.g.
// "5 years, 3 months" or "8 months". Negative counts collapse to "0 months".
func MonthsToYears(months int) string {
	if months < 0 {
		return "0 months"
	}

	years := months / constants.MonthsPerYear
	remaining := months % constants.MonthsPerYear

	switch {
	case years == 0:
		return fmt.Sprintf("%d %s", remaining, pluralize("month", remaining))
	case remaining == 0:
		return fmt.Sprintf("%d %s", years, pluralize("year", years))
	default:
		return fmt.Sprintf("%d %s, %d %s",
			years, pluralize("year", years),
			remaining, pluralize("month", remaining))
	}
}

// Percentage formats a value already expressed in percent, e.g. "6.50%".
func Percentage(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
