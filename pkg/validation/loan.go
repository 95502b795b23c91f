// Package validation checks loan inputs and analysis settings before they
// reach the amortization engine, reporting every problem at once in
// human-readable form.
package validation

import (
	"fmt"
	"strings"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/constants"
)

// LoanInputs carries the raw parameters of a loan plus an optional
// prepayment strategy, prior to any conversion. The rate is expressed in
// percent as users write it (8.5 for 8.5%).
type LoanInputs struct {
	Principal          float64
	AnnualRatePercent  float64
	TermMonths         int
	ExtraMonthly       float64
	ExtraMonthlyMonths int
	LumpSum            float64
	LumpSumMonth       int
}

// ValidateLoanInputs returns an error listing every violated constraint,
// joined so the user can fix all of them in one pass. A nil error means the
// inputs are safe to hand to the engine.
func ValidateLoanInputs(inputs LoanInputs) error {
	var problems []string

	if inputs.Principal <= 0 {
		problems = append(problems, "loan amount must be greater than zero")
	} else if inputs.Principal > constants.MaxPrincipal {
		problems = append(problems, fmt.Sprintf("loan amount seems unreasonably high (max %.0f)", constants.MaxPrincipal))
	}

	if inputs.AnnualRatePercent < 0 {
		problems = append(problems, "interest rate cannot be negative")
	} else if inputs.AnnualRatePercent > constants.MaxAnnualRatePercent {
		problems = append(problems, fmt.Sprintf("interest rate seems unreasonably high (max %.0f%%)", constants.MaxAnnualRatePercent))
	}

	if inputs.TermMonths <= 0 {
		problems = append(problems, "loan term must be at least 1 month")
	} else if inputs.TermMonths > constants.MaxTermMonths {
		problems = append(problems, fmt.Sprintf("loan term cannot exceed %d months", constants.MaxTermMonths))
	}

	if inputs.ExtraMonthly < 0 {
		problems = append(problems, "extra monthly payment cannot be negative")
	}
	if inputs.ExtraMonthlyMonths < 0 {
		problems = append(problems, "extra payment duration cannot be negative")
	}
	if inputs.LumpSum < 0 {
		problems = append(problems, "lump sum payment cannot be negative")
	}
	if inputs.LumpSum > 0 && inputs.LumpSumMonth < 1 {
		problems = append(problems, "lump sum month must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid loan inputs: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateTargetMonths checks a target payoff horizon against the loan term.
func ValidateTargetMonths(targetMonths, termMonths int) error {
	if targetMonths <= 0 {
		return fmt.Errorf("target payoff must be at least 1 month, got %d", targetMonths)
	}
	if targetMonths > termMonths {
		return fmt.Errorf("target payoff of %d months exceeds the %d month loan term", targetMonths, termMonths)
	}
	return nil
}

// PaymentSufficiencyWarning returns a warning when the monthly payment does
// not cover the first month's interest, meaning the balance grows and the
// loan can never be paid off. An empty string means the payment is adequate.
func PaymentSufficiencyWarning(principal, annualRate, payment float64) string {
	firstInterest := principal * annualRate / constants.MonthsPerYear
	if payment <= firstInterest {
		return fmt.Sprintf("monthly payment %.2f does not cover the first month's interest %.2f; the loan will never be paid off",
			payment, firstInterest)
	}
	return ""
}

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, expected %q or %q",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}
