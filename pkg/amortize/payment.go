package amortize

import (
	"math"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/constants"
)

// SolvePayment returns the fixed monthly payment that amortizes principal
// over termMonths at the given annual rate (a fraction, e.g. 0.085 for
// 8.5%). A zero rate degenerates to straight division of the principal.
// Callers must validate inputs first; termMonths must be at least 1.
func SolvePayment(principal, annualRate float64, termMonths int) float64 {
	if annualRate == 0 {
		return principal / float64(termMonths)
	}
	monthlyRate := annualRate / constants.MonthsPerYear
	growth := math.Pow(1.0+monthlyRate, float64(termMonths))
	return principal * monthlyRate * growth / (growth - 1.0)
}

// InterestPortion returns the interest accrued on a balance over one month
// at the given annual rate.
func InterestPortion(balance, annualRate float64) float64 {
	return balance * annualRate / constants.MonthsPerYear
}
