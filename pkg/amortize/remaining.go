package amortize

import "fmt"

// RemainingAfterMonths reports what is left of a loan after monthsElapsed
// base payments: the outstanding balance at that point and the schedule for
// the remainder of the loan, with months renumbered from 1. A fully elapsed
// loan yields a zero balance and an empty schedule.
func RemainingAfterMonths(principal, annualRate, payment float64, monthsElapsed int) (Schedule, float64, error) {
	if monthsElapsed < 0 {
		return nil, 0, fmt.Errorf("months elapsed cannot be negative, got %d", monthsElapsed)
	}

	full := Generate(principal, annualRate, payment, ExtraPayments{})
	if monthsElapsed >= full.Months() {
		return Schedule{}, 0, nil
	}

	balance := principal
	if monthsElapsed > 0 {
		balance = full[monthsElapsed-1].EndingBalance
	}
	return RemainingFromBalance(balance, annualRate, payment), balance, nil
}

// RemainingFromBalance generates the payoff schedule for an outstanding
// balance at the given rate and payment, for mid-loan what-if analysis.
func RemainingFromBalance(balance, annualRate, payment float64) Schedule {
	return Generate(balance, annualRate, payment, ExtraPayments{})
}
