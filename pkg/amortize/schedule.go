package amortize

import (
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/constants"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/mathutil"
)

// Generate builds the month-by-month schedule for a loan with the given
// starting principal, annual rate (fraction) and fixed monthly payment,
// applying the extra-payment strategy on top of the base payment.
//
// Principal reduction in a month can never exceed the beginning balance:
// when the base principal portion plus extras would overshoot, the extra is
// clamped to the remainder after the base portion (floored at zero), and in
// the final month the base payment itself shrinks to exactly retire the
// balance. Generation stops once the balance reaches zero, or at the
// safety cap of 600 months if the payment never retires the loan (for
// instance when it does not cover the monthly interest).
func Generate(principal, annualRate, payment float64, extras ExtraPayments) Schedule {
	if principal <= 0 {
		return Schedule{}
	}

	schedule := make(Schedule, 0, 64)
	balance := principal
	cumulativeInterest := 0.0

	for month := 1; month <= constants.MaxScheduleMonths; month++ {
		beginning := balance
		interest := InterestPortion(beginning, annualRate)
		basePrincipal := payment - interest
		extra := extras.forMonth(month)
		reduction := basePrincipal + extra

		// Final-month clamp: never reduce past zero. The extra absorbs
		// the overshoot first; if the base portion alone overshoots,
		// the extra drops to zero and the base payment shrinks.
		if reduction > beginning {
			reduction = beginning
			extra = reduction - basePrincipal
			if extra < 0 {
				extra = 0
			}
			basePrincipal = reduction - extra
		}

		ending := beginning - reduction
		if ending < 0 {
			ending = 0
		}
		// We will get machine error otherwise so just set to 0; a balance
		// that rounds to zero currency units is retired.
		if mathutil.Round(ending) == 0 {
			ending = 0
		}
		cumulativeInterest += interest

		schedule = append(schedule, Entry{
			Month:              month,
			BeginningBalance:   beginning,
			Payment:            interest + basePrincipal,
			Interest:           interest,
			Principal:          basePrincipal,
			Extra:              extra,
			TotalPayment:       interest + basePrincipal + extra,
			EndingBalance:      ending,
			CumulativeInterest: cumulativeInterest,
		})

		balance = ending
		if balance <= 0 {
			break
		}
	}

	return schedule
}
