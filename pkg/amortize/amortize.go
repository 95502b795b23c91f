// Package amortize implements the loan amortization engine: fixed-payment
// solving, month-by-month schedule generation with optional extra payments,
// scenario comparison, and reverse solving for a target payoff date.
//
// All functions are pure and deterministic. Amounts are carried at full
// floating precision; rounding to currency precision happens only at
// presentation boundaries. Inputs are expected to be validated up front
// (see pkg/validation) rather than clamped or corrected here.
package amortize

import (
	"fmt"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/mathutil"
)

// Entry holds the values for a single month of a schedule.
type Entry struct {
	Month              int     `json:"month"`
	BeginningBalance   float64 `json:"beginningBalance"`
	Payment            float64 `json:"payment"`
	Interest           float64 `json:"interest"`
	Principal          float64 `json:"principal"`
	Extra              float64 `json:"extra"`
	TotalPayment       float64 `json:"totalPayment"`
	EndingBalance      float64 `json:"endingBalance"`
	CumulativeInterest float64 `json:"cumulativeInterest"`
}

// Schedule is an ordered month-by-month amortization ledger starting at
// month 1. The final entry has a zero ending balance unless generation hit
// the safety cap, in which case PaidOff reports false and the chosen payment
// never pays off the loan.
type Schedule []Entry

// Months returns the schedule length in months.
func (s Schedule) Months() int {
	return len(s)
}

// TotalInterest returns the interest paid across the whole schedule.
func (s Schedule) TotalInterest() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].CumulativeInterest
}

// TotalPaid returns the sum of all payments including extras.
func (s Schedule) TotalPaid() float64 {
	total := 0.0
	for _, entry := range s {
		total += entry.TotalPayment
	}
	return total
}

// TotalExtra returns the sum of extra principal paid across the schedule.
func (s Schedule) TotalExtra() float64 {
	total := 0.0
	for _, entry := range s {
		total += entry.Extra
	}
	return total
}

// FinalBalance returns the ending balance of the last entry.
func (s Schedule) FinalBalance() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].EndingBalance
}

// PaidOff reports whether the schedule actually retires the loan. A schedule
// truncated at the safety cap still carries a positive final balance and
// must not be reported as paid off.
func (s Schedule) PaidOff() bool {
	return len(s) > 0 && mathutil.IsZero(s.FinalBalance())
}

// HasExtras reports whether any entry carries an extra principal payment.
// The presentation layer uses this to pick the column set.
func (s Schedule) HasExtras() bool {
	for _, entry := range s {
		if entry.Extra > 0 {
			return true
		}
	}
	return false
}

// Header returns the column names for tabular export. Plain schedules omit
// the extra-payment columns; prepayment schedules include them.
func (s Schedule) Header(withExtras bool) []string {
	if withExtras {
		return []string{
			"Month", "Beginning Balance", "Payment", "Extra Payment",
			"Total Payment", "Principal", "Interest", "Ending Balance",
			"Cumulative Interest",
		}
	}
	return []string{
		"Month", "Beginning Balance", "Payment", "Principal", "Interest",
		"Ending Balance", "Cumulative Interest",
	}
}

// Rows returns the schedule as ordered string rows matching Header, with
// amounts rounded to currency precision.
func (s Schedule) Rows(withExtras bool) [][]string {
	rows := make([][]string, 0, len(s))
	for _, entry := range s {
		if withExtras {
			rows = append(rows, []string{
				fmt.Sprintf("%d", entry.Month),
				fmt.Sprintf("%.2f", entry.BeginningBalance),
				fmt.Sprintf("%.2f", entry.Payment),
				fmt.Sprintf("%.2f", entry.Extra),
				fmt.Sprintf("%.2f", entry.TotalPayment),
				fmt.Sprintf("%.2f", entry.Principal),
				fmt.Sprintf("%.2f", entry.Interest),
				fmt.Sprintf("%.2f", entry.EndingBalance),
				fmt.Sprintf("%.2f", entry.CumulativeInterest),
			})
		} else {
			rows = append(rows, []string{
				fmt.Sprintf("%d", entry.Month),
				fmt.Sprintf("%.2f", entry.BeginningBalance),
				fmt.Sprintf("%.2f", entry.Payment),
				fmt.Sprintf("%.2f", entry.Principal),
				fmt.Sprintf("%.2f", entry.Interest),
				fmt.Sprintf("%.2f", entry.EndingBalance),
				fmt.Sprintf("%.2f", entry.CumulativeInterest),
			})
		}
	}
	return rows
}

// ExtraPayments describes a prepayment strategy: a recurring extra amount
// applied for a window of months and/or a one-time lump sum applied in a
// specific month. The zero value means no extras (the base case).
type ExtraPayments struct {
	Monthly       float64 `json:"monthly"`
	MonthlyMonths int     `json:"monthlyMonths"` // 0 = entire remaining term
	LumpSum       float64 `json:"lumpSum"`
	LumpSumMonth  int     `json:"lumpSumMonth"`
}

// None reports whether the strategy carries no extra payments at all.
func (e ExtraPayments) None() bool {
	return e.Monthly <= 0 && e.LumpSum <= 0
}

// forMonth returns the extra principal scheduled for the given month before
// any overpayment clamping.
func (e ExtraPayments) forMonth(month int) float64 {
	extra := 0.0
	if e.Monthly > 0 && (e.MonthlyMonths == 0 || month <= e.MonthlyMonths) {
		extra += e.Monthly
	}
	if e.LumpSum > 0 && month == e.LumpSumMonth {
		extra += e.LumpSum
	}
	return extra
}
