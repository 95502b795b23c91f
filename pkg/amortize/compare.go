package amortize

import (
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/mathutil"
)

// Comparison quantifies the effect of a prepayment strategy against the
// baseline schedule of the same loan.
type Comparison struct {
	BaseMonths          int     `json:"baseMonths"`
	PrepayMonths        int     `json:"prepayMonths"`
	MonthsSaved         int     `json:"monthsSaved"`
	BaseTotalInterest   float64 `json:"baseTotalInterest"`
	PrepayTotalInterest float64 `json:"prepayTotalInterest"`
	InterestSaved       float64 `json:"interestSaved"`
	BaseTotalPaid       float64 `json:"baseTotalPaid"`
	PrepayTotalPaid     float64 `json:"prepayTotalPaid"`
	TotalExtraPaid      float64 `json:"totalExtraPaid"`
	SavingsPercentage   float64 `json:"savingsPercentage"`
}

// Compare derives savings metrics from a baseline schedule and a prepayment
// schedule for the same loan. The savings percentage is interest saved as a
// share of baseline interest, and zero when the baseline accrued no interest.
func Compare(base, prepay Schedule) Comparison {
	baseInterest := base.TotalInterest()
	prepayInterest := prepay.TotalInterest()
	interestSaved := baseInterest - prepayInterest

	return Comparison{
		BaseMonths:          base.Months(),
		PrepayMonths:        prepay.Months(),
		MonthsSaved:         base.Months() - prepay.Months(),
		BaseTotalInterest:   baseInterest,
		PrepayTotalInterest: prepayInterest,
		InterestSaved:       interestSaved,
		BaseTotalPaid:       base.TotalPaid(),
		PrepayTotalPaid:     prepay.TotalPaid(),
		TotalExtraPaid:      prepay.TotalExtra(),
		SavingsPercentage:   mathutil.CalculatePercentage(interestSaved, baseInterest),
	}
}

// Summary condenses a schedule into its headline payoff numbers.
type Summary struct {
	Months                 int     `json:"months"`
	TotalInterest          float64 `json:"totalInterest"`
	TotalPaid              float64 `json:"totalPaid"`
	FinalPayment           float64 `json:"finalPayment"`
	AverageMonthlyInterest float64 `json:"averageMonthlyInterest"`
	PaidOff                bool    `json:"paidOff"`
}

// Summarize reports the payoff summary of a schedule. An empty schedule
// yields the zero Summary.
func Summarize(s Schedule) Summary {
	if len(s) == 0 {
		return Summary{}
	}
	last := s[len(s)-1]
	return Summary{
		Months:                 s.Months(),
		TotalInterest:          s.TotalInterest(),
		TotalPaid:              s.TotalPaid(),
		FinalPayment:           last.TotalPayment,
		AverageMonthlyInterest: s.TotalInterest() / float64(s.Months()),
		PaidOff:                s.PaidOff(),
	}
}
