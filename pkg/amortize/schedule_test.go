package amortize

import (
	"math"
	"testing"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/constants"
)

func TestGenerateZeroRate(t *testing.T) {
	schedule := Generate(1200, 0, 100, ExtraPayments{})

	if schedule.Months() != 12 {
		t.Fatalf("Months = %d, expected 12", schedule.Months())
	}
	if schedule.TotalInterest() != 0 {
		t.Errorf("TotalInterest = %v, expected 0", schedule.TotalInterest())
	}
	if !schedule.PaidOff() {
		t.Error("expected schedule to be paid off")
	}
	for i, entry := range schedule {
		if entry.Month != i+1 {
			t.Errorf("entry %d has Month %d", i, entry.Month)
		}
		if entry.Interest != 0 {
			t.Errorf("month %d Interest = %v, expected 0", entry.Month, entry.Interest)
		}
		if math.Abs(entry.Principal-100) > 1e-9 {
			t.Errorf("month %d Principal = %v, expected 100", entry.Month, entry.Principal)
		}
	}
	if math.Abs(schedule.TotalPaid()-1200) > 1e-9 {
		t.Errorf("TotalPaid = %v, expected 1200", schedule.TotalPaid())
	}
}

func TestGenerateBaseSchedule(t *testing.T) {
	principal := 5_000_000.0
	rate := 0.085
	payment := SolvePayment(principal, rate, 240)
	schedule := Generate(principal, rate, payment, ExtraPayments{})

	if schedule.Months() != 240 {
		t.Fatalf("Months = %d, expected 240", schedule.Months())
	}
	if !schedule.PaidOff() {
		t.Errorf("FinalBalance = %v, expected payoff", schedule.FinalBalance())
	}

	first := schedule[0]
	if math.Abs(first.BeginningBalance-principal) > 1e-9 {
		t.Errorf("first BeginningBalance = %v, expected %v", first.BeginningBalance, principal)
	}
	expectedInterest := InterestPortion(principal, rate)
	if math.Abs(first.Interest-expectedInterest) > 1e-9 {
		t.Errorf("first Interest = %v, expected %v", first.Interest, expectedInterest)
	}
	if schedule.HasExtras() {
		t.Error("base schedule should carry no extras")
	}
	if schedule.TotalExtra() != 0 {
		t.Errorf("TotalExtra = %v, expected 0", schedule.TotalExtra())
	}
}

func TestGenerateWithExtraMonthly(t *testing.T) {
	principal := 5_000_000.0
	rate := 0.085
	payment := SolvePayment(principal, rate, 240)

	base := Generate(principal, rate, payment, ExtraPayments{})
	prepay := Generate(principal, rate, payment, ExtraPayments{Monthly: 5000})

	if prepay.Months() >= base.Months() {
		t.Errorf("prepay Months = %d, expected fewer than base %d", prepay.Months(), base.Months())
	}
	if prepay.TotalInterest() >= base.TotalInterest() {
		t.Errorf("prepay TotalInterest = %v, expected less than base %v",
			prepay.TotalInterest(), base.TotalInterest())
	}
	if !prepay.PaidOff() {
		t.Error("expected prepay schedule to be paid off")
	}
	if !prepay.HasExtras() {
		t.Error("expected prepay schedule to carry extras")
	}
	// Every month except possibly the clamped last carries the full extra.
	for _, entry := range prepay[:prepay.Months()-1] {
		if math.Abs(entry.Extra-5000) > 1e-9 {
			t.Errorf("month %d Extra = %v, expected 5000", entry.Month, entry.Extra)
		}
	}
}

func TestGenerateExtraWindow(t *testing.T) {
	principal := 1_000_000.0
	rate := 0.08
	payment := SolvePayment(principal, rate, 120)

	schedule := Generate(principal, rate, payment, ExtraPayments{Monthly: 10000, MonthlyMonths: 24})

	for _, entry := range schedule {
		if entry.Month <= 24 {
			if math.Abs(entry.Extra-10000) > 1e-9 {
				t.Errorf("month %d Extra = %v, expected 10000 inside window", entry.Month, entry.Extra)
			}
		} else if entry.Extra != 0 {
			t.Errorf("month %d Extra = %v, expected 0 after window", entry.Month, entry.Extra)
		}
	}
}

func TestGenerateLumpSum(t *testing.T) {
	principal := 1_000_000.0
	rate := 0.08
	payment := SolvePayment(principal, rate, 120)

	base := Generate(principal, rate, payment, ExtraPayments{})
	schedule := Generate(principal, rate, payment, ExtraPayments{LumpSum: 100_000, LumpSumMonth: 13})

	for _, entry := range schedule {
		switch {
		case entry.Month == 13:
			if math.Abs(entry.Extra-100_000) > 1e-9 {
				t.Errorf("month 13 Extra = %v, expected 100000", entry.Extra)
			}
		case entry.Extra != 0:
			t.Errorf("month %d Extra = %v, expected 0", entry.Month, entry.Extra)
		}
	}
	if schedule.Months() >= base.Months() {
		t.Errorf("lump sum schedule Months = %d, expected fewer than base %d",
			schedule.Months(), base.Months())
	}
}

func TestGenerateFinalMonthClamp(t *testing.T) {
	// A huge recurring extra forces the clamp almost immediately.
	schedule := Generate(10_000, 0.12, 500, ExtraPayments{Monthly: 9_000})

	if schedule.Months() != 2 {
		t.Fatalf("Months = %d, expected 2", schedule.Months())
	}
	last := schedule[len(schedule)-1]
	if last.EndingBalance != 0 {
		t.Errorf("final EndingBalance = %v, expected 0", last.EndingBalance)
	}
	reduction := last.Principal + last.Extra
	if math.Abs(reduction-last.BeginningBalance) > 1e-9 {
		t.Errorf("final principal reduction %v exceeds beginning balance %v",
			reduction, last.BeginningBalance)
	}
	if last.Extra < 0 {
		t.Errorf("final Extra = %v, expected non-negative", last.Extra)
	}
}

func TestGenerateRetiresFloatResidue(t *testing.T) {
	// A solved payment leaves a sub-paisa machine-error residue in the
	// final month. The schedule must end at exactly the term with a final
	// balance of exactly zero, never a term+1 micro payment.
	cases := []struct {
		principal float64
		rate      float64
		term      int
	}{
		{5_000_000, 0.085, 240},
		{1_000_000, 0.08, 120},
		{250_000, 0.065, 360},
		{100_000, 0.10, 60},
	}
	for _, tc := range cases {
		payment := SolvePayment(tc.principal, tc.rate, tc.term)
		schedule := Generate(tc.principal, tc.rate, payment, ExtraPayments{})
		if schedule.Months() != tc.term {
			t.Errorf("(%v, %v, %d): Months = %d, expected exactly the term",
				tc.principal, tc.rate, tc.term, schedule.Months())
		}
		if last := schedule[len(schedule)-1]; last.EndingBalance != 0 {
			t.Errorf("(%v, %v, %d): final EndingBalance = %v, expected exactly 0",
				tc.principal, tc.rate, tc.term, last.EndingBalance)
		}
		if !schedule.PaidOff() {
			t.Errorf("(%v, %v, %d): expected payoff", tc.principal, tc.rate, tc.term)
		}
	}
}

func TestGenerateInsufficientPayment(t *testing.T) {
	// 1% monthly interest on 100k is 1000; a 500 payment never pays off.
	schedule := Generate(100_000, 0.12, 500, ExtraPayments{})

	if schedule.Months() != constants.MaxScheduleMonths {
		t.Fatalf("Months = %d, expected safety cap %d", schedule.Months(), constants.MaxScheduleMonths)
	}
	if schedule.PaidOff() {
		t.Error("expected schedule not to be paid off")
	}
	if schedule.FinalBalance() <= 100_000 {
		t.Errorf("FinalBalance = %v, expected balance growth", schedule.FinalBalance())
	}
}

func TestGenerateNonPositivePrincipal(t *testing.T) {
	if got := Generate(0, 0.08, 100, ExtraPayments{}); got.Months() != 0 {
		t.Errorf("Generate with zero principal produced %d months", got.Months())
	}
	if got := Generate(-500, 0.08, 100, ExtraPayments{}); got.Months() != 0 {
		t.Errorf("Generate with negative principal produced %d months", got.Months())
	}
}

func TestScheduleRows(t *testing.T) {
	schedule := Generate(1200, 0, 100, ExtraPayments{})

	header := schedule.Header(false)
	rows := schedule.Rows(false)
	if len(rows) != 12 {
		t.Fatalf("Rows produced %d rows, expected 12", len(rows))
	}
	for i, row := range rows {
		if len(row) != len(header) {
			t.Fatalf("row %d has %d fields, header has %d", i, len(row), len(header))
		}
	}
	if rows[0][0] != "1" || rows[0][1] != "1200.00" {
		t.Errorf("first row = %v, expected month 1 starting at 1200.00", rows[0])
	}

	extraHeader := schedule.Header(true)
	extraRows := schedule.Rows(true)
	if len(extraRows[0]) != len(extraHeader) {
		t.Errorf("extra row has %d fields, header has %d", len(extraRows[0]), len(extraHeader))
	}
}
