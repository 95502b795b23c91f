// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/internal/analysis"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/amortize"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/format"
)

// PrettyFormat writes a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, result *analysis.Result) {
	p := message.NewPrinter(language.English)
	currency := func(amount float64) string {
		return format.Currency(result.Currency, amount)
	}

	_, _ = p.Fprintf(w, "--- Loan overview ---\n")
	_, _ = p.Fprintf(w, "Loan amount:     %s\n", currency(result.Principal))
	_, _ = p.Fprintf(w, "Interest rate:   %s\n", format.Percentage(result.AnnualRatePercent))
	_, _ = p.Fprintf(w, "Loan term:       %s\n", format.MonthsToYears(result.TermMonths))
	_, _ = p.Fprintf(w, "Monthly payment: %s\n", currency(result.Payment))
	if result.PaymentWarning != "" {
		_, _ = p.Fprintf(w, "WARNING: %s\n", result.PaymentWarning)
	}

	_, _ = p.Fprintf(w, "\n--- Baseline ---\n")
	writeSummary(p, w, currency, result.BaseSummary)

	for _, scenario := range result.Scenarios {
		_, _ = p.Fprintf(w, "\n--- Scenario: %s ---\n", scenario.Name)
		writeSummary(p, w, currency, scenario.Summary)
		comparison := scenario.Comparison
		_, _ = p.Fprintf(w, "Interest saved:  %s (%s of baseline interest)\n",
			currency(comparison.InterestSaved), format.Percentage(comparison.SavingsPercentage))
		_, _ = p.Fprintf(w, "Time saved:      %s\n", format.MonthsToYears(comparison.MonthsSaved))
		_, _ = p.Fprintf(w, "Extra paid:      %s\n", currency(comparison.TotalExtraPaid))
	}

	for _, target := range result.Targets {
		_, _ = p.Fprintf(w, "\n--- Target: %s (%s) ---\n", target.Name, format.MonthsToYears(target.Months))
		solution := target.Solution
		if !solution.Converged {
			_, _ = p.Fprintf(w, "No exact answer within %d iterations; best found:\n", solution.Iterations)
		}
		_, _ = p.Fprintf(w, "Required extra:  %s per month\n", currency(solution.Extra))
		_, _ = p.Fprintf(w, "Payoff time:     %s (%d months)\n", format.MonthsToYears(solution.Months), solution.Months)
	}
}

func writeSummary(p *message.Printer, w io.Writer, currency func(float64) string, summary amortize.Summary) {
	_, _ = p.Fprintf(w, "Payoff time:     %s (%d months)\n", format.MonthsToYears(summary.Months), summary.Months)
	_, _ = p.Fprintf(w, "Total interest:  %s\n", currency(summary.TotalInterest))
	_, _ = p.Fprintf(w, "Total paid:      %s\n", currency(summary.TotalPaid))
	if !summary.PaidOff {
		_, _ = p.Fprintf(w, "NOT PAID OFF: balance remains after the schedule cap\n")
	}
}

// CsvFormat writes every schedule in comma-separated value format, one row
// per month, with a leading column naming the schedule.
func CsvFormat(w io.Writer, result *analysis.Result) {
	header := append([]string{"Schedule"}, amortize.Schedule{}.Header(true)...)
	writeCsvRow(w, header)

	writeScheduleRows(w, "baseline", result.Base)
	for _, scenario := range result.Scenarios {
		writeScheduleRows(w, scenario.Name, scenario.Schedule)
	}
}

func writeScheduleRows(w io.Writer, name string, schedule amortize.Schedule) {
	for _, row := range schedule.Rows(true) {
		writeCsvRow(w, append([]string{name}, row...))
	}
}

func writeCsvRow(w io.Writer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			fmt.Fprint(w, ",")
		}
		fmt.Fprintf(w, `"%s"`, field)
	}
	fmt.Fprintf(w, "\n")
}
