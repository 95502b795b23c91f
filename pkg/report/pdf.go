// Package report renders an analysis result as a PDF document.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/internal/analysis"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/format"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight

	// Schedules run to hundreds of months; the PDF shows the opening
	// stretch and the final month of each.
	leadingScheduleRows = 24
)

// pdfText converts UTF-8 text to PDF-safe encoding. Standard PDF fonts
// expect Latin-1: the pound sign maps to its Latin-1 byte, while the rupee
// sign has no Latin-1 representation and is transliterated.
func pdfText(s string) string {
	s = strings.ReplaceAll(s, "₹", "Rs.")
	return strings.ReplaceAll(s, "£", "\xa3")
}

type pdfReport struct {
	pdf    *fpdf.Fpdf
	result *analysis.Result
}

// Generate renders the analysis result as a PDF and returns its bytes.
func Generate(result *analysis.Result) ([]byte, error) {
	r := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		result: result,
	}

	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)

	r.addOverviewPage()
	r.addSchedulePages()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) currency(amount float64) string {
	return pdfText(format.Currency(r.result.Currency, amount))
}

func (r *pdfReport) addOverviewPage() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Loan Payoff Analysis", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	r.drawSectionHeader("Loan Overview")
	r.drawTableHeader([]string{"Parameter", "Value"}, []float64{90, 90})
	r.drawTableRow([]string{"Loan amount", r.currency(r.result.Principal)}, []float64{90, 90}, false)
	r.drawTableRow([]string{"Interest rate", format.Percentage(r.result.AnnualRatePercent)}, []float64{90, 90}, false)
	r.drawTableRow([]string{"Loan term", format.MonthsToYears(r.result.TermMonths)}, []float64{90, 90}, false)
	r.drawTableRow([]string{"Monthly payment", r.currency(r.result.Payment)}, []float64{90, 90}, true)

	if r.result.PaymentWarning != "" {
		r.pdf.Ln(3)
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetTextColor(180, 0, 0)
		r.pdf.MultiCell(contentWidth, 5, pdfText("WARNING: "+r.result.PaymentWarning), "", "L", false)
	}
	r.pdf.Ln(6)

	r.drawSectionHeader("Payoff Comparison")
	widths := []float64{60, 30, 45, 45}
	r.drawTableHeader([]string{"Schedule", "Months", "Total Interest", "Total Paid"}, widths)
	r.drawTableRow([]string{
		"Baseline",
		fmt.Sprintf("%d", r.result.BaseSummary.Months),
		r.currency(r.result.BaseSummary.TotalInterest),
		r.currency(r.result.BaseSummary.TotalPaid),
	}, widths, false)
	for _, scenario := range r.result.Scenarios {
		r.drawTableRow([]string{
			scenario.Name,
			fmt.Sprintf("%d", scenario.Summary.Months),
			r.currency(scenario.Summary.TotalInterest),
			r.currency(scenario.Summary.TotalPaid),
		}, widths, false)
	}
	r.pdf.Ln(6)

	if len(r.result.Scenarios) > 0 {
		r.drawSectionHeader("Savings by Scenario")
		widths = []float64{60, 45, 35, 40}
		r.drawTableHeader([]string{"Scenario", "Interest Saved", "Time Saved", "Extra Paid"}, widths)
		for _, scenario := range r.result.Scenarios {
			comparison := scenario.Comparison
			r.drawTableRow([]string{
				scenario.Name,
				fmt.Sprintf("%s (%s)", r.currency(comparison.InterestSaved), format.Percentage(comparison.SavingsPercentage)),
				format.MonthsToYears(comparison.MonthsSaved),
				r.currency(comparison.TotalExtraPaid),
			}, widths, false)
		}
		r.pdf.Ln(6)
	}

	if len(r.result.Targets) > 0 {
		r.drawSectionHeader("Target Payoff Horizons")
		widths = []float64{60, 35, 45, 40}
		r.drawTableHeader([]string{"Target", "Months", "Required Extra", "Payoff"}, widths)
		for _, target := range r.result.Targets {
			payoff := format.MonthsToYears(target.Solution.Months)
			if !target.Solution.Converged {
				payoff += " (approximate)"
			}
			r.drawTableRow([]string{
				target.Name,
				fmt.Sprintf("%d", target.Months),
				r.currency(target.Solution.Extra) + "/month",
				payoff,
			}, widths, false)
		}
	}
}

func (r *pdfReport) addSchedulePages() {
	r.drawSchedule("Baseline Schedule", r.result.Base.Rows(false), r.result.Base.Header(false))
	for _, scenario := range r.result.Scenarios {
		r.drawSchedule(fmt.Sprintf("Schedule: %s", scenario.Name),
			scenario.Schedule.Rows(true), scenario.Schedule.Header(true))
	}
}

func (r *pdfReport) drawSchedule(title string, rows [][]string, header []string) {
	r.pdf.AddPage()
	r.drawSectionHeader(title)

	widths := make([]float64, len(header))
	widths[0] = 14
	for i := 1; i < len(header); i++ {
		widths[i] = (contentWidth - widths[0]) / float64(len(header)-1)
	}

	r.drawCompactTableHeader(header, widths)

	truncated := false
	if len(rows) > leadingScheduleRows+1 {
		last := rows[len(rows)-1]
		rows = rows[:leadingScheduleRows]
		rows = append(rows, last)
		truncated = true
	}

	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetTextColor(50, 50, 50)
	for i, row := range rows {
		if i%2 == 0 {
			r.pdf.SetFillColor(250, 250, 250)
		} else {
			r.pdf.SetFillColor(255, 255, 255)
		}
		if truncated && i == len(rows)-1 {
			r.pdf.SetFont("Arial", "I", 7)
			r.pdf.CellFormat(contentWidth, 4, "...", "", 1, "C", false, 0, "")
			r.pdf.SetFont("Arial", "", 7)
		}
		for j, cell := range row {
			align := "R"
			if j == 0 {
				align = "L"
			}
			out := 0
			if j == len(row)-1 {
				out = 1
			}
			r.pdf.CellFormat(widths[j], 4, cell, "1", out, align, true, 0, "")
		}
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 9, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(4)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawCompactTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(70, 90, 110)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 7)

	for i, header := range headers {
		align := "R"
		if i == 0 {
			align = "L"
		}
		r.pdf.CellFormat(widths[i], 4, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)

	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
