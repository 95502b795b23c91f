package report

import (
	"bytes"
	"testing"

	"go.uber.org/zap"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/internal/analysis"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/internal/config"
)

func TestGenerate(t *testing.T) {
	conf := &config.Configuration{
		Currency: "₹",
		Loan: config.Loan{
			Principal:         5_000_000,
			AnnualRatePercent: 8.5,
			TermMonths:        240,
		},
		Scenarios: []config.Scenario{
			{Name: "extra 5k per month", ExtraMonthly: 5000},
		},
		Targets: []config.Target{
			{Name: "fifteen years", Months: 180},
		},
	}
	result, err := analysis.Run(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("analysis.Run returned error: %v", err)
	}

	pdf, err := Generate(result)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with the PDF magic, got %q", pdf[:4])
	}
}

func TestPdfText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Rupee transliterated", "₹1,234.56", "Rs.1,234.56"},
		{"Pound mapped to Latin-1", "£100", "\xa3100"},
		{"Plain ASCII untouched", "1,234.56", "1,234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pdfText(tt.input); got != tt.expected {
				t.Errorf("pdfText(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
