package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

const sampleConfig = `---
currency: "₹"
loan:
  principal: 5000000
  annualRatePercent: 8.5
  termMonths: 240
scenarios:
  - name: extra 5k per month
    extraMonthly: 5000
  - name: yearly bonus
    lumpSum: 100000
    lumpSumMonth: 13
targets:
  - name: fifteen years
    months: 180
logging:
  level: debug
  format: console
output:
  format: pretty
`

func TestLoadConfiguration(t *testing.T) {
	path := writeConfigFile(t, sampleConfig)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration returned error: %v", err)
	}

	if conf.Currency != "₹" {
		t.Errorf("Currency = %q, expected ₹", conf.Currency)
	}
	if conf.Loan.Principal != 5_000_000 {
		t.Errorf("Principal = %v, expected 5000000", conf.Loan.Principal)
	}
	if conf.Loan.AnnualRatePercent != 8.5 {
		t.Errorf("AnnualRatePercent = %v, expected 8.5", conf.Loan.AnnualRatePercent)
	}
	if conf.Loan.TermMonths != 240 {
		t.Errorf("TermMonths = %d, expected 240", conf.Loan.TermMonths)
	}

	if len(conf.Scenarios) != 2 {
		t.Fatalf("len(Scenarios) = %d, expected 2", len(conf.Scenarios))
	}
	if conf.Scenarios[0].ExtraMonthly != 5000 {
		t.Errorf("scenario 0 ExtraMonthly = %v, expected 5000", conf.Scenarios[0].ExtraMonthly)
	}
	if conf.Scenarios[1].LumpSum != 100_000 || conf.Scenarios[1].LumpSumMonth != 13 {
		t.Errorf("scenario 1 lump sum = %v at month %d, expected 100000 at 13",
			conf.Scenarios[1].LumpSum, conf.Scenarios[1].LumpSumMonth)
	}

	if len(conf.Targets) != 1 || conf.Targets[0].Months != 180 {
		t.Errorf("Targets = %+v, expected one 180 month target", conf.Targets)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != "pretty" {
		t.Errorf("Output.Format = %q, expected pretty", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoanAnnualRate(t *testing.T) {
	loan := Loan{AnnualRatePercent: 8.5}
	if got := loan.AnnualRate(); got != 0.085 {
		t.Errorf("AnnualRate = %v, expected 0.085", got)
	}
}

func TestScenarioExtraPayments(t *testing.T) {
	scenario := Scenario{
		Name:               "combined",
		ExtraMonthly:       5000,
		ExtraMonthlyMonths: 24,
		LumpSum:            100_000,
		LumpSumMonth:       13,
	}
	extras := scenario.ExtraPayments()
	if extras.Monthly != 5000 || extras.MonthlyMonths != 24 {
		t.Errorf("recurring extras = %v for %d months, expected 5000 for 24",
			extras.Monthly, extras.MonthlyMonths)
	}
	if extras.LumpSum != 100_000 || extras.LumpSumMonth != 13 {
		t.Errorf("lump sum = %v at month %d, expected 100000 at 13",
			extras.LumpSum, extras.LumpSumMonth)
	}
	if extras.None() {
		t.Error("expected extras to be present")
	}
}

func TestValidate(t *testing.T) {
	conf := Configuration{
		Loan: Loan{Principal: 5_000_000, AnnualRatePercent: 8.5, TermMonths: 240},
		Scenarios: []Scenario{
			{Name: "extra", ExtraMonthly: 5000},
		},
		Targets: []Target{
			{Name: "fifteen years", Months: 180},
		},
	}
	if err := conf.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := conf
	bad.Loan.Principal = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative principal")
	}

	bad = conf
	bad.Scenarios = []Scenario{{Name: "negative", ExtraMonthly: -100}}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative scenario extra")
	}

	bad = conf
	bad.Targets = []Target{{Name: "impossible", Months: 0}}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero month target")
	}

	bad = conf
	bad.Output.Format = "xml"
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unsupported output format")
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf := Configuration{
		Loan: Loan{Principal: 100_000, AnnualRatePercent: 12, TermMonths: 60, MonthlyPayment: 500},
		Scenarios: []Scenario{
			{Name: "noop"},
			{Name: "noop"},
			{Name: "late lump", LumpSum: 5000, LumpSumMonth: 120},
		},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) == 0 {
		t.Fatal("expected warnings")
	}

	expectFragments := []string{
		"does not cover the first month's interest",
		"duplicate scenario name",
		"no extra payments",
		"after the loan term",
	}
	for _, fragment := range expectFragments {
		found := false
		for _, warning := range warnings {
			if strings.Contains(warning, fragment) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no warning containing %q in %v", fragment, warnings)
		}
	}
}

func TestValidateConfigurationClean(t *testing.T) {
	conf := Configuration{
		Loan: Loan{Principal: 5_000_000, AnnualRatePercent: 8.5, TermMonths: 240},
		Scenarios: []Scenario{
			{Name: "extra", ExtraMonthly: 5000},
		},
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}
