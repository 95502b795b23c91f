// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/amortize"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/constants"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/validation"
)

// Configuration holds all configuration for a loan payoff analysis.
type Configuration struct {
	Currency  string        `yaml:"currency,omitempty"`
	Loan      Loan          `yaml:"loan"`
	Scenarios []Scenario    `yaml:"scenarios,omitempty"`
	Targets   []Target      `yaml:"targets,omitempty"`
	Cache     CacheConfig   `yaml:"cache,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// Loan describes the loan under analysis. The rate is in percent as users
// write it. A zero MonthlyPayment means the payment is solved from the
// principal, rate and term.
type Loan struct {
	Principal         float64 `yaml:"principal"`
	AnnualRatePercent float64 `yaml:"annualRatePercent"`
	TermMonths        int     `yaml:"termMonths"`
	MonthlyPayment    float64 `yaml:"monthlyPayment,omitempty"`
}

// AnnualRate returns the rate as the fraction the engine expects.
func (l Loan) AnnualRate() float64 {
	return l.AnnualRatePercent / constants.PercentageMultiplier
}

// Scenario names one prepayment strategy to compare against the baseline.
type Scenario struct {
	Name               string  `yaml:"name"`
	ExtraMonthly       float64 `yaml:"extraMonthly,omitempty"`
	ExtraMonthlyMonths int     `yaml:"extraMonthlyMonths,omitempty"`
	LumpSum            float64 `yaml:"lumpSum,omitempty"`
	LumpSumMonth       int     `yaml:"lumpSumMonth,omitempty"`
}

// ExtraPayments converts the scenario into the engine's strategy type.
func (s Scenario) ExtraPayments() amortize.ExtraPayments {
	return amortize.ExtraPayments{
		Monthly:       s.ExtraMonthly,
		MonthlyMonths: s.ExtraMonthlyMonths,
		LumpSum:       s.LumpSum,
		LumpSumMonth:  s.LumpSumMonth,
	}
}

// Target names a payoff horizon to solve the required extra payment for.
type Target struct {
	Name   string `yaml:"name"`
	Months int    `yaml:"months"`
}

// CacheConfig selects the schedule cache backend. An empty RedisAddress
// keeps memoization in process memory.
type CacheConfig struct {
	RedisAddress string `yaml:"redisAddress,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory source, used by the HTTP server for uploaded configs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Validate rejects configurations the engine cannot analyze. Every scenario
// and target is checked so the error reports all problems at once.
func (c *Configuration) Validate() error {
	if err := validation.ValidateLoanInputs(validation.LoanInputs{
		Principal:         c.Loan.Principal,
		AnnualRatePercent: c.Loan.AnnualRatePercent,
		TermMonths:        c.Loan.TermMonths,
	}); err != nil {
		return err
	}

	for _, scenario := range c.Scenarios {
		if err := validation.ValidateLoanInputs(validation.LoanInputs{
			Principal:          c.Loan.Principal,
			AnnualRatePercent:  c.Loan.AnnualRatePercent,
			TermMonths:         c.Loan.TermMonths,
			ExtraMonthly:       scenario.ExtraMonthly,
			ExtraMonthlyMonths: scenario.ExtraMonthlyMonths,
			LumpSum:            scenario.LumpSum,
			LumpSumMonth:       scenario.LumpSumMonth,
		}); err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
	}

	for _, target := range c.Targets {
		if err := validation.ValidateTargetMonths(target.Months, c.Loan.TermMonths); err != nil {
			return fmt.Errorf("target %q: %w", target.Name, err)
		}
	}

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			return err
		}
	}

	return nil
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings for settings that are legal but probably mistakes.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Loan.MonthlyPayment > 0 {
		if warning := validation.PaymentSufficiencyWarning(
			c.Loan.Principal, c.Loan.AnnualRate(), c.Loan.MonthlyPayment); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	seen := make(map[string]bool)
	for _, scenario := range c.Scenarios {
		if scenario.Name == "" {
			warnings = append(warnings, "scenario with empty name")
		}
		if seen[scenario.Name] {
			warnings = append(warnings, fmt.Sprintf("duplicate scenario name %q", scenario.Name))
		}
		seen[scenario.Name] = true

		if scenario.ExtraPayments().None() {
			warnings = append(warnings, fmt.Sprintf("scenario %q has no extra payments and will match the baseline", scenario.Name))
		}
		if scenario.LumpSum > 0 && scenario.LumpSumMonth > c.Loan.TermMonths {
			warnings = append(warnings, fmt.Sprintf("scenario %q schedules its lump sum after the loan term", scenario.Name))
		}
	}

	return warnings
}
