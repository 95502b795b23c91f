// Package analysis orchestrates a full payoff analysis for a configured
// loan: the baseline schedule, every prepayment scenario compared against
// it, and the solved extra payment for every target horizon.
package analysis

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/internal/config"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/amortize"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/cache"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/constants"
	"github.com/Avishkar-Lokhande/Loan-Payoff-Calculator/pkg/validation"
)

// Result is the complete outcome of one analysis run.
type Result struct {
	Currency          string            `json:"currency"`
	Principal         float64           `json:"principal"`
	AnnualRatePercent float64           `json:"annualRatePercent"`
	TermMonths        int               `json:"termMonths"`
	Payment           float64           `json:"payment"`
	PaymentWarning    string            `json:"paymentWarning,omitempty"`
	Base              amortize.Schedule `json:"base"`
	BaseSummary       amortize.Summary  `json:"baseSummary"`
	Scenarios         []ScenarioResult  `json:"scenarios,omitempty"`
	Targets           []TargetResult    `json:"targets,omitempty"`
}

// ScenarioResult pairs a prepayment scenario's schedule with its savings
// against the baseline.
type ScenarioResult struct {
	Name       string              `json:"name"`
	Schedule   amortize.Schedule   `json:"schedule"`
	Summary    amortize.Summary    `json:"summary"`
	Comparison amortize.Comparison `json:"comparison"`
}

// TargetResult holds the solved extra payment for one target horizon.
type TargetResult struct {
	Name     string            `json:"name"`
	Months   int               `json:"months"`
	Solution amortize.Solution `json:"solution"`
}

// Run validates the configuration and produces the analysis result. Warnings
// are logged rather than fatal; validation errors abort the run.
func Run(logger *zap.Logger, conf *config.Configuration) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("configuration warning",
			zap.String("op", "analysis.Run"),
			zap.String("warning", warning),
		)
	}

	memo := amortize.NewMemo(newBackend(logger, conf.Cache), logger)

	principal := conf.Loan.Principal
	rate := conf.Loan.AnnualRate()

	payment := conf.Loan.MonthlyPayment
	if payment <= 0 {
		payment = amortize.SolvePayment(principal, rate, conf.Loan.TermMonths)
		logger.Debug("solved monthly payment",
			zap.String("op", "analysis.Run"),
			zap.Float64("payment", payment),
		)
	}

	result := &Result{
		Currency:          currencyOrDefault(conf.Currency),
		Principal:         principal,
		AnnualRatePercent: conf.Loan.AnnualRatePercent,
		TermMonths:        conf.Loan.TermMonths,
		Payment:           payment,
		PaymentWarning:    validation.PaymentSufficiencyWarning(principal, rate, payment),
	}
	if result.PaymentWarning != "" {
		logger.Warn("payment may be insufficient",
			zap.String("op", "analysis.Run"),
			zap.String("warning", result.PaymentWarning),
		)
	}

	result.Base = memo.Generate(principal, rate, payment, amortize.ExtraPayments{})
	result.BaseSummary = amortize.Summarize(result.Base)

	for _, scenario := range conf.Scenarios {
		schedule := memo.Generate(principal, rate, payment, scenario.ExtraPayments())
		comparison := amortize.Compare(result.Base, schedule)
		result.Scenarios = append(result.Scenarios, ScenarioResult{
			Name:       scenario.Name,
			Schedule:   schedule,
			Summary:    amortize.Summarize(schedule),
			Comparison: comparison,
		})
		logger.Info("scenario analyzed",
			zap.String("op", "analysis.Run"),
			zap.String("scenario", scenario.Name),
			zap.Int("months", schedule.Months()),
			zap.Float64("interestSaved", comparison.InterestSaved),
		)
	}

	for _, target := range conf.Targets {
		solution, err := amortize.SolveExtraForTarget(logger, principal, rate, payment, target.Months)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", target.Name, err)
		}
		result.Targets = append(result.Targets, TargetResult{
			Name:     target.Name,
			Months:   target.Months,
			Solution: solution,
		})
		logger.Info("target solved",
			zap.String("op", "analysis.Run"),
			zap.String("target", target.Name),
			zap.Float64("extra", solution.Extra),
			zap.Bool("converged", solution.Converged),
		)
	}

	return result, nil
}

// newBackend selects the memoization backend. A Redis connection failure
// logs a warning and falls back to process memory rather than aborting.
func newBackend(logger *zap.Logger, conf config.CacheConfig) cache.Cache {
	if conf.RedisAddress == "" {
		return cache.NewMemory()
	}
	backend, err := cache.NewRedis(conf.RedisAddress)
	if err != nil {
		logger.Warn("redis cache unavailable, using in-memory cache",
			zap.String("op", "analysis.newBackend"),
			zap.String("address", conf.RedisAddress),
			zap.Error(err),
		)
		return cache.NewMemory()
	}
	return backend
}

func currencyOrDefault(symbol string) string {
	if symbol == "" {
		return constants.DefaultCurrencySymbol
	}
	return symbol
}
