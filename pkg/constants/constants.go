// Package constants provides shared constants for the loan-payoff application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent/paisa)
	CurrencyTolerance = 0.01
)

// Schedule generation constants
const (
	// MaxScheduleMonths is the hard safety bound on schedule length (50 years).
	// A schedule that hits this cap with a positive final balance indicates
	// the payment never pays off the loan.
	MaxScheduleMonths = 600
)

// Target solver constants
const (
	// SolverMaxIterations is the iteration budget for the extra-payment search
	SolverMaxIterations = 100

	// SolverTolerance is the convergence tolerance on the extra payment amount
	SolverTolerance = 0.01

	// TargetMonthsTolerance is how far (in months) a solved schedule may land
	// from the requested payoff target and still be accepted
	TargetMonthsTolerance = 1
)

// Validation limits, mirroring what the interactive calculator accepted
const (
	// MaxPrincipal is the largest loan amount considered reasonable
	MaxPrincipal = 100_000_000.0

	// MaxAnnualRatePercent is the largest annual interest rate considered reasonable
	MaxAnnualRatePercent = 50.0

	// MaxTermMonths is the longest supported loan term (50 years)
	MaxTermMonths = 600
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// DefaultCurrencySymbol is the currency label used when the config does not
// specify one. Display only; no conversion logic anywhere.
const DefaultCurrencySymbol = "₹"
