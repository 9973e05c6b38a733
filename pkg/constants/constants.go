// Package constants provides shared constants for the interest-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// DisplayDecimals is the number of decimals shown on every output surface
	DisplayDecimals = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Currency symbols offered by the input surfaces.
const (
	CurrencyRupee  = "₹"
	CurrencyDollar = "$"
	CurrencyEuro   = "€"
	CurrencyPound  = "£"

	// DefaultCurrency is used when no currency is selected
	DefaultCurrency = CurrencyRupee
)

// SupportedCurrencies lists the currency selector values in display order.
var SupportedCurrencies = []string{CurrencyRupee, CurrencyDollar, CurrencyEuro, CurrencyPound}

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides for configuration keys
	EnvPrefix = "INTEREST_CALCULATOR"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultSessionTTL is how long an idle session result is kept
	DefaultSessionTTL = "30m"

	// SessionBackendMemory keeps session results in process memory
	SessionBackendMemory = "memory"

	// SessionBackendRedis keeps session results in Redis
	SessionBackendRedis = "redis"
)

// Export constants
const (
	// ChartWidth and ChartHeight are the pixel dimensions of the breakdown chart
	ChartWidth  = 400
	ChartHeight = 300

	// ReportTitle is the heading line of exported documents
	ReportTitle = "Loan/EMI Calculation:"

	// ChartSidecarSuffix is appended to the PDF base name for the sidecar chart image
	ChartSidecarSuffix = "_chart.png"
)
