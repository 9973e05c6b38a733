// Package format renders monetary values for display and export.
package format

import (
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupedPrinter = message.NewPrinter(language.English)

// exactExponent keeps enough digits of the binary value that a float sitting
// just below a printed tie (2.675 is 2.67499999...) still rounds down.
const exactExponent = -30

// round rounds the exact binary value half to even, as %.2f does.
func round(value float64, places int32) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(value, exactExponent).RoundBank(places)
}

// Amount returns the value with exactly two decimals and no grouping (e.g., "1082.43").
func Amount(value float64) string {
	return round(value, constants.DisplayDecimals).StringFixed(constants.DisplayDecimals)
}

// Currency prefixes the two-decimal amount with the currency symbol (e.g., "₹1100.00").
func Currency(symbol string, value float64) string {
	return symbol + Amount(value)
}

// Grouped returns the amount with thousands separators (e.g., "$124,550.40").
func Grouped(symbol string, value float64) string {
	rounded, _ := round(value, constants.DisplayDecimals).Float64()
	return symbol + groupedPrinter.Sprintf("%.2f", rounded)
}

// Percent returns a one-decimal percentage (e.g., "9.1%").
func Percent(value float64) string {
	return round(value, 1).StringFixed(1) + "%"
}
