// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/interest-calculator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatJSON, constants.OutputFormatCSV:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatJSON, constants.OutputFormatCSV, format)
}

// ValidateCurrency returns a warning when symbol is not one of the currency
// selector values, or an empty string when it is.
func ValidateCurrency(symbol string) string {
	for _, supported := range constants.SupportedCurrencies {
		if symbol == supported {
			return ""
		}
	}
	return fmt.Sprintf("Currency '%s' is not one of %s", symbol, strings.Join(constants.SupportedCurrencies, " "))
}
