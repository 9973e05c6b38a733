package calculator

import (
	"strconv"
	"strings"

	"github.com/iwvelando/interest-calculator/pkg/mathutil"
)

// Form holds the raw values of the input surface as entered by a user.
type Form struct {
	Principal string `json:"principal"`
	Rate      string `json:"rate"`
	Time      string `json:"time"`
	Currency  string `json:"currency"`
	Kind      string `json:"kind"`
	Frequency string `json:"frequency"`
}

// ParseInput converts raw form values into an Input. Numeric fields must be
// finite numbers. Unrecognized selector values are left zero so Calculate
// reports them after its range checks, the same way for every surface.
func ParseInput(form Form) (Input, error) {
	principal, err := parseNumber(form.Principal)
	if err != nil {
		return Input{}, err
	}
	rate, err := parseNumber(form.Rate)
	if err != nil {
		return Input{}, err
	}
	years, err := parseNumber(form.Time)
	if err != nil {
		return Input{}, err
	}

	kind, _ := ParseKind(form.Kind)

	frequency := Annually
	if kind == Compound {
		frequency, _ = ParseFrequency(form.Frequency)
	}

	return Input{
		Principal:         principal,
		AnnualRatePercent: rate,
		TimeYears:         years,
		Kind:              kind,
		Frequency:         frequency,
		Currency:          strings.TrimSpace(form.Currency),
	}, nil
}

func parseNumber(value string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || !mathutil.IsFinite(n) {
		return 0, invalid(ReasonNotNumber)
	}
	return n, nil
}
