// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/interest-calculator/internal/calculator"
)

// MustCalculate runs the calculation and fails the test on error.
func MustCalculate(tb testing.TB, in calculator.Input) calculator.Result {
	tb.Helper()
	res, err := calculator.Calculate(in)
	if err != nil {
		tb.Fatalf("Calculate(%+v) error = %v", in, err)
	}
	return res
}

// SampleInputs returns one valid input per calculation kind, each in a
// different currency.
func SampleInputs() []calculator.Input {
	return []calculator.Input{
		{Principal: 1000, AnnualRatePercent: 5, TimeYears: 2, Kind: calculator.Simple, Currency: "$"},
		{Principal: 1000, AnnualRatePercent: 8, TimeYears: 1, Kind: calculator.Compound, Frequency: calculator.Quarterly, Currency: "€"},
		{Principal: 100000, AnnualRatePercent: 9, TimeYears: 5, Kind: calculator.EMI, Currency: "₹"},
	}
}

// SampleResults calculates every SampleInputs entry.
func SampleResults(tb testing.TB) []calculator.Result {
	tb.Helper()
	inputs := SampleInputs()
	results := make([]calculator.Result, 0, len(inputs))
	for _, in := range inputs {
		results = append(results, MustCalculate(tb, in))
	}
	return results
}

// FindField finds a display field by label.
// Returns a pointer to the field if found, nil otherwise.
func FindField(fields []calculator.Field, label string) *calculator.Field {
	for i := range fields {
		if fields[i].Label == label {
			return &fields[i]
		}
	}
	return nil
}
