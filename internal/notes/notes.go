// Package notes holds the static reference table of common loan and deposit
// products.
package notes

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry describes the typical settings for one product.
type Entry struct {
	Name                   string  `json:"name"`
	RecommendedRatePercent float64 `json:"recommendedRatePercent"`
	TimeRangeYears         string  `json:"timeRangeYears"`
	Remarks                string  `json:"remarks"`
}

var table = []Entry{
	{Name: "FD - Compound", RecommendedRatePercent: 6.5, TimeRangeYears: "1-5", Remarks: "Interest compounded quarterly"},
	{Name: "Savings - Simple", RecommendedRatePercent: 3.5, TimeRangeYears: "Flexible", Remarks: "Low interest, simple interest"},
	{Name: "Home Loan - EMI", RecommendedRatePercent: 8.5, TimeRangeYears: "20-30", Remarks: "EMI-based long term"},
	{Name: "Education Loan - EMI", RecommendedRatePercent: 9.0, TimeRangeYears: "5-15", Remarks: "EMI after study period"},
}

// Names returns the product names in table order.
func Names() []string {
	names := make([]string, 0, len(table))
	for _, entry := range table {
		names = append(names, entry.Name)
	}
	return names
}

// Lookup returns the entry for an exact product name.
func Lookup(name string) (Entry, bool) {
	for _, entry := range table {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}

// All returns a copy of the table.
func All() []Entry {
	return append([]Entry(nil), table...)
}

// Lines renders every field of the entry as "label: value".
func (e Entry) Lines() []string {
	return []string{
		fmt.Sprintf("Recommended Rate (%%): %s", formatRate(e.RecommendedRatePercent)),
		fmt.Sprintf("Time (Years): %s", e.TimeRangeYears),
		fmt.Sprintf("Remarks: %s", e.Remarks),
	}
}

// formatRate keeps one decimal for whole rates so 9 reads "9.0".
func formatRate(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
