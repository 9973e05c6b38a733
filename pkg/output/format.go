// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/internal/notes"
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/format"
)

// Headline returns the short result text shown right after a calculation.
func Headline(res calculator.Result) []string {
	switch {
	case res.EMI != nil:
		return []string{
			fmt.Sprintf("EMI: %s/month", format.Currency(res.Currency, res.EMI.MonthlyEMI)),
			fmt.Sprintf("Total: %s", format.Currency(res.Currency, res.EMI.TotalPayment)),
		}
	case res.Interest != nil:
		label := "Interest"
		if res.Kind == calculator.Compound {
			label = "Compound Interest"
		}
		return []string{
			fmt.Sprintf("%s: %s", label, format.Currency(res.Currency, res.Interest.Interest)),
			fmt.Sprintf("Total: %s", format.Currency(res.Currency, res.Interest.TotalAmount)),
		}
	}
	return nil
}

// PrettyFormat outputs the headline followed by a human-readable breakdown table.
func PrettyFormat(w io.Writer, res calculator.Result) {
	fmt.Fprintf(w, "--- %s calculation ---\n", res.Kind)
	for _, line := range Headline(res) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\nField          | Amount\n")
	fmt.Fprintf(w, "_____          | ______\n")
	for _, field := range res.Fields() {
		fmt.Fprintf(w, "%-14s | %s\n", field.Label, format.Grouped(res.Currency, field.Value))
	}
	if res.Kind == calculator.Compound {
		fmt.Fprintf(w, "%-14s | %s\n", "Compounding", res.Frequency)
	}
	if res.EMI != nil {
		fmt.Fprintf(w, "%-14s | %d\n", "Months", res.EMI.Months)
	}
}

type jsonField struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

type jsonResult struct {
	Kind     calculator.Kind   `json:"kind"`
	Currency string            `json:"currency"`
	Headline []string          `json:"headline"`
	Fields   []jsonField       `json:"fields"`
	Result   calculator.Result `json:"result"`
}

// JSONFormat outputs the result, its headline and its formatted fields as one JSON document.
func JSONFormat(w io.Writer, res calculator.Result) error {
	doc := jsonResult{
		Kind:     res.Kind,
		Currency: res.Currency,
		Headline: Headline(res),
		Result:   res,
	}
	for _, field := range res.Fields() {
		doc.Fields = append(doc.Fields, jsonField{
			Label:     field.Label,
			Value:     field.Value,
			Formatted: format.Currency(res.Currency, field.Value),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// CsvFormat outputs one "field","amount" row per result field.
func CsvFormat(w io.Writer, res calculator.Result) error {
	writer := csv.NewWriter(w)
	records := [][]string{{"field", fmt.Sprintf("amount (%s)", res.Currency)}}
	for _, field := range res.Fields() {
		records = append(records, []string{field.Label, format.Amount(field.Value)})
	}
	return writer.WriteAll(records)
}

// Write dispatches to the printer for outputFormat.
func Write(w io.Writer, outputFormat string, res calculator.Result) error {
	switch outputFormat {
	case constants.OutputFormatJSON:
		return JSONFormat(w, res)
	case constants.OutputFormatCSV:
		return CsvFormat(w, res)
	default:
		PrettyFormat(w, res)
		return nil
	}
}

// NoteFormat outputs a reference note with every field verbatim.
func NoteFormat(w io.Writer, entry notes.Entry) {
	fmt.Fprintf(w, "--- %s ---\n", entry.Name)
	for _, line := range entry.Lines() {
		fmt.Fprintln(w, line)
	}
}
