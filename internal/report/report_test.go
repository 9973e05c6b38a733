package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/internal/chart"
	"github.com/iwvelando/interest-calculator/pkg/testutil"
	"go.uber.org/zap"
)

func mustChart(t *testing.T, res calculator.Result) []byte {
	t.Helper()
	data, err := chart.NewRenderer().Render(res.Breakdown())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return data
}

func TestLines(t *testing.T) {
	simple := testutil.MustCalculate(t, calculator.Input{Principal: 1000, AnnualRatePercent: 5, TimeYears: 2, Kind: calculator.Simple, Currency: "$"})
	expected := []string{
		"Loan/EMI Calculation:",
		"",
		"Principal: $1000.00",
		"Interest: $100.00",
		"Total Amount: $1100.00",
		"Currency: $",
	}
	lines := Lines(simple)
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %v", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}

	emi := testutil.MustCalculate(t, calculator.Input{Principal: 100000, AnnualRatePercent: 9, TimeYears: 5, Kind: calculator.EMI, Currency: "₹"})
	lines = Lines(emi)
	if len(lines) != 7 {
		t.Fatalf("expected 7 EMI lines, got %d: %v", len(lines), lines)
	}
	if lines[3] != "Monthly EMI: ₹2075.84" {
		t.Errorf("EMI line = %q, expected %q", lines[3], "Monthly EMI: ₹2075.84")
	}
}

func TestWriteCreatesPDF(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		kind     calculator.Kind
	}{
		{"Rupee simple", "₹", calculator.Simple},
		{"Euro compound", "€", calculator.Compound},
		{"Pound EMI", "£", calculator.EMI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testutil.MustCalculate(t, calculator.Input{Principal: 1000, AnnualRatePercent: 8, TimeYears: 1,
				Kind: tt.kind, Frequency: calculator.Quarterly, Currency: tt.currency})
			path := filepath.Join(t.TempDir(), "result.pdf")

			writer := NewWriter(zap.NewNop(), Options{})
			if err := writer.Write(path, res, mustChart(t, res)); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read export: %v", err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Fatalf("export is not a PDF document")
			}
			if _, err := os.Stat(filepath.Join(filepath.Dir(path), "result_chart.png")); !os.IsNotExist(err) {
				t.Errorf("expected no sidecar chart without KeepChartImage")
			}
		})
	}
}

func TestWriteWithoutChart(t *testing.T) {
	res := testutil.MustCalculate(t, calculator.Input{Principal: 500, AnnualRatePercent: 3, TimeYears: 1, Kind: calculator.Simple, Currency: "$"})
	path := filepath.Join(t.TempDir(), "plain.pdf")

	if err := NewWriter(nil, Options{}).Write(path, res, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected export at %s: %v", path, err)
	}
}

func TestWriteAppendsExtensionAndSidecar(t *testing.T) {
	res := testutil.MustCalculate(t, calculator.Input{Principal: 1000, AnnualRatePercent: 5, TimeYears: 2, Kind: calculator.Simple, Currency: "$"})
	chartPNG := mustChart(t, res)
	dir := t.TempDir()

	writer := NewWriter(zap.NewNop(), Options{KeepChartImage: true})
	if err := writer.Write(filepath.Join(dir, "summary"), res, chartPNG); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "summary.pdf")); err != nil {
		t.Errorf("expected summary.pdf: %v", err)
	}
	sidecar, err := os.ReadFile(filepath.Join(dir, "summary_chart.png"))
	if err != nil {
		t.Fatalf("expected sidecar chart: %v", err)
	}
	if !bytes.Equal(sidecar, chartPNG) {
		t.Error("sidecar chart differs from rendered chart")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list export dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected only the document and sidecar, found %d entries", len(entries))
	}
}

func TestWriteErrors(t *testing.T) {
	res := testutil.MustCalculate(t, calculator.Input{Principal: 1000, AnnualRatePercent: 5, TimeYears: 2, Kind: calculator.Simple, Currency: "$"})
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		result  calculator.Result
		options Options
	}{
		{"Empty path", "", res, Options{}},
		{"Missing directory", filepath.Join(dir, "missing", "out.pdf"), res, Options{}},
		{"Empty result", filepath.Join(dir, "empty.pdf"), calculator.Result{}, Options{}},
		{"Missing font", filepath.Join(dir, "font.pdf"), res, Options{FontFile: filepath.Join(dir, "none.ttf")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewWriter(zap.NewNop(), tt.options).Write(tt.path, tt.result, nil)
			var exportErr *ExportError
			if !errors.As(err, &exportErr) {
				t.Fatalf("Write() error = %v, expected ExportError", err)
			}
			if exportErr.Unwrap() == nil {
				t.Error("expected wrapped cause")
			}
		})
	}

	if _, err := os.Stat(filepath.Join(dir, "empty.pdf")); !os.IsNotExist(err) {
		t.Error("failed export must not leave a file behind")
	}
}

func TestDocumentPath(t *testing.T) {
	tests := map[string]string{
		"out":        "out.pdf",
		"out.pdf":    "out.pdf",
		"OUT.PDF":    "OUT.PDF",
		"dir/report": "dir/report.pdf",
		"notes.txt":  "notes.txt.pdf",
	}
	for input, expected := range tests {
		if got := DocumentPath(input); got != expected {
			t.Errorf("DocumentPath(%q) = %q, expected %q", input, got, expected)
		}
	}
}
