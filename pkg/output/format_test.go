package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/internal/notes"
	"github.com/iwvelando/interest-calculator/pkg/testutil"
)

func TestHeadline(t *testing.T) {
	tests := []struct {
		name     string
		input    calculator.Input
		expected []string
	}{
		{
			name:     "Simple",
			input:    calculator.Input{Principal: 1000, AnnualRatePercent: 5, TimeYears: 2, Kind: calculator.Simple, Currency: "₹"},
			expected: []string{"Interest: ₹100.00", "Total: ₹1100.00"},
		},
		{
			name: "Compound",
			input: calculator.Input{Principal: 1000, AnnualRatePercent: 8, TimeYears: 1, Kind: calculator.Compound,
				Frequency: calculator.Quarterly, Currency: "$"},
			expected: []string{"Compound Interest: $82.43", "Total: $1082.43"},
		},
		{
			name:     "EMI",
			input:    calculator.Input{Principal: 100000, AnnualRatePercent: 9, TimeYears: 5, Kind: calculator.EMI, Currency: "€"},
			expected: []string{"EMI: €2075.84/month", "Total: €124550.13"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Headline(testutil.MustCalculate(t, tt.input))
			if len(lines) != len(tt.expected) {
				t.Fatalf("Headline() = %v, expected %v", lines, tt.expected)
			}
			for i := range tt.expected {
				if lines[i] != tt.expected[i] {
					t.Errorf("line %d = %q, expected %q", i, lines[i], tt.expected[i])
				}
			}
		})
	}
}

func TestPrettyFormat(t *testing.T) {
	res := testutil.MustCalculate(t, calculator.Input{Principal: 100000, AnnualRatePercent: 9, TimeYears: 5, Kind: calculator.EMI, Currency: "$"})

	var buf bytes.Buffer
	PrettyFormat(&buf, res)
	output := buf.String()

	for _, expected := range []string{
		"--- EMI calculation ---",
		"EMI: $2075.84/month",
		"Field          | Amount",
		"Principal      | $100,000.00",
		"Months         | 60",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("PrettyFormat missing %q in:\n%s", expected, output)
		}
	}
}

func TestPrettyFormatCompounding(t *testing.T) {
	res := testutil.MustCalculate(t, calculator.Input{Principal: 1000, AnnualRatePercent: 8, TimeYears: 1, Kind: calculator.Compound,
		Frequency: calculator.Monthly, Currency: "£"})

	var buf bytes.Buffer
	PrettyFormat(&buf, res)
	if !strings.Contains(buf.String(), "Compounding    | Monthly") {
		t.Errorf("PrettyFormat missing compounding row:\n%s", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	res := testutil.MustCalculate(t, calculator.Input{Principal: 1000, AnnualRatePercent: 5, TimeYears: 2, Kind: calculator.Simple, Currency: "$"})

	var buf bytes.Buffer
	if err := JSONFormat(&buf, res); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded jsonResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded.Kind != calculator.Simple || len(decoded.Fields) != 3 {
		t.Fatalf("unexpected document %+v", decoded)
	}
	if decoded.Fields[2].Formatted != "$1100.00" {
		t.Errorf("total formatted = %q, expected $1100.00", decoded.Fields[2].Formatted)
	}
	if decoded.Result.Interest == nil || decoded.Result.Interest.Interest != 100 {
		t.Errorf("embedded result = %+v", decoded.Result)
	}
}

func TestCsvFormat(t *testing.T) {
	res := testutil.MustCalculate(t, calculator.Input{Principal: 1000, AnnualRatePercent: 5, TimeYears: 2, Kind: calculator.Simple, Currency: "$"})

	var buf bytes.Buffer
	if err := CsvFormat(&buf, res); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}
	expected := "field,amount ($)\nPrincipal,1000.00\nInterest,100.00\nTotal Amount,1100.00\n"
	if buf.String() != expected {
		t.Errorf("CsvFormat() = %q, expected %q", buf.String(), expected)
	}
}

func TestWriteDispatch(t *testing.T) {
	res := testutil.MustCalculate(t, calculator.Input{Principal: 1000, AnnualRatePercent: 5, TimeYears: 2, Kind: calculator.Simple, Currency: "$"})

	tests := map[string]string{
		"pretty": "--- Simple calculation ---",
		"json":   `"kind": "Simple"`,
		"csv":    "field,amount ($)",
	}
	for format, marker := range tests {
		var buf bytes.Buffer
		if err := Write(&buf, format, res); err != nil {
			t.Fatalf("Write(%s) error = %v", format, err)
		}
		if !strings.Contains(buf.String(), marker) {
			t.Errorf("Write(%s) missing %q in %q", format, marker, buf.String())
		}
	}
}

func TestNoteFormat(t *testing.T) {
	entry, _ := notes.Lookup("FD - Compound")

	var buf bytes.Buffer
	NoteFormat(&buf, entry)
	expected := "--- FD - Compound ---\nRecommended Rate (%): 6.5\nTime (Years): 1-5\nRemarks: Interest compounded quarterly\n"
	if buf.String() != expected {
		t.Errorf("NoteFormat() = %q, expected %q", buf.String(), expected)
	}
}
