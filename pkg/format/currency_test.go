package format

import "testing"

func TestAmount(t *testing.T) {
	tests := map[float64]string{
		100:          "100.00",
		1082.4321:    "1082.43",
		2075.8355:    "2075.84",
		0:            "0.00",
		0.005:        "0.01",
		124550.40201: "124550.40",
	}
	for input, expected := range tests {
		if got := Amount(input); got != expected {
			t.Errorf("Amount(%v) = %q, expected %q", input, got, expected)
		}
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		symbol   string
		value    float64
		expected string
	}{
		{"₹", 1100, "₹1100.00"},
		{"$", 82.43216, "$82.43"},
		{"€", 5634.125, "€5634.12"},
		{"", 1, "1.00"},
	}
	for _, tt := range tests {
		if got := Currency(tt.symbol, tt.value); got != tt.expected {
			t.Errorf("Currency(%q, %v) = %q, expected %q", tt.symbol, tt.value, got, tt.expected)
		}
	}
}

func TestGrouped(t *testing.T) {
	tests := []struct {
		symbol   string
		value    float64
		expected string
	}{
		{"$", 124550.40201, "$124,550.40"},
		{"£", 999.999, "£1,000.00"},
		{"₹", 12, "₹12.00"},
	}
	for _, tt := range tests {
		if got := Grouped(tt.symbol, tt.value); got != tt.expected {
			t.Errorf("Grouped(%q, %v) = %q, expected %q", tt.symbol, tt.value, got, tt.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(9.0909); got != "9.1%" {
		t.Errorf("Percent(9.0909) = %q, expected 9.1%%", got)
	}
	if got := Percent(100); got != "100.0%" {
		t.Errorf("Percent(100) = %q, expected 100.0%%", got)
	}
}

func TestRoundingFollowsBinaryValue(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Below tie in binary", 2.675, "2.67"},
		{"Exact tie rounds to even", 0.125, "0.12"},
		{"Exact tie rounds to even upward", 0.375, "0.38"},
		{"Just under a cent tie", 1.005, "1.00"},
		{"Simple interest on 53.50", 53.5 * 5 * 1 / 100, "2.67"},
		{"Negative below tie", -2.675, "-2.67"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.value); got != tt.expected {
				t.Errorf("Amount(%v) = %q, expected %q", tt.value, got, tt.expected)
			}
		})
	}

	if got := Grouped("$", 1234.125); got != "$1,234.12" {
		t.Errorf("Grouped(1234.125) = %q, expected $1,234.12", got)
	}
	if got := Percent(12.25); got != "12.2%" {
		t.Errorf("Percent(12.25) = %q, expected 12.2%%", got)
	}
	if got := Percent(0.35); got != "0.3%" {
		t.Errorf("Percent(0.35) = %q, expected 0.3%%", got)
	}
}
