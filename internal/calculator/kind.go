package calculator

import (
	"fmt"
	"strings"
)

// Kind selects the formula applied to an Input.
type Kind string

const (
	Simple   Kind = "Simple"
	Compound Kind = "Compound"
	EMI      Kind = "EMI"
)

// Kinds lists the calculation kinds in selector order.
var Kinds = []Kind{Simple, Compound, EMI}

// ParseKind matches a selector value case-insensitively. An empty or
// unknown value is a ValidationError.
func ParseKind(value string) (Kind, error) {
	trimmed := strings.TrimSpace(value)
	for _, kind := range Kinds {
		if strings.EqualFold(trimmed, string(kind)) {
			return kind, nil
		}
	}
	return "", invalid(ReasonChooseKind)
}

// Frequency is the number of compounding periods per year.
type Frequency int

const (
	Annually     Frequency = 1
	SemiAnnually Frequency = 2
	Quarterly    Frequency = 4
	Monthly      Frequency = 12
)

// Frequencies lists the compounding selector values in display order.
var Frequencies = []Frequency{Annually, SemiAnnually, Quarterly, Monthly}

var frequencyNames = map[Frequency]string{
	Annually:     "Annually",
	SemiAnnually: "Semi-Annually",
	Quarterly:    "Quarterly",
	Monthly:      "Monthly",
}

// Valid reports whether f is one of the supported compounding frequencies.
func (f Frequency) Valid() bool {
	_, ok := frequencyNames[f]
	return ok
}

func (f Frequency) String() string {
	if name, ok := frequencyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Frequency(%d)", int(f))
}

// ParseFrequency accepts a selector name ("Quarterly") or its periods per
// year ("4"). An empty value defaults to Annually.
func ParseFrequency(value string) (Frequency, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Annually, nil
	}
	for _, f := range Frequencies {
		if strings.EqualFold(trimmed, f.String()) || trimmed == fmt.Sprintf("%d", int(f)) {
			return f, nil
		}
	}
	return 0, undefined(ReasonFrequency)
}
