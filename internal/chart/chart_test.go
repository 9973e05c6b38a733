package chart

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"
)

func TestRenderDimensions(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		interest  float64
	}{
		{"Simple interest split", 1000, 100},
		{"EMI split", 100000, 24550.4},
		{"Zero interest", 1000, 0},
	}

	renderer := NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := renderer.Render(tt.principal, tt.interest)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Render() did not produce a PNG: %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != 400 || bounds.Dy() != 300 {
				t.Errorf("image size = %dx%d, expected 400x300", bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestRenderRejectsInvalidBreakdown(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		interest  float64
	}{
		{"Negative interest", 1000, -1},
		{"Negative principal", -1, 10},
		{"Both zero", 0, 0},
		{"NaN interest", 1000, math.NaN()},
		{"Infinite principal", math.Inf(1), 1},
	}

	renderer := NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := renderer.Render(tt.principal, tt.interest); !errors.Is(err, ErrInvalidBreakdown) {
				t.Errorf("Render() error = %v, expected ErrInvalidBreakdown", err)
			}
		})
	}
}

func TestSliceLabels(t *testing.T) {
	value := slice("Interest", 100, 1100, interestColor)
	if value.Label != "Interest 9.1%" {
		t.Errorf("label = %q, expected %q", value.Label, "Interest 9.1%")
	}
	if value.Value != 100 {
		t.Errorf("value = %v, expected 100", value.Value)
	}
}
