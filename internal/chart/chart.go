// Package chart renders the principal/interest breakdown of a calculation
// as a PNG pie chart.
package chart

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/format"
	"github.com/iwvelando/interest-calculator/pkg/mathutil"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Title is the heading drawn above the pie.
const Title = "Breakup of Amount"

var (
	principalColor = drawing.ColorFromHex("66b3ff")
	interestColor  = drawing.ColorFromHex("ff9999")
)

// ErrInvalidBreakdown is returned for negative or non-finite components, or
// when both components are zero.
var ErrInvalidBreakdown = errors.New("chart components must be finite, non-negative and not both zero")

// Renderer draws breakdown charts of a fixed size.
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer returns a renderer producing 400x300 images.
func NewRenderer() *Renderer {
	return &Renderer{Width: constants.ChartWidth, Height: constants.ChartHeight}
}

// Render returns the PNG bytes of a pie with a Principal and an Interest
// slice. A zero interest component draws the principal slice alone.
func (r *Renderer) Render(principal, interest float64) ([]byte, error) {
	if !mathutil.IsFinite(principal) || !mathutil.IsFinite(interest) ||
		principal < 0 || interest < 0 || principal+interest == 0 {
		return nil, ErrInvalidBreakdown
	}

	total := principal + interest
	var values []gochart.Value
	if principal > 0 {
		values = append(values, slice("Principal", principal, total, principalColor))
	}
	if interest > 0 {
		values = append(values, slice("Interest", interest, total, interestColor))
	}

	pie := gochart.PieChart{
		Title:  Title,
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render breakdown chart: %w", err)
	}
	return buf.Bytes(), nil
}

func slice(label string, value, total float64, color drawing.Color) gochart.Value {
	return gochart.Value{
		Label: fmt.Sprintf("%s %s", label, format.Percent(mathutil.CalculatePercentage(value, total))),
		Value: value,
		Style: gochart.Style{
			FillColor:   color,
			StrokeColor: drawing.ColorWhite,
		},
	}
}
