// Package calculator implements the simple interest, compound interest and
// EMI formulas behind every presentation surface of interest-calculator.
//
// The package is stateless: Calculate maps an Input to a fresh Result or a
// typed error. Holding the most recent Result is the job of the session
// package.
package calculator

import (
	"math"

	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/mathutil"
)

// Input holds the parsed values of one calculation request.
type Input struct {
	Principal         float64
	AnnualRatePercent float64
	TimeYears         float64
	Kind              Kind
	Frequency         Frequency // only used by Compound
	Currency          string    // display label, never used in arithmetic
}

// InterestBreakdown is the Simple and Compound result variant.
type InterestBreakdown struct {
	Principal   float64 `json:"principal"`
	Interest    float64 `json:"interest"`
	TotalAmount float64 `json:"totalAmount"`
}

// EMIBreakdown is the EMI result variant.
type EMIBreakdown struct {
	Principal     float64 `json:"principal"`
	Months        int     `json:"months"`
	MonthlyRate   float64 `json:"monthlyRate"`
	MonthlyEMI    float64 `json:"monthlyEmi"`
	TotalInterest float64 `json:"totalInterest"`
	TotalPayment  float64 `json:"totalPayment"`
}

// Result is a tagged variant keyed by Kind. Exactly one of Interest and EMI
// is set.
type Result struct {
	Kind      Kind               `json:"kind"`
	Currency  string             `json:"currency"`
	Frequency Frequency          `json:"frequency,omitempty"`
	Interest  *InterestBreakdown `json:"interest,omitempty"`
	EMI       *EMIBreakdown      `json:"emi,omitempty"`
}

// Field is one labelled monetary value of a Result.
type Field struct {
	Label string
	Value float64
}

// Fields returns the labelled values of the result in display order.
func (r Result) Fields() []Field {
	switch {
	case r.EMI != nil:
		return []Field{
			{Label: "Principal", Value: r.EMI.Principal},
			{Label: "Monthly EMI", Value: r.EMI.MonthlyEMI},
			{Label: "Total Interest", Value: r.EMI.TotalInterest},
			{Label: "Total Payment", Value: r.EMI.TotalPayment},
		}
	case r.Interest != nil:
		return []Field{
			{Label: "Principal", Value: r.Interest.Principal},
			{Label: "Interest", Value: r.Interest.Interest},
			{Label: "Total Amount", Value: r.Interest.TotalAmount},
		}
	}
	return nil
}

// Breakdown returns the principal and interest components for charting.
func (r Result) Breakdown() (principal, interest float64) {
	switch {
	case r.EMI != nil:
		return r.EMI.Principal, r.EMI.TotalInterest
	case r.Interest != nil:
		return r.Interest.Principal, r.Interest.Interest
	}
	return 0, 0
}

// Empty reports whether r carries no variant.
func (r Result) Empty() bool {
	return r.Interest == nil && r.EMI == nil
}

// Calculate validates the input and applies the formula selected by Kind.
func Calculate(in Input) (Result, error) {
	// Written as negated comparisons so NaN fails validation too.
	if !(in.Principal > 0) || !(in.AnnualRatePercent >= 0) || !(in.TimeYears > 0) {
		return Result{}, invalid(ReasonNotPositive)
	}

	result := Result{Kind: in.Kind, Currency: in.Currency}
	switch in.Kind {
	case Simple:
		breakdown := SimpleInterest(in.Principal, in.AnnualRatePercent, in.TimeYears)
		result.Interest = &breakdown
	case Compound:
		breakdown, err := CompoundInterest(in.Principal, in.AnnualRatePercent, in.TimeYears, in.Frequency)
		if err != nil {
			return Result{}, err
		}
		result.Frequency = in.Frequency
		result.Interest = &breakdown
	case EMI:
		breakdown, err := MonthlyInstallment(in.Principal, in.AnnualRatePercent, in.TimeYears)
		if err != nil {
			return Result{}, err
		}
		result.EMI = &breakdown
	default:
		return Result{}, invalid(ReasonChooseKind)
	}

	for _, field := range result.Fields() {
		if !mathutil.IsFinite(field.Value) {
			return Result{}, undefined(ReasonNotFinite)
		}
	}
	return result, nil
}

// SimpleInterest computes P*R*T/100 and the resulting total.
func SimpleInterest(principal, annualRatePercent, timeYears float64) InterestBreakdown {
	interest := principal * annualRatePercent * timeYears / constants.PercentageMultiplier
	return InterestBreakdown{
		Principal:   principal,
		Interest:    interest,
		TotalAmount: principal + interest,
	}
}

// CompoundInterest computes P*(1 + R/(100f))^(f*T) for f compounding periods
// per year.
func CompoundInterest(principal, annualRatePercent, timeYears float64, frequency Frequency) (InterestBreakdown, error) {
	if !frequency.Valid() {
		return InterestBreakdown{}, undefined(ReasonFrequency)
	}
	f := float64(frequency)
	total := principal * math.Pow(1+annualRatePercent/(constants.PercentageMultiplier*f), f*timeYears)
	return InterestBreakdown{
		Principal:   principal,
		Interest:    total - principal,
		TotalAmount: total,
	}, nil
}

// MonthlyInstallment computes the equated monthly installment over
// floor(T*12) months.
func MonthlyInstallment(principal, annualRatePercent, timeYears float64) (EMIBreakdown, error) {
	monthlyRate := annualRatePercent / constants.MonthsPerYear / constants.PercentageMultiplier
	if monthlyRate == 0 {
		return EMIBreakdown{}, undefined(ReasonZeroRateEMI)
	}
	totalMonths := timeYears * constants.MonthsPerYear
	if !(totalMonths < math.MaxInt32) {
		return EMIBreakdown{}, undefined(ReasonNotFinite)
	}
	months := int(totalMonths)
	if months < 1 {
		return EMIBreakdown{}, undefined(ReasonShortEMI)
	}

	growth := math.Pow(1+monthlyRate, float64(months))
	emi := principal * monthlyRate * growth / (growth - 1)
	totalPayment := emi * float64(months)
	return EMIBreakdown{
		Principal:     principal,
		Months:        months,
		MonthlyRate:   monthlyRate,
		MonthlyEMI:    emi,
		TotalInterest: totalPayment - principal,
		TotalPayment:  totalPayment,
	}, nil
}
