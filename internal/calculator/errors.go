package calculator

// Reasons reported to users for rejected input.
const (
	ReasonNotPositive = "Values must be positive."
	ReasonNotNumber   = "Values must be numbers."
	ReasonChooseKind  = "Choose a calculation type."
	ReasonZeroRateEMI = "rate must be positive for EMI"
	ReasonShortEMI    = "time must cover at least one month for EMI"
	ReasonFrequency   = "unsupported compounding frequency"
	ReasonNotFinite   = "result is not a finite number"
)

// ValidationError reports input that violates the calculation preconditions.
// Error returns the reason verbatim so it can be shown to users.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// DomainError reports input for which the selected formula is undefined.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return e.Reason
}

func invalid(reason string) error {
	return &ValidationError{Reason: reason}
}

func undefined(reason string) error {
	return &DomainError{Reason: reason}
}
