package perf

import "fmt"

// Phase names the harness pass a case was running in.
type Phase string

const (
	PhaseWarmUp      Phase = "warm-up"
	PhaseMeasurement Phase = "measurement"
)

// FailurePolicy decides what RunAll does when a case panics.
type FailurePolicy int

const (
	// FailFast stops the run and returns the *CaseError.
	FailFast FailurePolicy = iota
	// SkipFailed records the error on the case's Measurement, skips the
	// rest of that case and continues with the others.
	SkipFailed
)

func (p FailurePolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case SkipFailed:
		return "skip-failed"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// CaseError reports a panic raised by a case's work function.
type CaseError struct {
	Label string
	Phase Phase
	Value any
	// Stack is the panicking goroutine's stack at recovery.
	Stack string
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("test case '%s' failed during %s: %v", e.Label, e.Phase, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *CaseError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
