package domain

import "fmt"

// Outcome tags how a Result was produced.
type Outcome int

const (
	// OutcomeOK means the value came from the remote API.
	OutcomeOK Outcome = iota
	// OutcomeFallback means the remote call failed and the value is local sample data.
	OutcomeFallback
	// OutcomeFailure means no value could be produced.
	OutcomeFailure
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeFallback:
		return "fallback"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result carries a value together with where it came from, so callers can
// tell live data apart from degraded sample data.
type Result[T any] struct {
	Value   T
	Outcome Outcome
	Cause   error // nil for OutcomeOK
}

// Ok wraps live data.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v, Outcome: OutcomeOK}
}

// Fallback wraps sample data served because of cause.
func Fallback[T any](v T, cause error) Result[T] {
	return Result[T]{Value: v, Outcome: OutcomeFallback, Cause: cause}
}

// Failure reports that no data is available.
func Failure[T any](cause error) Result[T] {
	return Result[T]{Outcome: OutcomeFailure, Cause: cause}
}

// Degraded reports whether the value is sample data.
func (r Result[T]) Degraded() bool { return r.Outcome == OutcomeFallback }

// Failed reports whether the result carries no value.
func (r Result[T]) Failed() bool { return r.Outcome == OutcomeFailure }

// Unwrap returns the value, or the cause for a failure. Fallback values are
// returned without error.
func (r Result[T]) Unwrap() (T, error) {
	if r.Outcome == OutcomeFailure {
		var zero T
		if r.Cause == nil {
			return zero, fmt.Errorf("result failed without cause")
		}
		return zero, r.Cause
	}
	return r.Value, nil
}
