package ga

import "fmt"

// InvariantViolation marks a structural-invariant failure (spec §7, kind 2):
// a configuration lookup out of bounds, or any state the driver cannot
// construct a valid initial population from. Unlike fitness penalties,
// this is fatal — it never reaches the evaluator.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Reason)
}

func newInvariantViolation(format string, args ...any) error {
	return &InvariantViolation{Reason: fmt.Sprintf(format, args...)}
}
