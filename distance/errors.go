package distance

import "fmt"

// ErrInvalidMetric indicates an unsupported metric name or value.
type ErrInvalidMetric struct {
	Name string
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("invalid metric: %q", e.Name)
}

// ErrInvalidExponent indicates a Minkowski exponent outside [1, +Inf).
type ErrInvalidExponent struct {
	P float64
}

func (e *ErrInvalidExponent) Error() string {
	if e.P == 0 {
		return "minkowski metric requires an exponent p >= 1"
	}
	return fmt.Sprintf("invalid minkowski exponent: %v (must be >= 1)", e.P)
}
