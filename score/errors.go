package score

import "fmt"

// ErrDegenerateRange indicates that the normalization range collapsed:
// either no strictly positive forest edge weight exists, or the minimum and
// maximum coincide. A single-valued or empty distribution cannot be min-max
// rescaled.
type ErrDegenerateRange struct {
	Lmin, Lmax float64
}

func (e *ErrDegenerateRange) Error() string {
	if e.Lmin == 0 && e.Lmax == 0 {
		return "degenerate range: no positive forest edge weight to normalize against"
	}
	return fmt.Sprintf("degenerate range: lmin == lmax == %v", e.Lmin)
}
