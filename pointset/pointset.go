// Package pointset provides the immutable point-cloud container consumed by
// the scoring pipeline. Index 0..N-1 is the canonical point identity used by
// every downstream stage.
package pointset

import (
	"errors"
	"fmt"
)

// ErrEmptySet is returned when a set is constructed from zero points.
var ErrEmptySet = errors.New("point set must contain at least one point")

// ErrDimensionMismatch is a named error type for ragged input rows.
type ErrDimensionMismatch struct {
	Expected int // Dimensionality of row 0
	Actual   int // Dimensionality of the offending row
	Row      int // Index of the offending row
}

// Error returns the error message for a ragged row.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at row %d: expected %d, got %d", e.Row, e.Expected, e.Actual)
}

// Set is an ordered, immutable sequence of D-dimensional points.
// Construction copies the input rows, so callers may reuse their buffers.
type Set struct {
	dims   int
	points [][]float64
}

// New creates a Set from the given rows. All rows must share the
// dimensionality of row 0 and the set must be non-empty.
func New(points [][]float64) (*Set, error) {
	if len(points) == 0 {
		return nil, ErrEmptySet
	}

	dims := len(points[0])
	if dims == 0 {
		return nil, &ErrDimensionMismatch{Expected: 1, Actual: 0, Row: 0}
	}

	owned := make([][]float64, len(points))
	flat := make([]float64, len(points)*dims)
	for i, p := range points {
		if len(p) != dims {
			return nil, &ErrDimensionMismatch{Expected: dims, Actual: len(p), Row: i}
		}
		row := flat[i*dims : (i+1)*dims : (i+1)*dims]
		copy(row, p)
		owned[i] = row
	}

	return &Set{dims: dims, points: owned}, nil
}

// Len returns the number of points N.
func (s *Set) Len() int { return len(s.points) }

// Dims returns the dimensionality D shared by all points.
func (s *Set) Dims() int { return s.dims }

// At returns the coordinates of point i. The returned slice is owned by the
// set and must not be mutated.
func (s *Set) At(i int) []float64 { return s.points[i] }
