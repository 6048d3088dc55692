package pershout

import (
	"errors"
	"fmt"

	"github.com/doccosmos/pershout/distance"
	"github.com/doccosmos/pershout/graph"
	"github.com/doccosmos/pershout/knn"
	"github.com/doccosmos/pershout/score"
)

var (
	// ErrInvalidParameter unifies all parameter validation failures:
	// bad neighbor count, unknown metric, invalid metric params.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateGraph is returned when all pairwise distances are zero,
	// leaving no scale to derive the zero-substitution epsilon from.
	ErrDegenerateGraph = errors.New("degenerate graph")

	// ErrDegenerateRange is returned when the normalization range collapses
	// to a single value or no positive forest weight exists.
	ErrDegenerateRange = errors.New("degenerate range")
)

// translateError maps stage-level errors onto the package sentinels while
// keeping the original error reachable through errors.As / errors.Unwrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ik *knn.ErrInvalidK
	if errors.As(err, &ik) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	var im *distance.ErrInvalidMetric
	if errors.As(err, &im) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	var ie *distance.ErrInvalidExponent
	if errors.As(err, &ie) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	if errors.Is(err, graph.ErrDegenerateGraph) {
		return fmt.Errorf("%w: %w", ErrDegenerateGraph, err)
	}
	var dr *score.ErrDegenerateRange
	if errors.As(err, &dr) {
		return fmt.Errorf("%w: %w", ErrDegenerateRange, err)
	}

	return err
}
