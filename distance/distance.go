// Package distance provides the pairwise distance metrics used when building
// the neighbor graph. All metrics operate on equal-length float64 vectors;
// length agreement is the caller's responsibility (pointset.Set enforces a
// rectangular layout).
package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Euclidean calculates the L2 distance between two vectors.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean calculates the squared L2 distance between two vectors.
// Cheaper than Euclidean and order-preserving, but not a true metric.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Manhattan calculates the L1 distance between two vectors.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Chebyshev calculates the L-infinity distance between two vectors.
func Chebyshev(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// Minkowski returns the Lp distance function for the given exponent.
// The exponent must satisfy p >= 1 for the result to be a metric.
func Minkowski(p float64) Func {
	return func(a, b []float64) float64 {
		return floats.Distance(a, b, p)
	}
}

// Metric represents the distance metric used for pairwise comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
	MetricManhattan
	MetricChebyshev
	MetricMinkowski
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	case MetricManhattan:
		return "Manhattan"
	case MetricChebyshev:
		return "Chebyshev"
	case MetricMinkowski:
		return "Minkowski"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric maps a metric name (as accepted on the CLI or in config files)
// to its Metric value.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "euclidean", "l2":
		return MetricEuclidean, nil
	case "sqeuclidean":
		return MetricSquaredEuclidean, nil
	case "manhattan", "l1", "cityblock":
		return MetricManhattan, nil
	case "chebyshev", "linf":
		return MetricChebyshev, nil
	case "minkowski":
		return MetricMinkowski, nil
	default:
		return 0, &ErrInvalidMetric{Name: name}
	}
}

// Params carries optional metric configuration. Only Minkowski consumes it.
type Params struct {
	// P is the Minkowski exponent. Must be >= 1.
	P float64
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
// MetricMinkowski requires params with a valid exponent; every other metric
// ignores params entirely.
func Provider(m Metric, params *Params) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	case MetricMinkowski:
		if params == nil {
			return nil, &ErrInvalidExponent{}
		}
		if math.IsNaN(params.P) || params.P < 1 {
			return nil, &ErrInvalidExponent{P: params.P}
		}
		return Minkowski(params.P), nil
	default:
		return nil, &ErrInvalidMetric{Name: m.String()}
	}
}
