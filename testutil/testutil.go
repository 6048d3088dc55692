// Package testutil provides deterministic point-cloud generators for tests
// and benchmarks.
package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a normally distributed float64 with mean 0, stddev 1.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// UniformCloud generates n points uniformly distributed in the unit
// hypercube of the given dimensionality.
func UniformCloud(rng *RNG, n, dims int) [][]float64 {
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, dims)
		for d := range p {
			p[d] = rng.Float64()
		}
		points[i] = p
	}
	return points
}

// GaussianCluster generates n points normally distributed around center with
// the given standard deviation.
func GaussianCluster(rng *RNG, n int, center []float64, stddev float64) [][]float64 {
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, len(center))
		for d := range p {
			p[d] = center[d] + rng.NormFloat64()*stddev
		}
		points[i] = p
	}
	return points
}

// Colinear generates 1-dimensional points at the given positions.
// Handy for scenarios with hand-computable spanning forests.
func Colinear(positions ...float64) [][]float64 {
	points := make([][]float64, len(positions))
	for i, x := range positions {
		points[i] = []float64{x}
	}
	return points
}

// SeparatedClusters generates two Gaussian clusters far enough apart that a
// small k keeps them in separate forest components. The gap scales with
// both stddev and the cluster sizes.
func SeparatedClusters(rng *RNG, nA, nB, dims int, stddev float64) [][]float64 {
	centerA := make([]float64, dims)
	centerB := make([]float64, dims)
	centerB[0] = stddev * 1000 * math.Max(1, float64(nA+nB))

	points := GaussianCluster(rng, nA, centerA, stddev)
	return append(points, GaussianCluster(rng, nB, centerB, stddev)...)
}
