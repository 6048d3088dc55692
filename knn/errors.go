package knn

import "fmt"

// ErrInvalidK indicates a neighbor count outside the valid range [1, N-1].
// There is no fallback policy: the caller must choose a k that fits the set.
type ErrInvalidK struct {
	K int
	N int
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("invalid neighbor count k=%d for %d points (need 1 <= k <= %d)", e.K, e.N, e.N-1)
}
