package graph

import "errors"

// ErrDegenerateGraph is returned by Sanitize when the graph holds no
// strictly positive edge weight. All points coincide in that case and there
// is no scale from which to derive the zero-replacement epsilon.
var ErrDegenerateGraph = errors.New("degenerate graph: no positive edge weight to derive epsilon from")
