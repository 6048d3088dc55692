// Package pershout assigns every point in a point cloud a normalized
// persistence score derived from a minimum spanning forest built over its
// k-nearest-neighbor graph.
//
// Persistence measures how strongly a point is attached to the rest of the
// cloud: a point whose nearest spanning connection is long gets a score near
// 1 (weak attachment, outlier or cluster boundary), a point tightly bound to
// a dense neighborhood scores near 0. The signal feeds density-based outlier
// detection; pershout itself performs no clustering or thresholding.
//
// # Pipeline
//
// Data flows strictly forward through five stages, each consuming an
// immutable snapshot of its predecessor's output:
//
//	points -> k-NN graph -> sanitized graph -> spanning forest
//	       -> persistence vector -> normalized scores + ranking
//
// The forest is approximate: it only ever sees the k-restricted graph, so
// far-apart clusters may end up in separate trees. Per-vertex disconnection
// is surfaced as a NaN sentinel plus a bitmap, never coerced to a score.
//
// # Quick Start
//
//	points, _ := pointset.New(rows)
//	result, err := pershout.Run(ctx, points,
//	    pershout.WithK(20),
//	    pershout.WithMetric(distance.MetricEuclidean),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, i := range result.Ranking {
//	    fmt.Println(i, result.Scores[i])
//	}
//
// Determinism: identical input and options yield bit-identical forests,
// vectors and rankings across runs. All ties are broken by fixed total
// orders on vertex indices.
package pershout
