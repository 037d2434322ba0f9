// Package denclue implements DENCLUE, a density-based clustering algorithm
// for multi-dimensional numeric point sets.
//
// Given a set of points and two parameters — Sigma (the Gaussian kernel
// bandwidth) and Xi (the minimum density threshold) — DENCLUE partitions a
// density-significant subset of the points into clusters. Each cluster is
// the basin of attraction of a local maximum ("density attractor") of an
// estimated kernel density field; two attractors are merged into one
// cluster when they are connected by a path of nearby, dense points.
//
// Basic usage:
//
//	ds := denclue.NewDataset(2)
//	ds.Add(denclue.NewPoint([]float64{0, 0}))
//	ds.Add(denclue.NewPoint([]float64{0.1, 0.1}))
//	// ...
//	cfg := denclue.Config{Dim: 2, Sigma: 1.0, Xi: 2.0}
//	clusters, err := denclue.Run(ds, cfg)
//	// clusters[i].Attractor is the density attractor of cluster i.
//	// clusters[i].Members are the points that climb to it.
//
// # Grid pruning
//
// Before any density is computed, the dataset's bounding box is partitioned
// into hypercubes of edge 2*Sigma. Cubes with fewer than Xi/(2*Dim) points
// are pruned unless they neighbor a cube that meets that threshold; only
// points in the surviving high-populated cubes ever receive a density or
// participate in hill-climbing. This keeps both phases proportional to the
// size of the dense regions rather than the full dataset.
package denclue
