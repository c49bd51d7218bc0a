// Package lapjv solves the square Linear Assignment Problem (LAP):
// given an n×n matrix of real-valued costs between n rows and n
// columns, find the perfect matching that minimizes total cost.
//
// 🚀 What is lapjv?
//
//	A pure-Go implementation of the Jonker–Volgenant shortest
//	augmenting path algorithm, plus the thin layers that turn two
//	lists of labels into a cost matrix and back:
//		• lap/   — the numerical core: dual-variable reduction,
//		  augmenting row reduction and a partitioned Dijkstra-like
//		  search with floating-point tie-break tolerances
//		• score/ — pairwise suitability scoring, reward→cost
//		  conversion and label mapping
//		• cmd/lapjv — a small CLI that matches two files of labels
//
// ✨ Why choose lapjv?
//
//   - Practical O(n²) behavior versus the O(n³) of the classical
//     Hungarian method on dense matrices
//   - Deterministic: no randomness, no global state, scale-derived
//     tie-break tolerances passed explicitly through every phase
//   - Pure Go core — no cgo, no hidden deps
//   - Verified: brute-force cross-checks, dual-feasibility and
//     bijection property tests
//
// Quick sketch:
//
//	cost := [][]float64{
//	    {1, 2, 3},
//	    {4, 2, 1},
//	    {2, 2, 2},
//	}
//	res, err := lap.Solve(cost)
//	// res.Cost == 4, rows 0,1,2 → columns 0,2,1
//
// See lap/doc.go for the algorithm, score/doc.go for matrix
// construction, and examples/ for runnable programs.
package lapjv
