// Package lap solves the square Linear Assignment Problem with the
// Jonker–Volgenant shortest augmenting path algorithm.
//
// Overview:
//
//   - Given an n×n matrix of finite real costs, Solve finds the
//     bijection row→column minimizing the total assigned cost, together
//     with the dual variables (u, v) certifying optimality.
//   - The algorithm runs five strictly sequential phases over shared
//     mutable state: scale estimation, column reduction, reduction
//     transfer, augmenting row reduction (two passes), and one shortest
//     augmenting path search per remaining free row.
//   - Tie-breaking uses two scale-derived constants: big (a large finite
//     surrogate for +∞) and eps (a tolerance ≈ mean/10000). Both are
//     derived from the input and passed explicitly; there is no global
//     state.
//
// Complexity:
//
//   - Time:  O(n³) worst case, O(n²) observed on dense matrices —
//     the reduction phases resolve most rows before the augmentation
//     phase ever runs a full search.
//   - Space: O(n²) for the caller's matrix; O(n) working state.
//
// Notes on implementation choices:
//
//   - The shortest-path phase keeps an explicit three-region partition
//     (finalized / frontier / unvisited) over one fixed index buffer,
//     advanced by two cursors. A generic priority queue would change the
//     batched-tie behavior the duals depend on, so it is avoided.
//   - Columns are reduced in descending index order; this empirically
//     lowers the later augmentation count and is preserved exactly.
//   - Displaced rows in the augmenting-row-reduction phase are spliced
//     back into the free list at the current scan position, so the list
//     is an index-addressable buffer rather than a queue.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrNilMatrix     — nil or zero-length cost matrix.
//   - ErrNonSquare     — a row whose length differs from n.
//   - ErrNonFiniteCost — a NaN or ±Inf entry.
//
// All validation happens before the first phase; there is no partial
// result on failure.
//
// Known degenerate case: if every cost is exactly zero, big and eps both
// collapse to zero and tie-breaking degrades to exact floating equality.
// The solver still returns a valid bijection; it simply loses the
// deterministic tie-break robustness. This mirrors the reference
// algorithm and is intentionally not special-cased.
//
// Example:
//
//	res, err := lap.Solve([][]float64{
//	    {1, 2, 3},
//	    {4, 2, 1},
//	    {2, 2, 2},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost, res.RowToCol) // 4 [0 2 1]
package lap
