package lap

import (
	"fmt"
	"math"
)

// Solve computes a minimum-cost perfect matching for the given square
// cost matrix and returns it together with the optimality certificate
// (the dual vectors u and v).
//
// Preconditions (validated before any phase runs, in order):
//  1. cost must be non-nil and non-empty (ErrNilMatrix).
//  2. every row must have exactly len(cost) entries (ErrNonSquare).
//  3. every entry must be finite — no NaN, no ±Inf (ErrNonFiniteCost).
//
// Postconditions:
//
//   - RowToCol and ColToRow are mutual inverse permutations of [0, n).
//   - Cost == Σ cost[i][RowToCol[i]].
//   - U[i] + V[RowToCol[i]] == cost[i][RowToCol[i]] for every row i.
//
// The matrix is read-only during the solve; all mutable state lives in
// a per-call solver and is discarded once the Result is built.
//
// Complexity: O(n³) worst case, O(n²) in practice on dense inputs.
func Solve(cost [][]float64) (*Result, error) {
	// 1) Validate shape and finiteness. Malformed input must never
	//    reach the reduction phases: the algorithm has no internal
	//    guard against relaxation loops over non-finite entries.
	n, err := validate(cost)
	if err != nil {
		return nil, err
	}

	// 2) Fresh per-call state; nothing persists across solves.
	s := newSolver(n, cost)

	// 3) Phases run strictly in order. Each augmentation in phase 5
	//    consumes duals updated by the previous one, so there is no
	//    internal parallelism to exploit here.
	s.columnReduction()        // greedy partial assignment + column duals
	s.reductionTransfer()      // tighten duals of singly-matched rows
	s.augmentingRowReduction() // two-pass cheap augmentation heuristic
	s.augmentation()           // shortest augmenting path per free row

	// 4) Derive row duals and the total cost from the completed
	//    assignment.
	return s.finalize(), nil
}

// validate checks the Solve preconditions and returns the dimension.
func validate(cost [][]float64) (int, error) {
	n := len(cost)
	if n == 0 {
		return 0, ErrNilMatrix
	}
	for i, row := range cost {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(row), n)
		}
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return 0, fmt.Errorf("%w: cost[%d][%d] = %v", ErrNonFiniteCost, i, j, c)
			}
		}
	}

	return n, nil
}

// solver holds the mutable state of a single solve: the partial
// assignment, the column duals, the free-row buffer shared by phases 4
// and 5, and the scratch arrays of the shortest-path search.
type solver struct {
	n    int
	cost [][]float64 // caller's matrix; never written

	big float64 // finite stand-in for +∞, scaleFactor × mean cost
	eps float64 // tie-break tolerance, mean cost / scaleFactor

	rowToCol []int // row i → column, or unassigned
	colToRow []int // column j → row, or unassigned
	v        []float64
	matches  []int // columns won per row during column reduction

	// free is the list of rows without a column. Phase 4 both consumes
	// and splices into it at the current scan position, so it is an
	// index-addressable buffer, not a queue.
	free []int

	// Shortest-path scratch, reused across the phase-5 searches.
	dist    []float64 // tentative reduced cost per column
	pred    []int     // row offering the best path to each column
	collist []int     // column indices, partitioned in place
}

// newSolver allocates the working state and derives the scale
// constants from the mean magnitude sum(|cost|)/n. Magnitude, not the
// signed sum: big must stay a large positive sentinel even when
// negative entries dominate the matrix. On an all-zero matrix both
// constants collapse to zero (see package doc).
func newSolver(n int, cost [][]float64) *solver {
	var sum float64
	for i := range cost {
		for _, c := range cost[i] {
			sum += math.Abs(c)
		}
	}
	mean := sum / float64(n)

	s := &solver{
		n:        n,
		cost:     cost,
		big:      scaleFactor * mean,
		eps:      mean / scaleFactor,
		rowToCol: make([]int, n),
		colToRow: make([]int, n),
		v:        make([]float64, n),
		matches:  make([]int, n),
		free:     make([]int, 0, n),
		dist:     make([]float64, n),
		pred:     make([]int, n),
		collist:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		s.rowToCol[i] = unassigned
		s.colToRow[i] = unassigned
	}

	return s
}

// finalize computes the row duals and total cost from the completed
// assignment and converts the index arrays to the public width.
func (s *solver) finalize() *Result {
	res := &Result{
		RowToCol: make([]int32, s.n),
		ColToRow: make([]int32, s.n),
		U:        make([]float64, s.n),
		V:        s.v, // solver state is discarded; hand the slice over
	}
	var j int
	for i := 0; i < s.n; i++ {
		j = s.rowToCol[i]
		res.U[i] = s.cost[i][j] - s.v[j]
		res.Cost += s.cost[i][j]
		res.RowToCol[i] = int32(j)
		res.ColToRow[j] = int32(i)
	}

	return res
}
