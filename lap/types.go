package lap

import "errors"

// Sentinel errors returned by Solve. All are input-validation failures
// surfaced before the first phase runs; the algorithm itself has no
// transient failure modes.
var (
	// ErrNilMatrix indicates a nil or zero-length cost matrix.
	ErrNilMatrix = errors.New("lap: cost matrix is nil or empty")

	// ErrNonSquare indicates that some row's length differs from the
	// number of rows. The solver handles square matrices only; callers
	// with rectangular inputs must pad first.
	ErrNonSquare = errors.New("lap: cost matrix is not square")

	// ErrNonFiniteCost indicates a NaN or ±Inf entry. The big sentinel
	// that stands in for +∞ internally only works if every real entry
	// is finite.
	ErrNonFiniteCost = errors.New("lap: non-finite cost entry")
)

// scaleFactor relates the matrix mean to the two derived constants:
// big = scaleFactor * mean acts as a finite +∞ surrogate, and
// eps = mean / scaleFactor is the floating-point tie-break tolerance.
const scaleFactor = 10000.0

// unassigned marks a row or column with no current partner. It never
// survives into a Result.
const unassigned = -1

// Result is the outcome of one solve: the minimal total cost, the
// assignment as a mutual bijection on [0, n), and the dual vectors.
//
// For every row i, RowToCol[ColToRow[RowToCol[i]]] == RowToCol[i] and
// U[i] + V[RowToCol[i]] == cost[i][RowToCol[i]] (complementary
// slackness; exact by construction of U).
type Result struct {
	// Cost is the sum of cost[i][RowToCol[i]] over all rows.
	Cost float64

	// RowToCol maps each row index to its assigned column.
	RowToCol []int32

	// ColToRow maps each column index to its assigned row.
	ColToRow []int32

	// U holds the row duals, V the column duals.
	U, V []float64
}
