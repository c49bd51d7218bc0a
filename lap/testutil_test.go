package lap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lapjv/lap"
	"github.com/stretchr/testify/require"
)

// requireBijection asserts that RowToCol and ColToRow are mutual
// inverse permutations of [0, n).
func requireBijection(t *testing.T, res *lap.Result, n int) {
	t.Helper()
	require.Len(t, res.RowToCol, n)
	require.Len(t, res.ColToRow, n)

	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		j := int(res.RowToCol[i])
		require.GreaterOrEqual(t, j, 0, "row %d unassigned", i)
		require.Less(t, j, n, "row %d out of range", i)
		require.False(t, seen[j], "column %d assigned twice", j)
		seen[j] = true
		require.EqualValues(t, i, res.ColToRow[j], "ColToRow must invert RowToCol at column %d", j)
	}
}

// assignedCost recomputes Σ cost[i][RowToCol[i]] from scratch.
func assignedCost(cost [][]float64, res *lap.Result) float64 {
	var total float64
	for i := range cost {
		total += cost[i][res.RowToCol[i]]
	}

	return total
}

// tieEps recomputes the solver's tie-break tolerance (mean magnitude
// divided by 10000) so tolerance-based assertions track the matrix
// scale.
func tieEps(cost [][]float64) float64 {
	var sum float64
	for i := range cost {
		for _, c := range cost[i] {
			sum += math.Abs(c)
		}
	}

	return sum / float64(len(cost)) / 10000.0
}

// bruteForce enumerates all n! assignments and returns the minimal
// total cost together with how many permutations achieve it.
// Only sensible for n ≤ 8.
func bruteForce(cost [][]float64) (min float64, count int) {
	n := len(cost)
	used := make([]bool, n)
	min = math.Inf(1)

	var walk func(row int, acc float64)
	walk = func(row int, acc float64) {
		if row == n {
			switch {
			case acc < min:
				min = acc
				count = 1
			case acc == min:
				count++
			}

			return
		}
		for j := 0; j < n; j++ {
			if !used[j] {
				used[j] = true
				walk(row+1, acc+cost[row][j])
				used[j] = false
			}
		}
	}
	walk(0, 0)

	return min, count
}
