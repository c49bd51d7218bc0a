package lap_test

import (
	"fmt"

	"github.com/katalvlaran/lapjv/lap"
)

// ExampleSolve assigns three rows to three columns at minimal total
// cost. Row 1's cheap column 2 and row 0's cheap column 0 force row 2
// onto column 1, for a total of 1+1+2 = 4.
func ExampleSolve() {
	cost := [][]float64{
		{1, 2, 3},
		{4, 2, 1},
		{2, 2, 2},
	}

	res, err := lap.Solve(cost)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, j := range res.RowToCol {
		fmt.Printf("row %d → col %d (cost %g)\n", i, j, cost[i][j])
	}
	fmt.Printf("total = %g\n", res.Cost)
	// Output:
	// row 0 → col 0 (cost 1)
	// row 1 → col 2 (cost 1)
	// row 2 → col 1 (cost 2)
	// total = 4
}
