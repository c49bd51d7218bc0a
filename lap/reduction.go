package lap

// columnReduction computes the initial column duals and a greedy
// partial assignment: each column takes its cheapest row, and a row
// that wins several columns keeps the one with the strictly smallest
// dual.
//
// Columns are scanned in descending index order. The ordering is load-
// bearing: it empirically reduces the number of augmentations phase 5
// has to run, and later phases inherit the duals it produces.
func (s *solver) columnReduction() {
	var imin, j1 int
	var min float64
	for j := s.n - 1; j >= 0; j-- {
		// Cheapest row for column j.
		imin = 0
		min = s.cost[0][j]
		for i := 1; i < s.n; i++ {
			if s.cost[i][j] < min {
				min = s.cost[i][j]
				imin = i
			}
		}
		s.v[j] = min

		s.matches[imin]++
		switch {
		case s.matches[imin] == 1:
			// First column won by imin: tentative assignment.
			s.rowToCol[imin] = j
			s.colToRow[j] = imin
		case min < s.v[s.rowToCol[imin]]:
			// imin already holds a column with a larger dual; moving it
			// here frees that column. v of the displaced column was set
			// in an earlier (higher-index) iteration, so the comparison
			// is well-defined.
			j1 = s.rowToCol[imin]
			s.rowToCol[imin] = j
			s.colToRow[j] = imin
			s.colToRow[j1] = unassigned
		default:
			s.colToRow[j] = unassigned
		}
	}
}

// reductionTransfer tightens the dual of each singly-matched row's
// column by the slack to its best alternative, and collects the rows
// that won nothing into the initial free list.
//
// The eps margin keeps near-ties from displacing the running minimum,
// so the transferred slack is stable under floating-point noise.
func (s *solver) reductionTransfer() {
	var j1 int
	var min float64
	for i := 0; i < s.n; i++ {
		switch {
		case s.matches[i] == 0:
			s.free = append(s.free, i)
		case s.matches[i] == 1:
			j1 = s.rowToCol[i]
			min = s.big
			for j := 0; j < s.n; j++ {
				if j != j1 && s.cost[i][j]-s.v[j] < min-s.eps {
					min = s.cost[i][j] - s.v[j]
				}
			}
			s.v[j1] -= min
		}
	}
}

// augmentingRowReduction extends the partial assignment using the first
// and second minima of each free row's reduced costs, possibly
// displacing previously assigned rows. Exactly two passes: the second
// catches rows displaced during the first.
func (s *solver) augmentingRowReduction() {
	var i, i0, j1, j2, k, numfree int
	var umin, usubmin, h float64
	var better bool
	for pass := 0; pass < 2; pass++ {
		k = 0
		numfree = 0 // next pass's rows, compacted into the consumed prefix
		for k < len(s.free) {
			i = s.free[k]
			k++

			// First minimum (umin at j1) and second minimum (usubmin at
			// j2) of cost[i][j] - v[j] over all columns.
			umin = s.cost[i][0] - s.v[0]
			j1 = 0
			usubmin = s.big
			j2 = unassigned
			for j := 1; j < s.n; j++ {
				h = s.cost[i][j] - s.v[j]
				if h < usubmin {
					if h >= umin {
						usubmin = h
						j2 = j
					} else {
						usubmin = umin
						j2 = j1
						umin = h
						j1 = j
					}
				}
			}

			i0 = s.colToRow[j1]
			better = umin < usubmin+s.eps
			if better {
				// The minimum is strictly better within tolerance: lower
				// v[j1] so j1 stays optimal for i but loses appeal for
				// every other row.
				s.v[j1] -= usubmin + s.eps - umin
			} else if i0 >= 0 && j2 >= 0 {
				// Near-tie at the minimum and j1 is taken; j2 costs the
				// same within tolerance and may be free.
				j1 = j2
				i0 = s.colToRow[j1]
			}

			// Claim the chosen column, displacing its occupant if any.
			s.rowToCol[i] = j1
			s.colToRow[j1] = i

			if i0 >= 0 {
				if better {
					// v[j1] just moved, so i0 sees fresh reduced costs:
					// splice it back in at the current scan position and
					// retry it in this pass. Requeueing is safe only on
					// this branch — the dual reduction guarantees
					// progress.
					k--
					s.free[k] = i0
				} else {
					// Equal minima left the duals untouched; i0 waits
					// for the next pass.
					s.free[numfree] = i0
					numfree++
				}
			}
		}
		s.free = s.free[:numfree]
	}
}
