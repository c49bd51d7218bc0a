package lap

// augmentation resolves every row still free after the reduction
// phases with one shortest augmenting path search each. Searches run
// strictly in order: each one consumes the duals updated by the
// previous one.
func (s *solver) augmentation() {
	for _, freerow := range s.free {
		s.shortestPath(freerow)
	}
	s.free = s.free[:0]
}

// shortestPath runs one Dijkstra-like search over reduced costs from
// freerow to some unassigned column, then flips ownership along the
// alternating path and reprices the columns finalized on the way.
//
// collist is partitioned in place into three contiguous regions:
//
//	[0:low)   finalized — distance settled, awaiting the price update
//	[low:up)  frontier  — columns at the current minimum distance
//	[up:n)    unvisited
//
// Ties are batched: whenever the frontier empties, every unvisited
// column at the new global minimum joins it in one sweep. A relaxation
// that lands exactly on the minimum at an unassigned column ends the
// search immediately. Termination is guaranteed for a finite square
// matrix — an unassigned column is always reachable.
func (s *solver) shortestPath(freerow int) {
	// Every column starts unvisited, one hop from freerow.
	for j := 0; j < s.n; j++ {
		s.dist[j] = s.cost[freerow][j] - s.v[j]
		s.pred[j] = freerow
		s.collist[j] = j
	}

	var (
		low, up   int
		last      int
		min       float64
		endofpath = unassigned
		found     bool
		i, j, j1  int
		h, v2     float64
	)

	for !found {
		if up == low {
			// Frontier is empty: sweep the unvisited region for the new
			// global minimum, moving every column that achieves it into
			// the frontier together.
			last = low - 1
			min = s.dist[s.collist[up]]
			up++
			for k := up; k < s.n; k++ {
				j = s.collist[k]
				h = s.dist[j]
				if h <= min {
					if h < min {
						up = low // strictly better: restart the batch
						min = h
					}
					s.collist[k] = s.collist[up]
					s.collist[up] = j
					up++
				}
			}
			// Any unassigned frontier column completes an augmenting path.
			for k := low; k < up; k++ {
				if s.colToRow[s.collist[k]] < 0 {
					endofpath = s.collist[k]
					found = true

					break
				}
			}
		}

		if !found {
			// Pop one frontier column and relax the unvisited region
			// through the row occupying it.
			j1 = s.collist[low]
			low++
			i = s.colToRow[j1]
			h = s.cost[i][j1] - s.v[j1] - min
			for k := up; k < s.n; k++ {
				j = s.collist[k]
				v2 = s.cost[i][j] - s.v[j] - h
				if v2 < s.dist[j] {
					s.pred[j] = i
					if v2 == min {
						if s.colToRow[j] < 0 {
							// Tie with an unassigned column: the path is
							// complete, no need to settle the distance.
							endofpath = j
							found = true

							break
						}
						s.collist[k] = s.collist[up]
						s.collist[up] = j
						up++
					}
					s.dist[j] = v2
				}
			}
		}
	}

	// Reprice every column finalized during the scan. This is the dual
	// update that keeps complementary slackness after the flip below.
	for k := 0; k <= last; k++ {
		j1 = s.collist[k]
		s.v[j1] += s.dist[j1] - min
	}

	// Walk the predecessors back from the end column, flipping
	// row/column ownership until the walk returns to freerow.
	for {
		i = s.pred[endofpath]
		s.colToRow[endofpath] = i
		j1 = endofpath
		endofpath = s.rowToCol[i]
		s.rowToCol[i] = j1
		if i == freerow {
			break
		}
	}
}
