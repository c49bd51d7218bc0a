package score

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lapjv/lap"
)

// Scorer computes the pairwise suitability of two free-text labels.
// Higher is better; 0 means "no affinity". Implementations must be
// deterministic and return finite non-negative values.
type Scorer func(a, b string) float64

// Pair is one matched (row label, column label) couple with the score
// that backed the match.
type Pair struct {
	A, B  string
	Score float64
}

// Matching is the relabeled result of one assignment run. Pairs appear
// in row order; pairs that landed on padding are omitted, so on
// unequal collections len(Pairs) == min(len(rows), len(cols)).
type Matching struct {
	Pairs []Pair
	Total float64 // sum of the kept pairs' scores
}

// Bigram is the default Scorer: the Sørensen–Dice coefficient over
// case-folded rune bigrams, in [0, 1]. 1 means the multisets of
// bigrams coincide, 0 means no bigram in common.
//
// Inputs shorter than two runes have no bigrams; they score 1 on an
// exact case-folded match and 0 otherwise.
func Bigram(a, b string) float64 {
	ra := []rune(strings.ToLower(strings.TrimSpace(a)))
	rb := []rune(strings.ToLower(strings.TrimSpace(b)))
	if len(ra) < 2 || len(rb) < 2 {
		if len(ra) > 0 && string(ra) == string(rb) {
			return 1
		}

		return 0
	}

	// Multiset intersection of bigrams.
	counts := make(map[[2]rune]int, len(ra)-1)
	for i := 0; i+1 < len(ra); i++ {
		counts[[2]rune{ra[i], ra[i+1]}]++
	}
	common := 0
	for i := 0; i+1 < len(rb); i++ {
		bg := [2]rune{rb[i], rb[i+1]}
		if counts[bg] > 0 {
			counts[bg]--
			common++
		}
	}

	return 2 * float64(common) / float64(len(ra)-1+len(rb)-1)
}

// BuildCostMatrix scores every (row, col) pair and converts the reward
// into a cost by negation. Zero-score pairs (including everything
// below the WithMinScore floor) take the zero penalty instead, as do
// the padding cells added to make the matrix square.
//
// Returns ErrNoLabels if either collection is empty.
//
// Complexity: O(dim²) Scorer calls, dim = max(len(rows), len(cols)).
func BuildCostMatrix(rows, cols []string, opts ...Option) ([][]float64, error) {
	return buildCost(rows, cols, gatherOptions(opts...))
}

func buildCost(rows, cols []string, o Options) ([][]float64, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, ErrNoLabels
	}

	dim := len(rows)
	if len(cols) > dim {
		dim = len(cols)
	}

	cost := make([][]float64, dim)
	for i := range cost {
		cost[i] = make([]float64, dim)
		for j := range cost[i] {
			if i >= len(rows) || j >= len(cols) {
				cost[i][j] = o.zeroPenalty // padding cell

				continue
			}
			if s := o.suitability(rows[i], cols[j]); s > 0 {
				cost[i][j] = -s
			} else {
				cost[i][j] = o.zeroPenalty
			}
		}
	}

	return cost, nil
}

// Match scores rows against cols, solves the assignment, and maps the
// indices back to labels. The matching maximizes total suitability
// (the solver minimizes total negated score); rows or columns beyond
// the shorter collection stay unmatched and are dropped.
func Match(rows, cols []string, opts ...Option) (*Matching, error) {
	o := gatherOptions(opts...)

	cost, err := buildCost(rows, cols, o)
	if err != nil {
		return nil, err
	}

	res, err := lap.Solve(cost)
	if err != nil {
		// Unreachable for matrices built above, but forwarded verbatim
		// for callers composing BuildCostMatrix themselves.
		return nil, fmt.Errorf("score: solve: %w", err)
	}

	m := &Matching{Pairs: make([]Pair, 0, len(rows))}
	for i := range rows {
		j := int(res.RowToCol[i])
		if j >= len(cols) {
			continue // padded column, row stays unmatched
		}
		s := o.suitability(rows[i], cols[j])
		m.Pairs = append(m.Pairs, Pair{A: rows[i], B: cols[j], Score: s})
		m.Total += s
	}

	return m, nil
}
