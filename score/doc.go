// Package score turns two labeled collections into a cost matrix for
// the lap solver and maps the solved indices back to labels.
//
// Overview:
//
//   - A Scorer is any func(a, b string) float64 returning a pairwise
//     suitability: higher is better, 0 means "no affinity". The default
//     is Bigram, a case-folded Sørensen–Dice bigram overlap in [0, 1].
//   - BuildCostMatrix converts rewards to costs by negation. Zero-score
//     pairs would otherwise produce degenerate all-zero rows, so they
//     are substituted with a large positive penalty instead; the same
//     penalty pads the matrix to square when the collections differ in
//     length (the solver handles square matrices only).
//   - Match runs the whole pipeline: score, solve, relabel. Pairs that
//     land on padding are dropped from the result.
//
// The scoring heuristic is deliberately replaceable glue — the
// numerical care lives in package lap. Swap in a domain Scorer via
// WithScorer whenever bigram overlap is the wrong notion of affinity.
//
// Configuration uses functional options: WithScorer, WithZeroPenalty,
// WithMinScore. Option constructors panic on nonsensical values
// (programmer error); Match and BuildCostMatrix return errors only for
// invalid input data.
//
// Example:
//
//	m, err := score.Match(
//	    []string{"mercury", "venus", "earth"},
//	    []string{"earht", "mecrury", "vense"},
//	)
//	// m.Pairs: mercury→mecrury, venus→vense, earth→earht
package score
