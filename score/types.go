package score

import (
	"errors"
	"math"
)

// ErrNoLabels is returned when either label collection is empty; there
// is nothing to assign.
var ErrNoLabels = errors.New("score: both label collections must be non-empty")

// Defaults, the single source of truth for zero-value behavior.
const (
	// DefaultZeroPenalty is the cost substituted for zero-score pairs
	// and for padding cells. It must dwarf any real (negated) score so
	// the solver only crosses it when no penalty-free matching exists.
	// Scores live in [0, 1] under the default Scorer, so 1000 leaves
	// three orders of magnitude of headroom.
	DefaultZeroPenalty = 1000.0

	// DefaultMinScore is the suitability floor; pairs scoring below it
	// are treated as zero-score. 0 keeps every positive score.
	DefaultMinScore = 0.0
)

// Internal panic messages (no magic strings).
const (
	panicNilScorer   = "score: WithScorer: scorer must be non-nil"
	panicBadPenalty  = "score: WithZeroPenalty: penalty must be finite and positive"
	panicBadMinScore = "score: WithMinScore: floor must be finite and non-negative"
)

// Options configures matrix construction and matching. Fields are
// unexported; public APIs consume ...Option.
type Options struct {
	scorer      Scorer
	zeroPenalty float64
	minScore    float64
}

// Option mutates Options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// WithScorer replaces the default Bigram suitability heuristic.
// Panics if fn is nil.
func WithScorer(fn Scorer) Option {
	if fn == nil {
		panic(panicNilScorer)
	}

	return func(o *Options) {
		o.scorer = fn
	}
}

// WithZeroPenalty sets the cost substituted for zero-score pairs and
// padding cells. Must be finite and positive; it should exceed the
// largest score a Scorer can return by a wide margin.
func WithZeroPenalty(penalty float64) Option {
	if penalty <= 0 || math.IsNaN(penalty) || math.IsInf(penalty, 0) {
		panic(panicBadPenalty)
	}

	return func(o *Options) {
		o.zeroPenalty = penalty
	}
}

// WithMinScore sets the suitability floor: any pair scoring below it
// is treated as zero-score and picks up the penalty instead.
// Must be finite and non-negative.
func WithMinScore(floor float64) Option {
	if floor < 0 || math.IsNaN(floor) || math.IsInf(floor, 0) {
		panic(panicBadMinScore)
	}

	return func(o *Options) {
		o.minScore = floor
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		scorer:      Bigram,
		zeroPenalty: DefaultZeroPenalty,
		minScore:    DefaultMinScore,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// suitability runs the configured Scorer and applies the floor.
func (o Options) suitability(a, b string) float64 {
	s := o.scorer(a, b)
	if s < o.minScore {
		return 0
	}

	return s
}
