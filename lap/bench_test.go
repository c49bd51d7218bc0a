package lap_test

import (
	"testing"

	"github.com/katalvlaran/lapjv/lap"
)

// benchmarkSolve runs Solve on a deterministic n×n matrix. The fill is
// a fixed mix of residues so no two benchmarks share a trivial
// structure; it resets the timer after setup.
func benchmarkSolve(b *testing.B, n int) {
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
		for j := range cost[i] {
			cost[i][j] = float64((i*31+j*17)%101) + 0.5
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lap.Solve(cost); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_16 benchmarks a small 16×16 instance.
func BenchmarkSolve_16(b *testing.B) { benchmarkSolve(b, 16) }

// BenchmarkSolve_64 benchmarks a medium 64×64 instance.
func BenchmarkSolve_64(b *testing.B) { benchmarkSolve(b, 64) }

// BenchmarkSolve_256 benchmarks a 256×256 instance, large enough for
// the augmentation phase to dominate.
func BenchmarkSolve_256(b *testing.B) { benchmarkSolve(b, 256) }
