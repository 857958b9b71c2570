package correlation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcorr/correlation"
)

// benchmarkEvaluator runs e over n seeded random rows.
func benchmarkEvaluator(b *testing.B, e correlation.Evaluator, n int) {
	rng := rand.New(rand.NewSource(42))
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = rng.NormFloat64()
		ys[i] = float64(rng.Intn(n / 2))
	}
	m := pairMatrix(b, xs, ys)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Evaluate(m); err != nil {
			b.Fatalf("evaluate failed: %v", err)
		}
	}
}

func BenchmarkLinear_10K(b *testing.B) { benchmarkEvaluator(b, correlation.Linear{}, 10_000) }
func BenchmarkSpearman_10K(b *testing.B) { benchmarkEvaluator(b, correlation.Spearman{}, 10_000) }
func BenchmarkKendall_1K(b *testing.B) { benchmarkEvaluator(b, correlation.Kendall{}, 1_000) }
func BenchmarkKendall_5K(b *testing.B) { benchmarkEvaluator(b, correlation.Kendall{}, 5_000) }
