// SPDX-License-Identifier: MIT

// Package correlation measures how strongly two numeric columns move together.
//
// 🚀 Evaluators:
//
//	Linear:   Pearson product-moment coefficient over centered values.
//	Spearman: rank-difference coefficient over average ranks,
//	          1 - 6Σd² / (n(n²-1)).
//	Kendall:  concordant minus discordant pairs over sequential ranks,
//	          (C - D) / (n(n-1)/2). Tied pairs count for neither side.
//
// Every evaluator consumes a two-column *matrix.Matrix and returns one float64.
// Structural misuse (nil matrix, wrong column count) is reported as an error.
// Numeric degeneracy is not: a constant column or fewer than two rows yields
// NaN or ±Inf with a nil error, exactly as IEEE-754 arithmetic produces it.
//
// ⚙️ Usage:
//
//	m, _ := matrix.New(2)
//	_ = m.AppendRow(1.72, 61)
//	...
//	for _, e := range correlation.Default() {
//		v, err := e.Evaluate(m)
//		fmt.Printf("The %s value is %v\n", e.Name(), v)
//	}
//
// EvaluateAll fans the evaluators out concurrently and returns results in the
// order they were given. Evaluators never modify the matrix.
//
// Performance:
//
//   - Linear:   O(n)
//   - Spearman: O(n log n)
//   - Kendall:  O(n²) pair scan
package correlation
