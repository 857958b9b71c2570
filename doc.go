// Package lvcorr measures how strongly two numeric measurement columns move
// together, using three classic coefficients.
//
// 🚀 What is lvcorr?
//
//	A small library plus CLI that brings together:
//		• Numeric vectors: growable float64 sequences with elementwise math
//		• Rank engine: average ranks and sequential ("1224") ranks
//		• Column matrix: column-major container fed row by row
//		• Evaluators: Linear (Pearson), Spearman, Kendall
//		• Loader: named columns from delimited text files
//
// ✨ Why choose lvcorr?
//
//   - Deterministic: no global state, inputs are never modified
//   - Honest numerics: degenerate data yields NaN, not a made-up value
//   - Concurrent: EvaluateAll fans evaluators out with errgroup
//
// Packages:
//
//	vector/       Vector type, Add/Sub/Scale/Divide/Mean
//	rank/         Average and Sequential rank transforms
//	matrix/       Matrix of equally long columns, Add/Sub, column statistics
//	correlation/  Evaluator contract, Linear/Spearman/Kendall, registry
//	dataset/      CSV loader producing a two-column (or wider) Matrix
//	cmd/lvcorr/   command-line driver (flags, config file or prompts)
//
// Quick example:
//
//	m, _ := dataset.LoadFile("data.csv", []string{"Height", "Age"})
//	results, _ := correlation.EvaluateAll(ctx, m)
//	for _, r := range results {
//		fmt.Printf("The %s value is %v\n", r.Name, r.Value)
//	}
//
// Installation:
//
//	go install github.com/katalvlaran/lvcorr/cmd/lvcorr@latest
package lvcorr
