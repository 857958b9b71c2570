// SPDX-License-Identifier: MIT

// Package vector provides the ordered, growable float64 sequence that every
// other lvcorr package is built on.
//
// 🚀 What is a Vector?
//
//	A Vector is an append-only list of float64 values with bounds-checked
//	indexed access and a small set of elementwise operations:
//	  • Add / Sub: elementwise sum and difference of equal-length vectors
//	  • Scale: multiply every element by a scalar
//	  • Divide: divide every element by a scalar (IEEE-754 on k == 0)
//	  • Mean: arithmetic mean (0 for an empty vector)
//
// ✨ Guarantees:
//   - Operations never mutate their operands; results are fresh vectors.
//   - Length mismatches return ErrDimensionMismatch, bad indices return
//     ErrOutOfRange. Nothing panics on user input.
//   - Division by zero is NOT an error: Inf/NaN propagate as the hardware
//     produces them.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvcorr/vector"
//
//	a := vector.FromSlice([]float64{4, 3, 5})
//	b := vector.FromSlice([]float64{9, 6, 10})
//	sum, err := vector.Add(a, b) // [13 9 15]
//	avg := vector.Mean(sum)      // 12.333…
//
// Performance:
//
//   - Append: O(1) amortized
//   - Add/Sub/Scale/Divide/Mean: O(n)
package vector
