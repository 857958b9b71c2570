// Package matrix offers a column-major numeric container built from vectors.
//
// The matrix package provides:
//
//   - Matrix: an ordered set of equally long *vector.Vector columns with
//     (col,row) indexed access and row-at-a-time appends.
//   - FromColumns for wrapping caller-built columns (ownership transfers).
//   - Elementwise Add/Sub of equally shaped matrices.
//   - Column statistics (ColumnMeans, CenterColumns).
//
// Column-major storage matches how the correlation evaluators consume data:
// each column is ranked or averaged as a whole, so handing out a column is a
// single copy rather than a strided gather.
//
// See the examples in this package for usage patterns.
package matrix
