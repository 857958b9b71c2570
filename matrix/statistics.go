// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics used by the evaluators: per-column means and
//     column-wise centering.
//
// Determinism:
//   - Fixed column order; means delegate to vector.Mean.
//   - Zero-row matrices are valid: means are 0 (vector.Mean of empty).

package matrix

import "github.com/katalvlaran/lvcorr/vector"

const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
)

// ColumnMeans returns the arithmetic mean of every column (len = Cols()).
// Errors: ErrNilMatrix.
// Complexity: O(rows*cols).
func ColumnMeans(m *Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	means := make([]float64, len(m.columns))
	for j, c := range m.columns {
		means[j] = vector.Mean(c)
	}

	return means, nil
}

// CenterColumns subtracts each column's mean from its elements.
// Implementation:
//   - Stage 1: validate m and compute means.
//   - Stage 2: build centered columns value by value.
//
// Returns the centered copy and the means used, so callers can un-center.
// Errors: ErrNilMatrix.
// Complexity: O(rows*cols) time and space.
func CenterColumns(m *Matrix) (*Matrix, []float64, error) {
	means, err := ColumnMeans(m)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	columns := make([]*vector.Vector, len(m.columns))
	for j, c := range m.columns {
		values := c.Values()
		for i := range values {
			values[i] -= means[j]
		}
		columns[j] = vector.FromSlice(values)
	}

	return &Matrix{columns: columns, rows: m.rows, opts: m.opts}, means, nil
}
