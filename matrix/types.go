// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvcorr/vector"

// Matrix is a column-major two-dimensional container of float64 values.
// Every column has exactly Rows() elements.
//
// Complexity notes: Rows/Cols/At/Set are O(1); AppendRow is O(Cols())
// amortized; Column and Clone copy.
type Matrix struct {
	columns []*vector.Vector // owned exclusively; len == Cols()
	rows    int              // shared column length
	opts    Options
}
