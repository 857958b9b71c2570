// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvcorr/vector"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
)

// Add returns a new matrix holding a + b elementwise.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): column-wise vector.Add.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows*cols).
func Add(a, b *Matrix) (*Matrix, error) {
	return combine(opAdd, a, b, vector.Add)
}

// Sub returns a new matrix holding a - b elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows*cols).
func Sub(a, b *Matrix) (*Matrix, error) {
	return combine(opSub, a, b, vector.Sub)
}

// combine applies a column kernel pairwise; the result inherits a's options.
func combine(tag string, a, b *Matrix, kernel func(x, y *vector.Vector) (*vector.Vector, error)) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	columns := make([]*vector.Vector, len(a.columns))
	for j := range a.columns {
		c, err := kernel(a.columns[j], b.columns[j])
		if err != nil {
			return nil, matrixErrorf(tag, err)
		}
		columns[j] = c
	}

	return &Matrix{columns: columns, rows: a.rows, opts: a.opts}, nil
}
