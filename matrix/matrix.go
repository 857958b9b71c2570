// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcorr/vector"
)

// New creates an empty matrix with cols columns and zero rows.
// Stage 1 (Validate): cols must be ≥ 0.
// Stage 2 (Prepare): allocate one vector per column with the configured capacity.
// Errors: ErrBadShape.
// Complexity: O(cols * rowCapacity).
func New(cols int, opts ...Option) (*Matrix, error) {
	if cols < 0 {
		return nil, matrixErrorf(fmt.Sprintf("New(%d)", cols), ErrBadShape)
	}
	o := gatherOptions(opts...)

	columns := make([]*vector.Vector, cols)
	for j := range columns {
		columns[j] = vector.NewWithCapacity(o.rowCapacity)
	}

	return &Matrix{columns: columns, opts: o}, nil
}

// FromColumns builds a matrix that takes ownership of cols; the caller must
// not use the vectors afterwards.
// Stage 1 (Validate): no nil column; all columns equally long.
// Stage 2 (Validate policy): finite values when WithFiniteValues is set.
// Errors: ErrNilColumn, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(cols) or O(cols*rows) under the finite-values policy.
func FromColumns(cols []*vector.Vector, opts ...Option) (*Matrix, error) {
	const tag = "FromColumns"
	o := gatherOptions(opts...)

	rows := 0
	for j, c := range cols {
		if c == nil {
			return nil, matrixErrorf(fmt.Sprintf("%s: column %d", tag, j), ErrNilColumn)
		}
		if j == 0 {
			rows = c.Len()
		} else if c.Len() != rows {
			return nil, matrixErrorf(fmt.Sprintf("%s: column %d", tag, j), ErrDimensionMismatch)
		}
		if o.validateNaNInf {
			for _, x := range c.Values() {
				if err := validateFinite(x); err != nil {
					return nil, matrixErrorf(fmt.Sprintf("%s: column %d", tag, j), err)
				}
			}
		}
	}

	owned := make([]*vector.Vector, len(cols))
	copy(owned, cols)

	return &Matrix{columns: owned, rows: rows, opts: o}, nil
}

// Rows returns the shared column length.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return len(m.columns)
}

// Column returns a copy of column j.
// Errors: ErrOutOfRange.
// Complexity: O(Rows()).
func (m *Matrix) Column(j int) (*vector.Vector, error) {
	if j < 0 || j >= len(m.columns) {
		return nil, matrixErrorf(fmt.Sprintf("Column(%d)", j), ErrOutOfRange)
	}

	return m.columns[j].Clone(), nil
}

// At returns the element in column col, row row.
// Errors: ErrOutOfRange.
func (m *Matrix) At(col, row int) (float64, error) {
	if err := m.checkIndex(col, row); err != nil {
		return 0, matrixErrorf(fmt.Sprintf("At(%d,%d)", col, row), err)
	}

	return m.columns[col].At(row)
}

// Set overwrites the element in column col, row row.
// Errors: ErrOutOfRange, ErrNaNInf (finite-values policy).
func (m *Matrix) Set(col, row int, v float64) error {
	tag := fmt.Sprintf("Set(%d,%d)", col, row)
	if err := m.checkIndex(col, row); err != nil {
		return matrixErrorf(tag, err)
	}
	if m.opts.validateNaNInf {
		if err := validateFinite(v); err != nil {
			return matrixErrorf(tag, err)
		}
	}

	return m.columns[col].Set(row, v)
}

// AppendRow appends one row; len(values) must equal Cols().
// The row is validated as a whole before any column grows, so a failed append
// leaves the matrix unchanged.
// Errors: ErrDimensionMismatch, ErrNaNInf (finite-values policy).
// Complexity: O(Cols()) amortized.
func (m *Matrix) AppendRow(values ...float64) error {
	const tag = "AppendRow"
	if len(values) != len(m.columns) {
		return matrixErrorf(tag, ErrDimensionMismatch)
	}
	if m.opts.validateNaNInf {
		for _, x := range values {
			if err := validateFinite(x); err != nil {
				return matrixErrorf(tag, err)
			}
		}
	}

	for j, x := range values {
		m.columns[j].Append(x)
	}
	m.rows++

	return nil
}

// Clone returns a deep copy; options are carried over.
// Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	columns := make([]*vector.Vector, len(m.columns))
	for j, c := range m.columns {
		columns[j] = c.Clone()
	}

	return &Matrix{columns: columns, rows: m.rows, opts: m.opts}
}

// String renders the matrix row by row for debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j = 0; j < len(m.columns); j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			v, _ := m.columns[j].At(i)
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// checkIndex validates 0 ≤ col < Cols() and 0 ≤ row < Rows().
func (m *Matrix) checkIndex(col, row int) error {
	if col < 0 || col >= len(m.columns) {
		return ErrOutOfRange
	}
	if row < 0 || row >= m.rows {
		return ErrOutOfRange
	}

	return nil
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNaNInf
	}

	return nil
}
