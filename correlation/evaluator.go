// SPDX-License-Identifier: MIT

package correlation

import (
	"fmt"

	"github.com/katalvlaran/lvcorr/matrix"
	"github.com/katalvlaran/lvcorr/vector"
)

// Display names, stable across releases.
const (
	NameLinear   = "Linear Correlation"
	NameSpearman = "Spearman Correlation"
	NameKendall  = "Kendall Correlation"
)

// requiredCols is the column count every evaluator consumes.
const requiredCols = 2

// Evaluator computes one correlation coefficient over a two-column matrix.
// Implementations must not modify m.
type Evaluator interface {
	// Name returns the human-readable evaluator name.
	Name() string

	// Evaluate returns the coefficient between column 0 and column 1.
	// Errors: ErrNilMatrix, ErrColumnCount.
	Evaluate(m *matrix.Matrix) (float64, error)
}

// Result pairs an evaluator name with the value it produced.
type Result struct {
	Name  string
	Value float64
}

// columnPair validates m and returns copies of both columns.
func columnPair(tag string, m *matrix.Matrix) (a, b *vector.Vector, err error) {
	if m == nil {
		return nil, nil, correlationErrorf(tag, ErrNilMatrix)
	}
	if m.Cols() != requiredCols {
		return nil, nil, correlationErrorf(fmt.Sprintf("%s: have %d", tag, m.Cols()), ErrColumnCount)
	}
	if a, err = m.Column(0); err != nil {
		return nil, nil, correlationErrorf(tag, err)
	}
	if b, err = m.Column(1); err != nil {
		return nil, nil, correlationErrorf(tag, err)
	}

	return a, b, nil
}
