// SPDX-License-Identifier: MIT

package correlation

import (
	"math"

	"github.com/katalvlaran/lvcorr/matrix"
	"gonum.org/v1/gonum/floats"
)

// Linear is the Pearson product-moment evaluator.
type Linear struct{}

// Name implements Evaluator.
func (Linear) Name() string { return NameLinear }

// Evaluate returns Σab / sqrt(Σa²·Σb²) over mean-centered columns.
// Stage 1 (Validate): non-nil, two columns.
// Stage 2 (Prepare): center both columns on their means.
// Stage 3 (Execute): accumulate cross and square sums.
// A constant column makes the denominator zero and the result NaN.
// Complexity: O(n).
func (Linear) Evaluate(m *matrix.Matrix) (float64, error) {
	const tag = "Linear.Evaluate"
	if _, _, err := columnPair(tag, m); err != nil {
		return 0, err
	}

	centered, _, err := matrix.CenterColumns(m)
	if err != nil {
		return 0, correlationErrorf(tag, err)
	}
	a, b, err := columnPair(tag, centered)
	if err != nil {
		return 0, err
	}
	x, y := a.Values(), b.Values()

	sab := floats.Dot(x, y)
	saa := floats.Dot(x, x)
	sbb := floats.Dot(y, y)

	return sab / math.Sqrt(saa*sbb), nil
}
