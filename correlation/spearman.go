// SPDX-License-Identifier: MIT

package correlation

import (
	"github.com/katalvlaran/lvcorr/matrix"
	"github.com/katalvlaran/lvcorr/rank"
	"github.com/katalvlaran/lvcorr/vector"
	"gonum.org/v1/gonum/floats"
)

// Spearman is the rank-difference evaluator over average ranks.
type Spearman struct{}

// Name implements Evaluator.
func (Spearman) Name() string { return NameSpearman }

// Evaluate returns 1 - 6Σd² / (n(n²-1)), d being the per-row difference of the
// average ranks. The closed form is exact only without ties; tied data is not
// corrected. With n ≤ 1 the denominator is zero.
// Complexity: O(n log n).
func (Spearman) Evaluate(m *matrix.Matrix) (float64, error) {
	const tag = "Spearman.Evaluate"
	a, b, err := columnPair(tag, m)
	if err != nil {
		return 0, err
	}

	ra, err := rank.Average(a)
	if err != nil {
		return 0, correlationErrorf(tag, err)
	}
	rb, err := rank.Average(b)
	if err != nil {
		return 0, correlationErrorf(tag, err)
	}
	d, err := vector.Sub(ra, rb)
	if err != nil {
		return 0, correlationErrorf(tag, err)
	}

	diffs := d.Values()
	sum := floats.Dot(diffs, diffs)
	n := float64(len(diffs))

	return 1 - 6*sum/(n*(n*n-1)), nil
}
