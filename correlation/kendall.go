// SPDX-License-Identifier: MIT

package correlation

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvcorr/matrix"
	"github.com/katalvlaran/lvcorr/rank"
)

// Kendall is the concordance evaluator over sequential ranks.
type Kendall struct{}

// Name implements Evaluator.
func (Kendall) Name() string { return NameKendall }

// rankPair is one row in rank space.
type rankPair struct {
	a, b float64
}

// Evaluate returns (C - D) / (n(n-1)/2).
//
// Algorithm:
//  1. Sequential-rank both columns.
//  2. Stable-sort the (rankA, rankB) rows by rankA only.
//  3. For every i < j compare rankB: greater is concordant, smaller is
//     discordant, equal is neither.
//
// No tie correction is applied. With n ≤ 1 the result is NaN.
// Complexity: O(n²) time, O(n) memory.
func (Kendall) Evaluate(m *matrix.Matrix) (float64, error) {
	const tag = "Kendall.Evaluate"
	a, b, err := columnPair(tag, m)
	if err != nil {
		return 0, err
	}

	ra, err := rank.Sequential(a)
	if err != nil {
		return 0, correlationErrorf(tag, err)
	}
	rb, err := rank.Sequential(b)
	if err != nil {
		return 0, correlationErrorf(tag, err)
	}

	xs, ys := ra.Values(), rb.Values()
	pairs := make([]rankPair, len(xs))
	for i := range pairs {
		pairs[i] = rankPair{a: xs[i], b: ys[i]}
	}
	slices.SortStableFunc(pairs, func(p, q rankPair) int {
		return cmp.Compare(p.a, q.a)
	})

	var concordant, discordant int
	var i, j int
	for i = 0; i < len(pairs); i++ {
		for j = i + 1; j < len(pairs); j++ {
			switch {
			case pairs[j].b > pairs[i].b:
				concordant++
			case pairs[j].b < pairs[i].b:
				discordant++
			}
		}
	}

	n := len(pairs)

	return float64(concordant-discordant) / float64(n*(n-1)/2), nil
}
