// SPDX-License-Identifier: MIT

package rank

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvcorr/vector"
)

// Of ranks v with the given method.
// Errors: ErrNilVector, ErrUnknownMethod.
func Of(v *vector.Vector, m Method) (*vector.Vector, error) {
	switch m {
	case AverageRank:
		return Average(v)
	case SequentialRank:
		return Sequential(v)
	default:
		return nil, fmt.Errorf("Of(%d): %w", int(m), ErrUnknownMethod)
	}
}

// Average returns the average-rank transform of v.
//
// Algorithm:
//  1. Stable-sort the indices 0..n-1 by value ascending.
//  2. Walk the sorted order, grouping runs of exactly equal values.
//  3. A run covering sorted positions i..j (0-based) spans ranks i+1..j+1,
//     so every member gets (i+j)/2 + 1.
//
// Untied values keep their integer position rank; with no ties the result is
// a permutation of 1..n.
// Complexity: O(n log n) time, O(n) memory.
func Average(v *vector.Vector) (*vector.Vector, error) {
	if v == nil {
		return nil, fmt.Errorf("Average: %w", ErrNilVector)
	}
	values := v.Values()
	order := sortedOrder(values)

	ranks := make([]float64, len(values))
	var i, j, k int
	for i = 0; i < len(order); i = j + 1 {
		// extend j to the last member of the run starting at i
		j = i
		for j+1 < len(order) && values[order[j+1]] == values[order[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k = i; k <= j; k++ {
			ranks[order[k]] = avg
		}
	}

	return vector.FromSlice(ranks), nil
}

// Sequential returns the competition ("Excel RANK") transform of v.
//
// Algorithm:
//  1. Stable-sort the indices by value ascending, keeping original positions.
//  2. The first element gets rank 1. An element equal to its predecessor keeps
//     the running rank and defers one skip; a strictly larger element advances
//     the rank by 1 + deferred skips.
//  3. Scatter ranks back to the original positions.
//
// Every member of a tie group therefore gets the rank of the group's first
// member, and the result is integer-valued.
// Complexity: O(n log n) time, O(n) memory.
func Sequential(v *vector.Vector) (*vector.Vector, error) {
	if v == nil {
		return nil, fmt.Errorf("Sequential: %w", ErrNilVector)
	}
	values := v.Values()
	order := sortedOrder(values)

	ranks := make([]float64, len(values))
	rank, skipped := 1, 0
	for i, idx := range order {
		if i > 0 {
			if values[order[i-1]] != values[idx] {
				rank += 1 + skipped
				skipped = 0
			} else {
				skipped++
			}
		}
		ranks[idx] = float64(rank)
	}

	return vector.FromSlice(ranks), nil
}

// sortedOrder returns the indices of values in stable ascending value order.
func sortedOrder(values []float64) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})

	return order
}
