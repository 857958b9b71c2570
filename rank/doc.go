// SPDX-License-Identifier: MIT

// Package rank computes the rank transform of a vector under two tie-breaking
// conventions.
//
// 🚀 Conventions:
//
//	Average:    tied values share the mean of the ranks they jointly span.
//	            [3, 9, 105, 9, 15] → [1, 2.5, 5, 2.5, 4]
//	Sequential: tied values share the lowest rank of their group and the
//	            next distinct value skips the group ("1224" competition
//	            ranking, spreadsheet RANK semantics).
//	            [3, 9, 105, 9, 15] → [1, 2, 5, 2, 4]
//
// Ranks are 1-based and ascending (the smallest value gets rank 1). Ties are
// exact float64 equality; there is no epsilon.
//
// Both algorithms stable-sort the indices once and scan tie groups linearly:
//
//   - Time:   O(n log n)
//   - Memory: O(n)
//
// The input vector is never modified.
package rank
