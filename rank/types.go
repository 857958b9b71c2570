// SPDX-License-Identifier: MIT

package rank

import "errors"

// Method selects the tie-handling convention.
type Method int

const (
	// AverageRank assigns each tie group the mean of the ranks it spans.
	AverageRank Method = iota

	// SequentialRank assigns each tie group its lowest rank and skips the
	// following ranks by the group size.
	SequentialRank
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case AverageRank:
		return "average"
	case SequentialRank:
		return "sequential"
	default:
		return "unknown"
	}
}

var (
	// ErrNilVector indicates a nil *vector.Vector input.
	ErrNilVector = errors.New("rank: nil vector")

	// ErrUnknownMethod indicates a Method value outside the declared set.
	ErrUnknownMethod = errors.New("rank: unknown method")
)
