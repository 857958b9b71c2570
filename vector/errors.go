// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with
// operation context); callers match them with errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrOutOfRange indicates an index outside 0..Len()-1.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates that two operands of an elementwise
	// operation do not have the same length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)

// vectorErrorf wraps a sentinel with the operation tag that produced it.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
