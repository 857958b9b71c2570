// SPDX-License-Identifier: MIT

package correlation

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates a nil *matrix.Matrix input.
	ErrNilMatrix = errors.New("correlation: nil matrix")

	// ErrColumnCount indicates a matrix without exactly two columns.
	ErrColumnCount = errors.New("correlation: matrix must have exactly 2 columns")

	// ErrUnknownEvaluator indicates a Lookup key that names no evaluator.
	ErrUnknownEvaluator = errors.New("correlation: unknown evaluator")

	// ErrNilEvaluator indicates a nil entry passed to EvaluateAll.
	ErrNilEvaluator = errors.New("correlation: nil evaluator")
)

// correlationErrorf wraps err with the operation tag.
func correlationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
