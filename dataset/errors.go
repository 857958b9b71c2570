// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColumns indicates an empty column-name list.
	ErrNoColumns = errors.New("dataset: invalid column information")

	// ErrCorruptFile indicates input that does not match the requested layout.
	ErrCorruptFile = errors.New("dataset: corrupt file")

	// ErrTooManyRows indicates input longer than the configured row limit.
	ErrTooManyRows = errors.New("dataset: too many rows")
)

// corruptf returns ErrCorruptFile carrying a formatted detail message.
func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptFile, fmt.Sprintf(format, args...))
}

// datasetErrorf wraps err with the operation tag.
func datasetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
