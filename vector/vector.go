// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"
)

// Vector is an ordered, growable sequence of float64 values.
// The zero value is an empty vector ready to use.
type Vector struct {
	data []float64 // backing storage, len == Len()
}

// New returns an empty vector.
func New() *Vector {
	return &Vector{}
}

// NewWithCapacity returns an empty vector with room for capacity elements.
// A negative capacity is treated as zero.
// Complexity: O(capacity) allocation.
func NewWithCapacity(capacity int) *Vector {
	if capacity < 0 {
		capacity = 0
	}

	return &Vector{data: make([]float64, 0, capacity)}
}

// FromSlice wraps values without copying; the vector takes ownership of the
// slice and the caller must not modify it afterwards.
func FromSlice(values []float64) *Vector {
	return &Vector{data: values}
}

// Append adds value at the end of the vector.
// Complexity: O(1) amortized.
func (v *Vector) Append(value float64) {
	v.data = append(v.data, value)
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return len(v.data)
}

// At returns the element at index i.
// Returns ErrOutOfRange if i < 0 or i >= Len().
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(fmt.Sprintf("At(%d)", i), ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set overwrites the element at index i. It never grows the vector.
// Returns ErrOutOfRange if i < 0 or i >= Len().
func (v *Vector) Set(i int, value float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(fmt.Sprintf("Set(%d)", i), ErrOutOfRange)
	}
	v.data[i] = value

	return nil
}

// Values returns a copy of the elements.
// Complexity: O(n).
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent deep copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{data: v.Values()}
}

// String implements fmt.Stringer, e.g. "[1, 2.5, 3]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteByte(']')

	return sb.String()
}
