// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Elementwise arithmetic (Add, Sub, Scale, Divide) and the arithmetic Mean.
//   - Every operation allocates a fresh result; operands are never mutated.
//
// Determinism & Performance:
//   - Tight loops are delegated to gonum/floats kernels where the semantics
//     match exactly (AddTo, SubTo, ScaleTo, Sum).
//   - Divide keeps an explicit x/k loop: multiplying by 1/k is not
//     bit-identical to dividing by k.

package vector

import (
	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opScale  = "Scale"
	opDivide = "Divide"
)

// validatePair checks both operands are present and equally long.
func validatePair(tag string, a, b *Vector) error {
	if a == nil || b == nil {
		return vectorErrorf(tag, ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return vectorErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// Add returns a new vector holding a[i] + b[i].
// Stage 1 (Validate): nil-checks and length match.
// Stage 2 (Execute): floats.AddTo into a fresh buffer.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n).
func Add(a, b *Vector) (*Vector, error) {
	if err := validatePair(opAdd, a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a.data))
	floats.AddTo(out, a.data, b.data)

	return &Vector{data: out}, nil
}

// Sub returns a new vector holding a[i] - b[i].
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n).
func Sub(a, b *Vector) (*Vector, error) {
	if err := validatePair(opSub, a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a.data))
	floats.SubTo(out, a.data, b.data)

	return &Vector{data: out}, nil
}

// Scale returns a new vector holding v[i] * k.
// Errors: ErrNilVector.
// Complexity: O(n).
func Scale(v *Vector, k float64) (*Vector, error) {
	if v == nil {
		return nil, vectorErrorf(opScale, ErrNilVector)
	}
	out := make([]float64, len(v.data))
	floats.ScaleTo(out, k, v.data)

	return &Vector{data: out}, nil
}

// Divide returns a new vector holding v[i] / k.
// k == 0 is not an error: elements become ±Inf or NaN per IEEE-754.
// Errors: ErrNilVector.
// Complexity: O(n).
func Divide(v *Vector, k float64) (*Vector, error) {
	if v == nil {
		return nil, vectorErrorf(opDivide, ErrNilVector)
	}
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x / k
	}

	return &Vector{data: out}, nil
}

// Mean returns the arithmetic mean of v.
// An empty (or nil) vector has mean 0 by definition, not NaN.
// Complexity: O(n).
func Mean(v *Vector) float64 {
	if v == nil || len(v.data) == 0 {
		return 0
	}

	return floats.Sum(v.data) / float64(len(v.data))
}
