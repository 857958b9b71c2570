// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRowCapacity is the number of rows pre-reserved per column.
	DefaultRowCapacity = 0

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// AppendRow and Set. Off by default: evaluators rely on IEEE-754
	// propagation, and loaders guarantee finite input on their own.
	DefaultValidateNaNInf = false
)

const panicRowCapacityInvalid = "matrix: WithRowCapacity: capacity must be non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rowCapacity    int  // DefaultRowCapacity
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithRowCapacity pre-reserves n rows in every column.
// Panics if n < 0.
func WithRowCapacity(n int) Option {
	if n < 0 {
		panic(panicRowCapacityInvalid)
	}

	return func(o *Options) { o.rowCapacity = n }
}

// WithFiniteValues rejects NaN and ±Inf on AppendRow and Set with ErrNaNInf.
func WithFiniteValues() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithAnyValues disables finite-value validation (default).
func WithAnyValues() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		rowCapacity:    DefaultRowCapacity,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
