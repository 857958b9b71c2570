// SPDX-License-Identifier: MIT

package dataset

import "unicode/utf8"

const (
	// DefaultDelimiter separates fields within a record.
	DefaultDelimiter = ','

	// DefaultMaxRows of 0 means unlimited.
	DefaultMaxRows = 0

	// DefaultTrimHeaders strips surrounding whitespace from header names.
	DefaultTrimHeaders = true
)

const (
	panicDelimiterInvalid = "dataset: WithDelimiter: delimiter must not be a quote, newline or invalid rune"
	panicMaxRowsInvalid   = "dataset: WithMaxRows: limit must be non-negative"
)

// Option configures a load.
type Option func(*Options)

// Options holds the effective load configuration.
type Options struct {
	delimiter   rune
	maxRows     int
	trimHeaders bool
}

// ValidDelimiter reports whether r can separate fields: it must be a valid
// rune other than '"', '\r' or '\n'.
func ValidDelimiter(r rune) bool {
	switch r {
	case '"', '\r', '\n', utf8.RuneError:
		return false
	}

	return utf8.ValidRune(r)
}

// WithDelimiter sets the field separator.
// Panics if !ValidDelimiter(r).
func WithDelimiter(r rune) Option {
	if !ValidDelimiter(r) {
		panic(panicDelimiterInvalid)
	}

	return func(o *Options) { o.delimiter = r }
}

// WithMaxRows caps the number of data rows; 0 disables the cap.
// Panics if n < 0.
func WithMaxRows(n int) Option {
	if n < 0 {
		panic(panicMaxRowsInvalid)
	}

	return func(o *Options) { o.maxRows = n }
}

// WithExactHeaders matches header names byte for byte, whitespace included.
func WithExactHeaders() Option {
	return func(o *Options) { o.trimHeaders = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		delimiter:   DefaultDelimiter,
		maxRows:     DefaultMaxRows,
		trimHeaders: DefaultTrimHeaders,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
