// SPDX-License-Identifier: MIT

// Package dataset loads named numeric columns from delimited text into a
// *matrix.Matrix.
//
// The first record is the header. Callers name the columns they want; the
// resulting matrix holds exactly those columns, in the requested order, one
// row per data record. Values are parsed in a locale-independent format: '.' as the
// decimal separator, optional sign and exponent, surrounding spaces ignored.
// Blank lines are skipped.
//
// Failures are reported through sentinels:
//
//	ErrNoColumns    no column names were requested
//	ErrCorruptFile  header mismatch, short record or unparsable value
//	ErrTooManyRows  more data rows than WithMaxRows allows
//
// A missing file surfaces the wrapped fs.ErrNotExist from os.Open.
package dataset
