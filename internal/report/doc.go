// SPDX-License-Identifier: MIT

// Package report renders correlation results for people and machines, and
// exports the analysed columns as a scatter plot.
//
// Text output keeps one line per evaluator:
//
//	The Linear Correlation value is 0.17029993342614586
//
// JSON output carries the run metadata next to the results; values that are
// NaN or ±Inf are encoded as null.
package report
