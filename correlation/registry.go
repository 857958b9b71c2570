// SPDX-License-Identifier: MIT

package correlation

import (
	"fmt"
	"strings"
)

// Default returns the standard evaluator set in reporting order:
// Linear, Spearman, Kendall.
func Default() []Evaluator {
	return []Evaluator{Linear{}, Spearman{}, Kendall{}}
}

// Lookup resolves an evaluator by key, case-insensitively.
// Accepted keys: "linear" or "pearson", "spearman", "kendall".
// Errors: ErrUnknownEvaluator.
func Lookup(key string) (Evaluator, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "linear", "pearson":
		return Linear{}, nil
	case "spearman":
		return Spearman{}, nil
	case "kendall":
		return Kendall{}, nil
	default:
		return nil, correlationErrorf(fmt.Sprintf("Lookup(%q)", key), ErrUnknownEvaluator)
	}
}

// LookupAll resolves every key in order, failing on the first unknown one.
// An empty key list yields Default().
func LookupAll(keys []string) ([]Evaluator, error) {
	if len(keys) == 0 {
		return Default(), nil
	}

	out := make([]Evaluator, 0, len(keys))
	for _, k := range keys {
		e, err := Lookup(k)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}
