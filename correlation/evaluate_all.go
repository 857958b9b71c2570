// SPDX-License-Identifier: MIT

package correlation

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcorr/matrix"
	"golang.org/x/sync/errgroup"
)

// EvaluateAll runs every evaluator against m concurrently.
// Stage 1 (Validate): ctx not done; no nil evaluator. Default() is used when
// none are given.
// Stage 2 (Execute): one goroutine per evaluator; the first error cancels
// the evaluators that have not started yet.
// Stage 3 (Finalize): results keep the caller's order.
// Errors: ctx.Err(), ErrNilEvaluator, or the first evaluator error.
func EvaluateAll(ctx context.Context, m *matrix.Matrix, evaluators ...Evaluator) ([]Result, error) {
	const tag = "EvaluateAll"
	if err := ctx.Err(); err != nil {
		return nil, correlationErrorf(tag, err)
	}
	if len(evaluators) == 0 {
		evaluators = Default()
	}
	for i, e := range evaluators {
		if e == nil {
			return nil, correlationErrorf(fmt.Sprintf("%s: evaluator %d", tag, i), ErrNilEvaluator)
		}
	}

	results := make([]Result, len(evaluators))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range evaluators {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := e.Evaluate(m)
			if err != nil {
				return err
			}
			results[i] = Result{Name: e.Name(), Value: v}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, correlationErrorf(tag, err)
	}

	return results, nil
}
