package correlation_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcorr/correlation"
	"github.com/katalvlaran/lvcorr/matrix"
)

// Example evaluates the default set on a perfectly linear relationship.
func Example() {
	m, _ := matrix.New(2)
	for _, x := range []float64{1, 2, 3, 4, 5} {
		_ = m.AppendRow(x, 2*x+1)
	}

	for _, e := range correlation.Default() {
		v, _ := e.Evaluate(m)
		fmt.Printf("The %s value is %.4f\n", e.Name(), v)
	}
	// Output:
	// The Linear Correlation value is 1.0000
	// The Spearman Correlation value is 1.0000
	// The Kendall Correlation value is 1.0000
}

// ExampleKendall shows that tied pairs count as neither concordant nor
// discordant.
func ExampleKendall() {
	m, _ := matrix.New(2)
	_ = m.AppendRow(1, 1)
	_ = m.AppendRow(2, 1)
	_ = m.AppendRow(3, 2)

	v, _ := correlation.Kendall{}.Evaluate(m)
	fmt.Printf("%.4f\n", v)
	// Output: 0.6667
}

// ExampleEvaluateAll picks evaluators by key and runs them together.
func ExampleEvaluateAll() {
	m, _ := matrix.New(2)
	_ = m.AppendRow(3, 10)
	_ = m.AppendRow(9, 8)
	_ = m.AppendRow(105, 1)
	_ = m.AppendRow(9, 8)
	_ = m.AppendRow(15, 4)

	es, _ := correlation.LookupAll([]string{"spearman", "kendall"})
	results, _ := correlation.EvaluateAll(context.Background(), m, es...)
	for _, r := range results {
		fmt.Printf("%s: %.4f\n", r.Name, r.Value)
	}
	// Output:
	// Spearman Correlation: -0.9000
	// Kendall Correlation: -0.9000
}

// ExampleLookup resolves an evaluator from a user-supplied key.
func ExampleLookup() {
	e, _ := correlation.Lookup("Pearson")
	fmt.Println(e.Name())

	_, err := correlation.Lookup("tau")
	fmt.Println(err)
	// Output:
	// Linear Correlation
	// Lookup("tau"): correlation: unknown evaluator
}
