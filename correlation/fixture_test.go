// SPDX-License-Identifier: MIT

package correlation_test

import (
	"testing"

	"github.com/katalvlaran/lvcorr/matrix"
	"github.com/stretchr/testify/require"
)

// Height/Age measurements; Height has no ties, Age has several.
var (
	fixtureHeight = []float64{
		1.407141826, 1.678699943, 1.865219757, 1.966657853, 1.482162958,
		1.997403643, 1.706233764, 2.031750757, 1.804367783, 1.975533093,
		1.960452406, 1.96944178, 1.814742934, 1.547514583, 1.712363232,
		2.007266849, 1.972604446, 1.511384678, 1.473500875, 2.017409051,
	}
	fixtureAge = []float64{
		61, 75, 26, 65, 28, 39, 75, 73, 72, 38,
		73, 61, 42, 26, 21, 48, 47, 55, 36, 37,
	}
)

// Expected coefficients for the Height/Age fixture.
const (
	wantLinear   = 0.170299933426146
	wantSpearman = 0.103759398496241
	wantKendall  = 0.010526315789474 // (94 - 92) / 190
	fixtureEps   = 5e-10
)

// pairMatrix builds a two-column matrix from equally long slices.
func pairMatrix(t testing.TB, a, b []float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(2, matrix.WithRowCapacity(len(a)))
	require.NoError(t, err)
	for i := range a {
		require.NoError(t, m.AppendRow(a[i], b[i]))
	}

	return m
}

// fixtureMatrix returns the Height/Age matrix.
func fixtureMatrix(t testing.TB) *matrix.Matrix {
	t.Helper()

	return pairMatrix(t, fixtureHeight, fixtureAge)
}
