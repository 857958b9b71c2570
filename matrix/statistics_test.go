// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcorr/matrix"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

func TestColumnMeans(t *testing.T) {
	m := mustMatrix(t, 3, [][]float64{{1, 2, 3}, {10, 20, 30}})

	means, err := matrix.ColumnMeans(m)
	require.NoError(t, err)
	require.Equal(t, []float64{5.5, 11, 16.5}, means)

	empty, err := matrix.New(2)
	require.NoError(t, err)
	means, err = matrix.ColumnMeans(empty)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, means, "zero-row columns average to 0")

	_, err = matrix.ColumnMeans(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCenterColumns(t *testing.T) {
	m := mustMatrix(t, 3, [][]float64{{1, 2, 3}, {10, 20, 30}})

	c, means, err := matrix.CenterColumns(m)
	require.NoError(t, err)
	require.Equal(t, []float64{5.5, 11, 16.5}, means)
	require.Equal(t, m.Rows(), c.Rows())
	require.Equal(t, m.Cols(), c.Cols())

	var sum float64
	for col := 0; col < 3; col++ {
		sum = mustAt(t, c, col, 0) + mustAt(t, c, col, 1)
		require.LessOrEqual(t, math.Abs(sum), epsTight, "col %d not centered", col)
	}
	require.Equal(t, 1.0, mustAt(t, m, 0, 0), "input untouched")

	_, _, err = matrix.CenterColumns(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
