// SPDX-License-Identifier: MIT
// Package dataset_test covers header mapping, value parsing and every
// loader failure mode.
package dataset_test

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/katalvlaran/lvcorr/dataset"
	"github.com/katalvlaran/lvcorr/matrix"
	"github.com/stretchr/testify/require"
)

// columnValues returns column j of m as a slice.
func columnValues(t *testing.T, m *matrix.Matrix, j int) []float64 {
	t.Helper()
	col, err := m.Column(j)
	require.NoError(t, err)

	return col.Values()
}

func TestLoadFile_Measurements(t *testing.T) {
	m, err := dataset.LoadFile(filepath.Join("testdata", "data.csv"), []string{"Height", "Age"})
	require.NoError(t, err)
	require.Equal(t, 2, m.Cols())
	require.Equal(t, 20, m.Rows())

	heights := columnValues(t, m, 0)
	ages := columnValues(t, m, 1)
	require.Equal(t, 1.407141826, heights[0])
	require.Equal(t, 1.96944178, heights[11])
	require.Equal(t, 2.017409051, heights[19])
	require.Equal(t, []float64{61, 75, 26, 65, 28}, ages[:5])
	require.Equal(t, 37.0, ages[19])
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := dataset.LoadFile("bad filename", []string{"dummy"})
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = dataset.LoadFile(filepath.Join("testdata", "data.csv"), nil)
	require.ErrorIs(t, err, dataset.ErrNoColumns)

	_, err = dataset.LoadFile(filepath.Join("testdata", "data.csv"), []string{"InvalidName"})
	require.ErrorIs(t, err, dataset.ErrCorruptFile)
	require.Contains(t, err.Error(), "expected 1 headers, only found 0")
}

func TestLoad_RequestedOrder(t *testing.T) {
	in := "a,b,c\n1,2,3\n4,5,6\n"
	m, err := dataset.Load(strings.NewReader(in), []string{"c", "a"})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, columnValues(t, m, 0))
	require.Equal(t, []float64{1, 4}, columnValues(t, m, 1))
}

func TestLoad_Parsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []float64
	}{
		{"exponent", "x\n1e3\n-2.5E-1\n", []float64{1000, -0.25}},
		{"signs and spaces", "x\n +4 \n\t-0.5\n", []float64{4, -0.5}},
		{"blank lines", "x\n1\n\n2\n\n", []float64{1, 2}},
		{"quoted", "x\n\"7.25\"\n", []float64{7.25}},
		{"header only", "x\n", []float64{}},
		{"padded header", " x \n3\n", []float64{3}},
		{"byte order mark", "\ufeffx\n1.5\n", []float64{1.5}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := dataset.Load(strings.NewReader(tc.in), []string{"x"})
			require.NoError(t, err)
			require.Equal(t, tc.want, columnValues(t, m, 0))
		})
	}
}

func TestLoad_Corrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		columns []string
		msg     string
	}{
		{"empty input", "", []string{"a"}, "expected 1 headers, found 0"},
		{"too few headers", "a\n1\n", []string{"a", "b"}, "expected 2 headers, found 1"},
		{"missing header", "a,b\n1,2\n", []string{"a", "z"}, "expected 2 headers, only found 1"},
		{"short record", "a,b\n1,2\n3\n", []string{"a", "b"}, "wrong number of columns, line 3: 3"},
		{"bad number", "a,b\n1,2\n3,x\n", []string{"a", "b"}, "could not parse value x, line 3"},
		{"decimal comma", "a\n\"1,5\"\n", []string{"a"}, "could not parse value 1,5"},
		{"hex float", "a\n0x1p3\n", []string{"a"}, "could not parse value 0x1p3, line 2"},
		{"signed hex", "a\n-0X1.8p1\n", []string{"a"}, "could not parse value -0X1.8p1"},
		{"hex underscores", "a\n0x_1p0\n", []string{"a"}, "could not parse value 0x_1p0"},
		{"nan", "a\nNaN\n", []string{"a"}, "non-finite value, line 2"},
		{"inf", "a\n+Inf\n", []string{"a"}, "non-finite value"},
		{"bare quote", "a\n1\"2\n", []string{"a"}, "bare \""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Load(strings.NewReader(tc.in), tc.columns)
			require.ErrorIs(t, err, dataset.ErrCorruptFile)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoad_ByteOrderMarkHeader(t *testing.T) {
	in := "\ufeffHeight,Age\n1.5,20\n1.7,30\n"
	m, err := dataset.Load(strings.NewReader(in), []string{"Height", "Age"})
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 1.7}, columnValues(t, m, 0))
	require.Equal(t, []float64{20, 30}, columnValues(t, m, 1))

	// only a leading mark is stripped
	_, err = dataset.Load(strings.NewReader("Height,\ufeffAge\n1,2\n"), []string{"Age"})
	require.ErrorIs(t, err, dataset.ErrCorruptFile)
}

func TestLoad_NoColumns(t *testing.T) {
	_, err := dataset.Load(strings.NewReader("a\n1\n"), []string{})
	require.ErrorIs(t, err, dataset.ErrNoColumns)
}

func TestLoad_Options(t *testing.T) {
	t.Parallel()

	m, err := dataset.Load(strings.NewReader("a;b\n1.5;2\n"), []string{"b", "a"}, dataset.WithDelimiter(';'))
	require.NoError(t, err)
	require.Equal(t, []float64{2}, columnValues(t, m, 0))

	_, err = dataset.Load(strings.NewReader("a\n1\n2\n3\n"), []string{"a"}, dataset.WithMaxRows(2))
	require.ErrorIs(t, err, dataset.ErrTooManyRows)

	m, err = dataset.Load(strings.NewReader("a\n1\n2\n"), []string{"a"}, dataset.WithMaxRows(2))
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())

	_, err = dataset.Load(strings.NewReader(" a\n1\n"), []string{"a"}, dataset.WithExactHeaders())
	require.ErrorIs(t, err, dataset.ErrCorruptFile)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { dataset.WithDelimiter('"') })
	require.Panics(t, func() { dataset.WithDelimiter('\n') })
	require.Panics(t, func() { dataset.WithMaxRows(-1) })
	require.Panics(t, func() { dataset.WithDelimiter(utf8.RuneError) })
}

func TestValidDelimiter(t *testing.T) {
	for _, r := range []rune{',', ';', '\t', '|', 'é'} {
		require.True(t, dataset.ValidDelimiter(r), "%q", r)
	}
	for _, r := range []rune{'"', '\r', '\n', utf8.RuneError, -1, 0x110000} {
		require.False(t, dataset.ValidDelimiter(r), "%q", r)
	}
}
