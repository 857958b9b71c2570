// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcorr/matrix"
)

// LoadFile opens path and loads the named columns from it.
// Errors: ErrNoColumns, a wrapped fs.ErrNotExist, and everything Load returns.
func LoadFile(path string, columns []string, opts ...Option) (*matrix.Matrix, error) {
	tag := fmt.Sprintf("LoadFile(%q)", path)
	if len(columns) == 0 {
		return nil, datasetErrorf(tag, ErrNoColumns)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, datasetErrorf(tag, err)
	}
	defer f.Close()

	m, err := Load(f, columns, opts...)
	if err != nil {
		return nil, datasetErrorf(tag, err)
	}

	return m, nil
}

// Load reads delimited records from r and returns the named columns.
// Stage 1 (Validate): at least one column requested.
// Stage 2 (Prepare): read the header and map each requested name to its
// field index.
// Stage 3 (Execute): parse one row per record into the matrix.
// Errors: ErrNoColumns, ErrCorruptFile, ErrTooManyRows.
// Complexity: O(rows * fields).
func Load(r io.Reader, columns []string, opts ...Option) (*matrix.Matrix, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	o := gatherOptions(opts...)

	cr := csv.NewReader(r)
	cr.Comma = o.delimiter
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, corruptf("expected %d headers, found 0", len(columns))
	}
	if err != nil {
		return nil, corruptf("header: %v", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	}
	indexes, maxIndex, err := mapHeaders(header, columns, o.trimHeaders)
	if err != nil {
		return nil, err
	}

	m, err := matrix.New(len(columns), matrix.WithFiniteValues())
	if err != nil {
		return nil, err
	}
	row := make([]float64, len(columns))
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, corruptf("%v", err)
		}
		line, _ := cr.FieldPos(0)
		if len(record) <= maxIndex {
			return nil, corruptf("wrong number of columns, line %d: %s",
				line, strings.Join(record, string(o.delimiter)))
		}
		if o.maxRows > 0 && m.Rows() == o.maxRows {
			return nil, fmt.Errorf("%w: limit is %d", ErrTooManyRows, o.maxRows)
		}

		for j, idx := range indexes {
			if row[j], err = parseValue(record[idx]); err != nil {
				return nil, corruptf("could not parse value %s, line %d", record[idx], line)
			}
		}
		if err = m.AppendRow(row...); err != nil {
			if errors.Is(err, matrix.ErrNaNInf) {
				return nil, corruptf("non-finite value, line %d", line)
			}
			return nil, err
		}
	}

	return m, nil
}

// mapHeaders returns, per requested column, its index in header, plus the
// right-most index any record must reach.
func mapHeaders(header, columns []string, trim bool) ([]int, int, error) {
	if len(header) < len(columns) {
		return nil, 0, corruptf("expected %d headers, found %d", len(columns), len(header))
	}

	positions := make(map[string]int, len(header))
	for i := len(header) - 1; i >= 0; i-- {
		name := header[i]
		if trim {
			name = strings.TrimSpace(name)
		}
		positions[name] = i // first occurrence wins
	}

	indexes := make([]int, len(columns))
	found, maxIndex := 0, 0
	for j, c := range columns {
		if trim {
			c = strings.TrimSpace(c)
		}
		i, ok := positions[c]
		if !ok {
			indexes[j] = -1
			continue
		}
		indexes[j] = i
		maxIndex = max(maxIndex, i)
		found++
	}
	if found < len(columns) {
		return nil, 0, corruptf("expected %d headers, only found %d", len(columns), found)
	}

	return indexes, maxIndex, nil
}

// byteOrderMark prefixes files exported as "CSV UTF-8" by spreadsheets.
const byteOrderMark = "\ufeff"

// parseValue parses one field in the locale-independent decimal format.
// Hexadecimal mantissas, which strconv also accepts, are rejected.
func parseValue(field string) (float64, error) {
	s := strings.TrimSpace(field)
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, strconv.ErrSyntax
	}

	return strconv.ParseFloat(s, 64)
}
