// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-json"
	"github.com/katalvlaran/lvcorr/correlation"
)

// Report describes one correlation run.
type Report struct {
	File    string
	Columns []string
	Rows    int
	Results []correlation.Result
}

// WriteText writes one "The <name> value is <value>" line per result.
func WriteText(w io.Writer, r Report) error {
	for _, res := range r.Results {
		if _, err := fmt.Fprintf(w, "The %s value is %v\n", res.Name, res.Value); err != nil {
			return err
		}
	}

	return nil
}

type jsonResult struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
}

type jsonReport struct {
	File    string       `json:"file"`
	Columns []string     `json:"columns"`
	Rows    int          `json:"rows"`
	Results []jsonResult `json:"results"`
}

// WriteJSON writes r as an indented JSON document.
func WriteJSON(w io.Writer, r Report) error {
	doc := jsonReport{
		File:    r.File,
		Columns: r.Columns,
		Rows:    r.Rows,
		Results: make([]jsonResult, len(r.Results)),
	}
	if doc.Columns == nil {
		doc.Columns = []string{}
	}
	for i, res := range r.Results {
		doc.Results[i] = jsonResult{Name: res.Name, Value: finite(res.Value)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// finite returns nil for NaN and ±Inf, which JSON cannot represent.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}
