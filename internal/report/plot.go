// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcorr/matrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plot dimensions.
const (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// ErrPlotShape indicates a matrix that is nil or not two columns wide.
var ErrPlotShape = errors.New("report: scatter plot needs a two-column matrix")

// Scatter saves column 0 against column 1 of m to path. The image format
// follows the file extension (png, svg, pdf, jpg, eps, tif).
func Scatter(m *matrix.Matrix, xLabel, yLabel, path string) error {
	if err := matrix.ValidateCols(m, 2); err != nil {
		return fmt.Errorf("Scatter: %w: %v", ErrPlotShape, err)
	}

	xy := make(plotter.XYs, m.Rows())
	for i := range xy {
		x, err := m.At(0, i)
		if err != nil {
			return fmt.Errorf("Scatter: %w", err)
		}
		y, err := m.At(1, i)
		if err != nil {
			return fmt.Errorf("Scatter: %w", err)
		}
		xy[i].X, xy[i].Y = x, y
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", yLabel, xLabel)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	s, err := plotter.NewScatter(xy)
	if err != nil {
		return fmt.Errorf("Scatter: %w", err)
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(s)

	if err := p.Save(PlotWidth, PlotHeight, path); err != nil {
		return fmt.Errorf("Scatter: save %q: %w", path, err)
	}

	return nil
}
