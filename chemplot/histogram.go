/*
 * histogram.go, part of apbs-etl.
 *
 * Copyright 2026 The apbs-etl Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package chemplot draws plots of the results of electrostatics calculations.
package chemplot

import (
	"fmt"
	"image/color"

	"github.com/Electrostatics/apbs-etl/dx"
	"github.com/Electrostatics/apbs-etl/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//HistoPlot plots the histogram h with the given title and label for the x axis,
//and saves it to filename. The format is given by the extension of filename
//(png, svg, pdf, eps, jpg or tif).
func HistoPlot(h *histo.Data, title, xlabel, filename string) error {
	if h == nil {
		return fmt.Errorf("chemplot: nil histogram given")
	}
	div := h.CopyDividers()
	counts := h.View()
	bins := make([]plotter.HistogramBin, len(counts))
	for i, v := range counts {
		bins[i] = plotter.HistogramBin{Min: div[i], Max: div[i+1], Weight: v}
	}
	hp := &plotter.Histogram{
		Bins:      bins,
		FillColor: color.RGBA{R: 70, G: 110, B: 200, A: 255},
		LineStyle: plotter.DefaultLineStyle,
	}
	if len(div) > 1 {
		hp.Width = div[1] - div[0]
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Grid points"
	if h.Normalized() {
		p.Y.Label.Text = "Fraction of grid points"
	}
	p.Add(plotter.NewGrid())
	p.Add(hp)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("chemplot: saving %s: %w", filename, err)
	}
	return nil
}

//ValueHistogram plots the distribution of the values on the grid g,
//using the given number of bins of equal width, and saves it to filename.
func ValueHistogram(g *dx.Grid, bins int, title, filename string) error {
	if g == nil || len(g.Values) == 0 {
		return fmt.Errorf("chemplot: no grid values to plot")
	}
	if bins < 1 {
		return fmt.Errorf("chemplot: at least 1 bin is needed, got %d", bins)
	}
	return HistoPlot(histo.FromValues(g.Values, bins), title, "Value", filename)
}
