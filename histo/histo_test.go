/*
 * histo_test.go, part of apbs-etl.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package histo

import (
	"fmt"
	"math"
	"testing"
)

func TestHisto(Te *testing.T) {
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	first := rawdata[0]
	h := NewData([]float64{0, 1, 2, 3, 4, 8}, rawdata)
	fmt.Println(h.String())
	if rawdata[0] != first {
		Te.Error("the raw data was modified")
	}
	expected := []float64{2, 6, 2, 7, 9}
	for i, v := range h.View() {
		if v != expected[i] {
			Te.Errorf("bin %d: expected %v, got %v", i, expected[i], v)
		}
	}
	if h.Total() != len(rawdata) || h.Sum() != 26 {
		Te.Errorf("wrong total %d or sum %v", h.Total(), h.Sum())
	}
	h.Normalize()
	if !h.Normalized() || math.Abs(h.Sum()-26.0/29.0) > 1e-12 {
		Te.Errorf("wrong normalization, sum %v", h.Sum())
	}
	h.AddData(0.5)
	h.UnNormalize()
	if math.Abs(h.View()[0]-3) > 1e-9 || h.Total() != 30 {
		Te.Errorf("AddData failed: %v", h.View())
	}
}

func TestFromValues(Te *testing.T) {
	vals := []float64{-11, -6, -2.5, 0, 1, 4, 10}
	h := FromValues(vals, 3)
	if h.Sum() != float64(len(vals)) {
		Te.Errorf("all values should be counted, got %v", h.View())
	}
	d := h.CopyDividers()
	if len(d) != 4 || d[0] != -11 || d[3] <= 10 {
		Te.Errorf("wrong dividers %v", d)
	}
	//a constant set still gives a usable histogram
	h = FromValues([]float64{2, 2, 2}, 4)
	if h.Sum() != 3 {
		Te.Errorf("constant values lost: %v", h.View())
	}
	if e := FromValues(nil, 2); e.Sum() != 0 || len(e.View()) != 2 {
		Te.Errorf("wrong empty histogram %v", e.View())
	}
}
