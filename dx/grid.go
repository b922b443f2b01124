/*
 * grid.go, part of apbs-etl.
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

package dx

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Grid is a scalar field on a regular 3D grid, such as the electrostatic potential
//written by APBS.
type Grid struct {
	Origin [3]float64    //the position of the first grid point
	Delta  [3][3]float64 //the spacing vector of each axis, one row per axis.
	Counts [3]int        //grid points along each axis
	Values []float64     //x changes slowest and z fastest
}

//Len returns the number of grid points, which is also the number of values
//in a consistent Grid.
func (G *Grid) Len() int {
	return G.Counts[0] * G.Counts[1] * G.Counts[2]
}

//MaxPoints is the largest number of grid points, or of atoms, that the
//readers accept from a file header.
const MaxPoints = 1 << 30

//readers never pre-allocate more values than this, the rest is appended.
const preallocValues = 1 << 20

//pointCount returns the number of points of a grid with the given counts,
//and false if a count is not positive or the total is over MaxPoints.
func pointCount(counts [3]int) (int, bool) {
	n := 1
	for _, c := range counts {
		if c <= 0 || c > MaxPoints/n {
			return 0, false
		}
		n *= c
	}
	return n, true
}

//At returns the value at the grid point with indexes i, j, k.
//It panics if the indexes are out of range.
func (G *Grid) At(i, j, k int) float64 {
	if i < 0 || j < 0 || k < 0 || i >= G.Counts[0] || j >= G.Counts[1] || k >= G.Counts[2] {
		panic(fmt.Sprintf("dx: grid index (%d,%d,%d) out of range %v", i, j, k, G.Counts))
	}
	return G.Values[(i*G.Counts[1]+j)*G.Counts[2]+k]
}

//Summary contains simple statistics of the values on a grid.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
}

func (S Summary) String() string {
	return fmt.Sprintf("points: %d\nmin: %g\nmax: %g\nmean: %g\nstd. dev.: %g\nmedian: %g\n", S.N, S.Min, S.Max, S.Mean, S.StdDev, S.Median)
}

//Summary returns the statistics of the values in the grid. For an empty grid, all fields are zero.
func (G *Grid) Summary() Summary {
	var s Summary
	s.N = len(G.Values)
	if s.N == 0 {
		return s
	}
	s.Min = floats.Min(G.Values)
	s.Max = floats.Max(G.Values)
	if s.N > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(G.Values, nil)
	} else {
		s.Mean = G.Values[0]
	}
	sorted := append([]float64(nil), G.Values...)
	sort.Float64s(sorted)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return s
}
