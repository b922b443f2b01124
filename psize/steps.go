/*
 * steps.go, part of apbs-etl.
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

package psize

import (
	"math"
)

//The functions in this file are the individual steps of a sizing. Each takes
//the results of previous steps and returns a new value, so they can be used
//and tested separately. None of them validates p, Planner does that.

//MolLength returns the molecular length along each axis, never smaller than
//p.MinMolLength, so planar or single-atom molecules still get a grid.
func MolLength(ext *Extents, p *Params) [3]float64 {
	var l [3]float64
	for i := range l {
		l[i] = math.Max(ext.Max[i]-ext.Min[i], p.MinMolLength)
	}
	return l
}

//Center returns the geometric center of the box defined by ext.
func Center(ext *Extents) [3]float64 {
	var c [3]float64
	for i := range c {
		c[i] = (ext.Max[i] + ext.Min[i]) / 2
	}
	return c
}

//CoarseLength returns the coarse grid lengths for the molecular lengths mol.
func CoarseLength(mol [3]float64, p *Params) [3]float64 {
	var c [3]float64
	for i := range c {
		c[i] = p.CFac * mol[i]
	}
	return c
}

//FineLength returns the fine grid lengths, which are the molecular lengths plus a padding,
//but never larger than the coarse lengths.
func FineLength(mol, coarse [3]float64, p *Params) [3]float64 {
	var f [3]float64
	for i := range f {
		f[i] = math.Min(mol[i]+p.FAdd, coarse[i])
	}
	return f
}

//GridPoints returns the number of fine grid points on each axis for the lengths fine.
//Each number is of the form (p.MinGridPoints-1)*k+1, as required by the multigrid hierarchy,
//and at least p.MinGridPoints.
func GridPoints(fine [3]float64, p *Params) [3]int {
	var n [3]int
	step := p.MinGridPoints - 1
	for i := range n {
		t := int(fine[i]/p.Space + 0.5)
		n[i] = step*int(float64(t-1)/float64(step)+0.5) + 1
		if n[i] < p.MinGridPoints {
			n[i] = p.MinGridPoints
		}
	}
	return n
}

//MemoryMB returns the memory, in MB, needed for a multigrid calculation with
//the given number of grid points.
func MemoryMB(points [3]int, p *Params) float64 {
	return p.BytesPerGridPoint * float64(points[0]) * float64(points[1]) * float64(points[2]) / 1024 / 1024
}

//ProcGrid returns the number of processors needed along each axis to span
//points grid points with subdomains of smallest points that overlap by p.OFrac.
func ProcGrid(points, smallest [3]int, p *Params) [3]int {
	var np [3]int
	zofac := 1 + 2*p.OFrac
	for i := range np {
		np[i] = 1
		if smallest[i] > 0 && points[i] > smallest[i] {
			np[i] = int(zofac*float64(points[i])/float64(smallest[i]) + 1.0)
		}
	}
	return np
}

//FocusLevels returns the number of focusing operations needed to go from the coarse
//grid to the fine grid of each processor subdomain.
func FocusLevels(fine [3]float64, proc [3]int, coarse [3]float64, p *Params) int {
	nfocus := math.MinInt
	for i := 0; i < 3; i++ {
		nf := int(math.Log((fine[i]/float64(proc[i]))/coarse[i])/math.Log(p.RedFac) + 1.0)
		if nf > nfocus {
			nfocus = nf
		}
	}
	if nfocus > 0 {
		nfocus++
	}
	return nfocus
}
