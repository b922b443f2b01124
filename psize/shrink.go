/*
 * shrink.go, part of apbs-etl.
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
	"fmt"
)

var axisNames = [3]string{"x", "y", "z"}

//Shrinker finds, starting from the fine grid points, the grid points of a subdomain
//whose calculation fits under the memory ceiling in p.
//A Shrinker never returns a grid over the ceiling: it either fits or returns an error
//of kind ErrResourceInfeasible.
type Shrinker interface {
	Shrink(points [3]int, p *Params) ([3]int, error)
}

//GreedyShrinker removes one multigrid level at a time from the axis with
//the most points (the first one, in x, y, z order, in case of a tie)
//until the grid fits in memory. It is not guaranteed to find the largest grid that fits.
type GreedyShrinker struct{}

//Shrink returns the grid points that fit under p.MemCeiling. The points given are
//expected to be of the form (p.MinGridPoints-1)*k+1.
func (G GreedyShrinker) Shrink(points [3]int, p *Params) ([3]int, error) {
	n := points
	step := p.MinGridPoints - 1
	for MemoryMB(n, p) >= p.MemCeiling {
		i := 0
		for j := 1; j < 3; j++ {
			if n[j] > n[i] {
				i = j
			}
		}
		n[i] = step*((n[i]-1)/step-1) + 1
		if n[i] <= 0 {
			return n, Error{fmt.Sprintf("the memory ceiling %g MB is too small: axis %s can't be shrunk further", p.MemCeiling, axisNames[i]), "", []string{"GreedyShrinker.Shrink"}, true, ErrResourceInfeasible}
		}
	}
	return n, nil
}
