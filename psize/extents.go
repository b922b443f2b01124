/*
 * extents.go, part of apbs-etl.
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
	chem "github.com/Electrostatics/apbs-etl"
	v3 "github.com/Electrostatics/apbs-etl/v3"
)

//Extents contains the information about a molecule needed
//to size a grid for it. Min and Max include the atomic radii.
type Extents struct {
	Min    [3]float64
	Max    [3]float64
	Charge float64 //total charge
	Atoms  int     //ATOM records
	Hets   int     //HETATM records
}

//Len returns the total number of atoms considered.
func (E *Extents) Len() int {
	if E == nil {
		return 0
	}
	return E.Atoms + E.Hets
}

//ComputeExtents obtains the extents of the atoms in ats, with coordinates coords, where each atom
//is considered as a sphere with the radius given in the Vdw field.
//Both ATOM and HETATM records contribute to the extents and to the charge.
//If there are no atoms, an Extents with all fields set to zero is returned.
func ComputeExtents(ats chem.Atomer, coords *v3.Matrix) *Extents {
	ext := new(Extents)
	if ats == nil || ats.Len() == 0 || coords.NVecs() == 0 {
		return ext
	}
	n := ats.Len()
	if coords.NVecs() != n {
		panic(v3.ErrShape)
	}
	radii := make([]float64, n)
	for i := 0; i < n; i++ {
		a := ats.Atom(i)
		radii[i] = a.Vdw
		ext.Charge += a.Charge
		if a.Het {
			ext.Hets++
		} else {
			ext.Atoms++
		}
	}
	ext.Min, ext.Max = coords.ShiftedExtremes(radii)
	return ext
}
