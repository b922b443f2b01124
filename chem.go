/*
 * chem.go, part of apbs-etl.
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

package chem

import (
	"fmt"

	v3 "github.com/Electrostatics/apbs-etl/v3"
	"gonum.org/v1/gonum/floats"
)

//Atom contains the atoms read except for the coordinates, which will be in a matrix.
type Atom struct {
	Name    string
	ID      int //the serial number in the file
	MolName string
	MolID   int
	Chain   string
	InsCode string
	Charge  float64
	Vdw     float64 //the radius given in the PQR file.
	Het     bool    // is hetatm in the file?
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

/*****Topology type***/

//Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates)
type Topology struct {
	Atoms []*Atom
}

//NewTopology returns a topology with the given atoms. It returns
//an error if ats is nil.
func NewTopology(ats []*Atom) (*Topology, error) {
	if ats == nil {
		return nil, CError{"Supplied a nil atom slice", []string{"NewTopology"}}
	}
	return &Topology{Atoms: ats}, nil
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	if T == nil {
		return 0
	}
	return len(T.Atoms)
}

//Charge returns the sum of the partial charges of all atoms.
func (T *Topology) Charge() float64 {
	return floats.Sum(T.Charges())
}

//Charges returns a slice with the charge of each atom, in order.
func (T *Topology) Charges() []float64 {
	ret := make([]float64, T.Len())
	for i, a := range T.Atoms {
		ret[i] = a.Charge
	}
	return ret
}

//Radii returns a slice with the radius of each atom, in order.
func (T *Topology) Radii() []float64 {
	ret := make([]float64, T.Len())
	for i, a := range T.Atoms {
		ret[i] = a.Vdw
	}
	return ret
}

//CountHet returns the number of ATOM and of HETATM records, in that order.
func (T *Topology) CountHet() (atoms, hets int) {
	for _, a := range T.Atoms {
		if a.Het {
			hets++
		} else {
			atoms++
		}
	}
	return atoms, hets
}

/**Type Molecule**/

//Molecule contains all the info for a molecule, possibly in many states. The info that is expected to change between states,
//the coordinates, is stored separately from other atomic info.
type Molecule struct {
	*Topology
	Coords []*v3.Matrix
}

//NewMolecule makes a molecule with the ats topology and coords coordinates, and returns it.
//It returns an error if one of the arguments is nil, or if the number of atoms in
//the topology and in each set of coordinates don't match.
func NewMolecule(ats *Topology, coords []*v3.Matrix) (*Molecule, error) {
	if ats == nil {
		return nil, CError{"Supplied a nil Topology", []string{"NewMolecule"}}
	}
	if coords == nil {
		return nil, CError{"Supplied a nil Coords slice", []string{"NewMolecule"}}
	}
	mol := &Molecule{Topology: ats, Coords: coords}
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return mol, nil
}

//Corrupted checks whether the molecule is usable, i.e. the number of atoms
//matches the number of coordinates in every frame.
func (M *Molecule) Corrupted() error {
	for i, c := range M.Coords {
		if c.NVecs() != M.Len() {
			return CError{fmt.Sprintf("Inconsistent coordinates/atoms in frame %d: %d vs %d", i, c.NVecs(), M.Len()), []string{"Corrupted"}}
		}
	}
	return nil
}
