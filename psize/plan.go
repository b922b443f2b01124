/*
 * plan.go, part of apbs-etl.
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
)

//Plan is the complete sizing of a multigrid calculation for one molecule.
//Lengths are in A.
type Plan struct {
	Params    Params
	Extents   Extents
	NoAtoms   bool //true if the plan was made for an empty molecule. All other fields are then zero.
	MolLength [3]float64
	Center    [3]float64
	Coarse    [3]float64
	Fine      [3]float64
	Points    [3]int //fine grid points for the whole calculation.
	Smallest  [3]int //grid points of each processor subdomain.
	ProcGrid  [3]int
	NFocus    int
	MemMB     float64 //for a sequential calculation
	ProcMemMB float64 //per processor, for a parallel calculation
}

//ParallelRequired returns true if the sequential calculation doesn't fit under
//the memory ceiling.
func (P *Plan) ParallelRequired() bool {
	return P.MemMB > P.Params.MemCeiling
}

//NProc returns the total number of processors in the processor grid.
func (P *Plan) NProc() int {
	return P.ProcGrid[0] * P.ProcGrid[1] * P.ProcGrid[2]
}

//number of grid points held by one processor.
func (P *Plan) gridTotal() int {
	n := P.Points
	if P.ParallelRequired() {
		n = P.Smallest
	}
	return n[0] * n[1] * n[2]
}

//GridStorageMB returns the disk space, in MB, needed to store the
//potential of the whole calculation in an ASCII file.
func (P *Plan) GridStorageMB() float64 {
	return P.Params.BytesStored * float64(P.NProc()) * float64(P.gridTotal()) / 1024 / 1024
}

//Planner produces Plans for molecules with a fixed set of parameters.
type Planner struct {
	params   Params
	shrinker Shrinker
}

//New returns a Planner with a copy of the parameters p, and a GreedyShrinker.
//It returns an error of kind ErrConfiguration if p is not valid.
func New(p *Params) (*Planner, error) {
	if err := p.Validate(); err != nil {
		return nil, errDecorate(err, "New")
	}
	return &Planner{params: *p, shrinker: GreedyShrinker{}}, nil
}

//WithShrinker sets the shrinker used to fit the subdomains in memory, and returns the Planner.
func (P *Planner) WithShrinker(s Shrinker) *Planner {
	if s != nil {
		P.shrinker = s
	}
	return P
}

//Params returns a copy of the parameters used by the planner.
func (P *Planner) Params() Params {
	return P.params
}

//Plan sizes the calculation for a molecule with the extents ext.
//An empty ext gives a zero Plan with NoAtoms set, not an error.
func (P *Planner) Plan(ext *Extents) (*Plan, error) {
	p := &P.params
	plan := &Plan{Params: *p}
	if ext.Len() == 0 {
		plan.NoAtoms = true
		return plan, nil
	}
	plan.Extents = *ext
	plan.MolLength = MolLength(ext, p)
	plan.Center = Center(ext)
	plan.Coarse = CoarseLength(plan.MolLength, p)
	plan.Fine = FineLength(plan.MolLength, plan.Coarse, p)
	plan.Points = GridPoints(plan.Fine, p)
	plan.MemMB = MemoryMB(plan.Points, p)
	var err error
	plan.Smallest, err = P.shrinker.Shrink(plan.Points, p)
	if err != nil {
		return nil, errDecorate(err, "Plan")
	}
	plan.ProcMemMB = MemoryMB(plan.Smallest, p)
	plan.ProcGrid = ProcGrid(plan.Points, plan.Smallest, p)
	plan.NFocus = FocusLevels(plan.Fine, plan.ProcGrid, plan.Coarse, p)
	return plan, nil
}

//Run sizes the calculation for the first set of coordinates of mol
//with the parameters p. It is a shortcut for New followed by Plan.
func Run(mol *chem.Molecule, p *Params) (*Plan, error) {
	planner, err := New(p)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	if mol == nil || len(mol.Coords) == 0 {
		return planner.Plan(new(Extents))
	}
	plan, err := planner.Plan(ComputeExtents(mol, mol.Coords[0]))
	return plan, errDecorate(err, "Run")
}
