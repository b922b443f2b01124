/*
 * params.go, part of apbs-etl.
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

import "math"

//Params contains all the numbers that control the size of a multigrid
//calculation. Lengths are in A, memory in MB.
type Params struct {
	CFac              float64 //factor by which the molecular dimensions are expanded to get the coarse grid dimensions.
	FAdd              float64 //amount added to the molecular dimensions to get the fine grid dimensions.
	Space             float64 //desired fine mesh resolution.
	BytesPerGridPoint float64 //needed for a sequential multigrid calculation.
	MemCeiling        float64 //max MB allowed for a sequential calculation. Lower values force more parallelism.
	OFrac             float64 //overlap factor between mesh partitions in a parallel calculation.
	RedFac            float64 //the maximum factor by which a domain dimension can be reduced during focusing.
	MinGridPoints     int     //Grid points per axis are always a multiple of MinGridPoints-1, plus one.
	MinMolLength      float64 //molecular lengths are never smaller than this.
	BytesStored       float64 //bytes per grid point in an ASCII (OpenDX) output file.
}

//DefaultParams returns the parameters normally used by APBS users.
func DefaultParams() *Params {
	p := new(Params)
	p.CFac = 1.7
	p.FAdd = 20
	p.Space = 0.5
	p.BytesPerGridPoint = 200
	p.MemCeiling = 400
	p.OFrac = 0.1
	p.RedFac = 0.25
	p.MinGridPoints = 33 //4 levels in the multigrid hierarchy
	p.MinMolLength = 0.1
	p.BytesStored = 12
	return p
}

//Validate returns an error of kind ErrConfiguration if any
//parameter makes the sizing meaningless.
func (p *Params) Validate() error {
	if p == nil {
		return configErr("Validate", "nil parameters")
	}
	for name, v := range map[string]float64{
		"cfac":               p.CFac,
		"fadd":               p.FAdd,
		"space":              p.Space,
		"bytes per point":    p.BytesPerGridPoint,
		"memory ceiling":     p.MemCeiling,
		"ofrac":              p.OFrac,
		"redfac":             p.RedFac,
		"min mol length":     p.MinMolLength,
		"bytes stored/point": p.BytesStored,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return configErr("Validate", "%s must be a finite number, got %g", name, v)
		}
	}
	switch {
	case p.MemCeiling <= 0:
		return configErr("Validate", "memory ceiling must be positive, got %g MB", p.MemCeiling)
	case p.Space <= 0:
		return configErr("Validate", "grid spacing must be positive, got %g", p.Space)
	case p.BytesPerGridPoint <= 0:
		return configErr("Validate", "bytes per grid point must be positive, got %g", p.BytesPerGridPoint)
	case p.CFac < 1:
		return configErr("Validate", "coarse grid factor can't be smaller than 1, got %g", p.CFac)
	case p.FAdd < 0:
		return configErr("Validate", "fine grid padding can't be negative, got %g", p.FAdd)
	case p.MinGridPoints < 2:
		return configErr("Validate", "minimum grid points must be at least 2, got %d", p.MinGridPoints)
	case p.RedFac <= 0 || p.RedFac >= 1:
		return configErr("Validate", "focusing reduction factor must be in (0,1), got %g", p.RedFac)
	case p.OFrac < 0:
		return configErr("Validate", "overlap fraction can't be negative, got %g", p.OFrac)
	case p.MinMolLength <= 0:
		return configErr("Validate", "minimum molecular length must be positive, got %g", p.MinMolLength)
	case p.BytesStored < 0:
		return configErr("Validate", "bytes stored per grid point can't be negative, got %g", p.BytesStored)
	}
	return nil
}
