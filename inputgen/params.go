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

package inputgen

//Ion is one ionic species added to the solvent when the ionic strength is not zero.
type Ion struct {
	Name   string
	Charge float64 //in e
	Radius float64 //in A
}

//StemMode selects the file name given to the potential written by APBS.
type StemMode int

const (
	//StemDefault uses StemFromInput for potential-only inputs and StemFixed otherwise.
	StemDefault StemMode = iota
	//StemFixed always writes the potential to "pot".
	StemFixed
	//StemFromInput names the potential after the PQR file, without extension.
	StemFromInput
)

//FixedStem is the name of the potential file with StemFixed.
const FixedStem = "pot"

//ElecParams contains the physical parameters and the keywords of an ELEC block
//that don't depend on the molecule.
type ElecParams struct {
	Label      string
	PDie       float64 //solute dielectric
	SDie       float64 //solvent dielectric
	RefSDie    float64 //solvent dielectric of the homogeneous reference calculation
	SDens      float64 //surface density, points/A^2
	SRad       float64 //solvent probe radius, A
	SWin       float64 //spline window, A
	Temp       float64 //K
	BCFL       string
	SRFM       string
	CHGM       string
	CalcEnergy string
	CalcForce  string
	NonLinear  bool //npbe instead of lpbe
	Ions       []Ion
	PotStem    StemMode
}

//DefaultElecParams returns the parameters for a typical solvation energy calculation
//in water, with chloride and sodium as ions.
func DefaultElecParams() *ElecParams {
	e := new(ElecParams)
	e.PDie = 2.0
	e.SDie = 78.54
	e.RefSDie = 2.0
	e.SDens = 10.0
	e.SRad = 1.4
	e.SWin = 0.3
	e.Temp = 298.15
	e.BCFL = "sdh"
	e.SRFM = "smol"
	e.CHGM = "spl2"
	e.CalcEnergy = "total"
	e.CalcForce = "no"
	e.Ions = []Ion{
		{Name: "chloride", Charge: -1, Radius: 1.815},
		{Name: "sodium", Charge: 1, Radius: 1.875},
	}
	e.PotStem = StemDefault
	return e
}

//ParseStemMode returns the StemMode for the names "fixed", "input" or "", which
//gives StemDefault.
func ParseStemMode(s string) (StemMode, error) {
	switch s {
	case "", "default":
		return StemDefault, nil
	case "fixed":
		return StemFixed, nil
	case "input":
		return StemFromInput, nil
	}
	return StemDefault, Error{"invalid potential stem mode " + s + ", must be fixed or input", "", []string{"ParseStemMode"}, true, ErrConfiguration}
}
