/*
 * config.go, part of apbs-etl.
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

//Package config reads the numerical parameters of the grid sizing and of the
//APBS input files from an HCL file, such as:
//
//	grid {
//	  cfac     = 1.7
//	  gmemceil = 800
//	}
//	elec {
//	  sdie     = 78.54
//	  pot_stem = "input"
//	}
//	ion "chloride" {
//	  charge = -1
//	  radius = 1.815
//	}
//
//All blocks and attributes are optional, unset values keep their defaults.
//If any ion block is present, the ions given replace the default ones.
package config

import (
	"fmt"

	"github.com/Electrostatics/apbs-etl/inputgen"
	"github.com/Electrostatics/apbs-etl/psize"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

//File is the content of a configuration file.
type File struct {
	Grid *Grid  `hcl:"grid,block"`
	Elec *Elec  `hcl:"elec,block"`
	Ions []*Ion `hcl:"ion,block"`
	name string
}

//Grid corresponds to psize.Params
type Grid struct {
	CFac          *float64 `hcl:"cfac,optional"`
	FAdd          *float64 `hcl:"fadd,optional"`
	Space         *float64 `hcl:"space,optional"`
	GMemFac       *float64 `hcl:"gmemfac,optional"`
	GMemCeil      *float64 `hcl:"gmemceil,optional"`
	OFrac         *float64 `hcl:"ofrac,optional"`
	RedFac        *float64 `hcl:"redfac,optional"`
	MinGridPoints *int     `hcl:"min_grid_points,optional"`
	MinMolLength  *float64 `hcl:"min_mol_length,optional"`
	BytesStored   *float64 `hcl:"bytes_stored,optional"`
}

//Elec corresponds to inputgen.ElecParams
type Elec struct {
	Label      *string  `hcl:"label,optional"`
	PDie       *float64 `hcl:"pdie,optional"`
	SDie       *float64 `hcl:"sdie,optional"`
	RefSDie    *float64 `hcl:"ref_sdie,optional"`
	SDens      *float64 `hcl:"sdens,optional"`
	SRad       *float64 `hcl:"srad,optional"`
	SWin       *float64 `hcl:"swin,optional"`
	Temp       *float64 `hcl:"temp,optional"`
	BCFL       *string  `hcl:"bcfl,optional"`
	SRFM       *string  `hcl:"srfm,optional"`
	CHGM       *string  `hcl:"chgm,optional"`
	CalcEnergy *string  `hcl:"calcenergy,optional"`
	CalcForce  *string  `hcl:"calcforce,optional"`
	NonLinear  *bool    `hcl:"npbe,optional"`
	PotStem    *string  `hcl:"pot_stem,optional"`
}

//Ion is one ionic species.
type Ion struct {
	Name   string  `hcl:"name,label"`
	Charge float64 `hcl:"charge"`
	Radius float64 `hcl:"radius"`
}

//Error is the error type of this package. It fulfills chem.FileError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("config: %s: %s", err.filename, err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err Error) FileName() string { return err.filename }

func (err Error) Critical() bool { return err.critical }

//Load reads the configuration file path.
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, Error{diags.Error(), path, []string{"Load"}, true}
	}
	return decode(f.Body, path)
}

//Parse reads a configuration from src. filename is only used in error messages.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, Error{diags.Error(), filename, []string{"Parse"}, true}
	}
	return decode(f.Body, filename)
}

func decode(body hcl.Body, filename string) (*File, error) {
	var file File
	if diags := gohcl.DecodeBody(body, nil, &file); diags.HasErrors() {
		return nil, Error{diags.Error(), filename, []string{"decode"}, true}
	}
	file.name = filename
	return &file, nil
}

func setF(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setS(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

//Apply overwrites the fields of p and ep with the values set in the file.
//Either can be nil, in which case it is skipped. It returns an error if
//the resulting parameters are not valid.
func (F *File) Apply(p *psize.Params, ep *inputgen.ElecParams) error {
	if p != nil && F.Grid != nil {
		g := F.Grid
		setF(&p.CFac, g.CFac)
		setF(&p.FAdd, g.FAdd)
		setF(&p.Space, g.Space)
		setF(&p.BytesPerGridPoint, g.GMemFac)
		setF(&p.MemCeiling, g.GMemCeil)
		setF(&p.OFrac, g.OFrac)
		setF(&p.RedFac, g.RedFac)
		setF(&p.MinMolLength, g.MinMolLength)
		setF(&p.BytesStored, g.BytesStored)
		if g.MinGridPoints != nil {
			p.MinGridPoints = *g.MinGridPoints
		}
	}
	if p != nil {
		if err := p.Validate(); err != nil {
			return Error{err.Error(), F.name, []string{"Apply"}, true}
		}
	}
	if ep == nil {
		return nil
	}
	if e := F.Elec; e != nil {
		setS(&ep.Label, e.Label)
		setF(&ep.PDie, e.PDie)
		setF(&ep.SDie, e.SDie)
		setF(&ep.RefSDie, e.RefSDie)
		setF(&ep.SDens, e.SDens)
		setF(&ep.SRad, e.SRad)
		setF(&ep.SWin, e.SWin)
		setF(&ep.Temp, e.Temp)
		setS(&ep.BCFL, e.BCFL)
		setS(&ep.SRFM, e.SRFM)
		setS(&ep.CHGM, e.CHGM)
		setS(&ep.CalcEnergy, e.CalcEnergy)
		setS(&ep.CalcForce, e.CalcForce)
		if e.NonLinear != nil {
			ep.NonLinear = *e.NonLinear
		}
		if e.PotStem != nil {
			mode, err := inputgen.ParseStemMode(*e.PotStem)
			if err != nil {
				return Error{err.Error(), F.name, []string{"Apply"}, true}
			}
			ep.PotStem = mode
		}
	}
	if len(F.Ions) > 0 {
		ep.Ions = make([]inputgen.Ion, len(F.Ions))
		for i, ion := range F.Ions {
			ep.Ions[i] = inputgen.Ion{Name: ion.Name, Charge: ion.Charge, Radius: ion.Radius}
		}
	}
	return nil
}
