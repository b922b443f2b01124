/*
 * elec.go, part of apbs-etl.
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

import (
	"fmt"
	"path/filepath"
	"strings"

	chem "github.com/Electrostatics/apbs-etl"
	"github.com/Electrostatics/apbs-etl/psize"
)

//Write is one write statement of an ELEC block, i.e. "write pot dx pot".
type Write struct {
	Type   string
	Format string
	Stem   string
}

//Elec is an ELEC block of an APBS input file.
type Elec struct {
	Label      string
	Method     Method
	Dime       [3]int
	GLen       [3]float64 //mg-manual only
	CGLen      [3]float64
	FGLen      [3]float64
	PDime      [3]int
	OFrac      float64
	GCent      string
	CGCent     string
	FGCent     string
	AsyncFlag  bool
	Async      int
	Mol        int
	NonLinear  bool
	BCFL       string
	IStrng     float64 //ionic strength, M
	Ions       []Ion
	PDie       float64
	SDie       float64
	SRFM       string
	CHGM       string
	SDens      float64
	SRad       float64
	SWin       float64
	Temp       float64
	CalcEnergy string
	CalcForce  string
	Writes     []Write
}

//potStem returns the file name, without extension, of the PQR file in pqrname.
func potStem(pqrname string) string {
	base := filepath.Base(chem.TrimCompression(pqrname))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

//NewElec returns an ELEC block for the molecule in the file pqrname, sized with plan.
//If method is MethodSelect, mg-para is used when the sequential calculation doesn't fit
//under the memory ceiling of plan, and mg-auto otherwise. For mg-para the block uses
//the grid of each processor, instead of the global one. The overlap fraction comes
//from the parameters of plan; a plan with zero parameters, which no psize.Planner
//produces, gets the one of psize.DefaultParams. ep can be nil, in which
//case DefaultElecParams are used.
func NewElec(pqrname string, plan *psize.Plan, method Method, async bool, istrng float64, potdx bool, ep *ElecParams) (*Elec, error) {
	if !method.valid() {
		return nil, Error{fmt.Sprintf("invalid method %d, must be one of %s", method, AllowedMethods), "", []string{"NewElec"}, true, ErrConfiguration}
	}
	if plan == nil {
		return nil, Error{"no grid plan given", "", []string{"NewElec"}, true, ErrConfiguration}
	}
	if ep == nil {
		ep = DefaultElecParams()
	}
	if method == MethodSelect {
		method = MethodAuto
		if plan.ParallelRequired() {
			method = MethodPara
		}
	}
	e := &Elec{
		Label:      ep.Label,
		Method:     method,
		Dime:       plan.Points,
		GLen:       plan.Coarse,
		CGLen:      plan.Coarse,
		FGLen:      plan.Fine,
		PDime:      plan.ProcGrid,
		OFrac:      plan.Params.OFrac,
		GCent:      "mol 1",
		CGCent:     "mol 1",
		FGCent:     "mol 1",
		AsyncFlag:  async,
		Mol:        1,
		NonLinear:  ep.NonLinear,
		BCFL:       ep.BCFL,
		IStrng:     istrng,
		Ions:       append([]Ion(nil), ep.Ions...),
		PDie:       ep.PDie,
		SDie:       ep.SDie,
		SRFM:       ep.SRFM,
		CHGM:       ep.CHGM,
		SDens:      ep.SDens,
		SRad:       ep.SRad,
		SWin:       ep.SWin,
		Temp:       ep.Temp,
		CalcEnergy: ep.CalcEnergy,
		CalcForce:  ep.CalcForce,
	}
	if plan.Params == (psize.Params{}) {
		e.OFrac = psize.DefaultParams().OFrac
	}
	if method == MethodPara {
		e.Dime = plan.Smallest
	}
	stem := FixedStem
	mode := ep.PotStem
	if mode == StemDefault && potdx {
		mode = StemFromInput
	}
	if mode == StemFromInput {
		stem = potStem(pqrname)
	}
	e.Writes = []Write{{"pot", "dx", stem}}
	return e, nil
}

//Copy returns a copy of the block that shares no data with the original.
func (E *Elec) Copy() *Elec {
	r := *E
	r.Ions = append([]Ion(nil), E.Ions...)
	r.Writes = append([]Write(nil), E.Writes...)
	return &r
}

func f3(format string, v [3]float64) string {
	return fmt.Sprintf(format+" "+format+" "+format, v[0], v[1], v[2])
}

//String returns the block in the APBS input syntax.
func (E *Elec) String() string {
	var b strings.Builder
	const in = "    "
	if E.Label != "" {
		fmt.Fprintf(&b, "elec %s\n", E.Label)
	} else {
		b.WriteString("elec\n")
	}
	fmt.Fprintf(&b, in+"%s\n", E.Method)
	fmt.Fprintf(&b, in+"dime %d %d %d\n", E.Dime[0], E.Dime[1], E.Dime[2])
	switch E.Method {
	case MethodAuto:
		fmt.Fprintf(&b, in+"cglen %s\n", f3("%.4f", E.CGLen))
		fmt.Fprintf(&b, in+"fglen %s\n", f3("%.4f", E.FGLen))
		fmt.Fprintf(&b, in+"cgcent %s\n", E.CGCent)
		fmt.Fprintf(&b, in+"fgcent %s\n", E.FGCent)
	case MethodManual:
		fmt.Fprintf(&b, in+"glen %s\n", f3("%.3f", E.GLen))
		fmt.Fprintf(&b, in+"gcent %s\n", E.GCent)
	case MethodPara:
		fmt.Fprintf(&b, in+"pdime %d %d %d\n", E.PDime[0], E.PDime[1], E.PDime[2])
		fmt.Fprintf(&b, in+"ofrac %.1f\n", E.OFrac)
		fmt.Fprintf(&b, in+"cglen %s\n", f3("%.4f", E.CGLen))
		fmt.Fprintf(&b, in+"fglen %s\n", f3("%.4f", E.FGLen))
		fmt.Fprintf(&b, in+"cgcent %s\n", E.CGCent)
		fmt.Fprintf(&b, in+"fgcent %s\n", E.FGCent)
		if E.AsyncFlag {
			fmt.Fprintf(&b, in+"async %d\n", E.Async)
		}
	}
	fmt.Fprintf(&b, in+"mol %d\n", E.Mol)
	if E.NonLinear {
		b.WriteString(in + "npbe\n")
	} else {
		b.WriteString(in + "lpbe\n")
	}
	fmt.Fprintf(&b, in+"bcfl %s\n", E.BCFL)
	if E.IStrng > 0 {
		for _, ion := range E.Ions {
			fmt.Fprintf(&b, in+"ion charge %.2f conc %.3f radius %.4f\n", ion.Charge, E.IStrng, ion.Radius)
		}
	}
	fmt.Fprintf(&b, in+"pdie %.4f\n", E.PDie)
	fmt.Fprintf(&b, in+"sdie %.4f\n", E.SDie)
	fmt.Fprintf(&b, in+"srfm %s\n", E.SRFM)
	fmt.Fprintf(&b, in+"chgm %s\n", E.CHGM)
	fmt.Fprintf(&b, in+"sdens %.2f\n", E.SDens)
	fmt.Fprintf(&b, in+"srad %.2f\n", E.SRad)
	fmt.Fprintf(&b, in+"swin %.2f\n", E.SWin)
	fmt.Fprintf(&b, in+"temp %.2f\n", E.Temp)
	fmt.Fprintf(&b, in+"calcenergy %s\n", E.CalcEnergy)
	fmt.Fprintf(&b, in+"calcforce %s\n", E.CalcForce)
	for _, w := range E.Writes {
		fmt.Fprintf(&b, in+"write %s %s %s\n", w.Type, w.Format, w.Stem)
	}
	b.WriteString("end\n")
	return b.String()
}
