/*
 * input.go, part of apbs-etl.
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
	"path/filepath"
	"strings"

	"github.com/Electrostatics/apbs-etl/psize"
)

//Input is a complete APBS input file: the molecule to read, the ELEC blocks
//and the energies to print.
type Input struct {
	PQRName string
	Elecs   []*Elec
	Prints  []string
	async   bool
}

//NewInput returns the input for the molecule in the PQR file pqrpath, sized with plan.
//Unless potdx is true, the input computes the solvation energy as the difference between
//two calculations: one with the solvent dielectric in ep, and a reference one with ep.RefSDie
//as solvent dielectric, which writes nothing. With potdx, only the first calculation is done, and
//it writes the potential map. ep can be nil, in which case DefaultElecParams are used.
func NewInput(pqrpath string, plan *psize.Plan, method Method, async bool, istrng float64, potdx bool, ep *ElecParams) (*Input, error) {
	if ep == nil {
		ep = DefaultElecParams()
	}
	name := filepath.Base(pqrpath)
	elec, err := NewElec(name, plan, method, async, istrng, potdx, ep)
	if err != nil {
		return nil, errDecorate(err, "NewInput")
	}
	in := &Input{PQRName: name, Elecs: []*Elec{elec}, async: async}
	if potdx {
		in.Prints = []string{"print elecEnergy 1 end"}
		return in, nil
	}
	ref := elec.Copy()
	ref.SDie = ep.RefSDie
	ref.Writes = nil
	in.Elecs = append(in.Elecs, ref)
	in.Prints = []string{"print elecEnergy 2 - 1 end"}
	return in, nil
}

//Async returns true if the input will be written as one file per processor.
func (I *Input) Async() bool {
	return I.async
}

//NProc returns the number of processors needed by the input, i.e. the
//product of the processor grid of its first block.
func (I *Input) NProc() int {
	if len(I.Elecs) == 0 {
		return 0
	}
	p := I.Elecs[0].PDime
	return p[0] * p[1] * p[2]
}

//withAsync returns a copy of the input where every block has the
//given asynchronous flag and processor index.
func (I *Input) withAsync(flag bool, proc int) *Input {
	r := *I
	r.Elecs = make([]*Elec, len(I.Elecs))
	for i, e := range I.Elecs {
		r.Elecs[i] = e.Copy()
		r.Elecs[i].AsyncFlag = flag
		r.Elecs[i].Async = proc
	}
	return &r
}

//String returns the input file.
func (I *Input) String() string {
	var b strings.Builder
	b.WriteString("read\n")
	b.WriteString("    mol pqr " + I.PQRName + "\n")
	b.WriteString("end\n")
	for _, e := range I.Elecs {
		b.WriteString(e.String())
	}
	b.WriteString(strings.Join(I.Prints, "\n"))
	b.WriteString("\nquit\n")
	return b.String()
}
