/*
 * pqr.go, part of apbs-etl.
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

package chem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/Electrostatics/apbs-etl/v3"
)

//PQRRead family

//records that carry no atom and are just skipped.
var pqrIgnored = map[string]bool{
	"REMARK": true,
	"TER":    true,
	"END":    true,
	"HEADER": true,
	"TITLE":  true,
	"COMPND": true,
	"SOURCE": true,
	"KEYWDS": true,
	"EXPDTA": true,
	"AUTHOR": true,
	"REVDAT": true,
	"JRNL":   true,
	"CRYST1": true,
	"MODEL":  true,
	"ENDMDL": true,
}

//Parses an ATOM or HETATM line of a PQR file. PQR files are whitespace-delimited,
//so columns are not fixed: the chain and insertion code are optional.
//Returns nil, nil for lines that carry no atom.
func readPQRLine(line string) (*Atom, [3]float64, error) {
	var coords [3]float64
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil, coords, nil
	}
	token := words[0]
	words = words[1:]
	if pqrIgnored[token] {
		return nil, coords, nil
	}
	atom := new(Atom)
	switch {
	case token == "ATOM":
	case token == "HETATM":
		atom.Het = true
	//large serial numbers get glued to the record name.
	case strings.HasPrefix(token, "HETATM"):
		atom.Het = true
		words = append([]string{token[6:]}, words...)
	case strings.HasPrefix(token, "ATOM"):
		words = append([]string{token[4:]}, words...)
	default:
		return nil, coords, fmt.Errorf("unable to parse line: %s", line)
	}
	//serial name resname [chain] resseq [inscode] x y z charge radius
	if len(words) < 9 {
		return nil, coords, fmt.Errorf("not enough fields (%d) in line: %s", len(words)+1, line)
	}
	pop := func() string {
		if len(words) == 0 {
			return ""
		}
		w := words[0]
		words = words[1:]
		return w
	}
	var err error
	if atom.ID, err = strconv.Atoi(pop()); err != nil {
		return nil, coords, err
	}
	atom.Name = pop()
	atom.MolName = pop()
	t := pop()
	if atom.MolID, err = strconv.Atoi(t); err != nil {
		atom.Chain = t
		if atom.MolID, err = strconv.Atoi(pop()); err != nil {
			return nil, coords, err
		}
	}
	//5 numbers are left when there is no insertion code.
	if len(words) > 5 {
		atom.InsCode = pop()
	}
	nums := make([]float64, 5)
	for i := range nums {
		nums[i], err = strconv.ParseFloat(pop(), 64)
		if err != nil {
			return nil, coords, err
		}
	}
	coords[0], coords[1], coords[2] = nums[0], nums[1], nums[2]
	atom.Charge = nums[3]
	atom.Vdw = nums[4]
	return atom, coords, nil
}

//PQRRead reads the atoms in a PQR stream and returns them as a Molecule with one
//set of coordinates. An empty stream gives an empty (but valid) Molecule.
func PQRRead(r io.Reader) (*Molecule, error) {
	return pqrRead(r, "")
}

func pqrRead(r io.Reader, fname string) (*Molecule, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	atoms := make([]*Atom, 0, 1000)
	coords := make([]float64, 0, 3000)
	lineno := 0
	for scanner.Scan() {
		lineno++
		atom, c, err := readPQRLine(scanner.Text())
		if err != nil {
			return nil, PQRError{err.Error(), fname, lineno, []string{"PQRRead"}, true, ErrPQRFormat}
		}
		if atom == nil {
			continue
		}
		atoms = append(atoms, atom)
		coords = append(coords, c[:]...)
	}
	if err := scanner.Err(); err != nil {
		return nil, PQRError{err.Error(), fname, lineno, []string{"PQRRead"}, true, nil}
	}
	top, _ := NewTopology(atoms) //atoms is never nil here
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "PQRRead")
	}
	return NewMolecule(top, []*v3.Matrix{mcoords})
}

//PQRFileRead reads the PQR file fname. Files ending in .gz or .zst are
//decompressed on the fly.
func PQRFileRead(fname string) (*Molecule, error) {
	f, err := Open(fname)
	if err != nil {
		return nil, PQRError{err.Error(), fname, 0, []string{"Open", "PQRFileRead"}, true, nil}
	}
	defer f.Close()
	mol, err := pqrRead(f, fname)
	if err != nil {
		return nil, errDecorate(err, "PQRFileRead")
	}
	return mol, nil
}
