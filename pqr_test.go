/*
 * pqr_test.go, part of apbs-etl.
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
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPQRFileRead(Te *testing.T) {
	mol, err := PQRFileRead("test/sample.pqr")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 5 {
		Te.Fatalf("expected 5 atoms, got %d", mol.Len())
	}
	atoms, hets := mol.CountHet()
	if atoms != 4 || hets != 1 {
		Te.Errorf("expected 4 ATOM and 1 HETATM, got %d and %d", atoms, hets)
	}
	a := mol.Atom(0)
	if a.ID != 1 || a.Name != "N" || a.MolName != "ALA" || a.Chain != "A" || a.MolID != 1 {
		Te.Errorf("first atom read wrong: %+v", a)
	}
	if a.Charge != -0.4157 || a.Vdw != 1.824 {
		Te.Errorf("charge/radius read wrong: %v %v", a.Charge, a.Vdw)
	}
	if v := mol.Coords[0].Vec(2); v != [3]float64{1.5, -0.5, 0.25} {
		Te.Errorf("third atom coordinates read wrong: %v", v)
	}
	//the water has no chain
	if w := mol.Atom(4); w.Chain != "" || w.MolID != 2 || !w.Het {
		Te.Errorf("HETATM read wrong: %+v", w)
	}
	if q := mol.Charge(); math.Abs(q-(-1.1866)) > 1e-9 {
		Te.Errorf("total charge %v", q)
	}
}

func TestPQRGluedSerial(Te *testing.T) {
	in := "ATOM100000  CA  GLY   500      1.000   2.000   3.000  0.1000 1.9000\n" +
		"HETATM100001  C1  LIG   501      4.000   5.000   6.000 -0.2000 1.7000\n"
	mol, err := PQRRead(strings.NewReader(in))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Atom(0).ID != 100000 || mol.Atom(1).ID != 100001 {
		Te.Errorf("glued serials read wrong: %d %d", mol.Atom(0).ID, mol.Atom(1).ID)
	}
	if mol.Atom(1).Chain != "" || mol.Atom(1).MolID != 501 {
		Te.Errorf("residue read wrong: %+v", mol.Atom(1))
	}
	if !mol.Atom(1).Het {
		Te.Error("second record should be a HETATM")
	}
}

func TestPQRInsertionCode(Te *testing.T) {
	in := "ATOM      7  CB  SER B  52 A     1.000   2.000   3.000  0.1000 1.9000\n"
	mol, err := PQRRead(strings.NewReader(in))
	if err != nil {
		Te.Fatal(err)
	}
	a := mol.Atom(0)
	if a.Chain != "B" || a.MolID != 52 || a.InsCode != "A" {
		Te.Errorf("chain/residue/insertion code read wrong: %+v", a)
	}
	if v := mol.Coords[0].Vec(0); v != [3]float64{1, 2, 3} {
		Te.Errorf("coordinates read wrong with insertion code: %v", v)
	}
}

func TestPQREmpty(Te *testing.T) {
	mol, err := PQRRead(strings.NewReader("REMARK nothing here\nEND\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 0 || mol.Coords[0].NVecs() != 0 {
		Te.Errorf("expected an empty molecule, got %d atoms", mol.Len())
	}
}

func TestPQRBadLine(Te *testing.T) {
	in := "ATOM      1  N   ALA A   1      -1.000   0.500   2.000 -0.4157 1.8240\nFOO bar\n"
	_, err := PQRRead(strings.NewReader(in))
	if err == nil {
		Te.Fatal("expected an error for an unknown record")
	}
	if !errors.Is(err, ErrPQRFormat) {
		Te.Errorf("error should be of kind ErrPQRFormat: %v", err)
	}
	var perr PQRError
	if !errors.As(err, &perr) || perr.Line() != 2 {
		Te.Errorf("error should point to line 2: %v", err)
	}
	_, err = PQRRead(strings.NewReader("ATOM 1 N ALA 1 x 0 0 0 1\n"))
	if !errors.Is(err, ErrPQRFormat) {
		Te.Errorf("non numeric coordinates should fail: %v", err)
	}
}

func TestCompressedRoundTrip(Te *testing.T) {
	orig, err := os.ReadFile("test/sample.pqr")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, ext := range []string{".pqr", ".pqr.gz", ".pqr.zst"} {
		name := filepath.Join(dir, "sample"+ext)
		w, err := Create(name)
		if err != nil {
			Te.Fatal(err)
		}
		if _, err := w.Write(orig); err != nil {
			Te.Fatal(err)
		}
		if err := w.Close(); err != nil {
			Te.Fatal(err)
		}
		r, err := Open(name)
		if err != nil {
			Te.Fatal(err)
		}
		back, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			Te.Fatal(err)
		}
		if string(back) != string(orig) {
			Te.Errorf("%s: content changed after a round trip", ext)
		}
		mol, err := PQRFileRead(name)
		if err != nil || mol.Len() != 5 {
			Te.Errorf("%s: could not read the compressed PQR back: %v", ext, err)
		}
	}
	if c := Compression("a.dx.GZ"); c != "gz" {
		Te.Errorf("wrong compression for .GZ: %q", c)
	}
	if n := TrimCompression("a/b.dx.zst"); n != "a/b.dx" {
		Te.Errorf("TrimCompression gave %q", n)
	}
}
