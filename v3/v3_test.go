/*
 * v3_test.go, part of apbs-etl.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"fmt"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("view did not write through to the matrix: %v", A)
	}
	fmt.Println("View\n", A)
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("a slice not divisible by 3 should give an error")
	}
}

func TestEmpty(Te *testing.T) {
	Z := Zeros(0)
	if Z.NVecs() != 0 {
		Te.Errorf("empty matrix reports %d vectors", Z.NVecs())
	}
	var N *Matrix
	if N.NVecs() != 0 {
		Te.Error("nil matrix should have no vectors")
	}
}

func TestShiftedExtremes(Te *testing.T) {
	A, _ := NewMatrix([]float64{
		0, 0, 0,
		2, -1, 4,
		-3, 5, 1,
	})
	min, max := A.ShiftedExtremes([]float64{1, 0.5, 2})
	wmin := [3]float64{-5, -1.5, -1}
	wmax := [3]float64{2.5, 7, 4.5}
	if min != wmin || max != wmax {
		Te.Errorf("got min %v max %v, want %v %v", min, max, wmin, wmax)
	}
	col := A.Col(nil, 2)
	if len(col) != 3 || col[1] != 4 {
		Te.Errorf("bad column %v", col)
	}
	A.SetVec(0, [3]float64{9, 9, 9})
	if v := A.Vec(0); v != [3]float64{9, 9, 9} {
		Te.Errorf("SetVec/Vec mismatch: %v", v)
	}
}
