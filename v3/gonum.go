/*
 * gonum.go, part of apbs-etl.
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

//All the *Vec functions operate on/produce row vectors, i.e. the cartesian
//coordinates of one point in 3D space.

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. Within the package it is understood that a
//"vector" is a row vector, i.e. the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

func Dense2Matrix(A *mat.Dense) *Matrix {
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return &Matrix{new(mat.Dense)}, nil
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs == 0 {
		return &Matrix{new(mat.Dense)}
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of vectors (rows) in the matrix.
//an empty matrix has zero vectors.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil || F.Dense.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns view of the given vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Vec returns a copy of the ith vector as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetVec puts the given coordinates in the ith vector of F.
func (F *Matrix) SetVec(i int, v [3]float64) {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.SetRow(i, v[:])
}

//Col returns a copy of the ith column (i.e. the ith axis for all vectors)
//as a slice. If dst has enough room it is used.
func (F *Matrix) Col(dst []float64, i int) []float64 {
	n := F.NVecs()
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	if n == 0 {
		return dst
	}
	return mat.Col(dst, i, F.Dense)
}

//ShiftedExtremes returns, for each axis, the minimum of the coordinates minus the
//corresponding shift, and the maximum of the coordinates plus the shift. shift must
//have one element per vector (for instance, atomic radii). It panics for an empty matrix.
func (F *Matrix) ShiftedExtremes(shift []float64) (min, max [3]float64) {
	n := F.NVecs()
	if n == 0 {
		panic(ErrNotEnoughElements)
	}
	if len(shift) != n {
		panic(ErrShape)
	}
	col := make([]float64, n)
	tmp := make([]float64, n)
	for ax := 0; ax < 3; ax++ {
		F.Col(col, ax)
		floats.SubTo(tmp, col, shift)
		min[ax] = floats.Min(tmp)
		floats.AddTo(tmp, col, shift)
		max[ax] = floats.Max(tmp)
	}
	return min, max
}

func (F *Matrix) String() string {
	n := F.NVecs()
	rows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v := F.Vec(i)
		rows = append(rows, fmt.Sprintf("[%8.3f %8.3f %8.3f]", v[0], v[1], v[2]))
	}
	return strings.Join(rows, "\n")
}

//Errors

type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("apbs-etl/v3: A Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("apbs-etl/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("apbs-etl/v3: Dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("apbs-etl/v3: index out of range")
)
