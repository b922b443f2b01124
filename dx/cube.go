/*
 * cube.go, part of apbs-etl.
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

package dx

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	chem "github.com/Electrostatics/apbs-etl"
	v3 "github.com/Electrostatics/apbs-etl/v3"
)

//DefaultComment is the first line of the Cube files written when no comment is given.
const DefaultComment = "CPMD CUBE FILE."

//values per line in the Cube format
const cubeStride = 6

//CubeAtom is an atom as stored in a Cube file.
type CubeAtom struct {
	Serial int
	Charge float64
	Pos    [3]float64
}

//WriteCube writes g, together with the atoms ats with coordinates coords, to w, in the
//Gaussian Cube format. Each atom is written with its serial number and its charge.
//The values are only re-formatted: the grid is not changed in any way.
//If comment is empty, DefaultComment is used.
func WriteCube(w io.Writer, g *Grid, ats chem.Atomer, coords *v3.Matrix, comment string) error {
	natoms := 0
	if ats != nil {
		natoms = ats.Len()
	}
	if natoms != coords.NVecs() {
		return Error{fmt.Sprintf("%d atoms but %d coordinates", natoms, coords.NVecs()), "", 0, []string{"WriteCube"}, true, nil}
	}
	if comment == "" {
		comment = DefaultComment
	}
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%s\n", comment)
	out.WriteString("OUTER LOOP: X, MIDDLE LOOP: Y, INNER LOOP: Z\n")
	fmt.Fprintf(out, "%4d %11.6f %11.6f %11.6f\n", natoms, g.Origin[0], g.Origin[1], g.Origin[2])
	for i := 0; i < 3; i++ {
		d := g.Delta[i]
		fmt.Fprintf(out, "%4d %11.6f %11.6f %11.6f\n", -g.Counts[i], d[0], d[1], d[2])
	}
	for i := 0; i < natoms; i++ {
		a := ats.Atom(i)
		c := coords.Vec(i)
		fmt.Fprintf(out, "%4d %11.6f %11.6f %11.6f %11.6f\n", a.ID, a.Charge, c[0], c[1], c[2])
	}
	//The last line, complete or not, has no newline.
	n := len(g.Values)
	words := make([]string, 0, cubeStride)
	for i := 0; i < n; i += cubeStride {
		end := i + cubeStride
		last := end >= n
		if last {
			end = n
		}
		words = words[:0]
		for _, v := range g.Values[i:end] {
			words = append(words, fmt.Sprintf("% -13.5E", v))
		}
		out.WriteString(strings.Join(words, " "))
		if !last {
			out.WriteString("\n")
		}
	}
	if err := out.Flush(); err != nil {
		return Error{err.Error(), "", 0, []string{"WriteCube"}, true, nil}
	}
	return nil
}

//cubeCount returns x as a non-negative count, and false if it is not an
//integer or its magnitude is over MaxPoints.
func cubeCount(x float64) (int, bool) {
	x = math.Abs(x)
	if math.IsNaN(x) || x > MaxPoints || x != math.Trunc(x) {
		return 0, false
	}
	return int(x), true
}

func cubeErr(line int, format string, args ...interface{}) Error {
	return Error{fmt.Sprintf(format, args...), "", line, []string{"ReadCube"}, true, ErrFormat}
}

//ReadCube reads a Gaussian Cube file, such as the ones written by WriteCube, from r.
//The number of points in each axis is returned as a positive number regardless of its
//sign in the file.
func ReadCube(r io.Reader) (*Grid, []CubeAtom, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	next := func() ([]float64, bool, error) {
		if !scanner.Scan() {
			return nil, false, nil
		}
		lineno++
		v, err := parseFloats(strings.Fields(scanner.Text()))
		return v, true, err
	}
	//the comment and the loop order lines.
	for i := 0; i < 2; i++ {
		if !scanner.Scan() {
			return nil, nil, cubeErr(lineno, "truncated header")
		}
		lineno++
	}
	g := new(Grid)
	v, ok, err := next()
	if !ok || err != nil || len(v) < 4 {
		return nil, nil, cubeErr(lineno, "bad atom count/origin line")
	}
	natoms, ok := cubeCount(v[0])
	if !ok {
		return nil, nil, cubeErr(lineno, "bad atom count %g", v[0])
	}
	copy(g.Origin[:], v[1:4])
	for i := 0; i < 3; i++ {
		v, ok, err = next()
		if !ok || err != nil || len(v) < 4 {
			return nil, nil, cubeErr(lineno, "bad axis line")
		}
		if g.Counts[i], ok = cubeCount(v[0]); !ok {
			return nil, nil, cubeErr(lineno, "bad grid count %g", v[0])
		}
		copy(g.Delta[i][:], v[1:4])
	}
	npoints, ok := pointCount(g.Counts)
	if !ok {
		return nil, nil, cubeErr(lineno, "grid %v is empty or has more than %d points", g.Counts, MaxPoints)
	}
	atoms := make([]CubeAtom, 0, min(natoms, preallocValues))
	for i := 0; i < natoms; i++ {
		v, ok, err = next()
		if !ok || err != nil || len(v) < 5 {
			return nil, nil, cubeErr(lineno, "bad atom line")
		}
		atoms = append(atoms, CubeAtom{Serial: int(v[0]), Charge: v[1], Pos: [3]float64{v[2], v[3], v[4]}})
	}
	g.Values = make([]float64, 0, min(npoints, preallocValues))
	for scanner.Scan() {
		lineno++
		for _, w := range strings.Fields(scanner.Text()) {
			f, err := strconv.ParseFloat(w, 64)
			if err != nil {
				return nil, nil, cubeErr(lineno, "bad value %q", w)
			}
			g.Values = append(g.Values, f)
		}
		if len(g.Values) > npoints {
			return nil, nil, cubeErr(lineno, "more than the %d values expected", npoints)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, Error{err.Error(), "", lineno, []string{"ReadCube"}, true, nil}
	}
	if len(g.Values) != g.Len() {
		return nil, nil, cubeErr(0, "expected %d values, found %d", g.Len(), len(g.Values))
	}
	return g, atoms, nil
}
