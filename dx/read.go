/*
 * read.go, part of apbs-etl.
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
	"strconv"
	"strings"

	chem "github.com/Electrostatics/apbs-etl"
)

func parseFloats(words []string) ([]float64, error) {
	ret := make([]float64, len(words))
	var err error
	for i, w := range words {
		ret[i], err = strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func formatErr(line int, format string, args ...interface{}) Error {
	return Error{fmt.Sprintf(format, args...), "", line, []string{"Read"}, true, ErrFormat}
}

//Read reads a grid in the OpenDX format, as written by APBS, from r.
//Only that particular form of the format is supported: an "object 1" line with
//the counts, an origin line, three delta lines, and the values, in any number per line.
//Comments, attribute and component lines, and the other object lines, are ignored.
//Anything else is an error of kind ErrFormat.
func Read(r io.Reader) (*Grid, error) {
	g := new(Grid)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var gotCounts, gotOrigin bool
	ndelta := 0
	lineno := 0
	for scanner.Scan() {
		lineno++
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(words[0], "#"), words[0] == "attribute", words[0] == "component":
		case words[0] == "object":
			if len(words) < 2 || words[1] != "1" {
				continue
			}
			if len(words) < 8 {
				return nil, formatErr(lineno, "incomplete grid counts: %s", scanner.Text())
			}
			for i := range g.Counts {
				n, err := strconv.Atoi(words[5+i])
				if err != nil || n <= 0 {
					return nil, formatErr(lineno, "bad grid count %q", words[5+i])
				}
				g.Counts[i] = n
			}
			if _, ok := pointCount(g.Counts); !ok {
				return nil, formatErr(lineno, "grid %v has more than %d points", g.Counts, MaxPoints)
			}
			gotCounts = true
		case words[0] == "origin":
			v, err := parseFloats(words[1:])
			if err != nil || len(v) != 3 {
				return nil, formatErr(lineno, "bad origin: %s", scanner.Text())
			}
			copy(g.Origin[:], v)
			gotOrigin = true
		case words[0] == "delta":
			v, err := parseFloats(words[1:])
			if err != nil || len(v) != 3 {
				return nil, formatErr(lineno, "bad delta: %s", scanner.Text())
			}
			if ndelta >= 3 {
				return nil, formatErr(lineno, "more than 3 delta lines")
			}
			copy(g.Delta[ndelta][:], v)
			ndelta++
		default:
			v, err := parseFloats(words)
			if err != nil {
				return nil, formatErr(lineno, "unexpected content: %v", err)
			}
			if g.Values == nil && gotCounts {
				g.Values = make([]float64, 0, min(g.Len(), preallocValues))
			}
			g.Values = append(g.Values, v...)
			if gotCounts && len(g.Values) > g.Len() {
				return nil, formatErr(lineno, "more than the %d values expected", g.Len())
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), "", lineno, []string{"Read"}, true, nil}
	}
	switch {
	case !gotCounts:
		return nil, formatErr(0, "no grid counts found")
	case !gotOrigin:
		return nil, formatErr(0, "no origin found")
	case ndelta != 3:
		return nil, formatErr(0, "expected 3 delta lines, found %d", ndelta)
	case len(g.Values) != g.Len():
		return nil, formatErr(0, "expected %d values, found %d", g.Len(), len(g.Values))
	}
	return g, nil
}

//ReadFile reads the DX file fname. Files ending in .gz or .zst are decompressed on the fly.
func ReadFile(fname string) (*Grid, error) {
	f, err := chem.Open(fname)
	if err != nil {
		return nil, Error{err.Error(), fname, 0, []string{"ReadFile"}, true, nil}
	}
	defer f.Close()
	g, err := Read(f)
	if err != nil {
		return nil, errDecorate(withFile(err, fname), "ReadFile")
	}
	return g, nil
}
