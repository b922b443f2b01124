/*
 * report.go, part of apbs-etl.
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

package psize

import (
	"fmt"
	"math"
	"strings"
)

//used to get the global grid from the processor grids.
const pdbAccuracy = 0.001

func tripleF(format string, v [3]float64, sep string) string {
	return fmt.Sprintf(format, v[0]) + sep + fmt.Sprintf(format, v[1]) + sep + fmt.Sprintf(format, v[2])
}

//String returns the human-readable sizing report that the psize
//program prints.
func (P *Plan) String() string {
	if P.Extents.Atoms == 0 {
		return "No ATOM entries in file!\n\n"
	}
	p := &P.Params
	e := &P.Extents
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("######## MOLECULE INFO ########\n")
	fmt.Fprintf(&b, "Number of ATOM entries = %d\n", e.Atoms)
	fmt.Fprintf(&b, "Number of HETATM entries (ignored) = %d\n", e.Hets)
	fmt.Fprintf(&b, "Total charge = %.3f e\n", e.Charge)
	fmt.Fprintf(&b, "Dimensions = %s Å\n", tripleF("%.3f", P.MolLength, " Å x "))
	fmt.Fprintf(&b, "Center = %s Å\n", tripleF("%.3f", P.Center, " Å x "))
	fmt.Fprintf(&b, "Lower corner = %s Å\n", tripleF("%.3f", e.Min, " Å x "))
	fmt.Fprintf(&b, "Upper corner = %s Å\n", tripleF("%.3f", e.Max, " Å x "))
	b.WriteString("\n")
	b.WriteString("######## GENERAL CALCULATION INFO ########\n")
	fmt.Fprintf(&b, "Course grid dims = %s Å\n", tripleF("%.3f", P.Coarse, " Å x "))
	fmt.Fprintf(&b, "Fine grid dims = %s Å\n", tripleF("%.3f", P.Fine, " Å x "))
	//The units in the following line are wrong, but the line is kept as psize always printed it.
	fmt.Fprintf(&b, "Num. fine grid pts. = %d Å x %d Å x %d Å\n", P.Points[0], P.Points[1], P.Points[2])
	b.WriteString("\n")
	var spacing [3]float64
	if P.ParallelRequired() {
		fmt.Fprintf(&b, "Parallel solve required (%.3f MB > %.3f MB)\n", P.MemMB, p.MemCeiling)
		fmt.Fprintf(&b, "Total processors required = %d\n", P.NProc())
		fmt.Fprintf(&b, "Proc. grid = %d x %d x %d\n", P.ProcGrid[0], P.ProcGrid[1], P.ProcGrid[2])
		fmt.Fprintf(&b, "Grid pts. on each proc. = %d x %d x %d\n", P.Smallest[0], P.Smallest[1], P.Smallest[2])
		for i := range spacing {
			glob := float64(P.Smallest[i])
			if P.ProcGrid[i] != 1 {
				glob = float64(P.ProcGrid[i]) * math.RoundToEven(glob/(1+2*p.OFrac-pdbAccuracy))
			}
			spacing[i] = P.Fine[i] / (glob - 1)
		}
		fmt.Fprintf(&b, "Fine mesh spacing = %s A\n", tripleF("%.6g", spacing, " x "))
		fmt.Fprintf(&b, "Estimated mem. required for parallel solve = %.3f MB/proc.\n", P.ProcMemMB)
	} else {
		for i := range spacing {
			spacing[i] = P.Fine[i] / float64(P.Points[i]-1)
		}
		fmt.Fprintf(&b, "Fine mesh spacing = %s A\n", tripleF("%.6g", spacing, " x "))
		fmt.Fprintf(&b, "Estimated mem. required for sequential solve = %.3f MB\n", P.MemMB)
	}
	fmt.Fprintf(&b, "Number of focusing operations = %d\n", P.NFocus)
	b.WriteString("\n")
	b.WriteString("######## ESTIMATED REQUIREMENTS ########\n")
	fmt.Fprintf(&b, "Memory per processor = %.3f MB\n", p.BytesPerGridPoint*float64(P.gridTotal())/1024/1024)
	fmt.Fprintf(&b, "Grid storage requirements (ASCII) = %.3f MB\n", P.GridStorageMB())
	b.WriteString("\n")
	return b.String()
}
