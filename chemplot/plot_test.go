/*
 * plot_test.go, part of apbs-etl.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Electrostatics/apbs-etl/dx"
)

//TestValueHistogram plots the values of a small potential grid.
func TestValueHistogram(Te *testing.T) {
	g, err := dx.ReadFile("../test/sample.dx")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"pot.png", "pot.svg"} {
		fname := filepath.Join(dir, name)
		if err := ValueHistogram(g, 5, "Test potential", fname); err != nil {
			Te.Fatal(err)
		}
		info, err := os.Stat(fname)
		if err != nil {
			Te.Fatal(err)
		}
		if info.Size() == 0 {
			Te.Errorf("%s is empty", name)
		}
	}
	if err := ValueHistogram(&dx.Grid{}, 5, "empty", filepath.Join(dir, "e.png")); err == nil {
		Te.Error("expected an error for an empty grid")
	}
	if err := ValueHistogram(g, 0, "no bins", filepath.Join(dir, "e.png")); err == nil {
		Te.Error("expected an error for zero bins")
	}
}
