/*
 * inputgen_test.go, part of apbs-etl.
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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Electrostatics/apbs-etl/psize"
)

//a plan with all lengths zero, as obtained for a molecule with no atoms.
func zeroPlan(Te *testing.T) *psize.Plan {
	planner, err := psize.New(psize.DefaultParams())
	if err != nil {
		Te.Fatal(err)
	}
	plan, err := planner.Plan(new(psize.Extents))
	if err != nil {
		Te.Fatal(err)
	}
	return plan
}

const scenarioA = `elec
    mg-auto
    dime 0 0 0
    cglen 0.0000 0.0000 0.0000
    fglen 0.0000 0.0000 0.0000
    cgcent mol 1
    fgcent mol 1
    mol 1
    lpbe
    bcfl sdh
    pdie 2.0000
    sdie 78.5400
    srfm smol
    chgm spl2
    sdens 10.00
    srad 1.40
    swin 0.30
    temp 298.15
    calcenergy total
    calcforce no
    write pot dx pot
end
`

const scenarioB = `elec
    mg-para
    dime 0 0 0
    pdime 0 0 0
    ofrac 0.1
    cglen 0.0000 0.0000 0.0000
    fglen 0.0000 0.0000 0.0000
    cgcent mol 1
    fgcent mol 1
    async 0
    mol 1
    lpbe
    bcfl sdh
    pdie 2.0000
    sdie 78.5400
    srfm smol
    chgm spl2
    sdens 10.00
    srad 1.40
    swin 0.30
    temp 298.15
    calcenergy total
    calcforce no
    write pot dx pot
end
`

func TestElecScenarios(Te *testing.T) {
	plan := zeroPlan(Te)
	m, err := ParseMethod("auto")
	if err != nil {
		Te.Fatal(err)
	}
	e, err := NewElec("test1.pqr", plan, m, false, 0, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if s := e.String(); s != scenarioA {
		Te.Errorf("auto block. Got:\n%s\nExpected:\n%s", s, scenarioA)
	}
	m, err = ParseMethod("parallel")
	if err != nil {
		Te.Fatal(err)
	}
	e, err = NewElec("test1.pqr", plan, m, true, 0, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if s := e.String(); s != scenarioB {
		Te.Errorf("parallel block. Got:\n%s\nExpected:\n%s", s, scenarioB)
	}
}

func TestElecManualAndIons(Te *testing.T) {
	plan := &psize.Plan{Params: *psize.DefaultParams(), Coarse: [3]float64{10, 20.5, 30.25}, Points: [3]int{65, 97, 129}}
	e, err := NewElec("/a/b/1abc.pqr", plan, MethodManual, false, 0.15, true, nil)
	if err != nil {
		Te.Fatal(err)
	}
	s := e.String()
	for _, line := range []string{
		"    mg-manual\n    dime 65 97 129\n    glen 10.000 20.500 30.250\n    gcent mol 1\n    mol 1\n",
		"    ion charge -1.00 conc 0.150 radius 1.8150\n    ion charge 1.00 conc 0.150 radius 1.8750\n",
		"    write pot dx 1abc\n",
	} {
		if !strings.Contains(s, line) {
			Te.Errorf("block lacks %q:\n%s", line, s)
		}
	}
	ep := DefaultElecParams()
	ep.PotStem = StemFixed
	ep.Label = "solv"
	e, err = NewElec("1abc.pqr", plan, MethodManual, false, 0, true, ep)
	if err != nil {
		Te.Fatal(err)
	}
	s = e.String()
	if !strings.HasPrefix(s, "elec solv\n") || !strings.Contains(s, "write pot dx pot\n") || strings.Contains(s, "ion charge") {
		Te.Errorf("wrong labeled block:\n%s", s)
	}
}

func TestMethodSelection(Te *testing.T) {
	p := psize.DefaultParams()
	plan := &psize.Plan{Params: *p, Points: [3]int{449, 225, 129}, Smallest: [3]int{97, 129, 129}, ProcGrid: [3]int{6, 3, 1}}
	plan.MemMB = psize.MemoryMB(plan.Points, p)
	e, err := NewElec("x.pqr", plan, MethodSelect, false, 0, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if e.Method != MethodPara || e.Dime != plan.Smallest {
		Te.Errorf("expected mg-para with the per-processor grid, got %s %v", e.Method, e.Dime)
	}
	plan.Params.MemCeiling = 1e6
	e, err = NewElec("x.pqr", plan, MethodSelect, false, 0, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if e.Method != MethodAuto || e.Dime != plan.Points {
		Te.Errorf("expected mg-auto with the global grid, got %s %v", e.Method, e.Dime)
	}
}

func TestInvalidMethod(Te *testing.T) {
	_, err := ParseMethod("mg-dummy")
	if !errors.Is(err, ErrConfiguration) {
		Te.Fatalf("expected a configuration error, got %v", err)
	}
	for _, name := range []string{"auto", "manual", "para"} {
		if !strings.Contains(err.Error(), name) {
			Te.Errorf("error %q does not name the method %s", err, name)
		}
	}
	_, err = NewElec("x.pqr", zeroPlan(Te), Method(42), false, 0, false, nil)
	if !errors.Is(err, ErrConfiguration) {
		Te.Errorf("expected a configuration error for an unknown Method, got %v", err)
	}
	_, err = NewElec("x.pqr", nil, MethodAuto, false, 0, false, nil)
	if !errors.Is(err, ErrConfiguration) {
		Te.Errorf("expected a configuration error for a nil plan, got %v", err)
	}
}

func TestInputString(Te *testing.T) {
	plan := zeroPlan(Te)
	in, err := NewInput("/some/dir/test1.pqr", plan, MethodAuto, false, 0, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(in.Elecs) != 2 {
		Te.Fatalf("expected 2 blocks, got %d", len(in.Elecs))
	}
	ref := strings.Replace(scenarioA, "    sdie 78.5400\n", "    sdie 2.0000\n", 1)
	ref = strings.Replace(ref, "    write pot dx pot\n", "", 1)
	expected := "read\n    mol pqr test1.pqr\nend\n" + scenarioA + ref + "print elecEnergy 2 - 1 end\nquit\n"
	if s := in.String(); s != expected {
		Te.Errorf("wrong input. Got:\n%s\nExpected:\n%s", s, expected)
	}
	//the reference block must not share data with the first.
	if in.Elecs[0].SDie != 78.54 || len(in.Elecs[0].Writes) != 1 {
		Te.Errorf("first block changed: %+v", in.Elecs[0])
	}
	in, err = NewInput("test1.pqr", plan, MethodAuto, false, 0, true, nil)
	if err != nil {
		Te.Fatal(err)
	}
	s := in.String()
	if len(in.Elecs) != 1 || !strings.HasSuffix(s, "end\nprint elecEnergy 1 end\nquit\n") || !strings.Contains(s, "write pot dx test1\n") {
		Te.Errorf("wrong potential-only input:\n%s", s)
	}
}

func parallelPlan() *psize.Plan {
	p := psize.DefaultParams()
	return &psize.Plan{
		Params:   *p,
		Coarse:   [3]float64{100, 100, 100},
		Fine:     [3]float64{60, 60, 60},
		Points:   [3]int{161, 161, 161},
		Smallest: [3]int{97, 129, 129},
		ProcGrid: [3]int{2, 2, 2},
		MemMB:    psize.MemoryMB([3]int{161, 161, 161}, p),
	}
}

func TestElecOverlap(Te *testing.T) {
	plan := parallelPlan()
	plan.Params = psize.Params{}
	e, err := NewElec("mol.pqr", plan, MethodPara, false, 0, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(e.String(), "    ofrac 0.1\n") {
		Te.Errorf("a plan without parameters should use the default overlap:\n%s", e)
	}
	p := psize.DefaultParams()
	p.OFrac = 0
	planner, err := psize.New(p)
	if err != nil {
		Te.Fatal(err)
	}
	plan, err = planner.Plan(&psize.Extents{Max: [3]float64{200, 100, 50}, Atoms: 1})
	if err != nil {
		Te.Fatal(err)
	}
	e, err = NewElec("mol.pqr", plan, MethodPara, false, 0, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(e.String(), "    ofrac 0.0\n") {
		Te.Errorf("a zero overlap from the planner should be kept:\n%s", e)
	}
}

func TestWriteFiles(Te *testing.T) {
	dir := Te.TempDir()
	in, err := NewInput("mol.pqr", parallelPlan(), MethodPara, false, 0, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	out := filepath.Join(dir, "mol.in")
	files, err := in.WriteFiles(out, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(files) != 1 || files[0] != out {
		Te.Errorf("unexpected files written %v", files)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		Te.Fatal(err)
	}
	if string(b) != in.String() {
		Te.Error("the file written differs from the input")
	}
}

//Removes the async lines in text
func dropAsync(text string) string {
	lines := strings.SplitAfter(text, "\n")
	ret := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "async ") {
			continue
		}
		ret = append(ret, l)
	}
	return strings.Join(ret, "")
}

func TestAsyncAndSplit(Te *testing.T) {
	dir := Te.TempDir()
	in, err := NewInput("mol.pqr", parallelPlan(), MethodPara, true, 0, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if in.NProc() != 8 {
		Te.Fatalf("expected 8 processors, got %d", in.NProc())
	}
	files, err := in.WriteFiles(filepath.Join(dir, "mol.in"), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(files) != 9 || filepath.Base(files[0]) != "mol-para.in" || filepath.Base(files[8]) != "mol-PE7.in" {
		Te.Fatalf("unexpected files written %v", files)
	}
	base, err := os.ReadFile(files[0])
	if err != nil {
		Te.Fatal(err)
	}
	if strings.Contains(string(base), "async") {
		Te.Error("the -para file should have no async statements")
	}
	for i, name := range files[1:] {
		b, err := os.ReadFile(name)
		if err != nil {
			Te.Fatal(err)
		}
		if strings.Count(string(b), fmt.Sprintf("    async %d\n", i)) != 2 {
			Te.Errorf("%s: expected an async %d statement in each block", name, i)
		}
		if dropAsync(string(b)) != string(base) {
			Te.Errorf("%s differs from the -para file by more than the async statements", name)
		}
	}
	//Now split the -para file on its own.
	sdir := Te.TempDir()
	para := filepath.Join(sdir, "mol-para.in")
	if err := os.WriteFile(para, base, 0644); err != nil {
		Te.Fatal(err)
	}
	split, err := SplitInput(para, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(split) != 8 {
		Te.Fatalf("expected 8 files, got %d", len(split))
	}
	for i, name := range split {
		if filepath.Base(name) != fmt.Sprintf("mol-PE%d.in", i) {
			Te.Errorf("unexpected file name %s", name)
		}
		b, err := os.ReadFile(name)
		if err != nil {
			Te.Fatal(err)
		}
		if !strings.Contains(string(b), fmt.Sprintf("    mg-para\n    async %d\n", i)) {
			Te.Errorf("%s: async statement missing", name)
		}
		if dropAsync(string(b)) != string(base) {
			Te.Errorf("%s differs from the -para file by more than the async statements", name)
		}
	}
	//The same file with Windows line endings.
	crlf := filepath.Join(sdir, "win-para.in")
	if err := os.WriteFile(crlf, []byte(strings.ReplaceAll(string(base), "\n", "\r\n")), 0644); err != nil {
		Te.Fatal(err)
	}
	split, err = SplitInput(crlf, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(split) != 8 {
		Te.Fatalf("expected 8 files from the CRLF input, got %d", len(split))
	}
	for i, name := range split {
		b, err := os.ReadFile(name)
		if err != nil {
			Te.Fatal(err)
		}
		if strings.Count(string(b), fmt.Sprintf("    mg-para\r\n    async %d\r\n", i)) != 2 {
			Te.Errorf("%s: async statement missing in CRLF file", name)
		}
		if strings.ReplaceAll(dropAsync(string(b)), "\r\n", "\n") != string(base) {
			Te.Errorf("%s differs from the CRLF -para file by more than the async statements", name)
		}
	}
}

func TestSplitErrors(Te *testing.T) {
	dir := Te.TempDir()
	seq := filepath.Join(dir, "seq.in")
	in, err := NewInput("mol.pqr", zeroPlan(Te), MethodAuto, false, 0, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := in.WriteFiles(seq, nil); err != nil {
		Te.Fatal(err)
	}
	_, err = SplitInput(seq, nil)
	if !errors.Is(err, ErrParallelFileMismatch) {
		Te.Errorf("expected a parallel file mismatch, got %v", err)
	}
	for name, text := range map[string]string{
		"negative":   "read\n    mol pqr mol.pqr\nend\nelec\n    mg-para\n    pdime -2 2 2\nend\nquit\n",
		"no mg-para": "read\n    mol pqr mol.pqr\nend\nelec\n    mg-auto\n    pdime 2 2 2\nend\nquit\n",
	} {
		bad := filepath.Join(Te.TempDir(), "bad-para.in")
		if err := os.WriteFile(bad, []byte(text), 0644); err != nil {
			Te.Fatal(err)
		}
		files, err := SplitInput(bad, nil)
		if !errors.Is(err, ErrParallelFileMismatch) || len(files) != 0 {
			Te.Errorf("%s: expected a parallel file mismatch and no files, got %v %v", name, files, err)
		}
	}
	zero := filepath.Join(dir, "zero-para.in")
	in, err = NewInput("mol.pqr", zeroPlan(Te), MethodPara, false, 0, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := in.WriteFiles(zero, nil); err != nil {
		Te.Fatal(err)
	}
	files, err := SplitInput(zero, nil)
	if err != nil || len(files) != 0 {
		Te.Errorf("a zero processor grid should write nothing and not fail: %v %v", files, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		Te.Fatal(err)
	}
	if len(entries) != 2 {
		Te.Errorf("expected only the 2 original files in %s, got %d", dir, len(entries))
	}
}
