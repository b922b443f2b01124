/*
 * split.go, part of apbs-etl.
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
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	chem "github.com/Electrostatics/apbs-etl"
	"go.uber.org/zap"
)

//nprocFromText returns the number of processors in the last pdime statement of
//the APBS input in text, and whether such statement was found.
func nprocFromText(text string) (int, bool, error) {
	nproc := 0
	found := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "pdime") {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 4 {
			return 0, true, fmt.Errorf("incomplete processor grid in line %q", line)
		}
		n := 1
		for _, w := range words[1:4] {
			v, err := strconv.Atoi(w)
			if err != nil {
				return 0, true, fmt.Errorf("bad processor grid in line %q: %w", line, err)
			}
			if v < 0 {
				return 0, true, fmt.Errorf("negative processor count in line %q", line)
			}
			n *= v
		}
		nproc = n
		found = true
	}
	return nproc, found, nil
}

//paraLines splits text into lines, each with its own line ending, and returns
//them with the indexes of the lines that contain only the mg-para keyword.
func paraLines(text string) ([]string, []int) {
	lines := strings.SplitAfter(text, "\n")
	var para []int
	for i, l := range lines {
		if strings.TrimSpace(l) == "mg-para" {
			para = append(para, i)
		}
	}
	return lines, para
}

//withAsyncLines returns the lines joined, with an async statement for processor
//proc after each mg-para line. The statement uses the line ending of the
//mg-para line it follows.
func withAsyncLines(lines []string, para []int, proc int) string {
	var b strings.Builder
	next := 0
	for i, l := range lines {
		b.WriteString(l)
		if next >= len(para) || para[next] != i {
			continue
		}
		next++
		eol := "\n"
		switch {
		case strings.HasSuffix(l, "\r\n"):
			eol = "\r\n"
		case !strings.HasSuffix(l, "\n"):
			b.WriteString(eol)
		}
		fmt.Fprintf(&b, "    async %d%s", proc, eol)
	}
	return b.String()
}

//SplitInput reads the parallel APBS input file filename and writes, in the same directory,
//one asynchronous input for each processor in its processor grid. If filename is
//<stem>-para.in, the files written are <stem>-PE<i>.in. A file without a pdime statement
//or without an mg-para line, or with a negative processor count,
//gives an error of kind ErrParallelFileMismatch, while a processor grid with zero
//processors just writes nothing. log can be nil.
func SplitInput(filename string, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	f, err := chem.Open(filename)
	if err != nil {
		return nil, Error{err.Error(), filename, []string{"SplitInput"}, true, nil}
	}
	raw, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return nil, Error{err.Error(), filename, []string{"SplitInput"}, true, nil}
	}
	text := string(raw)
	nproc, found, err := nprocFromText(text)
	if err != nil {
		return nil, Error{err.Error(), filename, []string{"SplitInput"}, true, ErrParallelFileMismatch}
	}
	if !found {
		return nil, Error{"no pdime statement found, unable to asynchronize this file", filename, []string{"SplitInput"}, true, ErrParallelFileMismatch}
	}
	if nproc == 0 {
		log.Info("processor grid with no processors, nothing to split", zap.String("file", filename))
		return nil, nil
	}
	lines, para := paraLines(text)
	if len(para) == 0 {
		return nil, Error{"no mg-para statement found, unable to asynchronize this file", filename, []string{"SplitInput"}, true, ErrParallelFileMismatch}
	}
	dir := filepath.Dir(filename)
	stem := strings.TrimSuffix(fileStem(chem.TrimCompression(filename)), "-para")
	written := make([]string, 0, nproc)
	for i := 0; i < nproc; i++ {
		name := filepath.Join(dir, fmt.Sprintf("%s-PE%d.in", stem, i))
		out := withAsyncLines(lines, para, i)
		if err := writeText(name, out, log); err != nil {
			return written, errDecorate(err, "SplitInput")
		}
		written = append(written, name)
	}
	log.Info("parallel input split", zap.String("file", filename), zap.Int("nproc", nproc))
	return written, nil
}
