/*
 * files.go, part of apbs-etl.
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
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeText(name, text string, log *zap.Logger) error {
	if err := os.WriteFile(name, []byte(text), 0644); err != nil {
		return Error{err.Error(), name, []string{"writeText"}, true, nil}
	}
	log.Debug("wrote APBS input", zap.String("file", name), zap.Int("bytes", len(text)))
	return nil
}

//WriteFiles writes the input to outpath and returns the names of the files written.
//If the input is asynchronous, it instead writes, in the directory of outpath, a
//<stem>-para.in file with no async statements, and then one <stem>-PE<i>.in file
//for each processor i, in order. log can be nil.
func (I *Input) WriteFiles(outpath string, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !I.async {
		if err := writeText(outpath, I.String(), log); err != nil {
			return nil, errDecorate(err, "WriteFiles")
		}
		log.Info("APBS input written", zap.String("file", outpath))
		return []string{outpath}, nil
	}
	dir := filepath.Dir(outpath)
	stem := fileStem(outpath)
	nproc := I.NProc()
	written := make([]string, 0, nproc+1)
	para := filepath.Join(dir, stem+"-para.in")
	if err := writeText(para, I.withAsync(false, 0).String(), log); err != nil {
		return written, errDecorate(err, "WriteFiles")
	}
	written = append(written, para)
	for i := 0; i < nproc; i++ {
		name := filepath.Join(dir, fmt.Sprintf("%s-PE%d.in", stem, i))
		if err := writeText(name, I.withAsync(true, i).String(), log); err != nil {
			return written, errDecorate(err, "WriteFiles")
		}
		written = append(written, name)
	}
	log.Info("asynchronous APBS inputs written", zap.String("base", para), zap.Int("nproc", nproc))
	return written, nil
}
