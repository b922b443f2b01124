/*
 * compressed.go, part of apbs-etl.
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
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Compression returns the compression format implied by the extension of
//fname: "gz", "zst" or the empty string for plain text.
func Compression(fname string) string {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".gz":
		return "gz"
	case ".zst", ".zstd":
		return "zst"
	}
	return ""
}

//TrimCompression returns fname without a compression extension, if it has one.
func TrimCompression(fname string) string {
	if Compression(fname) == "" {
		return fname
	}
	return strings.TrimSuffix(fname, filepath.Ext(fname))
}

//a readCloser that closes both the decompressor and the file under it.
type stackedReader struct {
	io.Reader
	closers []func() error
}

func (s *stackedReader) Close() error {
	var err error
	for _, c := range s.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//Open opens fname for reading. Files ending in .gz or .zst are decompressed
//on the fly, any other file is read as is.
func Open(fname string) (io.ReadCloser, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewReader(f)
	switch Compression(fname) {
	case "gz":
		r, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stackedReader{r, []func() error{r.Close, f.Close}}, nil
	case "zst":
		r, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, err
		}
		//*zstd.Decoder.Close doesn't return an error.
		zc := func() error { r.Close(); return nil }
		return &stackedReader{r, []func() error{zc, f.Close}}, nil
	}
	return &stackedReader{buf, []func() error{f.Close}}, nil
}

//a writeCloser that flushes and closes every layer, top to bottom.
type stackedWriter struct {
	io.Writer
	closers []func() error
}

func (s *stackedWriter) Close() error {
	var err error
	for _, c := range s.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//Create creates (or truncates) fname for writing. If the name ends in .gz or .zst
//the data will be compressed accordingly. The returned object must be closed
//for all the data to reach the disk.
func Create(fname string) (io.WriteCloser, error) {
	f, err := os.Create(fname)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(f)
	switch Compression(fname) {
	case "gz":
		w := gzip.NewWriter(buf)
		return &stackedWriter{w, []func() error{w.Close, buf.Flush, f.Close}}, nil
	case "zst":
		w, err := zstd.NewWriter(buf)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stackedWriter{w, []func() error{w.Close, buf.Flush, f.Close}}, nil
	}
	return &stackedWriter{buf, []func() error{buf.Flush, f.Close}}, nil
}
