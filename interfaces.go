/*
 * interfaces.go, part of apbs-etl.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"errors"
	"fmt"
)

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
}

// FileError is the interface for errors that are associated with a file.
type FileError interface {
	Error
	Critical() bool
	FileName() string
}

//ErrPQRFormat is the kind of the errors returned when a PQR line can't be parsed.
var ErrPQRFormat = errors.New("malformed PQR record")

//PQRError is the error returned by the PQR readers. It fulfills chem.FileError.
type PQRError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based, 0 if not related to a particular line.
	deco     []string
	critical bool
	kind     error
}

func (err PQRError) Error() string {
	loc := err.filename
	if err.line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, err.line)
	}
	if loc != "" {
		return fmt.Sprintf("pqr %s error: %s", loc, err.message)
	}
	return fmt.Sprintf("pqr error: %s", err.message)
}

//Decorate Adds new information to the error
func (err PQRError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err PQRError) FileName() string { return err.filename }

//Line returns the 1-based line where the problem was found, or 0.
func (err PQRError) Line() int { return err.line }

func (err PQRError) Critical() bool { return err.critical }

//Unwrap allows errors.Is(err, ErrPQRFormat)
func (err PQRError) Unwrap() error { return err.kind }

//CError is the general structure for errors in this package that are not related to a file.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate Adds new information to the error
func (err CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate is a helper function that asserts that the error
//implements chem.Error and decorates the error with the caller's name before returning it.
//errors that don't implement chem.Error are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
