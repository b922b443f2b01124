/*
 * errors.go, part of apbs-etl.
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
	"errors"
	"fmt"

	chem "github.com/Electrostatics/apbs-etl"
)

//ErrFormat is the kind of the errors returned for malformed DX or Cube input.
var ErrFormat = errors.New("malformed volumetric file")

//Error is the error type of this package. It fulfills chem.FileError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based, 0 if not related to a particular line.
	deco     []string
	critical bool
	kind     error
}

func (err Error) Error() string {
	loc := err.filename
	if err.line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, err.line)
	}
	if loc != "" {
		return fmt.Sprintf("dx %s error: %s", loc, err.message)
	}
	return fmt.Sprintf("dx error: %s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err Error) FileName() string { return err.filename }

//Line returns the 1-based line where the problem was found, or 0.
func (err Error) Line() int { return err.line }

func (err Error) Critical() bool { return err.critical }

//Unwrap returns the kind of the error, if any.
func (err Error) Unwrap() error { return err.kind }

//withFile returns a copy of err, if it is an Error, with the file name set to fname.
func withFile(err error, fname string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.filename = fname
	return e
}

//errDecorate is a helper function that asserts that the error
//implements chem.Error and decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(chem.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
