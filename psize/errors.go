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

package psize

import (
	"errors"
	"fmt"

	chem "github.com/Electrostatics/apbs-etl"
)

var (
	//ErrConfiguration is the kind of the errors caused by invalid numerical parameters.
	//They are detected before any computation is done.
	ErrConfiguration = errors.New("invalid configuration")

	//ErrResourceInfeasible is the kind of the errors returned when no grid fits
	//under the memory ceiling.
	ErrResourceInfeasible = errors.New("memory ceiling infeasible")
)

//Error is the error type of this package. It fulfills chem.FileError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	kind     error
}

func (err Error) Error() string {
	if err.filename != "" {
		return fmt.Sprintf("psize: %s: %s", err.filename, err.message)
	}
	return fmt.Sprintf("psize: %s", err.message)
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

func (err Error) Critical() bool { return err.critical }

//Unwrap returns the kind of the error, so errors.Is works with
//ErrConfiguration and ErrResourceInfeasible.
func (err Error) Unwrap() error { return err.kind }

func configErr(caller, format string, args ...interface{}) Error {
	return Error{fmt.Sprintf(format, args...), "", []string{caller}, true, ErrConfiguration}
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
