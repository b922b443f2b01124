/*
 * method.go, part of apbs-etl.
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
	"strings"
)

//Method is the multigrid method of an ELEC block.
type Method int

const (
	//MethodSelect leaves the choice to the memory estimate: mg-auto if the
	//calculation fits under the ceiling, mg-para otherwise.
	MethodSelect Method = iota
	MethodAuto
	MethodManual
	MethodPara
)

var methodNames = map[Method]string{
	MethodSelect: "",
	MethodAuto:   "mg-auto",
	MethodManual: "mg-manual",
	MethodPara:   "mg-para",
}

//String returns the APBS keyword for the method.
func (m Method) String() string {
	return methodNames[m]
}

func (m Method) valid() bool {
	_, ok := methodNames[m]
	return ok
}

//AllowedMethods lists the method names accepted by ParseMethod.
const AllowedMethods = "auto, manual, para (also mg-auto, mg-manual, mg-para or parallel)"

//ParseMethod returns the Method named by s. The empty string gives MethodSelect.
//Any other unknown name is an error of kind ErrConfiguration.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return MethodSelect, nil
	case "auto", "mg-auto":
		return MethodAuto, nil
	case "manual", "mg-manual":
		return MethodManual, nil
	case "para", "parallel", "mg-para":
		return MethodPara, nil
	}
	return MethodSelect, Error{fmt.Sprintf("invalid method %q, must be one of %s", s, AllowedMethods), "", []string{"ParseMethod"}, true, ErrConfiguration}
}
