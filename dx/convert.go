/*
 * convert.go, part of apbs-etl.
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
	chem "github.com/Electrostatics/apbs-etl"
	"go.uber.org/zap"
)

//ConvertFile reads the grid in the DX file dxname and the atoms in the PQR file pqrname,
//and writes both to cubename in the Cube format. Any of the files can be compressed
//with gzip or zstd, as indicated by its extension. log can be nil.
func ConvertFile(dxname, pqrname, cubename string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("reading PQR", zap.String("file", pqrname))
	mol, err := chem.PQRFileRead(pqrname)
	if err != nil {
		return errDecorate(err, "ConvertFile")
	}
	log.Info("reading DX", zap.String("file", dxname))
	g, err := ReadFile(dxname)
	if err != nil {
		return errDecorate(err, "ConvertFile")
	}
	log.Debug("grid read", zap.Ints("counts", g.Counts[:]), zap.Int("values", len(g.Values)))
	return errDecorate(WriteCubeFile(cubename, g, mol, log), "ConvertFile")
}

//WriteCubeFile writes g and the atoms of mol, with its first set of coordinates,
//to the Cube file cubename, compressed if its extension says so. log can be nil.
func WriteCubeFile(cubename string, g *Grid, mol *chem.Molecule, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if mol == nil || len(mol.Coords) == 0 {
		return Error{"no molecule coordinates to write", cubename, 0, []string{"WriteCubeFile"}, true, nil}
	}
	log.Info("writing Cube", zap.String("file", cubename))
	out, err := chem.Create(cubename)
	if err != nil {
		return Error{err.Error(), cubename, 0, []string{"WriteCubeFile"}, true, nil}
	}
	if err := WriteCube(out, g, mol, mol.Coords[0], ""); err != nil {
		out.Close()
		return errDecorate(withFile(err, cubename), "WriteCubeFile")
	}
	if err := out.Close(); err != nil {
		return Error{err.Error(), cubename, 0, []string{"WriteCubeFile"}, true, nil}
	}
	return nil
}
