/*
 * doc.go, part of apbs-etl.
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

/*Package chem is the main package of the apbs-etl library. It provides the atom and molecule
structures shared by the other packages, and reads the PQR files (atoms with coordinates,
charges and radii) that are the starting point of an APBS electrostatics calculation.



	**apbs-etl Capabilities**


    Reads PQR files, plain or compressed with gzip or zstd.

    Estimates the grid dimensions, memory requirements and parallel decomposition
	of a multigrid Poisson-Boltzmann calculation for a molecule (package psize).

    Writes APBS input files for sequential, manual and parallel (also asynchronous)
	calculations, and splits existing parallel input files into one file
	per processor (package inputgen).

    Converts the OpenDX volumetric files written by APBS into Gaussian Cube
	files, and summarizes or plots the values on the grid (packages dx
	and chemplot).

    The numerical parameters for all the above can be read from an HCL file
	(package config).


The coordinates are kept in their own matrix type, v3.Matrix, based
on gonum's Dense, and separate from the rest of the atomic information.
Each row of a v3.Matrix represents one point in space.*/
package chem
