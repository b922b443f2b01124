/*
 * main.go, part of apbs-etl.
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

//dx2cube converts an OpenDX potential map into the Gaussian Cube format,
//taking the atoms from the PQR file used to compute the map.
//
//	dx2cube [flags] dx_input pqr_input output
package main

import (
	"fmt"
	"os"

	chem "github.com/Electrostatics/apbs-etl"
	"github.com/Electrostatics/apbs-etl/chemplot"
	"github.com/Electrostatics/apbs-etl/dx"
	"github.com/Electrostatics/apbs-etl/internal/cmdutil"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "print a summary of the grid values",
		},
		&cli.StringFlag{
			Name:  "histogram",
			Usage: "plot the histogram of the grid values to this file (png, svg, pdf)",
		},
		&cli.IntFlag{
			Name:  "bins",
			Value: 50,
			Usage: "number of bins of the histogram",
		},
		&cli.BoolFlag{
			Name:  "overwrite",
			Usage: "replace the output file if it exists",
		},
	}
	app := &cli.App{
		Name:      "dx2cube",
		Usage:     "Convert DX file format to Cube file format",
		ArgsUsage: "dx_input pqr_input output",
		Flags:     append(flags, cmdutil.LogFlags()...),
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("dx2cube needs a DX file, a PQR file and an output file", 2)
	}
	log, err := cmdutil.Logger(c)
	if err != nil {
		return err
	}
	defer log.Sync()
	dxname, pqrname, output := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)
	if _, err := os.Stat(output); err == nil && !c.Bool("overwrite") {
		return fmt.Errorf("output file %s exists, use --overwrite to replace it", output)
	}
	log.Info("reading PQR", zap.String("file", pqrname))
	mol, err := chem.PQRFileRead(pqrname)
	if err != nil {
		return err
	}
	log.Info("reading DX", zap.String("file", dxname))
	g, err := dx.ReadFile(dxname)
	if err != nil {
		return err
	}
	if err := dx.WriteCubeFile(output, g, mol, log); err != nil {
		return err
	}
	if c.Bool("stats") {
		fmt.Println(g.Summary())
	}
	if name := c.String("histogram"); name != "" {
		if err := chemplot.ValueHistogram(g, c.Int("bins"), dxname, name); err != nil {
			return err
		}
		log.Info("histogram written", zap.String("file", name))
	}
	return nil
}
