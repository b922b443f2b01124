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

//psize prints the grid dimensions and the processor layout suggested for
//an APBS calculation on the molecule in a PQR file.
//
//	psize [flags] file.pqr
package main

import (
	"fmt"
	"os"

	chem "github.com/Electrostatics/apbs-etl"
	"github.com/Electrostatics/apbs-etl/internal/cmdutil"
	"github.com/Electrostatics/apbs-etl/psize"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:      "psize",
		Usage:     "Suggest grid sizes and parallel decomposition for APBS",
		ArgsUsage: "file.pqr",
		Flags:     cmdutil.SizeFlags(),
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("psize needs exactly one PQR file", 2)
	}
	log, err := cmdutil.Logger(c)
	if err != nil {
		return err
	}
	defer log.Sync()
	p, _, err := cmdutil.Params(c, log)
	if err != nil {
		return err
	}
	name := c.Args().First()
	mol, err := chem.PQRFileRead(name)
	if err != nil {
		return err
	}
	log.Info("PQR read", zap.String("file", name), zap.Int("atoms", mol.Len()))
	plan, err := psize.Run(mol, p)
	if err != nil {
		return err
	}
	fmt.Print(plan.String())
	return nil
}
