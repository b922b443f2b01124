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

//inputgen writes APBS input files for the molecule in a PQR file, or splits
//an existing parallel input file into asynchronous per-processor inputs.
//
//	inputgen [flags] file.pqr
//	inputgen --split file-para.in
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chem "github.com/Electrostatics/apbs-etl"
	"github.com/Electrostatics/apbs-etl/inputgen"
	"github.com/Electrostatics/apbs-etl/internal/cmdutil"
	"github.com/Electrostatics/apbs-etl/psize"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "asynch",
			Usage: "perform an asynchronous parallel calculation",
		},
		&cli.BoolFlag{
			Name:  "split",
			Usage: "split an existing parallel input file to multiple async input files",
		},
		&cli.BoolFlag{
			Name:  "potdx",
			Usage: "create an input to compute an electrostatic potential map",
		},
		&cli.StringFlag{
			Name:  "method",
			Usage: "force a specific APBS ELEC method (para, auto, manual, async)",
		},
		&cli.Float64Flag{
			Name:  "istrng",
			Usage: "ionic strength (M), the configured ions are used",
		},
	}
	app := &cli.App{
		Name:      "inputgen",
		Usage:     "Generate APBS input files",
		ArgsUsage: "file.pqr",
		Flags:     append(flags, cmdutil.SizeFlags()...),
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

//method returns the ELEC method and the asynchronous flag requested.
//"async" is a parallel calculation written as one file per processor.
func method(c *cli.Context) (inputgen.Method, bool, error) {
	async := c.Bool("asynch")
	name := c.String("method")
	if strings.ToLower(strings.TrimSpace(name)) == "async" {
		return inputgen.MethodPara, true, nil
	}
	m, err := inputgen.ParseMethod(name)
	return m, async, err
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("inputgen needs exactly one input file", 2)
	}
	log, err := cmdutil.Logger(c)
	if err != nil {
		return err
	}
	defer log.Sync()
	name := c.Args().First()
	if c.Bool("split") {
		files, err := inputgen.SplitInput(name, log)
		if err != nil {
			return err
		}
		if files == nil {
			log.Warn("no processors in input, nothing written", zap.String("file", name))
		}
		return nil
	}
	p, ep, err := cmdutil.Params(c, log)
	if err != nil {
		return err
	}
	m, async, err := method(c)
	if err != nil {
		return err
	}
	mol, err := chem.PQRFileRead(name)
	if err != nil {
		return err
	}
	plan, err := psize.Run(mol, p)
	if err != nil {
		return err
	}
	in, err := inputgen.NewInput(name, plan, m, async, c.Float64("istrng"), c.Bool("potdx"), ep)
	if err != nil {
		return err
	}
	base := filepath.Base(chem.TrimCompression(name))
	out := filepath.Join(filepath.Dir(name), strings.TrimSuffix(base, filepath.Ext(base))+".in")
	files, err := in.WriteFiles(out, log)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}
