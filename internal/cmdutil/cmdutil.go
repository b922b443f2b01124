/*
 * cmdutil.go, part of apbs-etl.
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

//Package cmdutil contains the flags, logging and parameter handling shared by
//the apbs-etl commands.
package cmdutil

import (
	"fmt"

	"github.com/Electrostatics/apbs-etl/config"
	"github.com/Electrostatics/apbs-etl/inputgen"
	"github.com/Electrostatics/apbs-etl/psize"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

//Environment variables read by every command.
const (
	EnvConfig   = "APBS_ETL_CONFIG"
	EnvLogLevel = "APBS_ETL_LOG_LEVEL"
)

//LogFlags returns the flags that control logging.
func LogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			EnvVars: []string{EnvLogLevel},
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Human-readable development logging",
		},
	}
}

//SizeFlags returns the flags that set the grid sizing parameters, plus the
//configuration file and logging flags. The defaults shown are those of
//psize.DefaultParams.
func SizeFlags() []cli.Flag {
	d := psize.DefaultParams()
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "HCL file with grid, elec and ion blocks",
			EnvVars: []string{EnvConfig},
		},
		&cli.Float64Flag{
			Name:  "cfac",
			Value: d.CFac,
			Usage: "factor by which to expand molecular dimensions to get coarse grid dimensions",
		},
		&cli.Float64Flag{
			Name:  "fadd",
			Value: d.FAdd,
			Usage: "amount to add to molecular dimensions to get fine grid dimensions",
		},
		&cli.Float64Flag{
			Name:  "space",
			Value: d.Space,
			Usage: "desired fine mesh resolution",
		},
		&cli.Float64Flag{
			Name:  "gmemfac",
			Value: d.BytesPerGridPoint,
			Usage: "number of bytes per grid point required for sequential MG calculation",
		},
		&cli.Float64Flag{
			Name:  "gmemceil",
			Value: d.MemCeiling,
			Usage: "max MB allowed for sequential MG calculation, lower values force more parallelism",
		},
		&cli.Float64Flag{
			Name:  "ofrac",
			Value: d.OFrac,
			Usage: "overlap factor between mesh partitions (parallel)",
		},
		&cli.Float64Flag{
			Name:  "redfac",
			Value: d.RedFac,
			Usage: "the maximum factor by which a domain dimension can be reduced during focusing",
		},
	}
	return append(flags, LogFlags()...)
}

//Logger builds the logger requested by the log-level and debug flags.
//Logs go to the standard error, so they never mix with a report.
func Logger(c *cli.Context) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if c.Bool("debug") {
		cfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(c.String("log-level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

//Params returns the sizing and ELEC parameters: the defaults, overwritten by
//the configuration file, if given, and then by the sizing flags explicitly set.
//The sizing parameters returned are valid.
func Params(c *cli.Context, log *zap.Logger) (*psize.Params, *inputgen.ElecParams, error) {
	p := psize.DefaultParams()
	ep := inputgen.DefaultElecParams()
	if name := c.String("config"); name != "" {
		f, err := config.Load(name)
		if err != nil {
			return nil, nil, err
		}
		if err := f.Apply(p, ep); err != nil {
			return nil, nil, err
		}
		log.Debug("configuration read", zap.String("file", name))
	}
	for name, dst := range map[string]*float64{
		"cfac":     &p.CFac,
		"fadd":     &p.FAdd,
		"space":    &p.Space,
		"gmemfac":  &p.BytesPerGridPoint,
		"gmemceil": &p.MemCeiling,
		"ofrac":    &p.OFrac,
		"redfac":   &p.RedFac,
	} {
		if c.IsSet(name) {
			*dst = c.Float64(name)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	log.Debug("sizing parameters",
		zap.Float64("cfac", p.CFac),
		zap.Float64("fadd", p.FAdd),
		zap.Float64("space", p.Space),
		zap.Float64("gmemfac", p.BytesPerGridPoint),
		zap.Float64("gmemceil", p.MemCeiling),
		zap.Float64("ofrac", p.OFrac),
		zap.Float64("redfac", p.RedFac))
	return p, ep, nil
}
