/*
 * cmdutil_test.go, part of apbs-etl.
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

package cmdutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Electrostatics/apbs-etl/inputgen"
	"github.com/Electrostatics/apbs-etl/psize"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

//runApp runs a command with the sizing flags and args, and returns what Params gave.
func runApp(Te *testing.T, args ...string) (*psize.Params, *inputgen.ElecParams, error) {
	Te.Helper()
	var p *psize.Params
	var ep *inputgen.ElecParams
	var perr error
	app := &cli.App{
		Name:  "test",
		Flags: SizeFlags(),
		Action: func(c *cli.Context) error {
			log, err := Logger(c)
			if err != nil {
				return err
			}
			p, ep, perr = Params(c, log)
			return nil
		},
	}
	if err := app.Run(append([]string{"test"}, args...)); err != nil {
		return nil, nil, err
	}
	return p, ep, perr
}

func TestParamsDefaults(Te *testing.T) {
	p, ep, err := runApp(Te)
	if err != nil {
		Te.Fatal(err)
	}
	if *p != *psize.DefaultParams() {
		Te.Errorf("expected default parameters, got %+v", p)
	}
	if ep.SDie != 78.54 {
		Te.Errorf("expected default elec parameters, got %+v", ep)
	}
}

func TestParamsPrecedence(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "apbs.hcl")
	conf := "grid {\n  cfac = 2.5\n  space = 0.4\n}\nelec {\n  sdie = 70\n}\n"
	if err := os.WriteFile(name, []byte(conf), 0644); err != nil {
		Te.Fatal(err)
	}
	p, ep, err := runApp(Te, "--config", name, "--space", "0.3", "--gmemceil", "100")
	if err != nil {
		Te.Fatal(err)
	}
	if p.CFac != 2.5 || p.Space != 0.3 || p.MemCeiling != 100 || p.FAdd != 20 {
		Te.Errorf("wrong precedence of flags and configuration: %+v", p)
	}
	if ep.SDie != 70 {
		Te.Errorf("configuration not applied to elec parameters: %+v", ep)
	}
}

func TestParamsInvalid(Te *testing.T) {
	if _, _, err := runApp(Te, "--gmemceil", "0"); err == nil {
		Te.Error("expected an error for a zero memory ceiling")
	}
	if _, _, err := runApp(Te, "--config", filepath.Join(Te.TempDir(), "missing.hcl")); err == nil {
		Te.Error("expected an error for a missing configuration file")
	}
	if _, _, err := runApp(Te, "--log-level", "loud"); err == nil {
		Te.Error("expected an error for an invalid log level")
	}
}

func TestLoggerLevel(Te *testing.T) {
	app := &cli.App{
		Name:  "test",
		Flags: LogFlags(),
		Action: func(c *cli.Context) error {
			log, err := Logger(c)
			if err != nil {
				return err
			}
			if log.Core().Enabled(zap.InfoLevel) {
				Te.Error("info messages should be disabled at warn level")
			}
			if !log.Core().Enabled(zap.WarnLevel) {
				Te.Error("warn messages should be enabled at warn level")
			}
			return nil
		},
	}
	if err := app.Run([]string{"test", "--log-level", "warn"}); err != nil {
		Te.Fatal(err)
	}
}
