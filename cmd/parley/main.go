/*
 * main.go, part of parley.
 *
 *
 * Copyright 2026 The parley Authors
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

// Command parley converts XYZ structure files into quantum-chemistry request
// documents (JSON or YAML) and back.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/parleyqc/parley/convert"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Version information (set during build)
var Version = "dev"

// parseLogLevel parses the LOG_LEVEL environment variable and returns the appropriate logrus level.
// Defaults to WarnLevel if not set or invalid.
func parseLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// stringOverrides maps flags to the configuration fields they override when set.
func stringOverrides(cfg *convert.Config) map[string]*string {
	return map[string]*string{
		"input_format":  &cfg.InputFormat,
		"output_format": &cfg.OutputFormat,
		"basis_set":     &cfg.BasisSet,
		"aux_basis_set": &cfg.AuxBasisSet,
		"driver":        &cfg.Driver,
		"method":        &cfg.Method,
	}
}

func newApp(logger *logrus.Logger) *cli.App {
	return &cli.App{
		Name:    "parley",
		Usage:   "Convert between XYZ files and quantum-chemistry request documents",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input_format",
				Aliases: []string{"input-format"},
				Value:   "xyz",
				Usage:   "Input file format (xyz, json or yaml)",
			},
			&cli.StringFlag{
				Name:    "output_format",
				Aliases: []string{"output-format"},
				Value:   "json",
				Usage:   "Output file format (xyz, json or yaml)",
			},
			&cli.StringFlag{
				Name:     "input_file",
				Aliases:  []string{"input-file", "i"},
				Required: true,
				Usage:    "Input file name; .gz and .zst files are decompressed",
			},
			&cli.StringFlag{
				Name:    "output_file",
				Aliases: []string{"output-file", "o"},
				Usage:   "Output file name (default: input_file with the output format's extension)",
			},
			&cli.StringFlag{
				Name:    "basis_set",
				Aliases: []string{"basis-set"},
				Value:   "6-31G",
				Usage:   "Basis set to use",
			},
			&cli.StringFlag{
				Name:    "aux_basis_set",
				Aliases: []string{"aux-basis-set"},
				Usage:   "Auxiliary basis set (default: none, cc-pVDZ-RIFIT for RestrictedRIMP2)",
			},
			&cli.StringFlag{
				Name:  "driver",
				Value: "Energy",
				Usage: "Driver to use (options: Energy, Gradient, Dynamics, Optimization)",
			},
			&cli.StringFlag{
				Name:  "method",
				Value: "RestrictedHF",
				Usage: "Method to use (options: RestrictedHF and RestrictedRIMP2)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Reject methods and drivers other than the documented ones",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{"PARLEY_CONFIG"},
				Usage:   "Configuration file (default: ./parley.yaml or ~/.config/parley/parley.yaml)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug information to stderr",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, logger)
		},
	}
}

func run(c *cli.Context, logger *logrus.Logger) error {
	if c.Bool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}
	cfg, err := convert.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error reading configuration: %v", err), 1)
	}
	for name, field := range stringOverrides(cfg) {
		if c.IsSet(name) {
			*field = c.String(name)
		}
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	opts, err := cfg.Options()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if !convert.Supported(opts.From, opts.To) {
		return cli.Exit("Unsupported conversion.", 1)
	}
	logger.WithFields(logrus.Fields{
		"method": opts.Calc.Method,
		"basis":  opts.Calc.Basis,
		"driver": opts.Calc.Driver,
		"strict": opts.Strict,
		"from":   opts.From,
		"to":     opts.To,
	}).Debug("Configuration resolved")
	name, err := convert.ConvertFile(c.String("input_file"), c.String("output_file"), opts, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Conversion failed: %v", err), 1)
	}
	logger.WithField("output", name).Info("Done")
	return nil
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(parseLogLevel())
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := newApp(logger).Run(os.Args); err != nil {
		//cli.Exit errors have already been reported and exited on.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
