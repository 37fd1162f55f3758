/*
 * convert.go, part of parley.
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

// Package convert selects and runs a conversion between XYZ structure files and
// request documents, from the requested input and output formats.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	chem "github.com/parleyqc/parley"
	"github.com/parleyqc/parley/qcschema"
	"github.com/sirupsen/logrus"
)

// Format is a file format known to the converter.
type Format string

const (
	XYZ  Format = "xyz"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnsupported is returned for a pair of formats that can't be converted into each other.
var ErrUnsupported = errors.New("unsupported conversion")

// ParseFormat returns the Format named s. Case is ignored and "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xyz":
		return XYZ, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown format %q (options: xyz, json, yaml)", s)
}

// Ext returns the file extension for the format, with the leading dot.
func (F Format) Ext() string {
	return "." + string(F)
}

// IsDocument reports whether F is a request document format.
func (F Format) IsDocument() bool {
	return F == JSON || F == YAML
}

func (F Format) encoding() qcschema.Encoding {
	if F == YAML {
		return qcschema.YAML
	}
	return qcschema.JSON
}

// Supported reports whether a conversion from one format to the other exists:
// one of them must be XYZ and the other one a request document.
func Supported(from, to Format) bool {
	return (from == XYZ && to.IsDocument()) || (from.IsDocument() && to == XYZ)
}

// Options for a conversion. Calc is only used when building a request document.
type Options struct {
	From   Format
	To     Format
	Calc   qcschema.Calc
	Strict bool //reject methods and drivers outside the documented sets
}

// DefaultOptions returns options for an XYZ to JSON conversion with the default computation.
func DefaultOptions() *Options {
	return &Options{From: XYZ, To: JSON, Calc: *qcschema.NewCalc()}
}

// OutputName derives an output file name from the input one by replacing its
// extension (after removing any compression extension) with the one for format to.
func OutputName(input string, to Format) string {
	base := chem.TrimCompressionExt(input)
	ext := filepath.Ext(base)
	if ext == filepath.Base(base) { //dot files like ".water" have no extension
		ext = ""
	}
	return strings.TrimSuffix(base, ext) + to.Ext()
}

func discardLogger(log *logrus.Logger) *logrus.Logger {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// errDecorate adds caller to err's decorations if err implements chem.Error.
func errDecorate(err error, caller string) error {
	if e, ok := err.(chem.Error); ok {
		e.Decorate(caller)
	}
	return err
}

// Convert reads data in opts.From format from in and writes it to out in opts.To format.
// Nothing is written to out unless the whole conversion succeeds. log may be nil.
func Convert(in io.Reader, out io.Writer, opts *Options, log *logrus.Logger) error {
	log = discardLogger(log)
	if !Supported(opts.From, opts.To) {
		return fmt.Errorf("%w: %s to %s", ErrUnsupported, opts.From, opts.To)
	}
	var buf bytes.Buffer
	var err error
	if opts.From == XYZ {
		err = toDocument(in, &buf, opts, log)
	} else {
		err = toXYZ(in, &buf, opts, log)
	}
	if err != nil {
		return errDecorate(err, "Convert")
	}
	n, err := buf.WriteTo(out)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"from": opts.From, "to": opts.To, "bytes": n}).Debug("Conversion written")
	return nil
}

func toDocument(in io.Reader, out io.Writer, opts *Options, log *logrus.Logger) error {
	calc := opts.Calc
	if opts.Strict {
		if err := calc.Validate(); err != nil {
			return err
		}
	}
	mol, err := chem.XYZRead(in)
	if err != nil {
		return err
	}
	log.WithField("atoms", mol.Len()).Debug("Structure read")
	if aux := qcschema.ResolveAuxBasis(calc.Method, calc.AuxBasis); aux != calc.AuxBasis {
		log.WithFields(logrus.Fields{"method": calc.Method, "aux_basis": aux}).Info("No auxiliary basis set given, using the default")
	}
	req := qcschema.Build(mol, &calc)
	return qcschema.Encode(out, req, opts.To.encoding())
}

func toXYZ(in io.Reader, out io.Writer, opts *Options, log *logrus.Logger) error {
	decode := qcschema.DecodeTopologies
	if opts.Strict {
		decode = qcschema.Decode
	}
	req, err := decode(in, opts.From.encoding())
	if err != nil {
		return err
	}
	if opts.Strict {
		calc := qcschema.Calc{Method: req.Model.Method, Basis: req.Model.Basis, AuxBasis: req.Model.AuxBasis, Driver: req.Driver}
		if err := calc.Validate(); err != nil {
			return err
		}
	}
	if len(req.Topologies) > 1 {
		log.WithField("topologies", len(req.Topologies)).Warn("Only the first topology is converted")
	}
	mol, err := qcschema.Extract(req)
	if err != nil {
		return err
	}
	log.WithField("atoms", mol.Len()).Debug("Structure extracted")
	return chem.XYZWrite(out, mol)
}

// ConvertFile converts the file inName into outName. If outName is empty it is derived
// with OutputName. The output file is only created if the conversion succeeds.
// It returns the name of the file written.
func ConvertFile(inName, outName string, opts *Options, log *logrus.Logger) (string, error) {
	log = discardLogger(log)
	if !Supported(opts.From, opts.To) {
		return "", fmt.Errorf("%w: %s to %s", ErrUnsupported, opts.From, opts.To)
	}
	if outName == "" {
		outName = OutputName(inName, opts.To)
	}
	log.WithFields(logrus.Fields{"input": inName, "output": outName}).Info("Converting")
	in, err := chem.OpenFile(inName)
	if err != nil {
		return "", err
	}
	defer in.Close()
	var buf bytes.Buffer
	if err = Convert(in, &buf, opts, log); err != nil {
		return "", errDecorate(err, "ConvertFile: "+inName)
	}
	out, err := chem.CreateFile(outName)
	if err != nil {
		return "", err
	}
	if _, err = buf.WriteTo(out); err != nil {
		out.Close()
		return "", err
	}
	return outName, out.Close()
}
