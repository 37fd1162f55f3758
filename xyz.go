/*
 * xyz.go, part of parley.
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

package chem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	v3 "github.com/parleyqc/parley/v3"
)

//XYZ files

//maxPrealloc caps the memory reserved up front from the atom count line.
const maxPrealloc = 1 << 16

//readLine returns the next line without its terminator. io.EOF is only
//returned when there is nothing left to read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

//XYZRead reads a single-frame XYZ structure from r. The first line must contain the
//number of atoms, the second one is ignored, and each of the following lines must
//contain an element symbol and 3 coordinates. Fields after the fourth are ignored.
//Malformed input causes a *FormatError.
func XYZRead(r io.Reader) (*Molecule, error) {
	const funcname = "XYZRead"
	xyz := bufio.NewReader(r)
	line, err := readLine(xyz)
	if err == io.EOF {
		return nil, newFormatError(1, funcname, "missing atom count")
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", funcname, err)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, newFormatError(1, funcname, "atom count %q is not an integer", strings.TrimSpace(line))
	}
	if natoms < 0 {
		return nil, newFormatError(1, funcname, "negative atom count %d", natoms)
	}
	if natoms == 0 {
		return NewMolecule(nil, nil)
	}
	if _, err = readLine(xyz); err == io.EOF { //the comment, we don't care about its contents
		return nil, newFormatError(2, funcname, "missing comment line")
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", funcname, err)
	}
	prealloc := natoms
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	symbols := make([]string, 0, prealloc)
	vecs := make([][3]float64, 0, prealloc)
	for i := 0; i < natoms; i++ {
		lineno := i + 3
		line, err = readLine(xyz)
		if err == io.EOF {
			return nil, newFormatError(lineno, funcname, "expected %d atoms, found %d", natoms, i)
		} else if err != nil {
			return nil, fmt.Errorf("%s: %w", funcname, err)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, newFormatError(lineno, funcname, "expected a symbol and 3 coordinates, found %d fields", len(fields))
		}
		symbols = append(symbols, fields[0])
		var v [3]float64
		for j, field := range fields[1:4] {
			if v[j], err = parseCoord(field); err != nil {
				return nil, newFormatError(lineno, funcname, "coordinate %q: %s", field, err.Error())
			}
		}
		vecs = append(vecs, v)
	}
	mol := &Molecule{Atoms: make([]*Atom, natoms), Coords: v3.Zeros(natoms)}
	for i, s := range symbols {
		mol.Atoms[i] = &Atom{Symbol: s}
		mol.Coords.SetVec(i, vecs[i][0], vecs[i][1], vecs[i][2])
	}
	return mol, nil
}

//parseCoord parses a decimal coordinate. Hexadecimal notation and
//non-finite values (NaN, Inf) are rejected.
func parseCoord(field string) (float64, error) {
	if strings.ContainsAny(field, "xX") {
		return 0, errors.New("hexadecimal notation is not accepted")
	}
	c, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, errors.New("not a finite number")
	}
	return c, nil
}

//XYZWrite writes mol to out in XYZ format, with an empty comment line and
//the coordinates in fixed-point notation with 6 decimal places.
func XYZWrite(out io.Writer, mol *Molecule) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d\n\n", mol.Len())
	c := make([]float64, 3, 3)
	for i := 0; i < mol.Len(); i++ {
		mol.Coords.Row(c, i)
		fmt.Fprintf(w, "%s %.6f %.6f %.6f\n", mol.Atom(i).Symbol, c[0], c[1], c[2])
	}
	return w.Flush()
}

//XYZFileRead reads the XYZ file xyzname, decompressing it if needed.
func XYZFileRead(xyzname string) (*Molecule, error) {
	xyzfile, err := OpenFile(xyzname)
	if err != nil {
		return nil, err
	}
	defer xyzfile.Close()
	mol, err := XYZRead(xyzfile)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead: "+xyzname)
	}
	return mol, nil
}

//XYZFileWrite writes mol to the file xyzname, compressing it if the name asks for it.
func XYZFileWrite(xyzname string, mol *Molecule) error {
	out, err := CreateFile(xyzname)
	if err != nil {
		return err
	}
	if err = XYZWrite(out, mol); err != nil {
		out.Close()
		return errDecorate(err, "XYZFileWrite: "+xyzname)
	}
	return out.Close()
}
