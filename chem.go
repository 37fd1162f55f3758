/*
 * chem.go, part of parley.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"fmt"

	v3 "github.com/parleyqc/parley/v3"
)

//Atom contains the atom data read except for the coordinates, which will be in a matrix.
type Atom struct {
	Symbol string
}

/*****Molecule type***/

//Molecule is an ordered list of atoms and their coordinates. The ith row of Coords
//holds the coordinates of the ith atom. A Molecule with no atoms has nil Coords.
type Molecule struct {
	Atoms  []*Atom
	Coords *v3.Matrix
}

//NewMolecule builds a molecule from a slice of element symbols and a flattened
//geometry (x1, y1, z1, x2, y2, z2...). It returns an error if the geometry doesn't
//contain exactly 3 values per symbol. The geometry slice is copied.
func NewMolecule(symbols []string, geometry []float64) (*Molecule, error) {
	if len(geometry) != 3*len(symbols) {
		return nil, shapeError(fmt.Sprintf("%d coordinates given for %d atoms, %d expected", len(geometry), len(symbols), 3*len(symbols)), "NewMolecule")
	}
	M := new(Molecule)
	M.Atoms = make([]*Atom, len(symbols))
	for i, s := range symbols {
		M.Atoms[i] = &Atom{Symbol: s}
	}
	if len(symbols) == 0 {
		return M, nil
	}
	data := make([]float64, len(geometry))
	copy(data, geometry)
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	M.Coords = coords
	return M, nil
}

//Molecule methods

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the ith atom of the molecule.
func (M *Molecule) Atom(i int) *Atom {
	return M.Atoms[i]
}

//Symbols returns the element symbols of all the atoms, in order.
func (M *Molecule) Symbols() []string {
	ret := make([]string, len(M.Atoms))
	for i, at := range M.Atoms {
		ret[i] = at.Symbol
	}
	return ret
}

//Geometry returns the coordinates of all atoms flattened as x1, y1, z1, x2, y2, z2...
//The returned slice is a copy.
func (M *Molecule) Geometry() []float64 {
	if M.Coords == nil {
		return []float64{}
	}
	return M.Coords.Flat()
}

//Corrupted checks that the number of atoms and coordinates match, returns an error if not.
func (M *Molecule) Corrupted() error {
	for i, at := range M.Atoms {
		if at == nil {
			return shapeError(fmt.Sprintf("atom %d is nil", i), "Corrupted")
		}
	}
	if M.Coords == nil {
		if len(M.Atoms) != 0 {
			return shapeError(fmt.Sprintf("%d atoms but no coordinates", len(M.Atoms)), "Corrupted")
		}
		return nil
	}
	if v := M.Coords.NVecs(); v != len(M.Atoms) {
		return shapeError(fmt.Sprintf("%d atoms but %d coordinate vectors", len(M.Atoms), v), "Corrupted")
	}
	return nil
}
