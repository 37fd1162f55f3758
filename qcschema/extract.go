/*
 * extract.go, part of parley.
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

package qcschema

import (
	"fmt"
	"io"
	"math"

	chem "github.com/parleyqc/parley"
)

//Extract returns the molecule in the first topology of req. It returns a *SchemaError
//if there is no topology, if the symbols or geometry are absent, or if the geometry
//doesn't have exactly 3 finite values per symbol. Other topologies are ignored.
func Extract(req *Request) (*chem.Molecule, error) {
	const funcname = "Extract"
	if req == nil || len(req.Topologies) == 0 {
		return nil, missingField("topologies", funcname)
	}
	top := req.Topologies[0]
	if top.Symbols == nil {
		return nil, missingField("topologies[0].symbols", funcname)
	}
	if top.Geometry == nil {
		return nil, missingField("topologies[0].geometry", funcname)
	}
	if len(top.Geometry) != 3*len(top.Symbols) {
		msg := fmt.Sprintf("%d geometry values for %d symbols, %d expected", len(top.Geometry), len(top.Symbols), 3*len(top.Symbols))
		return nil, &SchemaError{Kind: ShapeMismatch, Field: "topologies[0].geometry", Message: msg, deco: []string{funcname}}
	}
	for i, c := range top.Geometry {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, &SchemaError{Kind: InvalidValue, Field: fmt.Sprintf("topologies[0].geometry[%d]", i), Message: "coordinates must be finite", deco: []string{funcname}}
		}
	}
	mol, err := chem.NewMolecule(top.Symbols, top.Geometry)
	if err != nil {
		return nil, &SchemaError{Kind: ShapeMismatch, Field: "topologies[0]", Message: err.Error(), deco: []string{funcname}}
	}
	return mol, nil
}

//ReadMolecule decodes the topologies of a request document from in and extracts its molecule.
func ReadMolecule(in io.Reader, enc Encoding) (*chem.Molecule, error) {
	req, err := DecodeTopologies(in, enc)
	if err != nil {
		return nil, err
	}
	mol, err := Extract(req)
	if err != nil {
		err.(*SchemaError).Decorate("ReadMolecule")
		return nil, err
	}
	return mol, nil
}
