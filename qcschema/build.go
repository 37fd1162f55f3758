/*
 * build.go, part of parley.
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
	chem "github.com/parleyqc/parley"
)

//Build returns a request for the computation Q on the molecule mol.
//The auxiliary basis is resolved with ResolveAuxBasis, Q itself is not modified.
//Method and driver are not validated: an unknown driver just gets no driver-specific block.
func Build(mol *chem.Molecule, Q *Calc) *Request {
	req := new(Request)
	req.Topologies = []Topology{
		{
			FragmentFormalCharges: []int{0},
			Geometry:              mol.Geometry(),
			Symbols:               mol.Symbols(),
		},
	}
	req.Model = buildModel(Q)
	req.System = System{MaxGPUMemoryMB: MaxGPUMemoryMB}
	req.Keywords = buildKeywords(Q.Driver)
	req.Driver = Q.Driver
	return req
}

func buildModel(Q *Calc) Model {
	m := Model{Method: Q.Method, Basis: Q.Basis}
	//omitempty leaves the key out when there is no auxiliary basis.
	m.AuxBasis = ResolveAuxBasis(Q.Method, Q.AuxBasis)
	return m
}

func buildKeywords(driver Driver) Keywords {
	k := Keywords{SCF: DefaultSCF()}
	switch driver {
	case Optimization:
		k.Optimization = &OptimizationKeywords{MaxIters: OptimizationMaxIters}
	case Dynamics:
		k.Dynamics = &DynamicsKeywords{Dt: DynamicsDt, NTimesteps: DynamicsNTimesteps}
	}
	return k
}
