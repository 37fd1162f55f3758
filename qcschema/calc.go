/*
 * calc.go, part of parley.
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

import "fmt"

//Driver is the kind of computation requested.
type Driver string

const (
	Energy       Driver = "Energy"
	Gradient     Driver = "Gradient"
	Optimization Driver = "Optimization"
	Dynamics     Driver = "Dynamics"
)

//Methods with a documented meaning.
const (
	RestrictedHF    = "RestrictedHF"
	RestrictedRIMP2 = "RestrictedRIMP2" //restricted resolution-of-identity MP2
)

//Defaults for a Calc.
const (
	DefaultMethod = RestrictedHF
	DefaultBasis  = "6-31G"
	DefaultDriver = Energy
	//Auxiliary basis used for RI-MP2 when none is given.
	DefaultRIAuxBasis = "cc-pVDZ-RIFIT"
)

var knownDrivers = []Driver{Energy, Gradient, Optimization, Dynamics}
var knownMethods = []string{RestrictedHF, RestrictedRIMP2}

//Calc holds the parameters of a computation that can be chosen by the user.
//The solver settings are fixed and added by Build.
type Calc struct {
	Method   string
	Basis    string
	AuxBasis string //auxiliary basis, for RI calculations. Empty if none.
	Driver   Driver
}

//NewCalc returns a Calc with the default values: a RestrictedHF/6-31G energy.
func NewCalc() *Calc {
	Q := new(Calc)
	Q.SetDefaults()
	return Q
}

//SetDefaults sets the method, basis and driver to their defaults, and clears the auxiliary basis.
func (Q *Calc) SetDefaults() {
	Q.Method = DefaultMethod
	Q.Basis = DefaultBasis
	Q.AuxBasis = ""
	Q.Driver = DefaultDriver
}

//Validate returns an error if the method or driver are not among the documented ones.
//Build doesn't call it: unknown values are valid input there.
func (Q *Calc) Validate() error {
	if !isInString(knownMethods, Q.Method) {
		return &SchemaError{Kind: InvalidValue, Field: "model.method", Message: fmt.Sprintf("unknown method %q, expected one of %v", Q.Method, knownMethods), deco: []string{"Validate"}}
	}
	for _, d := range knownDrivers {
		if Q.Driver == d {
			return nil
		}
	}
	return &SchemaError{Kind: InvalidValue, Field: "driver", Message: fmt.Sprintf("unknown driver %q, expected one of %v", Q.Driver, knownDrivers), deco: []string{"Validate"}}
}

//ResolveAuxBasis returns the auxiliary basis set to use for method. An explicit
//aux is always returned unchanged. If aux is empty and the method is RI-MP2,
//DefaultRIAuxBasis is returned.
func ResolveAuxBasis(method, aux string) string {
	if method == RestrictedRIMP2 && aux == "" {
		return DefaultRIAuxBasis
	}
	return aux
}

//Utilities here

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
