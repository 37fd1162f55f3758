/*
 * errors.go, part of parley.
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

//SchemaErrorKind tells what is wrong with a request document.
type SchemaErrorKind int

const (
	MissingField  SchemaErrorKind = iota //a required key is absent, or there is no topology
	ShapeMismatch                        //the geometry doesn't have 3 values per symbol
	Malformed                            //the document can't be decoded at all
	InvalidValue                         //a non-finite coordinate, or a value outside the documented set (strict validation)
)

func (K SchemaErrorKind) String() string {
	switch K {
	case MissingField:
		return "missing field"
	case ShapeMismatch:
		return "shape mismatch"
	case Malformed:
		return "malformed document"
	case InvalidValue:
		return "invalid value"
	}
	return fmt.Sprintf("SchemaErrorKind(%d)", int(K))
}

//SchemaError is returned when a request document lacks required fields or has
//inconsistent contents. It implements chem.Error.
type SchemaError struct {
	Kind    SchemaErrorKind
	Field   string //dotted path of the offending field, if any.
	Message string
	deco    []string
}

func (E *SchemaError) Error() string {
	if E.Field != "" {
		return fmt.Sprintf("request document %s (%s): %s", E.Kind, E.Field, E.Message)
	}
	return fmt.Sprintf("request document %s: %s", E.Kind, E.Message)
}

//Decorate adds dec to the decoration slice and returns it.
func (E *SchemaError) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

func missingField(field, caller string) *SchemaError {
	return &SchemaError{Kind: MissingField, Field: field, Message: "required field absent", deco: []string{caller}}
}
