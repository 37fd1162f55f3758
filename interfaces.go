/*
 * interfaces.go, part of parley.
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
)

//Errors

// Error is the interface for errors that all packages in this module implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds information when the error is passed up. Each call returns the resulting "decoration" slice. If passed an empty string, it just returns the current value.
	//The decorate slice contains a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// FormatError is returned when structure (XYZ) text is malformed: a bad atom count,
// missing lines, or unparsable coordinates.
type FormatError struct {
	Line    int //1-based line of the offending input, 0 if unknown.
	Message string
	deco    []string
}

func (E *FormatError) Error() string {
	if E.Line > 0 {
		return fmt.Sprintf("ill formatted XYZ data, line %d: %s", E.Line, E.Message)
	}
	return fmt.Sprintf("ill formatted XYZ data: %s", E.Message)
}

// Decorate adds dec to the decoration slice and returns it.
func (E *FormatError) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

func newFormatError(line int, caller, format string, args ...interface{}) *FormatError {
	return &FormatError{Line: line, Message: fmt.Sprintf(format, args...), deco: []string{caller}}
}

// ShapeError is returned when the number of coordinates and atoms of a molecule don't match.
type ShapeError struct {
	Message string
	deco    []string
}

func (E *ShapeError) Error() string {
	return fmt.Sprintf("shape mismatch: %s", E.Message)
}

// Decorate adds dec to the decoration slice and returns it.
func (E *ShapeError) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

func shapeError(message, caller string) *ShapeError {
	return &ShapeError{Message: message, deco: []string{caller}}
}

//errDecorate is a helper function that decorates err with the caller's name
//if err implements Error, and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
