/*
 * gonum.go, part of parley.
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

//gonum.go contains what is needed for handling the gonum/mat types.

//All the *Vec functions operate on row vectors, i.e. the cartesian coordinates of one point.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

//Matrix is a set of vectors in 3D space. Within the package it is understood that a
//"vector" is a row vector, i.e. the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//The data slice is used as backing store, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}}
	}
	if rows == 0 {
		return nil, &Error{string(ErrNotEnoughElements), []string{"NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 columns.
func Zeros(vecs int) *Matrix {
	if vecs <= 0 {
		panic(ErrNotEnoughElements)
	}
	f := make([]float64, cols*vecs, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of vectors (rows) in the matrix.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Row puts the ith vector of F in dst and returns dst. If dst is nil a new slice is allocated.
func (F *Matrix) Row(dst []float64, i int) []float64 {
	return mat.Row(dst, i, F.Dense)
}

//SetVec sets the ith vector of F to the x, y, z values given.
func (F *Matrix) SetVec(i int, x, y, z float64) {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.Set(i, 0, x)
	F.Set(i, 1, y)
	F.Set(i, 2, z)
}

//Flat returns a new slice with all the vectors of F, one after the other
//(x1, y1, z1, x2, y2, z2...).
func (F *Matrix) Flat() []float64 {
	v := F.NVecs()
	ret := make([]float64, 0, v*cols)
	t := make([]float64, cols, cols)
	for i := 0; i < v; i++ {
		ret = append(ret, F.Row(t, i)...)
	}
	return ret
}

//Errors

//Error is the error type of the package. It is the same as chem.Error but avoids a circular import.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return fmt.Sprintf("%s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("parley/v3: A Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("parley/v3: not enough elements in Matrix")
	ErrIndexOutOfRange   = PanicMsg("parley/v3: index out of range")
)
