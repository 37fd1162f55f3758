/*
 * codec.go, part of parley.
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
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//Encoding is a serialization format for request documents.
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
)

const indent = 2

//Encode writes req to out with the given encoding, indented with 2 spaces.
func Encode(out io.Writer, req *Request, enc Encoding) error {
	switch enc {
	case JSON:
		e := json.NewEncoder(out)
		e.SetIndent("", "  ")
		return e.Encode(req)
	case YAML:
		e := yaml.NewEncoder(out)
		e.SetIndent(indent)
		if err := e.Encode(req); err != nil {
			return err
		}
		return e.Close()
	}
	return fmt.Errorf("qcschema: unknown encoding %q", string(enc))
}

//Decode reads a request document from in. Keys not modeled by Request are ignored.
//Only the first document in the stream is read. A document that can't be parsed,
//or whose modeled fields have the wrong types, causes a *SchemaError of kind Malformed.
func Decode(in io.Reader, enc Encoding) (*Request, error) {
	req := new(Request)
	if err := decode(in, enc, req, "Decode"); err != nil {
		return nil, err
	}
	return req, nil
}

//structureDocument is the part of a request document needed to recover the molecule.
type structureDocument struct {
	Topologies []struct {
		Geometry []float64 `json:"geometry" yaml:"geometry"`
		Symbols  []string  `json:"symbols" yaml:"symbols"`
	} `json:"topologies" yaml:"topologies"`
}

//DecodeTopologies reads a request document from in, but only its topologies'
//symbols and geometry. The rest of the document is not checked, so fields with
//unexpected types are ignored. The returned Request has only Topologies set.
func DecodeTopologies(in io.Reader, enc Encoding) (*Request, error) {
	doc := new(structureDocument)
	if err := decode(in, enc, doc, "DecodeTopologies"); err != nil {
		return nil, err
	}
	req := new(Request)
	if doc.Topologies != nil {
		req.Topologies = make([]Topology, len(doc.Topologies))
	}
	for i, t := range doc.Topologies {
		req.Topologies[i] = Topology{Geometry: t.Geometry, Symbols: t.Symbols}
	}
	return req, nil
}

func decode(in io.Reader, enc Encoding, v interface{}, funcname string) error {
	var err error
	switch enc {
	case JSON:
		err = json.NewDecoder(in).Decode(v)
	case YAML:
		err = yaml.NewDecoder(in).Decode(v)
	default:
		return fmt.Errorf("qcschema: unknown encoding %q", string(enc))
	}
	if errors.Is(err, io.EOF) {
		return &SchemaError{Kind: Malformed, Message: "empty document", deco: []string{funcname}}
	}
	if err != nil {
		return &SchemaError{Kind: Malformed, Message: err.Error(), deco: []string{funcname}}
	}
	return nil
}
