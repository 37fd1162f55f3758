/*
 * qcschema_test.go, part of parley.
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
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	chem "github.com/parleyqc/parley"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func water(t *testing.T) *chem.Molecule {
	t.Helper()
	mol, err := chem.NewMolecule([]string{"O", "H"}, []float64{0, 0, 0, 0, 0, 0.96})
	require.NoError(t, err)
	return mol
}

func TestResolveAuxBasis(t *testing.T) {
	tests := []struct {
		msg    string
		method string
		aux    string
		want   string
	}{
		{"RI-MP2 without aux basis", RestrictedRIMP2, "", DefaultRIAuxBasis},
		{"RI-MP2 with explicit aux basis", RestrictedRIMP2, "def2-TZVP", "def2-TZVP"},
		{"HF without aux basis", RestrictedHF, "", ""},
		{"HF with explicit aux basis", RestrictedHF, "def2-universal-jkfit", "def2-universal-jkfit"},
		{"method names are case sensitive", "restrictedrimp2", "", ""},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, ResolveAuxBasis(test.method, test.aux), test.msg)
	}
}

func TestBuildWaterEnergy(t *testing.T) {
	calc := NewCalc()
	req := Build(water(t), calc)

	require.Len(t, req.Topologies, 1)
	top := req.Topologies[0]
	assert.Equal(t, []int{0}, top.FragmentFormalCharges)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0.96}, top.Geometry)
	assert.Equal(t, []string{"O", "H"}, top.Symbols)
	assert.Equal(t, Model{Method: "RestrictedHF", Basis: "6-31G"}, req.Model)
	assert.Equal(t, MaxGPUMemoryMB, req.System.MaxGPUMemoryMB)
	assert.Equal(t, DefaultSCF(), req.Keywords.SCF)
	assert.Nil(t, req.Keywords.Optimization)
	assert.Nil(t, req.Keywords.Dynamics)
	assert.Equal(t, Energy, req.Driver)
}

func TestBuildDriverBlocks(t *testing.T) {
	tests := []struct {
		driver Driver
		opt    bool
		dyn    bool
	}{
		{Energy, false, false},
		{Gradient, false, false},
		{Optimization, true, false},
		{Dynamics, false, true},
		{"Hessian", false, false},
		{"optimization", false, false},
	}
	for _, test := range tests {
		calc := NewCalc()
		calc.Driver = test.driver
		req := Build(water(t), calc)
		assert.Equal(t, test.driver, req.Driver)
		if test.opt {
			require.NotNil(t, req.Keywords.Optimization, "driver %s", test.driver)
			assert.Equal(t, &OptimizationKeywords{MaxIters: 30}, req.Keywords.Optimization)
		} else {
			assert.Nil(t, req.Keywords.Optimization, "driver %s", test.driver)
		}
		if test.dyn {
			require.NotNil(t, req.Keywords.Dynamics, "driver %s", test.driver)
			assert.Equal(t, &DynamicsKeywords{Dt: 0.001, NTimesteps: 10}, req.Keywords.Dynamics)
		} else {
			assert.Nil(t, req.Keywords.Dynamics, "driver %s", test.driver)
		}
	}
}

func TestBuildRIMP2(t *testing.T) {
	calc := NewCalc()
	calc.Method = RestrictedRIMP2
	req := Build(water(t), calc)
	assert.Equal(t, "cc-pVDZ-RIFIT", req.Model.AuxBasis)
	assert.Empty(t, calc.AuxBasis, "Build must not modify the Calc")

	calc.AuxBasis = "def2-TZVP"
	req = Build(water(t), calc)
	assert.Equal(t, "def2-TZVP", req.Model.AuxBasis)
}

func TestSCFDefaults(t *testing.T) {
	scf := DefaultSCF()
	assert.Equal(t, 100, scf.MaxIters)
	assert.Equal(t, 8, scf.MaxDIISHistoryLength)
	assert.Equal(t, 2560, scf.BatchSize)
	assert.Equal(t, "Energy", scf.ConvergenceMetric)
	assert.Equal(t, 1e-5, scf.ConvergenceThreshold)
	assert.False(t, scf.UseRI)
}

func TestExtractRoundTrip(t *testing.T) {
	for _, name := range []string{"../test/water.xyz", "../test/ethanol.xyz"} {
		mol, err := chem.XYZFileRead(name)
		require.NoError(t, err)
		for _, driver := range []Driver{Energy, Optimization, Dynamics} {
			calc := NewCalc()
			calc.Driver = driver
			got, err := Extract(Build(mol, calc))
			require.NoError(t, err)
			assert.Equal(t, mol.Symbols(), got.Symbols(), name)
			assert.Equal(t, mol.Geometry(), got.Geometry(), name)
		}
	}
	empty, err := chem.NewMolecule(nil, nil)
	require.NoError(t, err)
	got, err := Extract(Build(empty, NewCalc()))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		msg   string
		req   *Request
		kind  SchemaErrorKind
		field string
	}{
		{"nil request", nil, MissingField, "topologies"},
		{"no topologies", &Request{}, MissingField, "topologies"},
		{"empty topologies", &Request{Topologies: []Topology{}}, MissingField, "topologies"},
		{"no symbols", &Request{Topologies: []Topology{{Geometry: []float64{0, 0, 0}}}}, MissingField, "topologies[0].symbols"},
		{"no geometry", &Request{Topologies: []Topology{{Symbols: []string{"H"}}}}, MissingField, "topologies[0].geometry"},
		{"short geometry", &Request{Topologies: []Topology{{Symbols: []string{"H", "H"}, Geometry: []float64{0, 0, 0, 0, 0}}}}, ShapeMismatch, "topologies[0].geometry"},
		{"long geometry", &Request{Topologies: []Topology{{Symbols: []string{"H"}, Geometry: []float64{0, 0, 0, 1, 1, 1}}}}, ShapeMismatch, "topologies[0].geometry"},
	}
	for _, test := range tests {
		_, err := Extract(test.req)
		var serr *SchemaError
		require.True(t, errors.As(err, &serr), "%s: got %v", test.msg, err)
		assert.Equal(t, test.kind, serr.Kind, test.msg)
		assert.Equal(t, test.field, serr.Field, test.msg)
	}
}

func TestEncodeJSONLayout(t *testing.T) {
	calc := NewCalc()
	calc.Method = RestrictedRIMP2
	calc.Driver = Optimization
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Build(water(t), calc), JSON))
	text := buf.String()

	assert.True(t, strings.HasPrefix(text, "{\n  \"topologies\": ["), "2-space indentation expected:\n%s", text)
	last := -1
	for _, key := range []string{`"topologies"`, `"model"`, `"system"`, `"keywords"`, `"driver"`} {
		i := strings.Index(text, key)
		require.Greater(t, i, last, "key %s out of order", key)
		last = i
	}

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	model := doc["model"].(map[string]interface{})
	assert.Equal(t, "cc-pVDZ-RIFIT", model["aux_basis"])
	keywords := doc["keywords"].(map[string]interface{})
	assert.Contains(t, keywords, "optimization")
	assert.NotContains(t, keywords, "dynamics")
	scf := keywords["scf"].(map[string]interface{})
	assert.Equal(t, 1e-5, scf["convergence_threshold"])
	assert.Equal(t, false, scf["use_ri"])
	assert.Equal(t, "Energy", scf["convergence_metric"])
	system := doc["system"].(map[string]interface{})
	assert.Equal(t, float64(4000), system["max_gpu_memory_mb"])
	assert.Equal(t, "Optimization", doc["driver"])
}

func TestEncodeNoAuxBasis(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Build(water(t), NewCalc()), JSON))
	assert.NotContains(t, buf.String(), "aux_basis")
	assert.NotContains(t, buf.String(), "optimization")
	assert.NotContains(t, buf.String(), "dynamics")
	buf.Reset()
	require.NoError(t, Encode(&buf, Build(water(t), NewCalc()), YAML))
	assert.NotContains(t, buf.String(), "aux_basis")
	assert.True(t, strings.HasPrefix(buf.String(), "topologies:\n"), buf.String())
}

func TestCodecRoundTrip(t *testing.T) {
	calc := NewCalc()
	calc.Driver = Dynamics
	calc.AuxBasis = "def2-universal-jkfit"
	req := Build(water(t), calc)
	for _, enc := range []Encoding{JSON, YAML} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, req, enc))
		got, err := Decode(&buf, enc)
		require.NoError(t, err)
		assert.Equal(t, req, got, string(enc))
	}
	assert.Error(t, Encode(&bytes.Buffer{}, req, "xml"))
	_, err := Decode(strings.NewReader("{}"), "xml")
	assert.Error(t, err)
}

func TestDecodeFixtures(t *testing.T) {
	f, err := os.Open("../test/water.json")
	require.NoError(t, err)
	defer f.Close()
	req, err := Decode(f, JSON)
	require.NoError(t, err)
	assert.Equal(t, Optimization, req.Driver)
	assert.Equal(t, "cc-pVDZ-RIFIT", req.Model.AuxBasis)
	require.NotNil(t, req.Keywords.Optimization)
	mol, err := Extract(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"O", "H", "H"}, mol.Symbols())

	y, err := os.Open("../test/water.yaml")
	require.NoError(t, err)
	defer y.Close()
	mol2, err := ReadMolecule(y, YAML)
	require.NoError(t, err)
	assert.Equal(t, mol.Geometry(), mol2.Geometry())

	n, err := os.Open("../test/notopology.json")
	require.NoError(t, err)
	defer n.Close()
	_, err = ReadMolecule(n, JSON)
	var serr *SchemaError
	require.True(t, errors.As(err, &serr), "got %v", err)
	assert.Equal(t, MissingField, serr.Kind)
	assert.Equal(t, []string{"Extract", "ReadMolecule"}, serr.Decorate(""))
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{"", "{", "[1, 2]", `{"topologies": "water"}`} {
		_, err := Decode(strings.NewReader(in), JSON)
		var serr *SchemaError
		require.True(t, errors.As(err, &serr), "input %q: got %v", in, err)
		assert.Equal(t, Malformed, serr.Kind, in)
	}
	_, err := Decode(strings.NewReader("topologies: [: :"), YAML)
	var serr *SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, Malformed, serr.Kind)
}

func TestValidate(t *testing.T) {
	calc := NewCalc()
	assert.NoError(t, calc.Validate())
	for _, d := range []Driver{Energy, Gradient, Optimization, Dynamics} {
		calc.Driver = d
		assert.NoError(t, calc.Validate())
	}
	calc.Method = RestrictedRIMP2
	assert.NoError(t, calc.Validate())

	calc.Driver = "Hessian"
	err := calc.Validate()
	var serr *SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, InvalidValue, serr.Kind)
	assert.Equal(t, "driver", serr.Field)

	calc.SetDefaults()
	calc.Method = "CCSD(T)"
	require.True(t, errors.As(calc.Validate(), &serr))
	assert.Equal(t, "model.method", serr.Field)
}

func TestDecodeTopologiesIgnoresOtherFields(t *testing.T) {
	doc := `{
  "topologies": [{"fragment_formal_charges": [0.5], "geometry": [0, 0, 0], "symbols": ["He"]}],
  "model": {"method": 5},
  "system": {"max_gpu_memory_mb": "4000"},
  "keywords": {"scf": "default"},
  "driver": ["Energy"]
}`
	_, err := Decode(strings.NewReader(doc), JSON)
	var serr *SchemaError
	require.True(t, errors.As(err, &serr), "the full decoder checks every modeled field")
	assert.Equal(t, Malformed, serr.Kind)

	req, err := DecodeTopologies(strings.NewReader(doc), JSON)
	require.NoError(t, err)
	require.Len(t, req.Topologies, 1)
	assert.Nil(t, req.Topologies[0].FragmentFormalCharges)
	mol, err := ReadMolecule(strings.NewReader(doc), JSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"He"}, mol.Symbols())

	yamlDoc := "topologies:\n  - symbols: [H]\n    geometry: [0, 0, 1]\n    fragment_formal_charges: [half]\nsystem:\n  max_gpu_memory_mb: lots\n"
	mol, err = ReadMolecule(strings.NewReader(yamlDoc), YAML)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, mol.Geometry())

	_, err = DecodeTopologies(strings.NewReader(`{"topologies": [{"geometry": ["x"]}]}`), JSON)
	require.True(t, errors.As(err, &serr), "the geometry itself must still be numeric")
	assert.Equal(t, Malformed, serr.Kind)
}

func TestExtractNonFinite(t *testing.T) {
	_, err := ReadMolecule(strings.NewReader("topologies:\n  - symbols: [H]\n    geometry: [0, .nan, 0]\n"), YAML)
	var serr *SchemaError
	require.True(t, errors.As(err, &serr), "got %v", err)
	assert.Equal(t, InvalidValue, serr.Kind)
	assert.Equal(t, "topologies[0].geometry[1]", serr.Field)

	_, err = ReadMolecule(strings.NewReader("topologies:\n  - symbols: [H]\n    geometry: [0, 0, -.inf]\n"), YAML)
	require.True(t, errors.As(err, &serr), "got %v", err)
	assert.Equal(t, "topologies[0].geometry[2]", serr.Field)
}
