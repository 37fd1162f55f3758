/*
 * request.go, part of parley.
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

//Fixed settings added to every request.
const (
	SCFMaxIters             = 100
	SCFMaxDIISHistoryLength = 8
	SCFBatchSize            = 2560
	SCFConvergenceMetric    = "Energy"
	SCFConvergenceThreshold = 1e-5
	SCFUseRI                = false

	OptimizationMaxIters = 30

	DynamicsDt         = 0.001
	DynamicsNTimesteps = 10

	MaxGPUMemoryMB = 4000
)

//Request is a structured computation request. It always holds exactly one topology
//when produced by Build. The field order is the order of the serialized keys.
type Request struct {
	Topologies []Topology `json:"topologies" yaml:"topologies"`
	Model      Model      `json:"model" yaml:"model"`
	System     System     `json:"system" yaml:"system"`
	Keywords   Keywords   `json:"keywords" yaml:"keywords"`
	Driver     Driver     `json:"driver" yaml:"driver"`
}

//Topology is one molecular structure. Geometry is flattened (x1, y1, z1, x2...)
//and has 3 values per symbol.
type Topology struct {
	FragmentFormalCharges []int     `json:"fragment_formal_charges" yaml:"fragment_formal_charges"`
	Geometry              []float64 `json:"geometry" yaml:"geometry"`
	Symbols               []string  `json:"symbols" yaml:"symbols"`
}

type Model struct {
	Method   string `json:"method" yaml:"method"`
	Basis    string `json:"basis" yaml:"basis"`
	AuxBasis string `json:"aux_basis,omitempty" yaml:"aux_basis,omitempty"`
}

type System struct {
	MaxGPUMemoryMB int `json:"max_gpu_memory_mb" yaml:"max_gpu_memory_mb"`
}

//Keywords holds the solver settings. Optimization and Dynamics are only
//present for the corresponding drivers.
type Keywords struct {
	SCF          SCF                   `json:"scf" yaml:"scf"`
	Optimization *OptimizationKeywords `json:"optimization,omitempty" yaml:"optimization,omitempty"`
	Dynamics     *DynamicsKeywords     `json:"dynamics,omitempty" yaml:"dynamics,omitempty"`
}

type SCF struct {
	MaxIters             int     `json:"max_iters" yaml:"max_iters"`
	MaxDIISHistoryLength int     `json:"max_diis_history_length" yaml:"max_diis_history_length"`
	BatchSize            int     `json:"batch_size" yaml:"batch_size"`
	ConvergenceMetric    string  `json:"convergence_metric" yaml:"convergence_metric"`
	ConvergenceThreshold float64 `json:"convergence_threshold" yaml:"convergence_threshold"`
	UseRI                bool    `json:"use_ri" yaml:"use_ri"`
}

//OptimizationKeywords holds the geometry optimizer settings.
type OptimizationKeywords struct {
	MaxIters int `json:"max_iters" yaml:"max_iters"`
}

//DynamicsKeywords holds the molecular dynamics settings.
type DynamicsKeywords struct {
	Dt         float64 `json:"dt" yaml:"dt"`
	NTimesteps int     `json:"n_timesteps" yaml:"n_timesteps"`
}

//DefaultSCF returns the fixed SCF settings.
func DefaultSCF() SCF {
	return SCF{
		MaxIters:             SCFMaxIters,
		MaxDIISHistoryLength: SCFMaxDIISHistoryLength,
		BatchSize:            SCFBatchSize,
		ConvergenceMetric:    SCFConvergenceMetric,
		ConvergenceThreshold: SCFConvergenceThreshold,
		UseRI:                SCFUseRI,
	}
}
