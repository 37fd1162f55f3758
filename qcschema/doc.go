/*
 * doc.go, part of parley.
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

/*Package qcschema builds and reads structured quantum-chemistry request documents.

A request document combines one molecular structure (a "topology") with the
parameters of the computation: the model (method and basis sets), fixed SCF
solver keywords, the blocks specific to the driver, and a GPU memory hint.
Documents are written and read as JSON or YAML.

	calc := qcschema.NewCalc()
	calc.Method = qcschema.RestrictedRIMP2
	calc.Driver = qcschema.Optimization
	req := qcschema.Build(mol, calc)
	err := qcschema.Encode(os.Stdout, req, qcschema.JSON)

Unknown methods and drivers are passed through untouched; Calc.Validate can be
used when only the documented values should be accepted.
*/
package qcschema
