/*
 * doc.go, part of parley.
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

/*Package chem is the main package of parley. It provides the atom and molecule structures
and the reading and writing of XYZ files.

The companion packages are:

    v3: an Nx3 coordinate matrix based on gonum, used for the molecule coordinates.

    qcschema: computation parameters and the structured request document (QCSchema-like
    JSON or YAML) that combines a molecule with a quantum-chemistry computation.

    convert: the selection of a conversion from the requested input and output formats,
    used by the parley command.

An XYZ file has the atom count in its first line, a free comment in the second one, and
one "symbol x y z" line per atom after that. Files ending in .gz or .zst are
transparently (de)compressed.

*/
package chem
