/*
 * doc.go, part of supercell.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package supercell builds larger periodic atomic configurations by replicating a seed
configuration along its three box vectors.



	**Capabilities**


    Represents a periodic configuration (System) as a Box (three lattice vectors and
	an origin) plus a set of Atoms with arbitrary named per-atom properties of any
	shape and element type (positions, velocities, integer atom types, charges...).

    Converts positions between absolute and fractional (scaled) coordinates.

    Replicates a System along a, b and c (Supersize). The number of cells along each
	vector is given as a single signed integer (cells above or below the seed
	cell) or as an explicit (low, high) range, which allows centering the seed cell
	in the new one.

    Reads replication sizes from TOML files or JSON documents.


Coordinates and box vectors are handled as v3.Matrix, a gonum Dense with 3 columns.

*/
package supercell
