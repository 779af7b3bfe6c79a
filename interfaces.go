/*
 * interfaces.go, part of supercell.
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

package supercell

// Property is a named per-atom attribute, stored as an array indexed by atom.
// Every atom has the same per-atom shape and element type for a given property.
type Property interface {

	//Len returns the number of atoms the property holds values for.
	Len() int

	//Shape returns the per-atom shape of the property. An empty shape means a scalar.
	Shape() []int

	//Tile returns a new property holding n consecutive copies of the receiver's data,
	//so the copy index varies slower than the atom index.
	Tile(n int) Property

	//Copy returns a deep copy of the property.
	Copy() Property
}
