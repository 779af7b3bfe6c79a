/*
 * system.go, part of supercell.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

import (
	v3 "github.com/rmera/supercell/v3"
)

// System is an atomic configuration: a Box and the Atoms in it. A System is not
// modified after it is built. Accessors return copies.
type System struct {
	box   *Box
	atoms *Atoms
}

// NewSystem builds a System from a copy of atoms. If scaled is true, the positions in
// atoms are taken as fractional coordinates of box, and converted to absolute ones.
func NewSystem(box *Box, atoms *Atoms, scaled bool) (*System, error) {
	if box == nil || atoms == nil {
		return nil, newError(PropertyMismatch, "NewSystem", "nil box or atoms")
	}
	return assemble(box, atoms.Copy(), scaled), nil
}

// assemble builds a System that takes ownership of atoms.
func assemble(box *Box, atoms *Atoms, scaled bool) *System {
	if scaled {
		pos := atoms.Pos()
		pos.Dense.Copy(box.Unscale(pos).Dense)
	}
	return &System{box: box, atoms: atoms}
}

// Box returns the box of the system. Box is immutable, so it is not copied.
func (S *System) Box() *Box {
	return S.box
}

// Atoms returns a copy of the atoms of the system.
func (S *System) Atoms() *Atoms {
	return S.atoms.Copy()
}

// NAtoms returns the number of atoms in the system.
func (S *System) NAtoms() int {
	return S.atoms.Len()
}

// Keys returns the property keys, in order.
func (S *System) Keys() []string {
	return S.atoms.Keys()
}

// Prop returns a copy of the property with the given key.
func (S *System) Prop(key string) (Property, error) {
	p, err := S.atoms.Prop(key)
	if err != nil {
		return nil, errDecorate(err, "System.Prop")
	}
	return p.Copy(), nil
}

// Positions returns a copy of the atomic positions. If scaled is true, they are
// given as fractional coordinates of the system's box.
func (S *System) Positions(scaled bool) (*v3.Matrix, error) {
	pos := S.atoms.Pos()
	if !scaled {
		return pos.Copy(), nil
	}
	frac, err := S.box.Scale(pos)
	if err != nil {
		return nil, errDecorate(err, "System.Positions")
	}
	return frac, nil
}
