/*
 * atoms.go, part of supercell.
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
	"fmt"
	"slices"

	v3 "github.com/rmera/supercell/v3"
)

// PosKey is the key of the position property, which all Atoms have.
const PosKey = "pos"

// Atoms is an ordered collection of atoms, each with the same set of named properties.
// Properties are kept in insertion order, with the positions always first.
type Atoms struct {
	natoms int
	keys   []string
	props  map[string]Property
}

// NewAtoms returns an Atoms with natoms atoms, all placed at the origin, and no
// properties other than the positions.
func NewAtoms(natoms int) (*Atoms, error) {
	if natoms < 1 {
		return nil, newError(PropertyMismatch, "NewAtoms", "at least one atom is needed, got %d", natoms)
	}
	pos, err := NewProp[float64](natoms, []int{3}, nil)
	if err != nil {
		return nil, errDecorate(err, "NewAtoms")
	}
	A := &Atoms{natoms: natoms, props: make(map[string]Property)}
	A.keys = []string{PosKey}
	A.props[PosKey] = pos
	return A, nil
}

// Len returns the number of atoms.
func (A *Atoms) Len() int {
	return A.natoms
}

// Keys returns the property keys in their order of insertion. PosKey is always the first one.
func (A *Atoms) Keys() []string {
	return append([]string{}, A.keys...)
}

// Prop returns the property with the given key. The property is not copied.
func (A *Atoms) Prop(key string) (Property, error) {
	p, ok := A.props[key]
	if !ok {
		return nil, newError(MissingProperty, "Prop", "no property %q", key)
	}
	return p, nil
}

// SetProp sets the property key to p. A new key is appended at the end of the key list,
// an existing one keeps its place. It returns an error if p doesn't hold values for
// exactly A.Len() atoms, or if key is PosKey and p is not a float64 property with shape [3].
func (A *Atoms) SetProp(key string, p Property) error {
	if p == nil {
		return newError(PropertyMismatch, "SetProp", "nil property %q", key)
	}
	if p.Len() != A.natoms {
		return newError(PropertyMismatch, "SetProp", "property %q has %d atoms, expected %d", key, p.Len(), A.natoms)
	}
	if key == PosKey {
		pos, ok := p.(*Prop[float64])
		if !ok || !slices.Equal(pos.Shape(), []int{3}) {
			return newError(PropertyMismatch, "SetProp", "positions must be float64 3-vectors, got %T with shape %v", p, p.Shape())
		}
	}
	if _, ok := A.props[key]; !ok {
		A.keys = append(A.keys, key)
	}
	A.props[key] = p
	return nil
}

// Pos returns the positions as a Matrix. The Matrix shares data with A.
func (A *Atoms) Pos() *v3.Matrix {
	p := A.props[PosKey].(*Prop[float64])
	m, err := v3.NewMatrix(p.Data())
	if err != nil {
		panic(fmt.Sprintf("supercell: corrupted positions: %s", err))
	}
	return m
}

// SetPos copies the coordinates in pos to the positions of A.
func (A *Atoms) SetPos(pos *v3.Matrix) error {
	if pos.NVecs() != A.natoms {
		return newError(PropertyMismatch, "SetPos", "%d positions given, expected %d", pos.NVecs(), A.natoms)
	}
	A.Pos().Dense.Copy(pos.Dense)
	return nil
}

// Copy returns a deep copy of A.
func (A *Atoms) Copy() *Atoms {
	C := &Atoms{natoms: A.natoms, props: make(map[string]Property, len(A.props))}
	C.keys = A.Keys()
	for k, v := range A.props {
		C.props[k] = v.Copy()
	}
	return C
}

