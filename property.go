/*
 * property.go, part of supercell.
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

// Value lists the element types a Prop can hold.
type Value interface {
	~bool | ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// Prop is a per-atom property with elements of type T. Data is stored
// contiguously, atom after atom, each atom using Stride() elements.
type Prop[T Value] struct {
	natoms int
	shape  []int
	data   []T
}

// NewProp returns a property for natoms atoms with the given per-atom shape,
// backed by data (not copied). If data is nil, a zero-filled slice is allocated.
// Returns an error if the length of data doesn't match natoms times the
// number of elements per atom.
func NewProp[T Value](natoms int, shape []int, data []T) (*Prop[T], error) {
	stride := 1
	for _, v := range shape {
		if v <= 0 {
			return nil, newError(PropertyMismatch, "NewProp", "invalid per-atom shape %v", shape)
		}
		stride *= v
	}
	if natoms < 0 {
		return nil, newError(PropertyMismatch, "NewProp", "negative number of atoms %d", natoms)
	}
	if data == nil {
		data = make([]T, natoms*stride)
	}
	if len(data) != natoms*stride {
		return nil, newError(PropertyMismatch, "NewProp", "%d elements given, %d atoms with shape %v need %d", len(data), natoms, shape, natoms*stride)
	}
	p := &Prop[T]{natoms: natoms, data: data}
	p.shape = append([]int{}, shape...)
	return p, nil
}

// Len returns the number of atoms.
func (P *Prop[T]) Len() int { return P.natoms }

// Shape returns a copy of the per-atom shape.
func (P *Prop[T]) Shape() []int { return append([]int{}, P.shape...) }

// Stride returns the number of elements each atom uses.
func (P *Prop[T]) Stride() int {
	if P.natoms == 0 {
		s := 1
		for _, v := range P.shape {
			s *= v
		}
		return s
	}
	return len(P.data) / P.natoms
}

// Data returns the raw data slice. Changes in the slice are reflected in the property.
func (P *Prop[T]) Data() []T { return P.data }

// At returns the values of atom i. Changes in the returned slice are reflected in the property.
// Panics if i is out of range.
func (P *Prop[T]) At(i int) []T {
	if i < 0 || i >= P.natoms {
		panic("supercell: Prop: requested atom out of range")
	}
	s := P.Stride()
	return P.data[i*s : (i+1)*s]
}

// Tile returns a property with n consecutive verbatim copies of P. The copy index varies
// slower than the atom index: atom i of copy r is atom r*P.Len()+i of the result.
func (P *Prop[T]) Tile(n int) Property {
	l := len(P.data)
	data := make([]T, n*l)
	for r := 0; r < n; r++ {
		copy(data[r*l:(r+1)*l], P.data)
	}
	return &Prop[T]{natoms: n * P.natoms, shape: P.Shape(), data: data}
}

// Copy returns a deep copy of P.
func (P *Prop[T]) Copy() Property {
	return P.Tile(1)
}
