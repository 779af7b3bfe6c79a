/*
 * box.go, part of supercell.
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
	"math"

	v3 "github.com/rmera/supercell/v3"
	"gonum.org/v1/gonum/mat"
)

// Box is a periodic cell: three lattice vectors, stored as the rows of a 3x3 matrix,
// and an origin. The vectors are assumed to be linearly independent; nothing here checks it.
type Box struct {
	vects  *v3.Matrix
	origin *v3.Matrix
}

// NewBox returns a Box with copies of the given vectors and origin. vects must have exactly
// three vectors and origin exactly one. A nil origin means the origin of coordinates.
func NewBox(vects, origin *v3.Matrix) (*Box, error) {
	if vects == nil || vects.NVecs() != 3 {
		return nil, newError(PropertyMismatch, "NewBox", "a box needs exactly 3 vectors")
	}
	B := &Box{vects: vects.Copy()}
	if origin == nil {
		B.origin = v3.Zeros(1)
		return B, nil
	}
	if origin.NVecs() != 1 {
		return nil, newError(PropertyMismatch, "NewBox", "the origin must be a single vector, got %d", origin.NVecs())
	}
	B.origin = origin.Copy()
	return B, nil
}

// Vects returns a copy of the three box vectors, one per row.
func (B *Box) Vects() *v3.Matrix {
	return B.vects.Copy()
}

// Vect returns a copy of the ith box vector (0 is a, 1 is b, 2 is c).
func (B *Box) Vect(i int) *v3.Matrix {
	return B.vects.VecView(i).Copy()
}

// Origin returns a copy of the box origin.
func (B *Box) Origin() *v3.Matrix {
	return B.origin.Copy()
}

// Unscale converts fractional coordinates to absolute ones: r = s*V + origin
func (B *Box) Unscale(frac *v3.Matrix) *v3.Matrix {
	abs := v3.Zeros(frac.NVecs())
	abs.Mul(frac, B.vects)
	abs.AddVec(abs, B.origin)
	return abs
}

// Scale converts absolute coordinates to fractional ones: s = (r - origin)*V^-1
// It fails if the box vectors can't be inverted.
func (B *Box) Scale(abs *v3.Matrix) (*v3.Matrix, error) {
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(B.vects.Dense); err != nil {
		//gonum returns a finite Condition for ill-conditioned matrices, but still computes the inverse.
		if c, ok := err.(mat.Condition); !ok || math.IsInf(float64(c), 1) {
			return nil, newError(SingularBox, "Scale", "%s", err)
		}
	}
	shifted := v3.Zeros(abs.NVecs())
	shifted.SubVec(abs, B.origin)
	frac := v3.Zeros(abs.NVecs())
	frac.Mul(shifted, inv)
	return frac, nil
}
