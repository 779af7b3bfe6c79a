/*
 * supersize.go, part of supercell.
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
	"gonum.org/v1/gonum/floats"
)

var axisNames = [3]string{"a", "b", "c"}

/*Supersize builds a larger system by replicating the seed system S along its box vectors
a, b and c. Each spec gives the number of cells to add below (Low) and above (High) the
seed cell along that vector, and the box grows by High-Low along it. If High == -Low,
the seed's origin ends up at the center of the new box.

The atoms of the new system are ordered by replica, and within each replica as in S:
atom r*S.NAtoms()+i is the copy of seed atom i in replica r, where
r = ia + Ma*(ib + Mb*ic), ia, ib and ic being the replica indexes along a, b and c and
Ma, Mb the multipliers along a and b. That is, the a index varies fastest.
Properties other than the positions are copied verbatim. S is not modified.*/
func Supersize(S *System, a, b, c ReplicationSpec) (*System, error) {
	if S == nil {
		return nil, newError(PropertyMismatch, "Supersize", "nil seed system")
	}
	var mults [3]Multiplier
	for i, spec := range [3]ReplicationSpec{a, b, c} {
		m, err := NormalizeSpec(spec)
		if err != nil {
			return nil, errDecorate(err, "Supersize: axis "+axisNames[i])
		}
		mults[i] = m
	}
	natoms := S.NAtoms()
	nrep, err := replicaCount(mults, natoms)
	if err != nil {
		return nil, errDecorate(err, "Supersize")
	}
	spos, err := S.Positions(true)
	if err != nil {
		return nil, errDecorate(err, "Supersize")
	}
	box, err := supersizeBox(S.box, mults)
	if err != nil {
		return nil, errDecorate(err, "Supersize")
	}
	atoms, err := NewAtoms(nrep * natoms)
	if err != nil {
		return nil, errDecorate(err, "Supersize")
	}
	if err = replicateProps(S.atoms, nrep, atoms); err != nil {
		return nil, errDecorate(err, "Supersize")
	}
	if err = atoms.SetPos(tilePositions(spos, mults)); err != nil {
		return nil, errDecorate(err, "Supersize")
	}
	return assemble(box, atoms, true), nil
}

// replicaCount returns the total number of replicas, checking that neither it nor the
// resulting number of atoms overflow an int.
func replicaCount(mults [3]Multiplier, natoms int) (int, error) {
	total := 1
	for i, m := range mults {
		if total > math.MaxInt/m.Mult {
			return 0, newError(ReplicationOverflow, "replicaCount", "replica count overflows at axis %s", axisNames[i])
		}
		total *= m.Mult
	}
	if natoms > 0 && total > math.MaxInt/natoms {
		return 0, newError(ReplicationOverflow, "replicaCount", "%d replicas of %d atoms", total, natoms)
	}
	return total, nil
}

// supersizeBox returns a box whose ith vector is Mult times the original one, with the
// origin displaced Low cells along each vector.
func supersizeBox(box *Box, mults [3]Multiplier) (*Box, error) {
	vects := box.Vects()
	origin := box.Origin()
	o := origin.RawRow(0)
	for i, m := range mults {
		v := vects.RawRow(i)
		floats.AddScaled(o, float64(m.Low), v) //must happen before v is scaled.
		floats.Scale(float64(m.Mult), v)
	}
	return NewBox(vects, origin)
}

// replicateProps sets in dest nrep verbatim copies of every property of seed except the
// positions, keeping the order of the keys.
func replicateProps(seed *Atoms, nrep int, dest *Atoms) error {
	for _, key := range seed.Keys() {
		if key == PosKey {
			continue
		}
		p, err := seed.Prop(key)
		if err != nil {
			return errDecorate(err, "replicateProps")
		}
		if err = dest.SetProp(key, p.Tile(nrep)); err != nil {
			return errDecorate(err, "replicateProps: "+key)
		}
	}
	return nil
}

// tilePositions takes the fractional positions of the seed cell and returns those of
// the supercell. Each seed coordinate along axis k is divided by the multiplier along k,
// and every replica gets the shift (ia/Ma, ib/Mb, ic/Mc). Replicas are enumerated with
// the a index varying fastest, matching the order of the copies made by replicateProps.
func tilePositions(spos *v3.Matrix, mults [3]Multiplier) *v3.Matrix {
	n := spos.NVecs()
	ma, mb, mc := mults[0].Mult, mults[1].Mult, mults[2].Mult
	scaled := spos.Copy()
	for i := 0; i < n; i++ {
		row := scaled.RawRow(i)
		for k := range row {
			row[k] /= float64(mults[k].Mult)
		}
	}
	tiled := v3.Zeros(n * ma * mb * mc)
	shift := v3.Zeros(1)
	s := shift.RawRow(0)
	r := 0
	for ic := 0; ic < mc; ic++ {
		s[2] = float64(ic) / float64(mc)
		for ib := 0; ib < mb; ib++ {
			s[1] = float64(ib) / float64(mb)
			for ia := 0; ia < ma; ia++ {
				s[0] = float64(ia) / float64(ma)
				tiled.View(r*n, n).AddVec(scaled, shift)
				r++
			}
		}
	}
	return tiled
}
