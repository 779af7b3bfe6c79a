/*
 * replication.go, part of supercell.
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
	"encoding/json"
	"fmt"
	"math"
)

// ReplicationSpec describes how many replicas of a cell are built along one box vector.
// It is either a Single or a Range.
type ReplicationSpec interface {
	bounds() (low, high int)
}

// Single is a replication spec given as one signed integer k. A positive k
// means k cells in the positive direction, (0, k); a negative k means |k|
// cells in the negative direction, (k, 0). Zero is not a valid Single.
type Single int

func (s Single) bounds() (int, int) {
	if s < 0 {
		return int(s), 0
	}
	return 0, int(s)
}

// Range is a replication spec given as explicit bounds. Low must be <= 0
// and High >= 0. If High == -Low, the seed cell ends up at the center of
// the new one.
type Range struct {
	Low, High int
}

func (r Range) bounds() (int, int) {
	return r.Low, r.High
}

func (r Range) String() string {
	return fmt.Sprintf("(%d, %d)", r.Low, r.High)
}

// Multiplier is a validated, canonical replication spec. Mult = High - Low is the
// total number of cells along the axis, and is always positive.
type Multiplier struct {
	Low, High, Mult int
}

// NormalizeSpec validates spec and returns its canonical form.
// It fails with InvalidReplicationSpec if the bounds have the wrong signs, and
// with ZeroMultiplier if the spec yields no cells at all.
func NormalizeSpec(spec ReplicationSpec) (Multiplier, error) {
	if spec == nil {
		return Multiplier{}, newError(InvalidReplicationSpec, "NormalizeSpec", "nil spec")
	}
	low, high := spec.bounds()
	if low > 0 || high < 0 {
		return Multiplier{}, newError(InvalidReplicationSpec, "NormalizeSpec", "bounds (%d, %d) must satisfy low <= 0 <= high", low, high)
	}
	if high > math.MaxInt+low {
		return Multiplier{}, newError(ReplicationOverflow, "NormalizeSpec", "bounds (%d, %d) overflow", low, high)
	}
	m := Multiplier{Low: low, High: high, Mult: high - low}
	if m.Mult == 0 {
		return Multiplier{}, newError(ZeroMultiplier, "NormalizeSpec", "")
	}
	return m, nil
}

// SpecFromValue builds a ReplicationSpec from a dynamically typed value, as produced by
// decoding a TOML or JSON document. An integer gives a Single, a two-element array of
// integers gives a Range. Anything else fails with InvalidReplicationSpec.
// The signs of the bounds are only checked by NormalizeSpec.
func SpecFromValue(v interface{}) (ReplicationSpec, error) {
	if k, ok := toInt(v); ok {
		return Single(k), nil
	}
	var pair []interface{}
	switch t := v.(type) {
	case []interface{}:
		pair = t
	case []int64:
		for _, e := range t {
			pair = append(pair, e)
		}
	case []int:
		for _, e := range t {
			pair = append(pair, e)
		}
	default:
		return nil, newError(InvalidReplicationSpec, "SpecFromValue", "%v (%T) is neither an integer nor a pair of integers", v, v)
	}
	if len(pair) != 2 {
		return nil, newError(InvalidReplicationSpec, "SpecFromValue", "%v has %d elements, expected 2", v, len(pair))
	}
	low, ok1 := toInt(pair[0])
	high, ok2 := toInt(pair[1])
	if !ok1 || !ok2 {
		return nil, newError(InvalidReplicationSpec, "SpecFromValue", "%v is not a pair of integers", v)
	}
	return Range{Low: low, High: high}, nil
}

// toInt converts any integer value (and integer json.Numbers) to int. Floats are not
// accepted, even with an integral value.
func toInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		if t > math.MaxInt || t < math.MinInt {
			return 0, false
		}
		return int(t), true
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return int(t), true
	case uint64:
		if t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case uint:
		if t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return toInt(i)
	}
	return 0, false
}
