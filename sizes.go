/*
 * sizes.go, part of supercell.
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
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"
	"sort"

	"github.com/pelletier/go-toml"
)

// Sizes holds the replication specs along a, b and c.
type Sizes [3]ReplicationSpec

// Supersize replicates S according to the sizes in s.
func (s Sizes) Supersize(S *System) (*System, error) {
	return Supersize(S, s[0], s[1], s[2])
}

// ReadSizesFile reads the replication sizes from a TOML file. See ReadSizes.
func ReadSizesFile(path string) (Sizes, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sizes{}, err
	}
	defer f.Close()
	s, err := ReadSizes(f)
	if err != nil {
		return Sizes{}, errDecorate(err, "ReadSizesFile: "+path)
	}
	return s, nil
}

/*ReadSizes reads the replication sizes from a TOML document such as

	a = 3
	b = [-1, 1]

Each of the keys a, b and c holds either an integer or an array of two
integers [low, high]. Missing keys mean no replication along that vector.
Unknown keys are ignored.*/
func ReadSizes(r io.Reader) (Sizes, error) {
	tree, err := toml.LoadReader(r)
	if err != nil {
		return Sizes{}, err
	}
	s, err := sizesFromMap(tree.ToMap())
	if err != nil {
		return Sizes{}, errDecorate(err, "ReadSizes")
	}
	return s, nil
}

// UnmarshalJSON decodes the sizes from a JSON object with the same keys and values
// accepted by ReadSizes, e.g. {"a": 3, "b": [-1, 1]}.
func (s *Sizes) UnmarshalJSON(b []byte) error {
	var m map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return err
	}
	r, err := sizesFromMap(m)
	if err != nil {
		return errDecorate(err, "Sizes.UnmarshalJSON")
	}
	*s = r
	return nil
}

func sizesFromMap(m map[string]interface{}) (Sizes, error) {
	s := Sizes{Single(1), Single(1), Single(1)}
	for i, name := range axisNames {
		v, ok := m[name]
		if !ok {
			continue
		}
		spec, err := SpecFromValue(v)
		if err != nil {
			return Sizes{}, errDecorate(err, "sizesFromMap: axis "+name)
		}
		if _, err = NormalizeSpec(spec); err != nil {
			return Sizes{}, errDecorate(err, "sizesFromMap: axis "+name)
		}
		s[i] = spec
	}
	unknown := make([]string, 0)
	for k := range m {
		if k != "a" && k != "b" && k != "c" {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		log.Printf("supercell: unknown key %q in replication sizes, will be ignored", k)
	}
	return s, nil
}
