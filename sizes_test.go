package supercell

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSizes(Te *testing.T) {
	doc := `
a = 3
b = [-1, 1]
# c is missing, so it defaults to 1
comment = "ignored"
`
	s, err := ReadSizes(strings.NewReader(doc))
	if err != nil {
		Te.Fatal(err)
	}
	exp := Sizes{Single(3), Range{-1, 1}, Single(1)}
	if s != exp {
		Te.Errorf("expected %v, got %v", exp, s)
	}
	S := seedSystem(Te)
	N, err := s.Supersize(S)
	if err != nil {
		Te.Fatal(err)
	}
	if N.NAtoms() != 6*S.NAtoms() {
		Te.Errorf("expected %d atoms, got %d", 6*S.NAtoms(), N.NAtoms())
	}
}

func TestReadSizesErrors(Te *testing.T) {
	cases := []struct {
		doc string
		err error
	}{
		{`a = "a"`, ErrInvalidReplicationSpec},
		{`b = [-1, 0, 1]`, ErrInvalidReplicationSpec},
		{`c = [1, -1]`, ErrInvalidReplicationSpec},
		{`a = 1.5`, ErrInvalidReplicationSpec},
		{`a = 0`, ErrZeroMultiplier},
		{`b = [0, 0]`, ErrZeroMultiplier},
	}
	for _, c := range cases {
		_, err := ReadSizes(strings.NewReader(c.doc))
		if !errors.Is(err, c.err) {
			Te.Errorf("%q: expected %v, got %v", c.doc, c.err, err)
		}
	}
	if _, err := ReadSizes(strings.NewReader("a = [")); err == nil {
		Te.Errorf("Malformed TOML was accepted")
	}
}

func TestReadSizesFile(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "sizes.toml")
	if err := os.WriteFile(path, []byte("a = -2\nc = [-1, 2]\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	s, err := ReadSizesFile(path)
	if err != nil {
		Te.Fatal(err)
	}
	exp := Sizes{Single(-2), Single(1), Range{-1, 2}}
	if s != exp {
		Te.Errorf("expected %v, got %v", exp, s)
	}
	if _, err = ReadSizesFile(filepath.Join(Te.TempDir(), "nope.toml")); err == nil {
		Te.Errorf("Reading a missing file didn't fail")
	}
}

func TestSizesJSON(Te *testing.T) {
	var s Sizes
	if err := json.Unmarshal([]byte(`{"a": 2, "c": [-1, 1]}`), &s); err != nil {
		Te.Fatal(err)
	}
	exp := Sizes{Single(2), Single(1), Range{-1, 1}}
	if s != exp {
		Te.Errorf("expected %v, got %v", exp, s)
	}
	for _, doc := range []string{`{"a": "a"}`, `{"b": [1, 2, 3]}`, `{"a": 1.5}`, `{"c": [1, -1]}`} {
		var s2 Sizes
		if err := json.Unmarshal([]byte(doc), &s2); !errors.Is(err, ErrInvalidReplicationSpec) {
			Te.Errorf("%s: expected %v, got %v", doc, ErrInvalidReplicationSpec, err)
		}
	}
}
