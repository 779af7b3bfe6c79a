package supercell

import (
	"errors"
	"fmt"
	"testing"

	v3 "github.com/rmera/supercell/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestPropTile(Te *testing.T) {
	p, err := NewProp[int32](2, []int{2}, []int32{1, 2, 3, 4})
	if err != nil {
		Te.Fatal(err)
	}
	t := p.Tile(3).(*Prop[int32])
	if t.Len() != 6 || t.Stride() != 2 {
		Te.Errorf("Tile gave %d atoms with stride %d", t.Len(), t.Stride())
	}
	if fmt.Sprint(t.Data()) != "[1 2 3 4 1 2 3 4 1 2 3 4]" {
		Te.Errorf("Tile gave %v", t.Data())
	}
	t.At(0)[0] = 100
	if p.At(0)[0] != 1 {
		Te.Errorf("Tile shares data with its receiver")
	}
	if _, err = NewProp[float64](2, []int{3}, make([]float64, 5)); !errors.Is(err, ErrPropertyMismatch) {
		Te.Errorf("NewProp accepted data of the wrong length: %v", err)
	}
	if _, err = NewProp[float64](2, []int{3, 0}, nil); !errors.Is(err, ErrPropertyMismatch) {
		Te.Errorf("NewProp accepted a zero dimension: %v", err)
	}
	m, err := NewProp[string](3, []int{2, 2}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(m.Data()) != 12 || len(m.At(2)) != 4 {
		Te.Errorf("Wrong allocation for a tensor property")
	}
}

func TestAtoms(Te *testing.T) {
	if _, err := NewAtoms(0); err == nil {
		Te.Errorf("NewAtoms accepted zero atoms")
	}
	A, err := NewAtoms(3)
	if err != nil {
		Te.Fatal(err)
	}
	q, _ := NewProp[float64](3, nil, []float64{-1, 0.5, 0.5})
	id, _ := NewProp[int](3, nil, []int{7, 8, 9})
	short, _ := NewProp[int](2, nil, nil)
	if err = A.SetProp("q", q); err != nil {
		Te.Error(err)
	}
	if err = A.SetProp("id", id); err != nil {
		Te.Error(err)
	}
	if err = A.SetProp("q", q.Copy()); err != nil {
		Te.Error(err)
	}
	if fmt.Sprint(A.Keys()) != "[pos q id]" {
		Te.Errorf("Wrong key order %v", A.Keys())
	}
	if err = A.SetProp("short", short); !errors.Is(err, ErrPropertyMismatch) {
		Te.Errorf("SetProp accepted a property of the wrong length: %v", err)
	}
	if err = A.SetProp(PosKey, id); !errors.Is(err, ErrPropertyMismatch) {
		Te.Errorf("SetProp accepted integer positions: %v", err)
	}
	if _, err = A.Prop("nope"); !errors.Is(err, ErrMissingProperty) {
		Te.Errorf("Expected a missing property, got %v", err)
	}
	pos, _ := v3.NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err = A.SetPos(pos); err != nil {
		Te.Fatal(err)
	}
	B := A.Copy()
	B.Pos().Set(0, 0, -50)
	if A.Pos().At(0, 0) != 1 {
		Te.Errorf("Copy shares positions with the original")
	}
	if err = A.SetPos(v3.Zeros(2)); err == nil {
		Te.Errorf("SetPos accepted the wrong number of positions")
	}
}

func TestBoxScale(Te *testing.T) {
	vects, _ := v3.NewMatrix([]float64{2, 0, 0, 1, 3, 0, 0, 1, 4})
	origin, _ := v3.NewMatrix([]float64{-1, 1, 2})
	B, err := NewBox(vects, origin)
	if err != nil {
		Te.Fatal(err)
	}
	vects.Set(0, 0, 100)
	if B.Vect(0).At(0, 0) != 2 {
		Te.Errorf("NewBox didn't copy its vectors")
	}
	frac, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0, 0.5, 0.5, 0.5})
	abs := B.Unscale(frac)
	if !floats.EqualApprox(abs.RawRow(1), []float64{1, 1, 2}, tol) {
		Te.Errorf("Wrong absolute coordinates %v", abs)
	}
	back, err := B.Scale(abs)
	if err != nil {
		Te.Fatal(err)
	}
	if !mat.EqualApprox(back, frac, tol) {
		Te.Errorf("Scale doesn't revert Unscale: %v", back)
	}
	flat, _ := v3.NewMatrix([]float64{1, 0, 0, 0, 1, 0, 1, 1, 0})
	F, err := NewBox(flat, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err = F.Scale(abs); !errors.Is(err, ErrSingularBox) {
		Te.Errorf("Expected a singular box error, got %v", err)
	}
	if _, err = NewBox(v3.Zeros(2), nil); err == nil {
		Te.Errorf("NewBox accepted 2 vectors")
	}
}

func TestSystemImmutable(Te *testing.T) {
	S := seedSystem(Te)
	A := S.Atoms()
	A.Pos().Set(0, 0, 1000)
	p, _ := S.Prop("atype")
	p.(*Prop[int]).At(0)[0] = 42
	pos, _ := S.Positions(false)
	if pos.At(0, 0) == 1000 {
		Te.Errorf("System positions changed through Atoms()")
	}
	p, _ = S.Prop("atype")
	if p.(*Prop[int]).At(0)[0] == 42 {
		Te.Errorf("System property changed through Prop()")
	}
	frac, err := S.Positions(true)
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.EqualApprox(frac.RawRow(1), []float64{0.6, 0.7, 0.8}, tol) {
		Te.Errorf("Fractional positions don't survive the round trip: %v", frac)
	}
}
