/*
Copyright © 2024 the WingWalker authors.
This file is part of WingWalker.

WingWalker is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

WingWalker is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with WingWalker.  If not, see <http://www.gnu.org/licenses/>.
*/

package section

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/golang/geo/r3"
	"github.com/spatialmodel/wingwalker/airfoil"
	"github.com/spatialmodel/wingwalker/plot"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-12

func near(a, b r3.Vector) bool {
	return scalar.EqualWithinAbsOrRel(a.X, b.X, tol, tol) &&
		scalar.EqualWithinAbsOrRel(a.Y, b.Y, tol, tol) &&
		scalar.EqualWithinAbsOrRel(a.Z, b.Z, tol, tol)
}

var square = airfoil.NewSpecs("", "SQUARE", []geom.Point{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
})

func TestBuildUntwisted(t *testing.T) {
	s := Build(2, 0, 5, false, square)
	want := []r3.Vector{
		{X: -1, Y: -1, Z: 5}, {X: 1, Y: -1, Z: 5}, {X: 1, Y: 1, Z: 5}, {X: -1, Y: 1, Z: 5},
	}
	if s.Len() != len(want) {
		t.Fatalf("len = %d", s.Len())
	}
	for i, w := range want {
		if !near(s.Point(i), w) {
			t.Errorf("point %d = %v, want %v", i, s.Point(i), w)
		}
	}
	if s.Chord() != 2 || s.Z() != 5 || s.Twist() != 0 || s.Designation() != "SQUARE" {
		t.Errorf("metadata = %v", s)
	}
}

func TestBuildRotatesBeforeCentering(t *testing.T) {
	// A quarter turn takes (x, y) to (-y, x) before the centroid (1, 1)
	// is subtracted.
	s := Build(2, math.Pi/2, 0, false, square)
	want := []r3.Vector{
		{X: -1, Y: -1}, {X: -1, Y: 1}, {X: -3, Y: 1}, {X: -3, Y: -1},
	}
	for i, w := range want {
		if !near(s.Point(i), w) {
			t.Errorf("point %d = %v, want %v", i, s.Point(i), w)
		}
	}
}

func TestBuildMirrored(t *testing.T) {
	s := Build(1, 0, 0, true, square)
	want := []r3.Vector{
		{X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: -0.5}, {X: -0.5, Y: -0.5},
	}
	for i, w := range want {
		if !near(s.Point(i), w) {
			t.Errorf("point %d = %v, want %v", i, s.Point(i), w)
		}
	}
}

func TestTransform(t *testing.T) {
	m := Transform(0, r3.Vector{X: 3, Y: 4, Z: 9})
	if got := Apply(m, r3.Vector{X: 1, Y: 1, Z: 2}); got != (r3.Vector{X: -2, Y: -3, Z: 2}) {
		t.Errorf("translate: got %v", got)
	}
	m = Transform(math.Pi, r3.Vector{})
	if got := Apply(m, r3.Vector{X: 1, Y: 2, Z: 3}); !near(got, r3.Vector{X: -1, Y: -2, Z: 3}) {
		t.Errorf("half turn: got %v", got)
	}
}

func TestSectionAccessors(t *testing.T) {
	s := Build(2, 0, 0, false, square)
	pts := s.Points()
	pts[0] = r3.Vector{X: 100}
	if s.Point(0) == pts[0] {
		t.Error("Points must return a copy")
	}
	want := plot.XYs{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	o := s.Outline()
	if o.Len() != len(want) {
		t.Fatalf("outline = %v", o)
	}
	for i := range want {
		x, y := o.XY(i)
		if !near(r3.Vector{X: x, Y: y}, r3.Vector{X: want[i].X, Y: want[i].Y}) {
			t.Errorf("outline %d = %g,%g", i, x, y)
		}
	}
	b := s.Bounds()
	if !near(r3.Vector{X: b.Min.X, Y: b.Min.Y}, r3.Vector{X: -1, Y: -1}) ||
		!near(r3.Vector{X: b.Max.X, Y: b.Max.Y}, r3.Vector{X: 1, Y: 1}) {
		t.Errorf("bounds = %v", b)
	}
	if th := s.Thickness(); !scalar.EqualWithinAbsOrRel(th, 2, tol, tol) {
		t.Errorf("thickness = %g", th)
	}
	if th := (Section{}).Thickness(); th != 0 {
		t.Errorf("empty thickness = %g", th)
	}
}
