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

package airfoil

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ctessum/geom"
	"github.com/golang/geo/r3"
	"github.com/spatialmodel/wingwalker/model"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-12

func near(a, b float64) bool { return scalar.EqualWithinAbsOrRel(a, b, tol, tol) }

func countCoordLines(t *testing.T, path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, line := range splitLines(data) {
		if coordPattern.MatchString(line) {
			n++
		}
	}
	return n
}

func TestParseSelig(t *testing.T) {
	path := filepath.Join("testdata", "selig_n0012.dat")
	s, err := Load(path, model.Selig)
	if err != nil {
		t.Fatal(err)
	}
	if s.Designation() != "NACA 0012 AIRFOILS" {
		t.Errorf("designation = %q", s.Designation())
	}
	if want := countCoordLines(t, path); s.Len() != want {
		t.Errorf("trace length = %d, want %d", s.Len(), want)
	}
	unit := s.Unit()
	if unit[0] != (geom.Point{X: 1, Y: 0.00126}) {
		t.Errorf("first point = %v", unit[0])
	}
	if unit[5] != (geom.Point{X: 0, Y: 0}) {
		t.Errorf("leading edge = %v", unit[5])
	}
	if s.Source() != path {
		t.Errorf("source = %q", s.Source())
	}
}

func TestParseLednicer(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "lednicer_n0012.dat"), model.Lednicer)
	if err != nil {
		t.Fatal(err)
	}
	if s.Designation() != "NACA 0012 AIRFOILS" {
		t.Errorf("designation = %q", s.Designation())
	}
	if s.Len() != 12 {
		t.Fatalf("trace length = %d, want 6 + 6", s.Len())
	}
	unit := s.Unit()
	want := []geom.Point{
		{X: 0, Y: 0}, {X: 0.1, Y: 0.04683}, {X: 0.25, Y: 0.05941},
		{X: 0.5, Y: 0.05294}, {X: 0.75, Y: 0.03664}, {X: 1, Y: 0.00126},
		{X: 1, Y: -0.00126}, {X: 0.75, Y: -0.03664}, {X: 0.5, Y: -0.05294},
		{X: 0.25, Y: -0.05941}, {X: 0.1, Y: -0.04683}, {X: 0, Y: 0},
	}
	if !reflect.DeepEqual(unit, want) {
		t.Errorf("trace:\n got %v\nwant %v", unit, want)
	}
}

func TestParseChordScale(t *testing.T) {
	data := "SCALED\n  1.0  0.5\n  0.0  0.0\n  1.0 -0.5\n"
	_, trace, err := Parse(strings.NewReader(data), model.Selig, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{{X: 10, Y: 5}, {X: 0, Y: 0}, {X: 10, Y: -5}}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("got %v, want %v", trace, want)
	}
}

func TestParseSeligDesignation(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{name: "none", data: "  1.0 0.0\n  0.0 0.0\n", want: DefaultDesignation},
		{name: "last wins", data: "FIRST\n  1.0 0.0\nSECOND\n  0.0 0.0\n", want: "SECOND"},
		{name: "trimmed", data: "  CLARK Y  \r\n  1.0 0.0\r\n", want: "CLARK Y"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, _, err := ParseSelig([]byte(test.data), 1)
			if err != nil {
				t.Fatal(err)
			}
			if d != test.want {
				t.Errorf("got %q, want %q", d, test.want)
			}
		})
	}
}

func TestCoordPattern(t *testing.T) {
	tests := []struct {
		line string
		ok   bool
		p    geom.Point
	}{
		{line: "  1.00000  0.00126", ok: true, p: geom.Point{X: 1, Y: 0.00126}},
		{line: "0.5\t-0.25", ok: true, p: geom.Point{X: 0.5, Y: -0.25}},
		{line: " +.5 1e-3", ok: true, p: geom.Point{X: 0.5, Y: 0.001}},
		{line: "       61.       61.", ok: true, p: geom.Point{X: 61, Y: 61}},
		{line: "NACA 0012", ok: false},
		{line: "1.0", ok: false},
		{line: "", ok: false},
	}
	for _, test := range tests {
		p, ok := parseCoord(test.line)
		if ok != test.ok {
			t.Errorf("%q: ok = %v, want %v", test.line, ok, test.ok)
			continue
		}
		if ok && p != test.p {
			t.Errorf("%q: got %v, want %v", test.line, p, test.p)
		}
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "lednicer_short.dat"), model.Lednicer)
	var me *model.MalformedInputError
	if !errors.As(err, &me) {
		t.Fatalf("got %v, want *MalformedInputError", err)
	}
	if me.Expected != 6 || me.Found != 2 {
		t.Errorf("expected/found = %d/%d, want 6/2", me.Expected, me.Found)
	}
	if me.Path != filepath.Join("testdata", "lednicer_short.dat") {
		t.Errorf("path = %q", me.Path)
	}

	_, _, err = ParseLednicer([]byte("BAD HEADER\nsix six\n"), 1)
	if !errors.As(err, &me) || me.Line != 2 {
		t.Errorf("bad header: got %v", err)
	}

	for _, header := range []string{"1e19 3", "1e300 1e300", "2000000000 5"} {
		data := "X\n" + header + "\n\n 0.0 0.0\n 1.0 0.1\n\n 0.0 0.0\n"
		_, _, err = ParseLednicer([]byte(data), 1)
		if !errors.As(err, &me) || me.Line != 2 {
			t.Errorf("header %q: got %v, want *MalformedInputError at line 2", header, err)
		}
	}

	_, _, err = ParseLednicer([]byte("ONLY A NAME"), 1)
	if !errors.As(err, &me) {
		t.Errorf("missing header: got %v", err)
	}

	_, _, err = ParseLednicer([]byte("X\n 2. 1.\n\n 0.0 0.0\n leading edge\n"), 1)
	if !errors.As(err, &me) || me.Line != 5 {
		t.Errorf("non-coordinate surface line: got %v", err)
	}

	var fe *model.FormatError
	if _, err := ParserFor(model.SpecFormatUndefined); !errors.As(err, &fe) {
		t.Errorf("undefined format: got %v, want *FormatError", err)
	}
	if _, err := Load(filepath.Join("testdata", "selig_n0012.dat"), model.SpecFormatUndefined); !errors.As(err, &fe) {
		t.Errorf("load undefined format: got %v, want *FormatError", err)
	}
	if _, err := Load(filepath.Join("testdata", "missing.dat"), model.Selig); err == nil {
		t.Error("missing file should fail")
	}
}

func TestTraceIdentity(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "selig_n0012.dat"), model.Selig)
	if err != nil {
		t.Fatal(err)
	}
	unit := s.Unit()
	i := 0
	for p := range s.Trace(1, 0, false) {
		if p != (r3.Vector{X: unit[i].X, Y: unit[i].Y}) {
			t.Errorf("point %d: got %v, want %v", i, p, unit[i])
		}
		i++
	}
	if i != len(unit) {
		t.Errorf("traced %d points, want %d", i, len(unit))
	}
}

func TestTraceScaleMirror(t *testing.T) {
	s := NewSpecs("", "test", []geom.Point{{X: 1, Y: 0.5}, {X: 0, Y: 0}, {X: 1, Y: -0.25}})
	var got []r3.Vector
	for p := range s.Trace(4, 7, true) {
		got = append(got, p)
	}
	want := []r3.Vector{{X: 4, Y: -2, Z: 7}, {X: 0, Y: 0, Z: 7}, {X: 4, Y: 1, Z: 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Restartable: a second pass yields the same points.
	var again []r3.Vector
	for p := range s.Trace(4, 7, true) {
		again = append(again, p)
	}
	if !reflect.DeepEqual(again, want) {
		t.Errorf("second pass: got %v", again)
	}

	// Stopping early is allowed.
	n := 0
	for range s.Trace(1, 0, false) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("early stop visited %d points", n)
	}
}

func TestCentroid(t *testing.T) {
	ccw := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	cw := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	line := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

	tests := []struct {
		name   string
		trace  []geom.Point
		chord  float64
		z      float64
		mirror bool
		want   r3.Vector
	}{
		{name: "unit ccw", trace: ccw, chord: 1, want: r3.Vector{X: 0.5, Y: 0.5}},
		{name: "unit cw", trace: cw, chord: 1, want: r3.Vector{X: 0.5, Y: 0.5}},
		{name: "scaled", trace: ccw, chord: 2, z: 3, want: r3.Vector{X: 1, Y: 1, Z: 3}},
		{name: "mirrored", trace: ccw, chord: 1, mirror: true, want: r3.Vector{X: 0.5, Y: -0.5}},
		{name: "degenerate", trace: line, chord: 1, z: 1, want: r3.Vector{X: 1, Y: 0, Z: 1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := NewSpecs("", test.name, test.trace)
			c := s.Centroid(test.chord, test.z, test.mirror)
			if !near(c.X, test.want.X) || !near(c.Y, test.want.Y) || c.Z != test.want.Z {
				t.Errorf("got %v, want %v", c, test.want)
			}
		})
	}
}

func TestCentroidSymmetricAirfoil(t *testing.T) {
	for _, f := range []struct {
		file   string
		format model.SpecFormat
	}{
		{"selig_n0012.dat", model.Selig},
		{"lednicer_n0012.dat", model.Lednicer},
	} {
		s, err := Load(filepath.Join("testdata", f.file), f.format)
		if err != nil {
			t.Fatal(err)
		}
		c := s.Centroid(10, 0, false)
		if !near(c.Y, 0) {
			t.Errorf("%s: symmetric section centroid y = %g", f.file, c.Y)
		}
		if c.X <= 0 || c.X >= 10 {
			t.Errorf("%s: centroid x = %g outside chord", f.file, c.X)
		}
	}
}

func TestPolygonClosed(t *testing.T) {
	s := NewSpecs("", "open", []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
	ring := s.Polygon(2, false)[0]
	if len(ring) != 4 || ring[0] != ring[3] {
		t.Errorf("ring not closed: %v", ring)
	}
	if l := s.Line(2, false); len(l) != 3 || l[2] != (geom.Point{X: 2, Y: 2}) {
		t.Errorf("line = %v", l)
	}
}
