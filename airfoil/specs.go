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
	"fmt"
	"iter"
	"os"

	"github.com/ctessum/geom"
	"github.com/golang/geo/r3"
	"github.com/spatialmodel/wingwalker/model"
)

// Specs holds a parsed airfoil: its designation and the unit-chord trace
// of its outline. Specs is immutable and safe for concurrent use.
type Specs struct {
	source      string
	designation string
	trace       []geom.Point
}

// NewSpecs returns Specs for the given unit-chord trace. The trace is
// copied.
func NewSpecs(source, designation string, trace []geom.Point) *Specs {
	t := make([]geom.Point, len(trace))
	copy(t, trace)
	return &Specs{source: source, designation: designation, trace: t}
}

// Load reads the coordinate file at path in format f.
func Load(path string, f model.SpecFormat) (*Specs, error) {
	p, err := ParserFor(f)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("airfoil: reading %s: %w", path, err)
	}
	designation, trace, err := p(data, 1)
	if err != nil {
		var me *model.MalformedInputError
		if errors.As(err, &me) {
			me.Path = path
		}
		return nil, err
	}
	return &Specs{source: path, designation: designation, trace: trace}, nil
}

// Designation returns the name of the airfoil.
func (s *Specs) Designation() string { return s.designation }

// Source returns where the specs were read from.
func (s *Specs) Source() string { return s.source }

// Len returns the number of points in the trace.
func (s *Specs) Len() int { return len(s.trace) }

// Unit returns a copy of the unit-chord trace.
func (s *Specs) Unit() []geom.Point {
	t := make([]geom.Point, len(s.trace))
	copy(t, s.trace)
	return t
}

// Trace yields the trace scaled to chord, at height z. When mirror is true
// the trace is reflected about the chord line. The sequence can be
// iterated any number of times.
func (s *Specs) Trace(chord, z float64, mirror bool) iter.Seq[r3.Vector] {
	m := 1.0
	if mirror {
		m = -1
	}
	return func(yield func(r3.Vector) bool) {
		for _, p := range s.trace {
			if !yield(r3.Vector{X: p.X * chord, Y: p.Y * chord * m, Z: z}) {
				return
			}
		}
	}
}

// Line returns the open outline of the trace scaled to chord.
func (s *Specs) Line(chord float64, mirror bool) geom.LineString {
	l := make(geom.LineString, 0, len(s.trace))
	for p := range s.Trace(chord, 0, mirror) {
		l = append(l, geom.Point{X: p.X, Y: p.Y})
	}
	return l
}

// Polygon returns the closed outline of the trace scaled to chord.
func (s *Specs) Polygon(chord float64, mirror bool) geom.Polygon {
	ring := geom.Path(s.Line(chord, mirror))
	if n := len(ring); n > 0 && ring[0] != ring[n-1] {
		ring = append(ring, ring[0])
	}
	return geom.Polygon{ring}
}

// Centroid returns the centroid of the outline scaled to chord, reported
// at height z. An outline that encloses no area falls back to the mean of
// its points.
func (s *Specs) Centroid(chord, z float64, mirror bool) r3.Vector {
	ring := s.Polygon(chord, mirror)[0]
	if len(ring) == 0 {
		return r3.Vector{Z: z}
	}
	a := signedArea(ring)
	if a == 0 {
		c := meanPoint(geom.Path(s.Line(chord, mirror)))
		return r3.Vector{X: c.X, Y: c.Y, Z: z}
	}
	c := geom.Polygon{ring}.Centroid()
	return r3.Vector{X: c.X, Y: c.Y, Z: z}
}

func (s *Specs) String() string {
	return fmt.Sprintf("Airfoil '%s', src=%s, # points=%d", s.designation, s.source, len(s.trace))
}

// signedArea is positive for counter-clockwise closed rings.
func signedArea(ring geom.Path) float64 {
	var a float64
	for i := 0; i < len(ring)-1; i++ {
		a += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	return a / 2
}

func meanPoint(pts geom.Path) geom.Point {
	if len(pts) == 0 {
		return geom.Point{}
	}
	var c geom.Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return geom.Point{X: c.X / n, Y: c.Y / n}
}
