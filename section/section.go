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

/*Package section builds the twisted, centred 3D cross-sections of a wing.*/
package section

import (
	"fmt"
	"iter"
	"math"

	"github.com/ctessum/geom"
	"github.com/golang/geo/r3"
	"github.com/spatialmodel/wingwalker/plot"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Profile is an airfoil outline that can be scaled, mirrored and placed at
// a spanwise height. *airfoil.Specs satisfies it.
type Profile interface {
	Designation() string
	Trace(chord, z float64, mirror bool) iter.Seq[r3.Vector]
	Centroid(chord, z float64, mirror bool) r3.Vector
}

// Section is one cross-section of a wing. It is immutable once built.
type Section struct {
	points      []r3.Vector
	chord       float64
	z           float64
	twist       float64
	designation string
}

// Points returns a copy of the section's points in trace order.
func (s Section) Points() []r3.Vector {
	p := make([]r3.Vector, len(s.points))
	copy(p, s.points)
	return p
}

// Len returns the number of points in the section.
func (s Section) Len() int { return len(s.points) }

// Point returns point i, where i < Len().
func (s Section) Point(i int) r3.Vector { return s.points[i] }

// Chord returns the chord length the section was built with.
func (s Section) Chord() float64 { return s.chord }

// Z returns the spanwise position of the section.
func (s Section) Z() float64 { return s.z }

// Twist returns the rotation of the section in radians.
func (s Section) Twist() float64 { return s.twist }

// Designation returns the name of the airfoil the section was built from.
func (s Section) Designation() string { return s.designation }

// Outline returns the x,y outline of the section for plotting.
func (s Section) Outline() plot.XYs {
	o := make(plot.XYs, len(s.points))
	for i, p := range s.points {
		o[i] = plot.XY{X: p.X, Y: p.Y}
	}
	return o
}

// Bounds returns the x,y bounding box of the section.
func (s Section) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, p := range s.points {
		b.Extend(geom.Point{X: p.X, Y: p.Y}.Bounds())
	}
	return b
}

// Thickness returns the largest minus the smallest y value of the
// section. For an untwisted section this is the airfoil's maximum
// thickness at its chord.
func (s Section) Thickness() float64 {
	if len(s.points) == 0 {
		return 0
	}
	y := make([]float64, len(s.points))
	for i, p := range s.points {
		y[i] = p.Y
	}
	return floats.Max(y) - floats.Min(y)
}

func (s Section) String() string {
	return fmt.Sprintf("Section '%s' chord=%g z=%g twist=%g # points=%d",
		s.designation, s.chord, s.z, s.twist, len(s.points))
}

// Transform returns the 4×4 homogeneous matrix that rotates a point by
// twist radians about the z axis and then translates it by
// (-centroid.X, -centroid.Y, 0).
func Transform(twist float64, centroid r3.Vector) *mat.Dense {
	sin, cos := math.Sincos(twist)
	rot := mat.NewDense(4, 4, []float64{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	shift := mat.NewDense(4, 4, []float64{
		1, 0, 0, -centroid.X,
		0, 1, 0, -centroid.Y,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	var m mat.Dense
	m.Mul(shift, rot)
	return &m
}

// Apply maps p through the homogeneous transform m.
func Apply(m mat.Matrix, p r3.Vector) r3.Vector {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1}))
	return r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// Build returns the section of profile at the given chord, twist and
// spanwise position. The centroid is taken after scaling and mirroring so
// that sections stay aligned along the span as the chord changes.
func Build(chord, twist, z float64, mirror bool, profile Profile) Section {
	m := Transform(twist, profile.Centroid(chord, z, mirror))
	var pts []r3.Vector
	for p := range profile.Trace(chord, z, mirror) {
		pts = append(pts, Apply(m, p))
	}
	return Section{
		points:      pts,
		chord:       chord,
		z:           z,
		twist:       twist,
		designation: profile.Designation(),
	}
}
