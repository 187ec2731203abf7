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

/*Package planform provides the chord, twist and span-position laws of the
supported wing outlines as functions of a discrete step index t, where
t = 0 is the wing root and t = iterations-1 is the tip.*/
package planform

import (
	"fmt"
	"iter"
	"math"

	"github.com/spatialmodel/wingwalker/model"
)

// Func is a planform law evaluated at step t.
type Func func(t int) float64

// Functor supplies the four laws that describe a planform.
type Functor interface {
	// ChordFunc returns chord(t), the section chord length.
	ChordFunc() Func
	// TwistFunc returns twist(t), the section rotation in radians.
	TwistFunc() Func
	// ZFunc returns z(t), the spanwise position of the section.
	ZFunc() Func
	// AreaFunc returns the area of the planform.
	AreaFunc() func() float64
}

var (
	_ Functor = Rectangular{}
	_ Functor = Elliptical{}
	_ Functor = Geometric{}
)

// New returns the Functor for req.Planform.
func New(req model.WingRequest) (Functor, error) {
	if req.Iterations < 2 {
		return nil, &model.InvalidRequestError{Field: "iterations",
			Reason: fmt.Sprintf("need at least 2 sections, got %d", req.Iterations)}
	}
	p := params{
		baseChord:  req.BaseChord,
		endChord:   req.EndChord,
		span:       req.Span,
		twist:      req.Twist,
		iterations: req.Iterations,
		mirrored:   req.Mirrored(),
	}
	switch req.Planform {
	case model.Rectangular:
		return Rectangular{p}, nil
	case model.Ellipse:
		return newElliptical(p), nil
	case model.Geometric:
		return Geometric{p}, nil
	default:
		return nil, &model.UnsupportedPlanformError{Planform: req.Planform}
	}
}

// Steps yields the step indices 0 through iterations-1 in order.
func Steps(iterations int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for t := 0; t < iterations; t++ {
			if !yield(t) {
				return
			}
		}
	}
}

// params holds the request values shared by every planform.
type params struct {
	baseChord, endChord float64
	span, twist         float64
	iterations          int
	mirrored            bool
}

func (p params) intervals() float64 { return float64(p.iterations - 1) }

// TwistFunc returns linear washout from 0 at the root to the requested
// twist at the tip. Mirrored structures twist the other way so that the
// visible twist matches the unmirrored side.
func (p params) TwistFunc() Func {
	dir := 1.0
	if p.mirrored {
		dir = -1
	}
	step := dir * p.twist / p.intervals()
	return func(t int) float64 { return float64(t) * step }
}

// linearZ spaces sections evenly along the span.
func (p params) linearZ() Func {
	step := p.span / p.intervals()
	return func(t int) float64 { return float64(t) * step }
}

// Rectangular is a constant-chord planform.
type Rectangular struct{ params }

// ChordFunc returns the base chord at every step.
func (r Rectangular) ChordFunc() Func {
	c := r.baseChord
	return func(int) float64 { return c }
}

// ZFunc spaces sections evenly along the span.
func (r Rectangular) ZFunc() Func { return r.linearZ() }

// AreaFunc returns base chord times span.
func (r Rectangular) AreaFunc() func() float64 {
	a := r.baseChord * r.span
	return func() float64 { return a }
}

// Elliptical traces a quarter ellipse: full chord at the root and zero
// chord at the tip, with z following the same angular parameter so that
// chord against z outlines a true ellipse.
type Elliptical struct {
	params
	a, b   float64 // semi-axes: half the base chord, and the span
	dAlpha float64 // angle swept per step
}

func newElliptical(p params) Elliptical {
	return Elliptical{
		params: p,
		a:      p.baseChord / 2,
		b:      p.span,
		dAlpha: math.Pi / (2 * p.intervals()),
	}
}

// ChordFunc returns 2a·cos(t·Δα).
func (e Elliptical) ChordFunc() Func {
	return func(t int) float64 { return 2 * e.a * math.Cos(float64(t)*e.dAlpha) }
}

// ZFunc returns b·sin(t·Δα).
func (e Elliptical) ZFunc() Func {
	return func(t int) float64 { return e.b * math.Sin(float64(t)*e.dAlpha) }
}

// AreaFunc returns π·a·b.
func (e Elliptical) AreaFunc() func() float64 {
	a := math.Pi * e.a * e.b
	return func() float64 { return a }
}

// Geometric tapers linearly from the base chord to the end chord, giving
// rectangular, trapezoidal or triangular outlines.
type Geometric struct{ params }

// ChordFunc returns base_chord - t·(base_chord-end_chord)/(iterations-1).
func (g Geometric) ChordFunc() Func {
	step := (g.baseChord - g.endChord) / g.intervals()
	base := g.baseChord
	return func(t int) float64 { return base - float64(t)*step }
}

// ZFunc spaces sections evenly along the span.
func (g Geometric) ZFunc() Func { return g.linearZ() }

// AreaFunc returns the trapezoid area (base_chord+end_chord)·span/2.
func (g Geometric) AreaFunc() func() float64 {
	a := (g.baseChord + g.endChord) * g.span / 2
	return func() float64 { return a }
}
