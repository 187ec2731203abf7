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

package wing

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/spatialmodel/wingwalker/airfoil"
	"github.com/spatialmodel/wingwalker/mesh"
	"github.com/spatialmodel/wingwalker/model"
	"github.com/spatialmodel/wingwalker/plot"
	"github.com/spatialmodel/wingwalker/section"
)

var _ mesh.Sectioned = (*Model)(nil)

// Model is a generated wing: the request and airfoil it was built from and
// its cross-sections ordered from root to tip. A Model is immutable.
type Model struct {
	request  model.WingRequest
	specs    *airfoil.Specs
	sections []section.Section
	area     float64
}

// Request returns the request the wing was built from.
func (m *Model) Request() model.WingRequest { return m.request }

// Specs returns the airfoil the wing was built from.
func (m *Model) Specs() *airfoil.Specs { return m.specs }

// Sections returns a copy of the cross-sections, root first.
func (m *Model) Sections() []section.Section {
	s := make([]section.Section, len(m.sections))
	copy(s, m.sections)
	return s
}

// Section returns cross-section i, where i < Len().
func (m *Model) Section(i int) section.Section { return m.sections[i] }

// Len returns the number of cross-sections.
func (m *Model) Len() int { return len(m.sections) }

// Ring returns the points of cross-section i.
func (m *Model) Ring(i int) []r3.Vector { return m.sections[i].Points() }

// Area returns the planform area of one side of the wing.
func (m *Model) Area() float64 { return m.area }

// MAC returns the mean aerodynamic chord, area/span, or 0 for a wing
// with no span.
func (m *Model) MAC() float64 {
	if m.request.Span == 0 {
		return 0
	}
	return m.area / m.request.Span
}

// AspectRatio returns 2·span²/area, treating the model as one half of a
// wing pair, or 0 for a wing with no area.
func (m *Model) AspectRatio() float64 {
	if m.area == 0 {
		return 0
	}
	return 2 * m.request.Span * m.request.Span / m.area
}

// Identifier returns a filesystem-safe name for the model.
func (m *Model) Identifier() string {
	return fmt.Sprintf("wing_model_%s_%d", m.request.Identifier(), len(m.sections))
}

// PointCloud returns every point of the wing, root section first.
func (m *Model) PointCloud() mesh.Cloud { return mesh.Flatten(m) }

// PlanformOutline returns the leading and trailing edges of the wing seen
// from above, as chordwise extent against span position. The outline runs
// out along the leading edge and back along the trailing edge.
func (m *Model) PlanformOutline() plot.XYs {
	o := make(plot.XYs, 0, 2*len(m.sections))
	for _, s := range m.sections {
		b := s.Bounds()
		o = append(o, plot.XY{X: s.Z(), Y: b.Min.X})
	}
	for i := len(m.sections) - 1; i >= 0; i-- {
		s := m.sections[i]
		b := s.Bounds()
		o = append(o, plot.XY{X: s.Z(), Y: b.Max.X})
	}
	return o
}

// Series returns the wing's point cloud labelled for a renderer.
func (m *Model) Series() plot.Series {
	c := m.PointCloud()
	pts := make(plot.XYZs, len(c))
	for i, p := range c {
		pts[i] = plot.XYZ{X: p.X, Y: p.Y, Z: p.Z}
	}
	return plot.Series{
		Title: m.Identifier(),
		Labels: map[string]string{
			"airfoil":   m.specs.Designation(),
			"planform":  m.request.Planform.String(),
			"wing_type": m.request.WingType.String(),
		},
		Points: pts,
	}
}

func (m *Model) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Wing model %s\n", m.Identifier())
	fmt.Fprintf(&b, "  %s\n", m.specs)
	fmt.Fprintf(&b, "  sections: %d\n", len(m.sections))
	fmt.Fprintf(&b, "  area: %g\n", m.area)
	fmt.Fprintf(&b, "  mean aerodynamic chord: %g\n", m.MAC())
	fmt.Fprintf(&b, "  aspect ratio: %g", m.AspectRatio())
	return b.String()
}
