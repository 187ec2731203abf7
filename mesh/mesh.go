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

/*Package mesh defines the hand-off between generated wing geometry and
surface reconstruction engines.*/
package mesh

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
)

// Sectioned describes geometry made of ordered cross-sections, for
// engines that stitch surfaces section by section.
type Sectioned interface {
	// Len returns the number of cross-sections, ordered root to tip.
	Len() int

	// Ring returns the points of cross-section i (where i < Len()).
	Ring(i int) []r3.Vector
}

// Flatten returns every point of s, section by section, as one cloud.
func Flatten(s Sectioned) Cloud {
	var c Cloud
	for i := 0; i < s.Len(); i++ {
		c = append(c, s.Ring(i)...)
	}
	return c
}

// Surface is a reconstructed surface returned by a meshing engine.
type Surface interface {
	// Vertices returns the number of vertices in the surface.
	Vertices() int

	// Faces returns the number of faces in the surface.
	Faces() int
}

// Reconstructor is implemented by external meshing engines.
type Reconstructor interface {
	// Reconstruct builds a surface through the points of s.
	Reconstruct(ctx context.Context, s Sectioned) (Surface, error)
}

// Error reports a failure inside a meshing engine. It is kept separate
// from generation errors so that callers can tell bad geometry from a
// bad request.
type Error struct {
	Engine string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("mesh: %s: %v", e.Engine, e.Err)
}

// Unwrap returns the engine's error.
func (e *Error) Unwrap() error { return e.Err }

// Reconstruct runs engine r on s, wrapping any failure in *Error.
func Reconstruct(ctx context.Context, r Reconstructor, s Sectioned) (Surface, error) {
	if s.Len() == 0 {
		return nil, &Error{Engine: fmt.Sprintf("%T", r), Err: errors.New("no sections to reconstruct")}
	}
	surf, err := r.Reconstruct(ctx, s)
	if err != nil {
		return nil, &Error{Engine: fmt.Sprintf("%T", r), Err: err}
	}
	return surf, nil
}
