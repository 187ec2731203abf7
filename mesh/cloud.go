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

package mesh

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/golang/geo/r3"
)

var (
	_ encoding.BinaryMarshaler   = Cloud{}
	_ encoding.BinaryUnmarshaler = &Cloud{}
)

// Cloud is a flat, ordered set of 3D points.
type Cloud []r3.Vector

// Len returns the number of points in the cloud.
func (c Cloud) Len() int { return len(c) }

// Bounds returns the smallest and largest coordinates in the cloud.
// Both are zero for an empty cloud.
func (c Cloud) Bounds() (min, max r3.Vector) {
	if len(c) == 0 {
		return
	}
	min = r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, p := range c {
		min = r3.Vector{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y), Z: math.Min(min.Z, p.Z)}
		max = r3.Vector{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y), Z: math.Max(max.Z, p.Z)}
	}
	return min, max
}

// Centroid returns the mean of the points in the cloud.
func (c Cloud) Centroid() r3.Vector {
	var sum r3.Vector
	if len(c) == 0 {
		return sum
	}
	for _, p := range c {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(c)))
}

// MarshalBinary serializes the cloud as little-endian x, y, z triples.
func (c Cloud) MarshalBinary() ([]byte, error) {
	b := bytes.NewBuffer(nil)
	if err := binary.Write(b, binary.LittleEndian, []r3.Vector(c)); err != nil {
		return nil, fmt.Errorf("mesh: marshalling point cloud: %w", err)
	}
	return b.Bytes(), nil
}

// UnmarshalBinary replaces the cloud with the points in b.
func (c *Cloud) UnmarshalBinary(b []byte) error {
	r := bytes.NewReader(b)
	var out Cloud
	for {
		var v r3.Vector
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("mesh: unmarshalling point cloud: %w", err)
		}
		out = append(out, v)
	}
	*c = out
	return nil
}
