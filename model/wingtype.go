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

package model

import (
	"strings"
)

// Structure is the kind of lifting surface being generated.
type Structure int

const (
	// StructureUnspecified means no structure was given.
	StructureUnspecified Structure = iota
	// Wing is a main lifting wing.
	Wing
	// Stabilizer is a tail surface, an elevator or a rudder.
	Stabilizer
)

// Side is the side of the fuselage a structure is mounted on.
type Side int

const (
	// SideUnspecified means no side was given.
	SideUnspecified Side = iota
	// Left structures use the airfoil trace as given.
	Left
	// Right structures are mirrored.
	Right
)

// Orientation is the mounting plane of a structure.
type Orientation int

const (
	// OrientationUnspecified means no orientation was given.
	OrientationUnspecified Orientation = iota
	// Vertical surfaces stand upright, like a rudder.
	Vertical
	// Horizontal surfaces lie flat, like an elevator.
	Horizontal
)

// WingType describes what a generated structure is and where it is mounted.
// The zero value is undefined.
type WingType struct {
	Structure   Structure
	Side        Side
	Orientation Orientation
}

// MainWing returns a main wing mounted on the given side.
func MainWing(side Side) WingType {
	return WingType{Structure: Wing, Side: side}
}

// Elevator returns a horizontal stabilizer mounted on the given side.
func Elevator(side Side) WingType {
	return WingType{Structure: Stabilizer, Side: side, Orientation: Horizontal}
}

// Rudder returns a vertical stabilizer mounted on the given side.
func Rudder(side Side) WingType {
	return WingType{Structure: Stabilizer, Side: side, Orientation: Vertical}
}

// IsElevator reports whether w is a horizontal stabilizer.
func (w WingType) IsElevator() bool {
	return w.Structure == Stabilizer && w.Orientation == Horizontal
}

// IsRudder reports whether w is a vertical stabilizer.
func (w WingType) IsRudder() bool {
	return w.Structure == Stabilizer && w.Orientation == Vertical
}

// IsZero reports whether no facet of w is set.
func (w WingType) IsZero() bool { return w == WingType{} }

// flags lists the facet names of w in a fixed order.
func (w WingType) flags() []string {
	var f []string
	switch w.Structure {
	case Wing:
		f = append(f, "WING")
	case Stabilizer:
		f = append(f, "STABILIZER")
	}
	switch w.Side {
	case Left:
		f = append(f, "LEFT")
	case Right:
		f = append(f, "RIGHT")
	}
	switch w.Orientation {
	case Vertical:
		f = append(f, "VERTICAL")
	case Horizontal:
		f = append(f, "HORIZONTAL")
	}
	return f
}

// String returns the facets of w joined by "|", for example
// "STABILIZER|LEFT|HORIZONTAL", or "UNDEFINED" for the zero value.
func (w WingType) String() string {
	f := w.flags()
	if len(f) == 0 {
		return "UNDEFINED"
	}
	return strings.Join(f, "|")
}

// MarshalText implements encoding.TextMarshaler.
func (w WingType) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts facet names
// joined by "|" plus the ELEVATOR and RUDDER presets. Contradictory facets,
// such as LEFT|RIGHT, are rejected.
func (w *WingType) UnmarshalText(b []byte) error {
	var o WingType
	text := strings.TrimSpace(string(b))
	if text == "" {
		*w = o
		return nil
	}
	setStructure := func(s Structure) bool {
		if o.Structure != StructureUnspecified && o.Structure != s {
			return false
		}
		o.Structure = s
		return true
	}
	setSide := func(s Side) bool {
		if o.Side != SideUnspecified && o.Side != s {
			return false
		}
		o.Side = s
		return true
	}
	setOrientation := func(v Orientation) bool {
		if o.Orientation != OrientationUnspecified && o.Orientation != v {
			return false
		}
		o.Orientation = v
		return true
	}
	for _, tok := range strings.Split(text, "|") {
		ok := true
		switch strings.ToUpper(strings.TrimSpace(tok)) {
		case "UNDEFINED":
		case "WING":
			ok = setStructure(Wing)
		case "STABILIZER":
			ok = setStructure(Stabilizer)
		case "LEFT":
			ok = setSide(Left)
		case "RIGHT":
			ok = setSide(Right)
		case "VERTICAL":
			ok = setOrientation(Vertical)
		case "HORIZONTAL":
			ok = setOrientation(Horizontal)
		case "ELEVATOR":
			ok = setStructure(Stabilizer) && setOrientation(Horizontal)
		case "RUDDER":
			ok = setStructure(Stabilizer) && setOrientation(Vertical)
		default:
			ok = false
		}
		if !ok {
			return &FormatError{Kind: "wing type", Value: string(b)}
		}
	}
	*w = o
	return nil
}
