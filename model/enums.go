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

/*Package model holds the request, enumerations, and error types shared by
every stage of wing generation.*/
package model

import (
	"fmt"
	"strings"
)

// Planform specifies the outline law of a wing viewed from above.
type Planform int

const (
	// PlanformUndefined is the zero value and cannot be generated.
	PlanformUndefined Planform = iota
	// Rectangular wings hold a constant chord from root to tip.
	Rectangular
	// Ellipse wings follow a quarter-ellipse chord distribution.
	Ellipse
	// Geometric wings taper linearly from base chord to end chord.
	Geometric
)

var planformNames = map[Planform]string{
	PlanformUndefined: "UNDEFINED",
	Rectangular:       "RECTANGULAR",
	Ellipse:           "ELLIPSE",
	Geometric:         "GEOMETRIC",
}

func (p Planform) String() string {
	if s, ok := planformNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Planform(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Planform) MarshalText() ([]byte, error) {
	s, ok := planformNames[p]
	if !ok {
		return nil, &FormatError{Kind: "planform", Value: p.String()}
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are
// case-insensitive and ELLIPTICAL is accepted for ELLIPSE.
func (p *Planform) UnmarshalText(b []byte) error {
	name := strings.ToUpper(strings.TrimSpace(string(b)))
	if name == "ELLIPTICAL" {
		name = "ELLIPSE"
	}
	for k, v := range planformNames {
		if v == name {
			*p = k
			return nil
		}
	}
	return &FormatError{Kind: "planform", Value: string(b)}
}

// SpecFormat specifies the layout of an airfoil coordinate file.
type SpecFormat int

const (
	// SpecFormatUndefined is the zero value and cannot be parsed.
	SpecFormatUndefined SpecFormat = iota
	// Selig files list a single closed loop of coordinates.
	Selig
	// Lednicer files list the upper and lower surfaces separately.
	Lednicer
)

var specFormatNames = map[SpecFormat]string{
	SpecFormatUndefined: "UNDEFINED",
	Selig:               "SELIG",
	Lednicer:            "LEDNICER",
}

func (f SpecFormat) String() string {
	if s, ok := specFormatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("SpecFormat(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f SpecFormat) MarshalText() ([]byte, error) {
	s, ok := specFormatNames[f]
	if !ok {
		return nil, &FormatError{Kind: "spec format", Value: f.String()}
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *SpecFormat) UnmarshalText(b []byte) error {
	name := strings.ToUpper(strings.TrimSpace(string(b)))
	for k, v := range specFormatNames {
		if v == name {
			*f = k
			return nil
		}
	}
	return &FormatError{Kind: "spec format", Value: string(b)}
}
