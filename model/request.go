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
	"fmt"
	"math"
	"strings"
	"unicode"
)

// DefaultIterations is the number of cross-sections generated when a
// request does not say otherwise.
const DefaultIterations = 10

// WingRequest holds the full set of parameters for generating a wing.
// It is not modified once generation starts.
type WingRequest struct {
	Name  string `toml:"name"`
	Notes string `toml:"notes"`

	WingType WingType `toml:"wing_type"`
	Planform Planform `toml:"planform"`

	// SpecFile is the path to the airfoil coordinate file, in SpecFormat.
	SpecFile   string     `toml:"spec_file"`
	SpecFormat SpecFormat `toml:"spec_format"`

	// Dimensions, in any consistent length unit.
	BaseChord float64 `toml:"base_chord"`
	EndChord  float64 `toml:"end_chord"`
	Span      float64 `toml:"span"`

	// Twist is the root-to-tip washout in radians.
	Twist float64 `toml:"twist"`

	// Iterations is the number of cross-sections from root to tip.
	Iterations int `toml:"iterations"`
}

// NewRequest returns an empty request with the default iteration count.
func NewRequest() WingRequest {
	return WingRequest{Iterations: DefaultIterations}
}

// Mirrored reports whether sections are reflected about the chord line
// and twisted the opposite way. Right-side structures are mirrored.
func (r WingRequest) Mirrored() bool {
	return r.WingType.Side == Right
}

// Validate checks the dimensional invariants of r.
func (r WingRequest) Validate() error {
	if r.Iterations < 2 {
		return &InvalidRequestError{Field: "iterations",
			Reason: fmt.Sprintf("need at least 2 sections, got %d", r.Iterations)}
	}
	dims := []struct {
		field string
		v     float64
	}{
		{"base_chord", r.BaseChord},
		{"end_chord", r.EndChord},
		{"span", r.Span},
		{"twist", r.Twist},
	}
	for _, d := range dims {
		if math.IsNaN(d.v) || math.IsInf(d.v, 0) {
			return &InvalidRequestError{Field: d.field,
				Reason: fmt.Sprintf("must be finite, got %g", d.v)}
		}
	}
	if r.BaseChord <= 0 {
		return &InvalidRequestError{Field: "base_chord",
			Reason: fmt.Sprintf("must be positive, got %g", r.BaseChord)}
	}
	if r.EndChord < 0 {
		return &InvalidRequestError{Field: "end_chord",
			Reason: fmt.Sprintf("must not be negative, got %g", r.EndChord)}
	}
	if r.Span < 0 {
		return &InvalidRequestError{Field: "span",
			Reason: fmt.Sprintf("must not be negative, got %g", r.Span)}
	}
	return nil
}

// Identifier returns a filesystem-safe name for r made of its name,
// planform and wing type.
func (r WingRequest) Identifier() string {
	name := r.Name
	if name == "" {
		name = "wing"
	}
	return sanitize(fmt.Sprintf("%s_%s_%s", name, r.Planform, r.WingType))
}

func sanitize(s string) string {
	var b strings.Builder
	underscore := false
	for _, c := range strings.ToLower(s) {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			b.WriteRune(c)
			underscore = false
			continue
		}
		if !underscore {
			b.WriteByte('_')
			underscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

func (r WingRequest) String() string {
	var b strings.Builder
	b.WriteString("Wing Request\n")
	b.WriteString("============================\n")
	fmt.Fprintf(&b, "Name: %s\n", r.Name)
	fmt.Fprintf(&b, "Wing Type: %s\n", r.WingType)
	fmt.Fprintf(&b, "Planform: %s\n", r.Planform)
	fmt.Fprintf(&b, "Spec File: %s\n", r.SpecFile)
	fmt.Fprintf(&b, "Spec Format: %s\n", r.SpecFormat)
	b.WriteString("\nDimensions\n")
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "Wing Span: %g\n", r.Span)
	fmt.Fprintf(&b, "Base Chord: %g\n", r.BaseChord)
	fmt.Fprintf(&b, "End Chord: %g\n", r.EndChord)
	fmt.Fprintf(&b, "Washout: %g\n", r.Twist)
	fmt.Fprintf(&b, "Iterations: %d\n", r.Iterations)
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "Notes: %s\n", r.Notes)
	return b.String()
}
