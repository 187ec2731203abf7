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
	"strings"
)

// FormatError reports an undefined or unrecognized selection, such as a
// spec format of UNDEFINED or a planform name that does not exist.
type FormatError struct {
	Kind  string // what was being selected, e.g. "spec format"
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported %s %q", e.Kind, e.Value)
}

// MalformedInputError reports a coordinate file whose structure does not
// match its declared format.
type MalformedInputError struct {
	Path string
	// Line is the 1-based line number where the problem was found,
	// or 0 if it applies to the whole file.
	Line int
	// Expected and Found are point counts. They are only meaningful
	// when Expected > 0.
	Expected, Found int
	Reason          string
}

func (e *MalformedInputError) Error() string {
	var b strings.Builder
	b.WriteString("malformed airfoil coordinates")
	if e.Path != "" {
		fmt.Fprintf(&b, " in %s", e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	fmt.Fprintf(&b, ": %s", e.Reason)
	if e.Expected > 0 {
		fmt.Fprintf(&b, " (expected %d points, found %d)", e.Expected, e.Found)
	}
	return b.String()
}

// InvalidRequestError reports a request that cannot produce a wing.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid wing request: %s: %s", e.Field, e.Reason)
}

// UnsupportedPlanformError reports a planform with no chord, twist and
// span-position laws.
type UnsupportedPlanformError struct {
	Planform Planform
}

func (e *UnsupportedPlanformError) Error() string {
	return fmt.Sprintf("unsupported planform %s", e.Planform)
}
