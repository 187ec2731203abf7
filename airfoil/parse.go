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

/*Package airfoil reads airfoil coordinate files and derives scaled,
mirrored and elevated traces of the airfoil outline.*/
package airfoil

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/wingwalker/model"
)

// DefaultDesignation is used when a coordinate file does not name its airfoil.
const DefaultDesignation = "airfoil"

// number matches an optionally signed decimal, with optional exponent.
const number = `[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`

// coordPattern matches a line that starts with two numbers separated by
// whitespace.
var coordPattern = regexp.MustCompile(`^\s*(` + number + `)\s+(` + number + `)`)

// Parser decodes the full contents of a coordinate file into the airfoil
// designation and its ordered trace, with every coordinate multiplied by
// chordScale.
type Parser func(data []byte, chordScale float64) (designation string, trace []geom.Point, err error)

// ParserFor returns the parser for format f.
func ParserFor(f model.SpecFormat) (Parser, error) {
	switch f {
	case model.Selig:
		return ParseSelig, nil
	case model.Lednicer:
		return ParseLednicer, nil
	default:
		return nil, &model.FormatError{Kind: "spec format", Value: f.String()}
	}
}

// Parse reads r to the end and then parses it as format f.
func Parse(r io.Reader, f model.SpecFormat, chordScale float64) (string, []geom.Point, error) {
	p, err := ParserFor(f)
	if err != nil {
		return "", nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("airfoil: reading coordinates: %w", err)
	}
	return p(data, chordScale)
}

// ParseSelig parses Selig-format data. Every coordinate line is appended
// to the trace in file order; any other non-blank line is taken as the
// designation, with the last one winning.
func ParseSelig(data []byte, chordScale float64) (string, []geom.Point, error) {
	designation := DefaultDesignation
	var trace []geom.Point
	for _, line := range splitLines(data) {
		if p, ok := parseCoord(line); ok {
			trace = append(trace, scale(p, chordScale))
			continue
		}
		if t := strings.TrimSpace(line); t != "" {
			designation = t
		}
	}
	return designation, trace, nil
}

// ParseLednicer parses Lednicer-format data: a designation line, a line
// holding the upper and lower surface point counts, then the upper and
// lower surfaces, each running from leading to trailing edge and separated
// by a blank line. The lower surface is reversed so that the trace forms
// the same closed loop as a Selig file.
func ParseLednicer(data []byte, chordScale float64) (string, []geom.Point, error) {
	lines := splitLines(data)
	if len(lines) < 2 {
		return "", nil, &model.MalformedInputError{Reason: "missing designation and point count header"}
	}
	designation := strings.TrimSpace(lines[0])
	if designation == "" {
		designation = DefaultDesignation
	}
	counts, ok := parseCoord(lines[1])
	if !ok || !isCount(counts.X) || !isCount(counts.Y) {
		return "", nil, &model.MalformedInputError{Line: 2,
			Reason: fmt.Sprintf("%q is not an upper and lower surface point count", strings.TrimSpace(lines[1]))}
	}
	if avail := len(lines) - 2; counts.X > float64(avail) || counts.Y > float64(avail) {
		return "", nil, &model.MalformedInputError{Line: 2,
			Reason: fmt.Sprintf("header declares %g upper and %g lower points but only %d lines follow",
				counts.X, counts.Y, avail)}
	}

	s := &surfaceReader{lines: lines, next: 2, scale: chordScale}
	upper, err := s.read("upper", int(counts.X))
	if err != nil {
		return "", nil, err
	}
	lower, err := s.read("lower", int(counts.Y))
	if err != nil {
		return "", nil, err
	}

	trace := make([]geom.Point, 0, len(upper)+len(lower))
	trace = append(trace, upper...)
	for i := len(lower) - 1; i >= 0; i-- {
		trace = append(trace, lower[i])
	}
	return designation, trace, nil
}

// surfaceReader reads consecutive blocks of coordinate lines.
type surfaceReader struct {
	lines []string
	next  int
	scale float64
}

// read skips any blank lines and then reads exactly n coordinate lines.
func (s *surfaceReader) read(name string, n int) ([]geom.Point, error) {
	for s.next < len(s.lines) && strings.TrimSpace(s.lines[s.next]) == "" {
		s.next++
	}
	pts := make([]geom.Point, 0, n)
	for len(pts) < n {
		if s.next >= len(s.lines) || strings.TrimSpace(s.lines[s.next]) == "" {
			return nil, &model.MalformedInputError{Line: s.next + 1, Expected: n, Found: len(pts),
				Reason: name + " surface ended early"}
		}
		p, ok := parseCoord(s.lines[s.next])
		if !ok {
			return nil, &model.MalformedInputError{Line: s.next + 1, Expected: n, Found: len(pts),
				Reason: fmt.Sprintf("%s surface line %q is not a coordinate pair", name, strings.TrimSpace(s.lines[s.next]))}
		}
		pts = append(pts, scale(p, s.scale))
		s.next++
	}
	return pts, nil
}

func splitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(text, "\n")
}

// parseCoord returns the first two numbers on line if the line matches
// coordPattern.
func parseCoord(line string) (geom.Point, bool) {
	m := coordPattern.FindStringSubmatch(line)
	if m == nil {
		return geom.Point{}, false
	}
	x, errX := strconv.ParseFloat(m[1], 64)
	y, errY := strconv.ParseFloat(m[2], 64)
	if errX != nil || errY != nil {
		return geom.Point{}, false
	}
	return geom.Point{X: x, Y: y}, true
}

func isCount(v float64) bool {
	return v >= 0 && v == math.Trunc(v)
}

func scale(p geom.Point, c float64) geom.Point {
	return geom.Point{X: p.X * c, Y: p.Y * c}
}
