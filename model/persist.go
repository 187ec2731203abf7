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
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
)

// EncodeRequest writes r to w as a flat TOML document.
func EncodeRequest(w io.Writer, r WingRequest) error {
	if err := toml.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("model: encoding wing request: %w", err)
	}
	return nil
}

// DecodeRequest reads a request written by EncodeRequest. Keys that are
// missing keep the values from NewRequest; unknown keys are an error.
func DecodeRequest(rd io.Reader) (WingRequest, error) {
	req := NewRequest()
	md, err := toml.NewDecoder(rd).Decode(&req)
	if err != nil {
		return WingRequest{}, fmt.Errorf("model: decoding wing request: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return WingRequest{}, &FormatError{Kind: "request key", Value: undecoded[0].String()}
	}
	return req, nil
}

// SaveRequest writes r to the file at path.
func SaveRequest(path string, r WingRequest) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("model: saving wing request: %w", err)
	}
	if err := EncodeRequest(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadRequest reads the request stored in the file at path.
func LoadRequest(path string) (WingRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return WingRequest{}, fmt.Errorf("model: loading wing request: %w", err)
	}
	defer f.Close()
	r, err := DecodeRequest(f)
	if err != nil {
		return WingRequest{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// RequestFromSettings builds a request from a generic key-value map, such
// as a table read by a configuration library. Numeric values may be given
// as numbers or strings. Keys are matched case-insensitively.
func RequestFromSettings(settings map[string]interface{}) (WingRequest, error) {
	req := NewRequest()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := settings[k]
		var err error
		switch strings.ToLower(k) {
		case "name":
			req.Name, err = cast.ToStringE(v)
		case "notes":
			req.Notes, err = cast.ToStringE(v)
		case "wing_type":
			err = unmarshalSetting(v, &req.WingType)
		case "planform":
			err = unmarshalSetting(v, &req.Planform)
		case "spec_file":
			req.SpecFile, err = cast.ToStringE(v)
		case "spec_format":
			err = unmarshalSetting(v, &req.SpecFormat)
		case "base_chord":
			req.BaseChord, err = cast.ToFloat64E(v)
		case "end_chord":
			req.EndChord, err = cast.ToFloat64E(v)
		case "span":
			req.Span, err = cast.ToFloat64E(v)
		case "twist":
			req.Twist, err = cast.ToFloat64E(v)
		case "iterations":
			req.Iterations, err = cast.ToIntE(v)
		default:
			return WingRequest{}, &FormatError{Kind: "request key", Value: k}
		}
		if err != nil {
			return WingRequest{}, fmt.Errorf("model: request setting %s: %w", k, err)
		}
	}
	return req, nil
}

type textUnmarshaler interface {
	UnmarshalText([]byte) error
}

func unmarshalSetting(v interface{}, dst textUnmarshaler) error {
	s, err := cast.ToStringE(v)
	if err != nil {
		return err
	}
	return dst.UnmarshalText([]byte(s))
}
