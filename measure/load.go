// seehuhn.de/go/patron - sewing pattern blocks from body measurements
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package measure

import (
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// MissingFieldError reports a required measurement that was not supplied.
type MissingFieldError struct {
	Field string
}

func (err *MissingFieldError) Error() string {
	return "missing measurement: " + err.Field
}

// FromMap builds a Body from named values. Every entry of [Fields] must be
// present and finite; names not in [Fields] are rejected.
func FromMap(values map[string]float64) (Body, error) {
	if err := checkNames(values); err != nil {
		return Body{}, err
	}

	var b Body
	for _, name := range Fields {
		v, ok := values[name]
		if !ok {
			return Body{}, &MissingFieldError{Field: name}
		}
		if err := setField(&b, name, v); err != nil {
			return Body{}, err
		}
	}
	return b, nil
}

// WithOverrides returns a copy of b where the named values replace the
// corresponding measurements.
func (b Body) WithOverrides(values map[string]float64) (Body, error) {
	if err := checkNames(values); err != nil {
		return Body{}, err
	}
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if err := setField(&b, name, values[name]); err != nil {
			return Body{}, err
		}
	}
	return b, nil
}

func setField(b *Body, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("measurement %s: invalid value %g", name, v)
	}
	p, _ := b.Field(name)
	*p = v
	return nil
}

func checkNames(values map[string]float64) error {
	var unknown []string
	for name := range values {
		if _, ok := (&Body{}).Field(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("unknown measurements: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// file is the TOML layout of a measurement file:
//
//	size = 38          # optional, start from the size table
//	[values]
//	full_bust = 90.5
type file struct {
	Size   int            `toml:"size"`
	Values map[string]any `toml:"values"`
}

// Decode reads a measurement file in TOML format.
//
// If the file sets a size, the values from the size table are used for all
// measurements not listed under [values]. Without a size, [values] must
// contain all 24 measurements.
func Decode(r io.Reader) (Body, error) {
	var f file
	md, err := toml.DecodeReader(r, &f)
	if err != nil {
		return Body{}, err
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		return Body{}, fmt.Errorf("unexpected key %q", extra[0].String())
	}

	values := make(map[string]float64, len(f.Values))
	for name, raw := range f.Values {
		switch v := raw.(type) {
		case int64:
			values[name] = float64(v)
		case float64:
			values[name] = v
		default:
			return Body{}, fmt.Errorf("measurement %s: not a number", name)
		}
	}

	if !md.IsDefined("size") {
		return FromMap(values)
	}
	b, err := ForSize(f.Size)
	if err != nil {
		return Body{}, err
	}
	return b.WithOverrides(values)
}

// Load reads a measurement file from disk. See [Decode] for the format.
func Load(fileName string) (Body, error) {
	fd, err := os.Open(fileName)
	if err != nil {
		return Body{}, err
	}
	defer fd.Close()

	b, err := Decode(fd)
	if err != nil {
		return Body{}, fmt.Errorf("%s: %w", fileName, err)
	}
	return b, nil
}
