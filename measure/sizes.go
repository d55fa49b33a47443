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
	"slices"
	"strings"
)

// BaseSize is the size at which the table entries are given.
const BaseSize = 38

// Sizes lists the sizes of the French size table.
var Sizes = []int{34, 36, 38, 40, 42, 44, 46, 48}

// grade gives the value at the base size and the change per size step.
// One step is two size numbers, e.g. T38 → T40.
type grade struct {
	base, incr float64
}

var sizeTable = map[string]grade{
	"back_waist_length":        {41.0, 0.5},
	"front_waist_length":       {37.0, 0.5},
	"full_bust":                {88.0, 4.0},
	"bust_height":              {22.0, 0.5},
	"half_bust_point_distance": {9.25, 0.25},
	"full_waist":               {68.0, 4.0},
	"small_hip":                {85.0, 4.0},
	"full_hip":                 {94.0, 4.0},
	"neck_circumference":       {36.0, 1.0},
	"half_back_width":          {17.5, 0.25},
	"half_front_width":         {16.5, 0.25},
	"shoulder_length":          {12.0, 0.4},
	"armhole_circumference":    {39.5, 1.0},
	"underarm_height":          {21.5, 0.25},
	"arm_length":               {60.0, 0},
	"upper_arm":                {26.0, 1.0},
	"elbow_height":             {35.0, 0},
	"wrist":                    {16.0, 0.25},
	"waist_to_hip":             {22.0, 0},
	"crotch_depth":             {26.5, 0.5},
	"crotch_length":            {60.0, 2.0},
	"waist_to_knee":            {58.0, 1.0},
	"waist_to_floor":           {105.0, 0.5},
	"side_waist_to_floor":      {105.5, 1.0},
}

// UnknownSizeError is returned by [ForSize] for sizes outside [Sizes].
type UnknownSizeError struct {
	Size int
}

func (err *UnknownSizeError) Error() string {
	var names []string
	for _, s := range Sizes {
		names = append(names, fmt.Sprintf("T%d", s))
	}
	return fmt.Sprintf("unknown size T%d (available: %s)", err.Size, strings.Join(names, ", "))
}

// ForSize returns the standard measurements for the given size.
func ForSize(size int) (Body, error) {
	if !slices.Contains(Sizes, size) {
		return Body{}, &UnknownSizeError{Size: size}
	}
	steps := float64(size-BaseSize) / 2

	var b Body
	for _, name := range Fields {
		g := sizeTable[name]
		p, _ := b.Field(name)
		*p = g.base + g.incr*steps
	}
	return b, nil
}

// Increment returns the change of the named measurement per size step.
func Increment(name string) (float64, bool) {
	g, ok := sizeTable[name]
	return g.incr, ok
}

