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

package patron

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// CorsetControl holds the shape ratios of the bodice curves.
// The neck ratios scale with the neck width, the armhole ratio with the
// underarm height.
type CorsetControl struct {
	FrontNeckCenter float64 // E1: horizontal offset from E
	BackNeckCenter  float64 // F1: horizontal offset from F
	FrontNeckTop    float64 // H1: distance from H
	BackNeckTop     float64 // H2: distance from H
	ArmholeCurve    float64 // C11, C12: distance from C1
}

// DefaultCorsetControl returns the standard bodice ratios.
func DefaultCorsetControl() CorsetControl {
	return CorsetControl{
		FrontNeckCenter: 0.8,
		BackNeckCenter:  0.5,
		FrontNeckTop:    0.34,
		BackNeckTop:     0.20,
		ArmholeCurve:    0.4,
	}
}

func (c *CorsetControl) params() map[string]*float64 {
	return map[string]*float64{
		"front_neck_center": &c.FrontNeckCenter,
		"back_neck_center":  &c.BackNeckCenter,
		"front_neck_top":    &c.FrontNeckTop,
		"back_neck_top":     &c.BackNeckTop,
		"armhole_curve":     &c.ArmholeCurve,
	}
}

// Override replaces the named ratios. Names which are not given keep their
// value.
func (c *CorsetControl) Override(values map[string]float64) error {
	return override(c.params(), values)
}

// SleeveControl holds the perpendicular offsets, in centimetres, of the two
// free points G3 and H3 of the sleeve cap.
type SleeveControl struct {
	G3Perpendicular float64
	H3Perpendicular float64
}

// DefaultSleeveControl returns the standard sleeve cap offsets.
func DefaultSleeveControl() SleeveControl {
	return SleeveControl{
		G3Perpendicular: 1.0,
		H3Perpendicular: 1.5,
	}
}

func (c *SleeveControl) params() map[string]*float64 {
	return map[string]*float64{
		"g3_perpendicular": &c.G3Perpendicular,
		"h3_perpendicular": &c.H3Perpendicular,
	}
}

// Override replaces the named offsets. Names which are not given keep their
// value.
func (c *SleeveControl) Override(values map[string]float64) error {
	return override(c.params(), values)
}

// override is all-or-nothing: on error no parameter is changed.
func override(params map[string]*float64, values map[string]float64) error {
	var unknown []string
	for _, name := range slices.Sorted(maps.Keys(values)) {
		v := values[name]
		if _, ok := params[name]; !ok {
			unknown = append(unknown, name)
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("control parameter %s: invalid value %g", name, v)
		}
	}
	if len(unknown) > 0 {
		known := slices.Sorted(maps.Keys(params))
		return fmt.Errorf("unknown control parameters %s (known: %s)",
			strings.Join(unknown, ", "), strings.Join(known, ", "))
	}

	for name, v := range values {
		*params[name] = v
	}
	return nil
}
