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

package testcases

import "seehuhn.de/go/patron"

// T48 is missing: the armhole cannot be fitted for this size.
var corsetCases = append(sizes(patron.KindCorset, 34, 36, 38, 40, 42, 44, 46),
	TestCase{
		Name: "deep_front_neck",
		Kind: patron.KindCorset,
		Size: 38,
		Control: map[string]float64{
			"front_neck_center": 1.0,
			"front_neck_top":    0.5,
		},
	},
	TestCase{
		Name:    "jersey",
		Kind:    patron.KindCorset,
		Size:    40,
		Stretch: &patron.Stretch{Horizontal: 0.3, Vertical: 0.1, Usage: 0.5},
	},
)

var sleeveCases = append(sizes(patron.KindSleeve, 34, 36, 38, 40, 42, 44, 46, 48),
	TestCase{
		Name: "full_cap",
		Kind: patron.KindSleeve,
		Size: 38,
		Control: map[string]float64{
			"g3_perpendicular": 2.0,
			"h3_perpendicular": 2.5,
		},
	},
	TestCase{
		Name:    "jersey",
		Kind:    patron.KindSleeve,
		Size:    40,
		Stretch: &patron.Stretch{Horizontal: 0.3, Vertical: 0.1, Usage: 0.5},
	},
)
