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

import (
	"fmt"

	"seehuhn.de/go/patron"
	"seehuhn.de/go/patron/measure"
)

// TestCase defines a single draft.
type TestCase struct {
	Name    string             // lowercase a-z, 0-9 and _ only
	Kind    patron.Kind        // block to draft
	Size    int                // one of measure.Sizes
	Control map[string]float64 // overrides of the default control parameters
	Stretch *patron.Stretch    // fabric stretch, or nil
}

// Draft constructs the pattern described by tc.
func (tc TestCase) Draft() (patron.Pattern, error) {
	body, err := measure.ForSize(tc.Size)
	if err != nil {
		return nil, err
	}
	p, err := patron.Draft(tc.Kind, body, tc.Control)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}
	if tc.Stretch != nil {
		if err := p.Stretch(*tc.Stretch); err != nil {
			return nil, fmt.Errorf("%s: %w", tc.Name, err)
		}
	}
	return p, nil
}

func sizes(kind patron.Kind, list ...int) []TestCase {
	var res []TestCase
	for _, size := range list {
		res = append(res, TestCase{
			Name: fmt.Sprintf("t%d", size),
			Kind: kind,
			Size: size,
		})
	}
	return res
}
