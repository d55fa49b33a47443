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

package patron_test

import (
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/patron"
	"seehuhn.de/go/patron/measure"
	"seehuhn.de/go/patron/testcases"
)

func TestCatalogue(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				p, err := tc.Draft()
				if err != nil {
					t.Fatal(err)
				}
				if p.Kind().String() != category {
					t.Errorf("kind %s in category %s", p.Kind(), category)
				}
				if p.Store().Stretched() != (tc.Stretch != nil) {
					t.Errorf("stretched = %t", p.Store().Stretched())
				}

				b := p.Bounds()
				for _, l := range p.Landmarks() {
					if l.Helper {
						continue
					}
					if l.Pos.X <= b.LLx || l.Pos.X >= b.URx || l.Pos.Y <= b.LLy || l.Pos.Y >= b.URy {
						t.Errorf("%s %s outside bounds", l.Piece, l.Label)
					}
				}

				for _, piece := range patron.Pieces(p) {
					first, last := true, patron.Curve{}
					var start patron.Curve
					for _, c := range p.Outline() {
						if c.Piece != piece {
							continue
						}
						if first {
							start, first = c, false
						} else if d := c.Start().Sub(last.End()); d.X*d.X+d.Y*d.Y > 1e-18 {
							t.Errorf("%s: gap before %s", piece, c.Name)
						}
						last = c
					}
					if d := start.Start().Sub(last.End()); d.X*d.X+d.Y*d.Y > 1e-18 {
						t.Errorf("%s: outline is not closed", piece)
					}
				}
			})
		}
	}
}

func BenchmarkDraft(b *testing.B) {
	body, err := measure.ForSize(38)
	if err != nil {
		b.Fatal(err)
	}
	for _, kind := range []patron.Kind{patron.KindCorset, patron.KindSleeve} {
		b.Run(kind.String(), func(b *testing.B) {
			for b.Loop() {
				p, err := patron.Draft(kind, body, nil)
				if err != nil {
					b.Fatal(err)
				}
				p.Outline()
			}
		})
	}
}
