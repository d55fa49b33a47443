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
	"errors"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/patron/measure"
	"seehuhn.de/go/patron/numeric"
)

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindCorset, KindSleeve} {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("%s: %v", k, err)
		} else if got != k {
			t.Errorf("ParseKind(%q) = %s", k.String(), got)
		}
	}
	if _, err := ParseKind("skirt"); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestDraft(t *testing.T) {
	body, err := measure.ForSize(38)
	if err != nil {
		t.Fatal(err)
	}

	p, err := Draft(KindSleeve, body, map[string]float64{"g3_perpendicular": 2})
	if err != nil {
		t.Fatal(err)
	}
	s, ok := p.(*Sleeve)
	if !ok {
		t.Fatalf("Draft returned %T", p)
	}
	if s.Control.G3Perpendicular != 2 || s.Control.H3Perpendicular != 1.5 {
		t.Errorf("control = %+v", s.Control)
	}

	p, err = Draft(KindCorset, body, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind() != KindCorset {
		t.Errorf("Kind() = %s", p.Kind())
	}
}

func TestDraftFailureReturnsNil(t *testing.T) {
	body, err := measure.ForSize(48)
	if err != nil {
		t.Fatal(err)
	}
	p, err := Draft(KindCorset, body, nil)
	if !errors.Is(err, numeric.ErrNotBracketed) {
		t.Errorf("got error %v, want %v", err, numeric.ErrNotBracketed)
	}
	if p != nil {
		t.Errorf("Draft returned %#v together with an error", p)
	}
}

func TestDraftUnknownControl(t *testing.T) {
	body, err := measure.ForSize(38)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Draft(KindCorset, body, map[string]float64{"neck_curve": 1})
	if err == nil || !strings.Contains(err.Error(), "neck_curve") {
		t.Errorf("got %v", err)
	}
}

func TestOverrideAtomic(t *testing.T) {
	c := DefaultCorsetControl()
	err := c.Override(map[string]float64{"armhole_curve": 0.5, "bogus": 1})
	if err == nil {
		t.Fatal("unknown parameter accepted")
	}
	diff(t, DefaultCorsetControl(), c)

	if err := c.Override(map[string]float64{"armhole_curve": 0.5}); err != nil {
		t.Fatal(err)
	}
	if c.ArmholeCurve != 0.5 {
		t.Errorf("ArmholeCurve = %g", c.ArmholeCurve)
	}
}

func TestOutlinePath(t *testing.T) {
	for _, kind := range []Kind{KindCorset, KindSleeve} {
		body, err := measure.ForSize(38)
		if err != nil {
			t.Fatal(err)
		}
		p, err := Draft(kind, body, nil)
		if err != nil {
			t.Fatal(err)
		}

		outline := p.Outline()
		for _, piece := range Pieces(p) {
			nSegs := 0
			for _, c := range outline {
				if c.Piece == piece {
					nSegs += len(c.Segments)
				}
			}

			var cmds []path.Command
			for cmd := range OutlinePath(outline, piece).Iter() {
				cmds = append(cmds, cmd)
			}
			if len(cmds) != nSegs+2 {
				t.Fatalf("%s %s: %d path commands for %d segments", kind, piece, len(cmds), nSegs)
			}
			if cmds[0] != path.CmdMoveTo || cmds[len(cmds)-1] != path.CmdClose {
				t.Errorf("%s %s: path is not a closed subpath", kind, piece)
			}
			for _, cmd := range cmds[1 : len(cmds)-1] {
				if cmd != path.CmdCubeTo {
					t.Errorf("%s %s: unexpected command %v", kind, piece, cmd)
				}
			}
		}
	}
}
