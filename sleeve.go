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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/patron/measure"
	"seehuhn.de/go/patron/numeric"
)

// SleeveMeasurements are the measurements used by the sleeve draft.
type SleeveMeasurements struct {
	ArmholeDepth       float64
	ArmholeMeasurement float64
	SleeveLength       float64
	UpperArmToElbow    float64
	SleeveBottomWidth  float64
}

// NewSleeveMeasurements selects the sleeve measurements from a full body
// measurement set.
func NewSleeveMeasurements(b measure.Body) SleeveMeasurements {
	return SleeveMeasurements{
		ArmholeDepth:       b.UnderarmHeight,
		ArmholeMeasurement: b.ArmholeCircumference,
		SleeveLength:       b.ArmLength,
		UpperArmToElbow:    b.ElbowHeight,
		SleeveBottomWidth:  b.Wrist,
	}
}

// Sleeve is the one-piece set-in sleeve block.
//
// The sleeve is drafted in a rectangle A B D C with the top of the cap on
// the x-axis and y increasing towards the wrist.
type Sleeve struct {
	M       SleeveMeasurements
	Control SleeveControl

	store Store
}

// NewSleeve drafts the sleeve block.
func NewSleeve(m SleeveMeasurements, c SleeveControl) *Sleeve {
	p := &Sleeve{M: m, Control: c}
	p.buildConstructionPoints()
	p.buildHelperPoints()
	return p
}

func (*Sleeve) isPattern() {}

// Kind returns [KindSleeve].
func (*Sleeve) Kind() Kind { return KindSleeve }

// Store returns the points of the pattern.
func (p *Sleeve) Store() *Store { return &p.store }

// Stretch scales all points for a stretch fabric.
func (p *Sleeve) Stretch(s Stretch) error { return p.store.Stretch(s) }

func (p *Sleeve) pt(label string) vec.Vec2 {
	if v, ok := p.store.Construction.Get(label); ok {
		return v
	}
	return p.store.Helpers.At(label)
}

func (p *Sleeve) buildConstructionPoints() {
	width := 0.75*p.M.ArmholeMeasurement + 1
	length := p.M.SleeveLength
	capHeight := p.M.ArmholeDepth * 2 / 3

	pts := &p.store.Construction
	pts.Set("A", numeric.Pt(0, 0))
	pts.Set("B", numeric.Pt(width, 0))
	pts.Set("C", numeric.Pt(0, length))
	pts.Set("D", numeric.Pt(width, length))
	pts.Set("E", numeric.Pt(width/2, 0))
	pts.Set("F", numeric.Pt(width/2, length))
	pts.Set("I", numeric.Pt(0, capHeight))
	pts.Set("I'", numeric.Pt(width, capHeight))

	halfWrist := p.M.SleeveBottomWidth / 2
	pts.Set("F1", numeric.Pt(width/2-halfWrist, length))
	pts.Set("F2", numeric.Pt(width/2+halfWrist, length))
}

func (p *Sleeve) buildHelperPoints() {
	pts := &p.store.Construction
	hps := &p.store.Helpers
	width := pts.At("B").X
	capHeight := pts.At("I").Y

	// guide lines at a quarter and three quarters of the width
	gx := width / 4
	hx := width * 3 / 4
	hps.Set("G", numeric.Pt(gx, 0))
	hps.Set("G1", numeric.Pt(gx, capHeight))
	hps.Set("H", numeric.Pt(hx, 0))
	hps.Set("H1", numeric.Pt(hx, capHeight))

	g2 := numeric.Pt(gx, capHeight/3)
	h2 := numeric.Pt(hx, capHeight/2)
	pts.Set("G2", g2)
	pts.Set("H2", h2)

	// free shaping points, square to the chords I–G2 and H2–I'
	i, i2 := pts.At("I"), pts.At("I'")
	g3 := numeric.Lerp(g2, i, 0.5).
		Add(numeric.Perp(numeric.Normalize(g2.Sub(i))).Mul(p.Control.G3Perpendicular))
	h3 := numeric.Lerp(h2, i2, 0.5).
		Add(numeric.Perp(numeric.Normalize(i2.Sub(h2))).Mul(p.Control.H3Perpendicular))
	pts.Set("G3", g3)
	pts.Set("H3", h3)

	// elbow line
	hps.Set("J", numeric.Pt(0, p.M.UpperArmToElbow))
	hps.Set("J'", numeric.Pt(width, p.M.UpperArmToElbow))
}

// capLabels are the points the sleeve cap passes through, from back to
// front.
var capLabels = []string{"I", "G3", "G2", "E", "H2", "H3", "I'"}

// CapPoints returns the seven points of the sleeve cap.
func (p *Sleeve) CapPoints() []vec.Vec2 {
	res := make([]vec.Vec2, len(capLabels))
	for i, label := range capLabels {
		res[i] = p.pt(label)
	}
	return res
}

// CapCurve returns the sleeve cap as the natural cubic spline through
// [Sleeve.CapPoints].
func (p *Sleeve) CapCurve() []numeric.Cubic {
	return numeric.SplineToBeziers(p.CapPoints())
}

// CapControl returns the length of the polygon through the cap points.
// This is a check value for matching the cap to the armhole.
func (p *Sleeve) CapControl() float64 {
	pts := p.CapPoints()
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += numeric.Norm(pts[i].Sub(pts[i-1]))
	}
	return total
}

// CapLength returns the length of the cap seam.
func (p *Sleeve) CapLength() float64 {
	return numeric.CurveLength(p.CapCurve(), lengthTol)
}

// CapEase returns the amount by which the sleeve cap exceeds the armhole
// of the bodice. A positive ease is eased in when the sleeve is set.
func CapEase(c *Corset, s *Sleeve) float64 {
	return s.CapLength() - c.ArmholeLength()
}

// Bounds returns the drawing area: 5cm margin to the sides and above the
// cap, 10cm below the wrist.
func (p *Sleeve) Bounds() rect.Rect {
	r := boundsOf(&p.store.Construction, &p.store.Helpers)
	return rect.Rect{
		LLx: r.LLx - 5,
		LLy: r.LLy - 5,
		URx: r.URx + 5,
		URy: r.URy + 10,
	}
}

// Outline returns the cap, the seam from I' to the wrist, the wrist edge,
// and the seam back up to I.
func (p *Sleeve) Outline() []Curve {
	return []Curve{
		{Piece: PieceSleeve, Name: "cap", Segments: p.CapCurve()},
		straight(PieceSleeve, "underarm front", p.pt("I'"), p.pt("F2")),
		straight(PieceSleeve, "wrist", p.pt("F2"), p.pt("F1")),
		straight(PieceSleeve, "underarm back", p.pt("F1"), p.pt("I")),
	}
}

// Guides returns the bounding rectangle, the centre, cap and elbow lines,
// and the quarter-width verticals.
func (p *Sleeve) Guides() []Curve {
	line := func(name, from, to string) Curve {
		return straight(PieceSleeve, name, p.pt(from), p.pt(to))
	}
	return []Curve{
		line("top", "A", "B"),
		line("right", "B", "D"),
		line("bottom", "D", "C"),
		line("left", "C", "A"),
		line("center", "E", "F"),
		line("cap height", "I", "I'"),
		line("elbow", "J", "J'"),
		line("back quarter", "G", "G1"),
		line("front quarter", "H", "H1"),
	}
}

// Landmarks returns all construction and helper points.
func (p *Sleeve) Landmarks() []Landmark {
	var res []Landmark
	for label, pos := range p.store.Construction.All() {
		res = append(res, Landmark{Piece: PieceSleeve, Label: label, Pos: pos})
	}
	for label, pos := range p.store.Helpers.All() {
		res = append(res, Landmark{Piece: PieceSleeve, Label: label, Pos: pos, Helper: true})
	}
	return res
}

// Warnings returns nil; the sleeve cap is an interpolating spline and
// needs no tangent checks.
func (p *Sleeve) Warnings() []string {
	return nil
}
