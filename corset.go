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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/patron/measure"
	"seehuhn.de/go/patron/numeric"
)

// ErrInconsistentMeasurements is returned when the measurements do not
// admit the geometric construction of a block.
var ErrInconsistentMeasurements = errors.New("inconsistent measurements")

const (
	// neckBackHeight is the rise of the back neck above the shoulder line.
	neckBackHeight = 2.0

	// patternGap separates the mirrored back piece from the front piece.
	patternGap = 5.0

	solverTol = 1e-6

	// lengthTol is the flattening tolerance for seam lengths.
	lengthTol = 1e-3
)

// CorsetMeasurements are the measurements used by the bodice draft.
type CorsetMeasurements struct {
	BackWaistLength   float64
	FrontWaistLength  float64
	FullBust          float64
	BustHeight        float64
	FullWaist         float64
	FullHip           float64
	HalfBackWidth     float64
	HalfFrontWidth    float64
	ShoulderLength    float64
	UnderarmHeight    float64
	WaistToHip        float64
	NeckCircumference float64

	// NeckWidth is the half-width of the neck opening, derived from the
	// neck circumference.
	NeckWidth float64

	// NeckBackHeight is the height of the back neck curve.
	NeckBackHeight float64
}

// NewCorsetMeasurements selects the bodice measurements from a full body
// measurement set and derives the neck width.
//
// The neck opening is taken as a front and a back quarter ellipse with
// common half-width w and heights NeckFrontHeight and NeckBackHeight. The
// quarter arcs are approximated by (π/2)·√((w²+h²)/2), and w is chosen such
// that the two arcs add up to half the neck circumference.
func NewCorsetMeasurements(b measure.Body) (CorsetMeasurements, error) {
	m := CorsetMeasurements{
		BackWaistLength:   b.BackWaistLength,
		FrontWaistLength:  b.FrontWaistLength,
		FullBust:          b.FullBust,
		BustHeight:        b.BustHeight,
		FullWaist:         b.FullWaist,
		FullHip:           b.FullHip,
		HalfBackWidth:     b.HalfBackWidth,
		HalfFrontWidth:    b.HalfFrontWidth,
		ShoulderLength:    b.ShoulderLength,
		UnderarmHeight:    b.UnderarmHeight,
		WaistToHip:        b.WaistToHip,
		NeckCircumference: b.NeckCircumference,
		NeckBackHeight:    neckBackHeight,
	}

	hb := m.NeckBackHeight
	hf := m.NeckFrontHeight()
	target := m.NeckCircumference / math.Pi
	f := func(w float64) float64 {
		return math.Sqrt((w*w+hb*hb)/2) + math.Sqrt((w*w+hf*hf)/2) - target
	}
	w, err := numeric.Bisect(f, 0.01, target, solverTol)
	if err != nil {
		return CorsetMeasurements{}, fmt.Errorf("neck width for neck circumference %g: %w",
			m.NeckCircumference, err)
	}
	m.NeckWidth = w
	return m, nil
}

// NeckFrontHeight returns the height of the front neck curve.
func (m CorsetMeasurements) NeckFrontHeight() float64 {
	return m.BackWaistLength - m.FrontWaistLength + m.NeckBackHeight
}

// Corset is the bodice block, with a front piece and a mirrored back piece.
//
// The front piece is drafted with the centre front on the y-axis, the waist
// at y = 0 and the side seam at negative x. Its points are stored; the back
// piece reuses them, mirrored at x = patternGap/2, and substitutes its own
// points F, H2, F1, K2, C12 for E, H1, E1, K1, C11.
type Corset struct {
	M       CorsetMeasurements
	Control CorsetControl

	store Store
}

// NewCorset drafts the bodice block.
func NewCorset(m CorsetMeasurements, c CorsetControl) (*Corset, error) {
	p := &Corset{M: m, Control: c}
	if err := p.buildConstructionPoints(); err != nil {
		return nil, err
	}
	if err := p.buildHelperPoints(); err != nil {
		return nil, err
	}
	return p, nil
}

func (*Corset) isPattern() {}

// Kind returns [KindCorset].
func (*Corset) Kind() Kind { return KindCorset }

// Store returns the points of the pattern.
func (p *Corset) Store() *Store { return &p.store }

// Stretch scales all points for a stretch fabric.
func (p *Corset) Stretch(s Stretch) error { return p.store.Stretch(s) }

func (p *Corset) pt(label string) vec.Vec2 { return p.store.Construction.At(label) }

func (p *Corset) hp(label string) vec.Vec2 { return p.store.Helpers.At(label) }

func (p *Corset) buildConstructionPoints() error {
	m := &p.M
	pts := &p.store.Construction

	// waist
	pts.Set("B", numeric.Pt(0, 0))
	pts.Set("B1", numeric.Pt(-m.FullWaist/4, 0))

	// centre front and centre back top
	e := numeric.Pt(0, m.FrontWaistLength)
	f := numeric.Pt(0, m.BackWaistLength+m.NeckBackHeight/2)
	pts.Set("E", e)
	pts.Set("F", f)

	// neck: G on the front neck line, H at the top of the back neck
	g := e.Sub(numeric.Pt(m.NeckWidth, 0))
	h := f.Add(numeric.Pt(-m.NeckWidth, m.NeckBackHeight/2))
	pts.Set("G", g)
	pts.Set("H", h)

	// hip
	hipWidth := m.FullHip / 4
	pts.Set("A", numeric.Pt(0, -m.WaistToHip))
	pts.Set("A1", numeric.Pt(-hipWidth, -m.WaistToHip))

	// bust
	cy := e.Y - m.BustHeight
	pts.Set("C", numeric.Pt(0, cy))

	// C1 lies above the hip line, at distance UnderarmHeight from B1
	b1 := pts.At("B1")
	dx := -hipWidth - b1.X
	if m.UnderarmHeight <= math.Abs(dx) {
		return fmt.Errorf("underarm height %g does not exceed hip/waist offset %g: %w",
			m.UnderarmHeight, math.Abs(dx), ErrInconsistentMeasurements)
	}
	dy := math.Sqrt(m.UnderarmHeight*m.UnderarmHeight - dx*dx)
	pts.Set("C1", numeric.Pt(-hipWidth, b1.Y+dy))

	// shoulder level, half way between F and C
	d := numeric.Lerp(f, numeric.Pt(0, cy), 0.5)
	pts.Set("D", d)
	pts.Set("D1", d.Sub(numeric.Pt(m.HalfFrontWidth, 0)))
	pts.Set("D2", d.Sub(numeric.Pt(m.HalfBackWidth, 0)))

	// shoulder point K: level with J, one shoulder length away from H
	j := numeric.Lerp(g, h, 1.0/3.0)
	pts.Set("J", j)
	rise := h.Y - j.Y
	if m.ShoulderLength <= math.Abs(rise) {
		return fmt.Errorf("shoulder length %g does not exceed neck rise %g: %w",
			m.ShoulderLength, math.Abs(rise), ErrInconsistentMeasurements)
	}
	kw := math.Sqrt(m.ShoulderLength*m.ShoulderLength - rise*rise)
	pts.Set("K", j.Sub(numeric.Pt(kw, 0)))

	return nil
}

func (p *Corset) buildHelperPoints() error {
	m := &p.M
	c := &p.Control
	hps := &p.store.Helpers

	e, f, h, k := p.pt("E"), p.pt("F"), p.pt("H"), p.pt("K")
	b1, c1 := p.pt("B1"), p.pt("C1")

	// neck centre controls, horizontal from E and F
	hps.Set("E1", e.Sub(numeric.Pt(c.FrontNeckCenter*m.NeckWidth, 0)))
	hps.Set("F1", f.Sub(numeric.Pt(c.BackNeckCenter*m.NeckWidth, 0)))

	// neck top controls, square to the shoulder line at H
	hk := k.Sub(h)
	hps.Set("H1", h.Add(numeric.Toward(hk, h, e).Mul(c.FrontNeckTop*m.NeckWidth)))
	hps.Set("H2", h.Add(numeric.Toward(hk, h, f).Mul(c.BackNeckTop*m.NeckWidth)))

	// armhole controls
	offset := c.ArmholeCurve * m.UnderarmHeight
	for _, x := range []string{"1", "2"} {
		dx := p.pt("D" + x)

		cx1 := c1.Add(numeric.Toward(c1.Sub(b1), c1, dx).Mul(offset))
		hps.Set("C1"+x, cx1)

		kx, err := armholeControl(k, cx1, c1, dx, numeric.Toward(h.Sub(k), k, dx))
		if err != nil {
			return fmt.Errorf("armhole through D%s: %w", x, err)
		}
		hps.Set("K"+x, kx)
	}
	return nil
}

// armholeControl returns the control point next to k of the Bézier curve
// k, k+λn, cx1, c1 which passes through d.
//
// For the curve value at t, d - B(t) equals 3(1-t)²t·λn, so the residual
// d - B(t) with the unknown term removed must be parallel to n. The
// parameter t is found by bisection on the cross product with n, after
// which λ follows from the projection onto n.
func armholeControl(k, cx1, c1, d, n vec.Vec2) (vec.Vec2, error) {
	residual := func(t float64) vec.Vec2 {
		omt := 1 - t
		known := k.Mul(omt * omt * (1 + 2*t)).
			Add(cx1.Mul(3 * omt * t * t)).
			Add(c1.Mul(t * t * t))
		return d.Sub(known)
	}

	t, err := numeric.Bisect(func(t float64) float64 {
		return numeric.Cross(residual(t), n)
	}, 0.01, 0.99, solverTol)
	if err != nil {
		return vec.Vec2{}, err
	}

	omt := 1 - t
	lambda := numeric.Dot(residual(t), n) / (3 * omt * omt * t)
	return k.Add(n.Mul(lambda)), nil
}

// mirror maps front coordinates to the position of the back piece.
var mirror = matrix.Matrix{-1, 0, 0, 1, patternGap, 0}

// Bounds returns the drawing area for both pieces: 5cm margin to the left,
// right and top, 10cm below.
func (p *Corset) Bounds() rect.Rect {
	r := boundsOf(&p.store.Construction)
	return rect.Rect{
		LLx: r.LLx - 5,
		LLy: r.LLy - 10,
		URx: -r.LLx + patternGap + 5,
		URy: r.URy + 5,
	}
}

// Outline returns the seam lines of the front piece followed by those of
// the back piece. Each piece runs hem, side seam, armhole, shoulder, neck,
// centre line.
func (p *Corset) Outline() []Curve {
	front := p.pieceOutline(PieceFront, "E", "H1", "E1", "K1", "C11")
	back := p.pieceOutline(PieceBack, "F", "H2", "F1", "K2", "C12")
	for i := range back {
		for j, seg := range back[i].Segments {
			back[i].Segments[j] = seg.Transform(mirror)
		}
	}
	return append(front, back...)
}

// pieceOutline builds the outline in front coordinates. The labels name the
// centre top point and the neck and armhole control points of the piece.
func (p *Corset) pieceOutline(piece, top, neckTop, neckCenter, armK, armC string) []Curve {
	a, a1, b, b1, c1 := p.pt("A"), p.pt("A1"), p.pt("B"), p.pt("B1"), p.pt("C1")
	h, k, e := p.pt("H"), p.pt("K"), p.pt("E")
	t := p.pt(top)

	// side seam: vertical at the hip, tangent to the centre line at the waist
	reach := numeric.Norm(b1.Sub(a1)) / 3
	up := numeric.Normalize(e.Sub(b))
	toC1 := c1.Sub(b1)
	side := Curve{Piece: piece, Name: "side", Segments: []numeric.Cubic{
		{a1, a1.Add(numeric.Pt(0, reach)), b1.Sub(up.Mul(reach)), b1},
		{b1, b1.Add(up.Mul(reach)), c1.Sub(numeric.Normalize(toC1).Mul(0.3 * numeric.Norm(toC1))), c1},
	}}

	return []Curve{
		straight(piece, "hem", a, a1),
		side,
		{Piece: piece, Name: "armhole", Segments: []numeric.Cubic{
			{c1, p.hp(armC), p.hp(armK), k},
		}},
		straight(piece, "shoulder", k, h),
		{Piece: piece, Name: "neck", Segments: []numeric.Cubic{
			{h, p.hp(neckTop), p.hp(neckCenter), t},
		}},
		straight(piece, "center", t, a),
	}
}

// ArmholeLength returns the length of the front and back armhole seams
// together, for matching against the sleeve cap.
func (p *Corset) ArmholeLength() float64 {
	total := 0.0
	for _, c := range p.Outline() {
		if c.Name == "armhole" {
			total += numeric.CurveLength(c.Segments, lengthTol)
		}
	}
	return total
}

// Guides returns the centre and hem reference lines of both pieces
// together with the waist, bust and shoulder levels of the front.
func (p *Corset) Guides() []Curve {
	a, a1, e, f := p.pt("A"), p.pt("A1"), p.pt("E"), p.pt("F")
	guides := []Curve{
		straight(PieceFront, "center", a, e),
		straight(PieceFront, "hip", a, a1),
		straight(PieceFront, "waist", p.pt("B"), p.pt("B1")),
		straight(PieceFront, "bust", p.pt("C"), p.pt("C1")),
		straight(PieceFront, "across front", p.pt("D"), p.pt("D1")),
		straight(PieceBack, "center", numeric.Apply(mirror, a), numeric.Apply(mirror, f)),
		straight(PieceBack, "hip", numeric.Apply(mirror, a), numeric.Apply(mirror, a1)),
		straight(PieceBack, "across back", numeric.Apply(mirror, p.pt("D")), numeric.Apply(mirror, p.pt("D2"))),
	}
	return guides
}

// Labels shown on construction sheets. D2 belongs to the back piece only.
var (
	corsetFrontSkip    = map[string]bool{"D2": true}
	corsetBackLabels   = []string{"A", "A1", "B", "B1", "C1", "D2", "F", "H", "K"}
	corsetFrontHelpers = []string{"H1", "E1", "C11", "K1"}
	corsetBackHelpers  = []string{"H2", "F1", "C12", "K2"}
)

// Landmarks returns the labelled points of both pieces.
func (p *Corset) Landmarks() []Landmark {
	var res []Landmark
	for label, pos := range p.store.Construction.All() {
		if corsetFrontSkip[label] {
			continue
		}
		res = append(res, Landmark{Piece: PieceFront, Label: label, Pos: pos})
	}
	for _, label := range corsetBackLabels {
		pos := numeric.Apply(mirror, p.pt(label))
		res = append(res, Landmark{Piece: PieceBack, Label: label, Pos: pos})
	}
	for _, label := range corsetFrontHelpers {
		res = append(res, Landmark{Piece: PieceFront, Label: label, Pos: p.hp(label), Helper: true})
	}
	for _, label := range corsetBackHelpers {
		pos := numeric.Apply(mirror, p.hp(label))
		res = append(res, Landmark{Piece: PieceBack, Label: label, Pos: pos, Helper: true})
	}
	return res
}

// Warnings reports Bézier segments which cross one of their end tangents.
// Such curves bulge over the adjacent seam line.
func (p *Corset) Warnings() []string {
	var res []string
	for _, c := range p.Outline() {
		for i, seg := range c.Segments {
			if seg[0] == seg[3] || isStraight(seg) {
				continue
			}
			start, end := seg.TangentCrossings()
			if start {
				res = append(res, fmt.Sprintf("%s %s, segment %d: curve crosses its start tangent", c.Piece, c.Name, i))
			}
			if end {
				res = append(res, fmt.Sprintf("%s %s, segment %d: curve crosses its end tangent", c.Piece, c.Name, i))
			}
		}
	}
	return res
}

func isStraight(c numeric.Cubic) bool {
	d := c[3].Sub(c[0])
	return math.Abs(numeric.Cross(c[1].Sub(c[0]), d)) < 1e-9 &&
		math.Abs(numeric.Cross(c[2].Sub(c[0]), d)) < 1e-9
}
