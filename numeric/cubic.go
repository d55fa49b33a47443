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

package numeric

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Cubic is a cubic Bézier segment: start point, two control points, end point.
type Cubic [4]vec.Vec2

// Line returns the straight segment from a to b as a cubic Bézier,
// with the control points trisecting the chord.
func Line(a, b vec.Vec2) Cubic {
	d := b.Sub(a)
	return Cubic{a, a.Add(d.Mul(1.0 / 3.0)), a.Add(d.Mul(2.0 / 3.0)), b}
}

// Start returns the first point of the segment.
func (c Cubic) Start() vec.Vec2 { return c[0] }

// End returns the last point of the segment.
func (c Cubic) End() vec.Vec2 { return c[3] }

// Eval returns the point of the curve at parameter t ∈ [0, 1].
func (c Cubic) Eval(t float64) vec.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return c[0].Mul(omt2 * omt).
		Add(c[1].Mul(3 * omt2 * t)).
		Add(c[2].Mul(3 * omt * t2)).
		Add(c[3].Mul(t2 * t))
}

// Reverse returns the same curve traversed from end to start.
func (c Cubic) Reverse() Cubic {
	return Cubic{c[3], c[2], c[1], c[0]}
}

// Transform applies the affine map m to all four points.
func (c Cubic) Transform(m matrix.Matrix) Cubic {
	var out Cubic
	for i, p := range c {
		out[i] = Apply(m, p)
	}
	return out
}

// Apply maps p by the affine transformation m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// TangentCrossings reports whether the curve crosses the line through its
// start tangent (P0–P1) or the line through its end tangent (P3–P2).
//
// The start line is crossed when P2 and P3 lie strictly on opposite sides of
// it, the end line when P0 and P1 do. Tangents shorter than 1e-10 are never
// reported.
func (c Cubic) TangentCrossings() (start, end bool) {
	p0, p1, p2, p3 := c[0], c[1], c[2], c[3]

	if v := p1.Sub(p0); Norm(v) >= 1e-10 {
		c2 := Cross(p2.Sub(p0), v)
		c3 := Cross(p3.Sub(p0), v)
		start = c2*c3 < 0
	}
	if v := p2.Sub(p3); Norm(v) >= 1e-10 {
		c0 := Cross(p0.Sub(p3), v)
		c1 := Cross(p1.Sub(p3), v)
		end = c0*c1 < 0
	}
	return start, end
}
