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
	"math"

	"seehuhn.de/go/geom/vec"
)

const maxFlattenSegments = 1 << 16

// Flatten approximates the curve by line segments and calls emit for each
// of them, in order. The number of segments is chosen by Wang's formula so
// that the polygon deviates from the curve by at most tol.
func (c Cubic) Flatten(tol float64, emit func(from, to vec.Vec2)) {
	p0, p1, p2, p3 := c[0], c[1], c[2], c[3]

	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// n = ceil(sqrt(3 * m / (4 * tol)))
	m := max(Norm(d1), Norm(d2))
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * tol))
		switch {
		case !(nFloat <= maxFlattenSegments):
			n = maxFlattenSegments
		case nFloat > 1:
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i < n; i++ {
		pt := c.Eval(float64(i) / float64(n))
		emit(prev, pt)
		prev = pt
	}
	emit(prev, p3)
}

// Length returns the arc length of the curve, up to an error governed by
// the flattening tolerance tol.
func (c Cubic) Length(tol float64) float64 {
	total := 0.0
	c.Flatten(tol, func(from, to vec.Vec2) {
		total += Norm(to.Sub(from))
	})
	return total
}

// CurveLength returns the total arc length of a sequence of segments.
func CurveLength(segs []Cubic, tol float64) float64 {
	total := 0.0
	for _, c := range segs {
		total += c.Length(tol)
	}
	return total
}
